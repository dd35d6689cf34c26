package entity

import (
	"github.com/inhq/netsuite"
	"github.com/inhq/netsuite/schema"
	"github.com/inhq/netsuite/schema/field"
)

// Employee is a NetSuite employee record.
type Employee struct {
	ID        string                    `json:"id,omitempty"`
	FirstName string                    `json:"first_name,omitempty"`
	LastName  string                    `json:"last_name,omitempty"`
	Email     string                    `json:"email,omitempty"`
	Location  netsuite.Ref[GenericItem] `json:"location,omitempty"`
}

// EmployeeSchema registers the employee record.
var EmployeeSchema = schema.New("Employee",
	field.String("id"),
	field.String("first_name").Alias("firstName"),
	field.String("last_name").Alias("lastName"),
	field.String("email"),
	field.Ref("location"),
)

// Employees returns the employee collection for the given client.
func Employees(c *netsuite.Client) *netsuite.Collection[Employee] {
	return netsuite.NewCollection[Employee](c, EmployeeSchema)
}
