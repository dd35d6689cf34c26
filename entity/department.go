package entity

import (
	"github.com/inhq/netsuite"
	"github.com/inhq/netsuite/schema"
	"github.com/inhq/netsuite/schema/field"
)

// Department is a NetSuite department record.
type Department struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

// DepartmentSchema registers the department record.
var DepartmentSchema = schema.New("Department",
	field.String("id"),
	field.String("name"),
	field.String("full_name").Alias("fullName"),
)

// Departments returns the department collection for the given client.
func Departments(c *netsuite.Client) *netsuite.Collection[Department] {
	return netsuite.NewCollection[Department](c, DepartmentSchema)
}
