package entity

import (
	"github.com/inhq/netsuite"
	"github.com/inhq/netsuite/schema"
	"github.com/inhq/netsuite/schema/field"
)

// Customer is a NetSuite customer record.
type Customer struct {
	ID          string                 `json:"id,omitempty"`
	CompanyName string                 `json:"company_name,omitempty"`
	SalesRep    netsuite.Ref[Employee] `json:"sales_rep,omitempty"`
}

// CustomerSchema registers the customer record.
var CustomerSchema = schema.New("Customer",
	field.String("id"),
	field.String("company_name").Alias("companyName"),
	field.Ref("sales_rep").Alias("salesRep"),
)

// Customers returns the customer collection for the given client.
func Customers(c *netsuite.Client) *netsuite.Collection[Customer] {
	return netsuite.NewCollection[Customer](c, CustomerSchema)
}
