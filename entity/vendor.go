package entity

import (
	"github.com/inhq/netsuite"
	"github.com/inhq/netsuite/schema"
	"github.com/inhq/netsuite/schema/field"
)

// Vendor is a NetSuite vendor record. The department reference lives
// in a custom entity field, so its wire alias is the custom field id
// rather than the usual camel-cased attribute name.
type Vendor struct {
	ID          string                   `json:"id,omitempty"`
	CompanyName string                   `json:"company_name,omitempty"`
	Department  netsuite.Ref[Department] `json:"department,omitempty"`
}

// VendorSchema registers the vendor record.
var VendorSchema = schema.New("Vendor",
	field.String("id"),
	field.String("company_name").Alias("companyName"),
	field.Ref("department").Alias("custentityinvdeptvendor"),
)

// Vendors returns the vendor collection for the given client.
func Vendors(c *netsuite.Client) *netsuite.Collection[Vendor] {
	return netsuite.NewCollection[Vendor](c, VendorSchema)
}
