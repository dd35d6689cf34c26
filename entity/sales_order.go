package entity

import (
	"github.com/inhq/netsuite"
	"github.com/inhq/netsuite/schema"
	"github.com/inhq/netsuite/schema/field"
)

// SalesOrderItem is a single line on a sales order.
type SalesOrderItem struct {
	Item netsuite.Ref[GenericItem] `json:"item,omitempty"`
}

// SalesOrderItemCollection holds the item sublist of a sales order.
type SalesOrderItemCollection struct {
	Items []SalesOrderItem `json:"items,omitempty"`
}

// SalesOrder is a NetSuite sales order record. Unlike the other
// transaction subtypes it is queried through its own view, so it does
// not derive from the shared transaction base.
type SalesOrder struct {
	ID    string                    `json:"id,omitempty"`
	Memo  string                    `json:"memo,omitempty"`
	Item  *SalesOrderItemCollection `json:"item,omitempty"`
	Links []Link                    `json:"links,omitempty"`
}

// SalesOrderSchema registers the sales order record.
var SalesOrderSchema = schema.New("SalesOrder",
	field.String("id"),
	field.String("memo"),
	field.Ref("item").RestOnly(),
)

// SalesOrders returns the sales order collection for the given client.
func SalesOrders(c *netsuite.Client) *netsuite.Collection[SalesOrder] {
	return netsuite.NewCollection[SalesOrder](c, SalesOrderSchema)
}
