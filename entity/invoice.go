package entity

import (
	"github.com/inhq/netsuite"
	"github.com/inhq/netsuite/schema/field"
)

// InvoiceItem is a single line on an invoice.
type InvoiceItem struct {
	Item        netsuite.Ref[GenericItem] `json:"item,omitempty"`
	Account     netsuite.Ref[GenericItem] `json:"account,omitempty"`
	Amount      float64                   `json:"amount,omitempty"`
	Class       netsuite.Ref[GenericItem] `json:"class,omitempty"`
	Department  netsuite.Ref[GenericItem] `json:"department,omitempty"`
	Description string                    `json:"description,omitempty"`
	Line        int                       `json:"line,omitempty"`
	Rate        float64                   `json:"rate,omitempty"`
}

// InvoiceItemCollection holds the item sublist of an invoice.
type InvoiceItemCollection struct {
	Items []InvoiceItem `json:"items,omitempty"`
}

// Invoice is a NetSuite invoice record.
type Invoice struct {
	ID              string                    `json:"id,omitempty"`
	Memo            string                    `json:"memo,omitempty"`
	TransactionID   string                    `json:"transaction_id,omitempty"`
	TransactionDate string                    `json:"transaction_date,omitempty"`
	Account         netsuite.Ref[GenericItem] `json:"account,omitempty"`
	AmountPaid      float64                   `json:"amount_paid,omitempty"`
	AmountRemaining float64                   `json:"amount_remaining,omitempty"`
	Class           netsuite.Ref[GenericItem] `json:"class,omitempty"`
	Entity          netsuite.Ref[GenericItem] `json:"entity,omitempty"`
	Employee        string                    `json:"employee,omitempty"`
	CreatedFrom     netsuite.Ref[GenericItem] `json:"created_from,omitempty"`
	Subsidiary      netsuite.Ref[GenericItem] `json:"subsidiary,omitempty"`
	Item            *InvoiceItemCollection    `json:"item,omitempty"`
	Location        netsuite.Ref[GenericItem] `json:"location,omitempty"`
	Terms           netsuite.Ref[GenericItem] `json:"terms,omitempty"`
	Subtotal        float64                   `json:"subtotal,omitempty"`
	Links           []Link                    `json:"links,omitempty"`
}

// InvoiceSchema registers the invoice record. The paid and remaining
// amounts use different column names in the query service than in the
// record service, hence the query alias overrides.
var InvoiceSchema = TransactionSchema.Derive("Invoice",
	field.Ref("account").RestOnly(),
	field.Float("amount_paid").Alias("amountPaid").QLAliasOverride("foreignAmountPaid"),
	field.Float("amount_remaining").Alias("amountRemaining").QLAliasOverride("foreignAmountUnpaid"),
	field.Ref("class").RestOnly(),
	field.Ref("entity"),
	field.String("employee").QLOnly(),
	field.Ref("created_from").Alias("createdFrom").RestOnly(),
	field.Ref("subsidiary").RestOnly(),
	field.Ref("item").RestOnly(),
	field.Ref("location").RestOnly(),
	field.Ref("terms").RestOnly(),
	field.Float("subtotal").RestOnly(),
	field.String("record_type").Alias("recordType").QLOnly().Fixed("invoice"),
)

// Invoices returns the invoice collection for the given client.
func Invoices(c *netsuite.Client) *netsuite.Collection[Invoice] {
	return netsuite.NewCollection[Invoice](c, InvoiceSchema)
}
