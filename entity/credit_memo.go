package entity

import (
	"github.com/inhq/netsuite"
	"github.com/inhq/netsuite/schema/field"
)

// CreditMemoApply is one application of a credit memo against an open
// transaction.
type CreditMemoApply struct {
	Amount float64 `json:"amount,omitempty"`
	Apply  bool    `json:"apply,omitempty"`
	Doc    string  `json:"doc,omitempty"`
	Line   int     `json:"line,omitempty"`
}

// CreditMemoApplyCollection holds the apply sublist of a credit memo.
type CreditMemoApplyCollection struct {
	Items []CreditMemoApply `json:"items,omitempty"`
}

// CreditMemoItem is a single line on a credit memo.
type CreditMemoItem struct {
	Item        netsuite.Ref[GenericItem] `json:"item,omitempty"`
	Account     netsuite.Ref[GenericItem] `json:"account,omitempty"`
	Amount      float64                   `json:"amount,omitempty"`
	Class       netsuite.Ref[GenericItem] `json:"class,omitempty"`
	Department  netsuite.Ref[GenericItem] `json:"department,omitempty"`
	Description string                    `json:"description,omitempty"`
	Line        int                       `json:"line,omitempty"`
	Rate        float64                   `json:"rate,omitempty"`
}

// CreditMemoItemCollection holds the item sublist of a credit memo.
type CreditMemoItemCollection struct {
	Items []CreditMemoItem `json:"items,omitempty"`
}

// CreditMemo is a NetSuite credit memo record.
type CreditMemo struct {
	ID              string                     `json:"id,omitempty"`
	Memo            string                     `json:"memo,omitempty"`
	TransactionID   string                     `json:"transaction_id,omitempty"`
	TransactionDate string                     `json:"transaction_date,omitempty"`
	Account         netsuite.Ref[GenericItem]  `json:"account,omitempty"`
	AmountPaid      float64                    `json:"amount_paid,omitempty"`
	Apply           *CreditMemoApplyCollection `json:"apply,omitempty"`
	Class           netsuite.Ref[GenericItem]  `json:"class,omitempty"`
	Entity          netsuite.Ref[GenericItem]  `json:"entity,omitempty"`
	Subsidiary      netsuite.Ref[GenericItem]  `json:"subsidiary,omitempty"`
	Item            *CreditMemoItemCollection  `json:"item,omitempty"`
	Location        netsuite.Ref[GenericItem]  `json:"location,omitempty"`
	Terms           netsuite.Ref[GenericItem]  `json:"terms,omitempty"`
	Subtotal        float64                    `json:"subtotal,omitempty"`
	Links           []Link                     `json:"links,omitempty"`
}

// CreditMemoSchema registers the credit memo record.
var CreditMemoSchema = TransactionSchema.Derive("CreditMemo",
	field.Ref("account"),
	field.Float("amount_paid").Alias("amountPaid").RestOnly(),
	field.Ref("apply").RestOnly(),
	field.Ref("class").RestOnly(),
	field.Ref("entity"),
	field.Ref("subsidiary"),
	field.Ref("item").RestOnly(),
	field.Ref("location"),
	field.Ref("terms"),
	field.Float("subtotal").RestOnly(),
	field.String("record_type").Alias("recordType").QLOnly().Fixed("creditmemo"),
)

// CreditMemos returns the credit memo collection for the given client.
func CreditMemos(c *netsuite.Client) *netsuite.Collection[CreditMemo] {
	return netsuite.NewCollection[CreditMemo](c, CreditMemoSchema)
}
