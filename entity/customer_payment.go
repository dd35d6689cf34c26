package entity

import (
	"github.com/inhq/netsuite"
	"github.com/inhq/netsuite/schema/field"
)

// CustomerPayment is a NetSuite customer payment record.
type CustomerPayment struct {
	ID              string                     `json:"id,omitempty"`
	Memo            string                     `json:"memo,omitempty"`
	TransactionID   string                     `json:"transaction_id,omitempty"`
	TransactionDate string                     `json:"transaction_date,omitempty"`
	Account         netsuite.Ref[GenericItem]  `json:"account,omitempty"`
	Customer        netsuite.Ref[Customer]     `json:"customer,omitempty"`
	Payment         float64                    `json:"payment,omitempty"`
	Apply           *CreditMemoApplyCollection `json:"apply,omitempty"`
	Credit          *CreditMemoApplyCollection `json:"credit,omitempty"`
	Links           []Link                     `json:"links,omitempty"`
}

// CustomerPaymentSchema registers the customer payment record.
var CustomerPaymentSchema = TransactionSchema.Derive("CustomerPayment",
	field.Ref("account"),
	field.Ref("customer"),
	field.Float("payment"),
	field.Ref("apply").RestOnly(),
	field.Ref("credit").RestOnly(),
	field.String("record_type").Alias("recordType").QLOnly().Fixed("customerpayment"),
)

// CustomerPayments returns the customer payment collection for the
// given client.
func CustomerPayments(c *netsuite.Client) *netsuite.Collection[CustomerPayment] {
	return netsuite.NewCollection[CustomerPayment](c, CustomerPaymentSchema)
}
