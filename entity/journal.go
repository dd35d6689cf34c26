package entity

import (
	"github.com/inhq/netsuite"
	"github.com/inhq/netsuite/schema/field"
)

// JournalLine is one debit or credit line of a journal entry.
type JournalLine struct {
	Account    netsuite.Ref[GenericItem] `json:"account,omitempty"`
	Class      netsuite.Ref[GenericItem] `json:"class,omitempty"`
	Credit     float64                   `json:"credit,omitempty"`
	Debit      float64                   `json:"debit,omitempty"`
	Department netsuite.Ref[Department]  `json:"department,omitempty"`
	Entity     netsuite.Ref[GenericItem] `json:"entity,omitempty"`
	Subsidiary netsuite.Ref[GenericItem] `json:"subsidiary,omitempty"`
	Line       int                       `json:"line,omitempty"`
	Memo       string                    `json:"memo,omitempty"`
	Links      []Link                    `json:"links,omitempty"`
}

// JournalLineCollection holds the line sublist of a journal entry.
type JournalLineCollection struct {
	Items []JournalLine `json:"items,omitempty"`
}

// JournalEntry is a NetSuite journal entry record.
type JournalEntry struct {
	ID              string                    `json:"id,omitempty"`
	Memo            string                    `json:"memo,omitempty"`
	TransactionID   string                    `json:"transaction_id,omitempty"`
	TransactionDate string                    `json:"transaction_date,omitempty"`
	Subsidiary      netsuite.Ref[GenericItem] `json:"subsidiary,omitempty"`
	Line            *JournalLineCollection    `json:"line,omitempty"`
	Links           []Link                    `json:"links,omitempty"`
}

// JournalEntrySchema registers the journal entry record.
var JournalEntrySchema = TransactionSchema.Derive("JournalEntry",
	field.Ref("subsidiary"),
	field.Ref("line").RestOnly(),
	field.String("record_type").Alias("recordType").QLOnly().Fixed("journalentry"),
)

// JournalEntries returns the journal entry collection for the given
// client.
func JournalEntries(c *netsuite.Client) *netsuite.Collection[JournalEntry] {
	return netsuite.NewCollection[JournalEntry](c, JournalEntrySchema)
}
