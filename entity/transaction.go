package entity

import (
	"github.com/inhq/netsuite/schema"
	"github.com/inhq/netsuite/schema/field"
)

// TransactionSchema is the shared base for every record stored in the
// transaction table. Concrete records derive from it and pin a fixed,
// query-only record_type, which the compiler folds into every where
// clause so subtypes never bleed into each other's results.
var TransactionSchema = schema.New("Transaction",
	field.String("id"),
	field.String("memo"),
	field.String("transaction_id").Alias("tranId"),
	field.Date("transaction_date").Alias("tranDate"),
).Table("transaction")
