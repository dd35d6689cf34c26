// Package field declares entity attributes and the comparison algebra
// built on top of them.
//
// A Descriptor is created with one of the kind constructors and
// configured by chaining:
//
//	field.String("company_name").Alias("companyName")
//	field.Float("amount_paid").Alias("amountPaid").QLAliasOverride("foreignAmountPaid")
//	field.String("record_type").Alias("recordType").QLOnly().Fixed("invoice")
//
// Comparison methods on a bound descriptor produce Expr values that
// render to either dialect. Construction never fails eagerly: unknown
// fields, unsupported operator-value pairs and mixed And/Or condition
// lists carry a deferred error that surfaces when the expression is
// compiled, before any network call.
package field
