package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inhq/netsuite/schema/field"
)

func TestQueryTable(t *testing.T) {
	dept := New("Department", field.String("id"), field.String("name"))
	assert.Equal(t, "department", dept.QueryTable())

	tx := New("Transaction", field.String("id")).Table("transaction")
	assert.Equal(t, "transaction", tx.QueryTable())
}

func TestDerive(t *testing.T) {
	tx := New("Transaction",
		field.String("id"),
		field.String("memo"),
	).Table("transaction")
	invoice := tx.Derive("Invoice",
		field.Float("amount_paid").Alias("amountPaid"),
		field.String("record_type").Alias("recordType").QLOnly().Fixed("invoice"),
	)

	// inherited fields, then the entity's own, in declaration order.
	names := make([]string, 0, len(invoice.Fields()))
	for _, f := range invoice.Fields() {
		names = append(names, f.Name())
	}
	assert.Equal(t, []string{"id", "memo", "amount_paid", "record_type"}, names)

	// the derived entity resolves to the parent's table.
	assert.Equal(t, "transaction", invoice.QueryTable())

	// inherited descriptors are rebound to the derived entity, and the
	// parent keeps its own binding.
	assert.Equal(t, field.Owner(invoice), invoice.F("id").Owner())
	assert.Equal(t, field.Owner(tx), tx.F("id").Owner())

	assert.True(t, invoice.DescendsFrom(tx))
	assert.True(t, invoice.DescendsFrom(invoice))
	assert.False(t, tx.DescendsFrom(invoice))
}

func TestDeriveTableOverride(t *testing.T) {
	base := New("Item", field.String("id"))
	special := base.Derive("SpecialItem").Table("specialitem")
	assert.Equal(t, "specialitem", special.QueryTable())
	assert.Equal(t, "item", base.QueryTable())
}

func TestFUnknown(t *testing.T) {
	dept := New("Department", field.String("id"))
	f := dept.F("nope")
	require.Error(t, f.Err())
	assert.Contains(t, f.Err().Error(), `entity Department has no field "nope"`)

	// the error stays deferred until the comparison is rendered.
	_, err := f.EQ("x").SuiteQL()
	assert.Error(t, err)
}

func TestQueryFields(t *testing.T) {
	e := New("Invoice",
		field.String("id"),
		field.Float("subtotal").RestOnly(),
		field.String("employee").QLOnly(),
	)
	names := make([]string, 0, 2)
	for _, f := range e.QueryFields() {
		names = append(names, f.Name())
	}
	assert.Equal(t, []string{"id", "employee"}, names)
}

func TestDiscriminators(t *testing.T) {
	e := New("Invoice",
		field.String("id"),
		field.String("record_type").Alias("recordType").QLOnly().Fixed("invoice"),
	).Table("transaction")

	discs := e.Discriminators()
	require.Len(t, discs, 1)
	got, err := discs[0].SuiteQL()
	require.NoError(t, err)
	assert.Equal(t, "transaction.recordtype = 'invoice'", got)

	plain := New("Department", field.String("id"))
	assert.Empty(t, plain.Discriminators())
}

func TestNewPanics(t *testing.T) {
	assert.PanicsWithValue(t,
		`schema: entity Department: duplicate field "id"`,
		func() {
			New("Department", field.String("id"), field.String("id"))
		})

	shared := field.String("id")
	New("A", shared)
	assert.Panics(t, func() { New("B", shared) })

	assert.Panics(t, func() { New("C", field.String("")) })
}
