package netsuite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inhq/netsuite/schema/field"
)

func TestCompileWildcard(t *testing.T) {
	// no explicit columns, no joins, extras explicitly allowed: the
	// fast path skips column enumeration entirely.
	query, sh, err := compileQuery(custSchema, nil, nil, nil, PolicyAllow)
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM customer", query)
	assert.True(t, sh.wildcard)
}

func TestCompileEnumerated(t *testing.T) {
	// any other policy compiles an explicit, non-empty column list.
	query, sh, err := compileQuery(custSchema, nil, nil, nil, PolicyIgnore)
	require.NoError(t, err)
	assert.Equal(t,
		`SELECT customer.id AS "id", customer.companyname AS "companyname", customer.salesrep AS "salesrep" FROM customer`,
		query)
	assert.False(t, sh.wildcard)
}

func TestCompileExplicitColumns(t *testing.T) {
	cols := []*field.Descriptor{custSchema.F("id")}
	query, _, err := compileQuery(custSchema, cols, nil, nil, PolicyIgnore)
	require.NoError(t, err)
	assert.Equal(t, `SELECT customer.id AS "id" FROM customer`, query)
}

func TestCompileUnknownColumn(t *testing.T) {
	cols := []*field.Descriptor{custSchema.F("nope")}
	_, _, err := compileQuery(custSchema, cols, nil, nil, PolicyIgnore)
	require.Error(t, err)
	assert.True(t, IsConfiguration(err))
}

func TestCompileJoinQuery(t *testing.T) {
	joins := []joinSpec{{
		base:   custSchema.F("sales_rep"),
		joined: empSchema.F("id"),
		kind:   JoinOuter,
		dir:    JoinLeft,
	}}
	where := custSchema.F("id").EQ("100")
	query, sh, err := compileQuery(custSchema, nil, joins, where, PolicyIgnore)
	require.NoError(t, err)
	assert.Equal(t,
		`SELECT customer.id AS "id", customer.companyname AS "companyname", `+
			`employee.id AS "salesrep.id", employee.firstname AS "salesrep.firstname", `+
			`employee.lastname AS "salesrep.lastname", employee.email AS "salesrep.email" `+
			`FROM customer LEFT OUTER JOIN employee ON employee.id = customer.salesrep `+
			`WHERE customer.id = '100'`,
		query)
	require.Contains(t, sh.subs, "salesrep")
	assert.Equal(t, "sales_rep", sh.subs["salesrep"].carrier.Name())
}

func TestCompileJoinWithExplicitColumns(t *testing.T) {
	joins := []joinSpec{{
		base:   custSchema.F("sales_rep"),
		joined: empSchema.F("id"),
		kind:   JoinOuter,
		dir:    JoinLeft,
	}}
	cols := []*field.Descriptor{custSchema.F("id"), empSchema.F("first_name")}
	query, _, err := compileQuery(custSchema, cols, joins, nil, PolicyIgnore)
	require.NoError(t, err)
	assert.Equal(t,
		`SELECT customer.id AS "id", employee.firstname AS "salesrep.firstname" `+
			`FROM customer LEFT OUTER JOIN employee ON employee.id = customer.salesrep`,
		query)
}

func TestCompileJoinOptions(t *testing.T) {
	joins := []joinSpec{{
		base:   custSchema.F("sales_rep"),
		joined: empSchema.F("id"),
		kind:   JoinInner,
		dir:    JoinRight,
	}}
	query, _, err := compileQuery(custSchema, nil, joins, nil, PolicyIgnore)
	require.NoError(t, err)
	assert.Contains(t, query, " RIGHT INNER JOIN employee ON ")
}

func TestCompileMultipleJoins(t *testing.T) {
	join := joinSpec{
		base:   custSchema.F("sales_rep"),
		joined: empSchema.F("id"),
		kind:   JoinOuter,
		dir:    JoinLeft,
	}
	_, _, err := compileQuery(custSchema, nil, []joinSpec{join, join}, nil, PolicyIgnore)
	require.Error(t, err)
	assert.True(t, IsUsage(err))
	assert.Contains(t, err.Error(), "multiple joins are not supported")
}

func TestCompileDiscriminator(t *testing.T) {
	// without a caller expression the discriminator stands alone.
	query, _, err := compileQuery(invSchema, nil, nil, nil, PolicyIgnore)
	require.NoError(t, err)
	assert.Equal(t,
		`SELECT transaction.id AS "id", transaction.memo AS "memo", transaction.recordtype AS "recordtype" `+
			`FROM transaction WHERE transaction.recordtype = 'invoice'`,
		query)

	// with one, both are ANDed.
	query, _, err = compileQuery(invSchema, nil, nil, invSchema.F("id").EQ("1"), PolicyIgnore)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(query,
		`WHERE (transaction.id = '1') AND (transaction.recordtype = 'invoice')`), query)
}

func TestCompileNoWhere(t *testing.T) {
	query, _, err := compileQuery(deptSchema, nil, nil, nil, PolicyIgnore)
	require.NoError(t, err)
	assert.NotContains(t, query, "WHERE")
}

func TestCompileUnsupportedOperatorSurfaces(t *testing.T) {
	// contains has no query-service token; the render error surfaces
	// as a configuration error before any network call.
	_, _, err := compileQuery(custSchema, nil, nil, custSchema.F("company_name").Contains("x"), PolicyIgnore)
	require.Error(t, err)
	assert.True(t, IsConfiguration(err))
	assert.ErrorIs(t, err, field.ErrUnsupportedOperator)
}
