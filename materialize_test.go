package netsuite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deptJoinShape(t *testing.T) *shape {
	t.Helper()
	joins := []joinSpec{{
		base:   supplierSchema.F("dept"),
		joined: deptSchema.F("id"),
		kind:   JoinOuter,
		dir:    JoinLeft,
	}}
	_, sh, err := compileQuery(supplierSchema, nil, joins, nil, PolicyIgnore)
	require.NoError(t, err)
	return sh
}

func TestDecodeNestedRecord(t *testing.T) {
	sh := deptJoinShape(t)
	record, extras, err := sh.decode(map[string]any{
		"id":        "v1",
		"dept.id":   "9",
		"dept.name": "Ops",
	}, PolicyIgnore)
	require.NoError(t, err)
	assert.Nil(t, extras)
	assert.Equal(t, map[string]any{
		"id": "v1",
		"dept": map[string]any{
			"id":   "9",
			"name": "Ops",
		},
	}, record)
}

func TestDecodeCaseInsensitive(t *testing.T) {
	_, sh, err := compileQuery(custSchema, nil, nil, nil, PolicyIgnore)
	require.NoError(t, err)
	record, _, err := sh.decode(map[string]any{"companyName": "Acme"}, PolicyIgnore)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"company_name": "Acme"}, record)
}

func TestDecodePolicies(t *testing.T) {
	sh := deptJoinShape(t)
	rows := []map[string]any{
		{"id": "v1", "extra": "x"},          // unknown plain column
		{"id": "v1", "dept.extra": "x"},     // unknown joined column
		{"id": "v1", "other.whatever": "x"}, // unknown carrier
	}
	for _, row := range rows {
		record, extras, err := sh.decode(row, PolicyIgnore)
		require.NoError(t, err)
		assert.Nil(t, extras)
		assert.Equal(t, "v1", record["id"])

		_, extras, err = sh.decode(row, PolicyAllow)
		require.NoError(t, err)
		require.Len(t, extras, 1)
		assert.Equal(t, "x", extras[keyOf(extras)])

		_, _, err = sh.decode(row, PolicyForbid)
		require.Error(t, err)
		assert.True(t, IsDecode(err))
		var de *DecodeError
		require.ErrorAs(t, err, &de)
		assert.NotEmpty(t, de.Path)
		assert.Equal(t, row, de.Row)
	}
}

func keyOf(m map[string]any) string {
	for k := range m {
		return k
	}
	return ""
}

func TestDecodeWildcardKeepsExtras(t *testing.T) {
	_, sh, err := compileQuery(custSchema, nil, nil, nil, PolicyAllow)
	require.NoError(t, err)
	require.True(t, sh.wildcard)

	// under a wildcard even a forbid-style policy cannot reject: the
	// shape was never constrained. Unknown columns stay in extras.
	record, extras, err := sh.decode(map[string]any{
		"id":       "1",
		"lastseen": "2024-01-01",
	}, PolicyForbid)
	require.NoError(t, err)
	assert.Equal(t, "1", record["id"])
	assert.Equal(t, "2024-01-01", extras["lastseen"])
}

func TestDecodeItem(t *testing.T) {
	record := map[string]any{
		"id":           "100",
		"company_name": "Acme",
		"sales_rep":    map[string]any{"first_name": "Jo"},
	}
	item, err := decodeItem[custRow]("Customer", record, nil)
	require.NoError(t, err)
	assert.Equal(t, "100", item.ID)
	assert.Equal(t, "Acme", item.CompanyName)
	require.NotNil(t, item.SalesRep.Value)
	assert.Equal(t, "Jo", item.SalesRep.Value.FirstName)
}

func TestDecodeItemRawReference(t *testing.T) {
	item, err := decodeItem[custRow]("Customer", map[string]any{
		"id":        "100",
		"sales_rep": "7",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "7", item.SalesRep.ID)
	assert.Nil(t, item.SalesRep.Value)
}

func TestDecodeItemTypeMismatch(t *testing.T) {
	row := map[string]any{"id": []any{"not", "a", "string"}}
	_, err := decodeItem[custRow]("Customer", row, row)
	require.Error(t, err)
	assert.True(t, IsDecode(err))
}
