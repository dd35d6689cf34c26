package netsuite

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inhq/netsuite/dialect"
	"github.com/inhq/netsuite/schema"
	"github.com/inhq/netsuite/schema/field"
)

// Entities shared by the compiler, materializer and pagination tests.
var (
	empSchema = schema.New("Employee",
		field.String("id"),
		field.String("first_name").Alias("firstName"),
		field.String("last_name").Alias("lastName"),
		field.String("email"),
	)
	custSchema = schema.New("Customer",
		field.String("id"),
		field.String("company_name").Alias("companyName"),
		field.Ref("sales_rep").Alias("salesRep"),
	)
	deptSchema = schema.New("Department",
		field.String("id"),
		field.String("name"),
	)
	supplierSchema = schema.New("Supplier",
		field.String("id"),
		field.Ref("dept"),
	)
	txSchema = schema.New("Transaction",
		field.String("id"),
		field.String("memo"),
	).Table("transaction")
	invSchema = txSchema.Derive("Invoice",
		field.String("record_type").Alias("recordType").QLOnly().Fixed("invoice"),
	)
)

type empRow struct {
	ID        string `json:"id,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
}

type custRow struct {
	ID          string      `json:"id,omitempty"`
	CompanyName string      `json:"company_name,omitempty"`
	SalesRep    Ref[empRow] `json:"sales_rep,omitempty"`
}

type invRow struct {
	ID   string `json:"id,omitempty"`
	Memo string `json:"memo,omitempty"`
}

type queryCall struct {
	query  string
	limit  int
	offset int
}

// fakeDriver replays a fixed sequence of pages and records each call.
type fakeDriver struct {
	pages []*dialect.Page
	calls []queryCall
	err   error
}

func (d *fakeDriver) Query(_ context.Context, query string, limit, offset int) (*dialect.Page, error) {
	d.calls = append(d.calls, queryCall{query: query, limit: limit, offset: offset})
	if d.err != nil {
		return nil, d.err
	}
	if len(d.calls) > len(d.pages) {
		return &dialect.Page{}, nil
	}
	return d.pages[len(d.calls)-1], nil
}

func (d *fakeDriver) Dialect() string { return dialect.SuiteQL }

func singlePage(items ...map[string]any) *fakeDriver {
	return &fakeDriver{pages: []*dialect.Page{{
		Items: items,
		Count: len(items),
	}}}
}

func TestClientOptions(t *testing.T) {
	drv := singlePage()
	c := NewClient(drv)
	assert.Equal(t, dialect.Driver(drv), c.Driver())

	c = NewClient(drv, DebugQueries())
	_, ok := c.Driver().(*dialect.DebugDriver)
	assert.True(t, ok)
}

func TestCollection(t *testing.T) {
	c := NewClient(singlePage())
	col := NewCollection[custRow](c, custSchema)
	assert.Same(t, custSchema, col.Entity())
	assert.NotNil(t, col.Select())
}

func TestRefUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Ref[empRow]
	}{
		{"object", `{"id":"7","first_name":"Jo"}`, Ref[empRow]{Value: &empRow{ID: "7", FirstName: "Jo"}}},
		{"string id", `"42"`, Ref[empRow]{ID: "42"}},
		{"numeric id", `42`, Ref[empRow]{ID: "42"}},
		{"null", `null`, Ref[empRow]{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Ref[empRow]
			require.NoError(t, json.Unmarshal([]byte(tt.in), &r))
			assert.Equal(t, tt.want, r)
		})
	}
}

func TestRefMarshal(t *testing.T) {
	b, err := json.Marshal(Ref[empRow]{ID: "42"})
	require.NoError(t, err)
	assert.JSONEq(t, `"42"`, string(b))

	b, err = json.Marshal(Ref[empRow]{Value: &empRow{ID: "7"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"7"}`, string(b))

	b, err = json.Marshal(Ref[empRow]{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

// makeRows builds n synthetic customer rows with distinct ids.
func makeRows(n, start int) []map[string]any {
	rows := make([]map[string]any, n)
	for i := range rows {
		rows[i] = map[string]any{"id": fmt.Sprint(start + i)}
	}
	return rows
}
