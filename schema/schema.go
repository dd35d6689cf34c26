// Package schema provides entity registration for the NetSuite query
// engine. An Entity is a named record type backed by a remote table;
// its fields are declared once with the field package and referenced
// through the entity's registry afterwards.
package schema

import (
	"fmt"
	"strings"

	"github.com/inhq/netsuite/schema/field"
)

// Entity is a named record type with a fixed set of attributes, backed
// by one remote table. Entities may derive from another entity, in
// which case they inherit its fields and, by default, its table.
type Entity struct {
	name   string
	table  string // override; empty means the lowercased root name
	parent *Entity
	fields []*field.Descriptor
	index  map[string]*field.Descriptor
}

// New registers an entity with the given fields. It panics on
// registration errors (duplicate or rebound fields): entities are
// declared at package init and a broken declaration cannot be used.
func New(name string, fields ...*field.Descriptor) *Entity {
	e := &Entity{
		name:  name,
		index: make(map[string]*field.Descriptor, len(fields)),
	}
	for _, f := range fields {
		e.add(f)
	}
	return e
}

func (e *Entity) add(f *field.Descriptor) {
	if err := f.Err(); err != nil {
		panic(fmt.Sprintf("schema: entity %s: %v", e.name, err))
	}
	if _, ok := e.index[f.Name()]; ok {
		panic(fmt.Sprintf("schema: entity %s: duplicate field %q", e.name, f.Name()))
	}
	if err := f.Bind(e); err != nil {
		panic(fmt.Sprintf("schema: entity %s: %v", e.name, err))
	}
	e.fields = append(e.fields, f)
	e.index[f.Name()] = f
}

// Derive registers a new entity inheriting this entity's fields. The
// derived entity resolves to the same table unless overridden, and is
// matched by field references declared on any of its ancestors.
func (e *Entity) Derive(name string, extra ...*field.Descriptor) *Entity {
	d := &Entity{
		name:   name,
		parent: e,
		index:  make(map[string]*field.Descriptor, len(e.fields)+len(extra)),
	}
	for _, f := range e.fields {
		d.add(f.Clone())
	}
	for _, f := range extra {
		d.add(f)
	}
	return d
}

// Table overrides the backing table name. Without an override the
// table is the lowercased name of the root entity in the derivation
// chain.
func (e *Entity) Table(name string) *Entity {
	e.table = name
	return e
}

// Name returns the entity name.
func (e *Entity) Name() string { return e.name }

// QueryTable returns the backing table name for the query dialect.
func (e *Entity) QueryTable() string {
	if e.table != "" {
		return e.table
	}
	if e.parent != nil {
		return e.parent.QueryTable()
	}
	return strings.ToLower(e.name)
}

// DescendsFrom reports whether the entity is o or derives from o.
func (e *Entity) DescendsFrom(o field.Owner) bool {
	for cur := e; cur != nil; cur = cur.parent {
		if field.Owner(cur) == o {
			return true
		}
	}
	return false
}

// F returns the descriptor for the named attribute. An unknown name
// yields an invalid descriptor whose error surfaces at compile time,
// before any network call.
func (e *Entity) F(name string) *field.Descriptor {
	if f, ok := e.index[name]; ok {
		return f
	}
	return field.Invalid(e.name, name)
}

// Fields returns all field descriptors in declaration order.
func (e *Entity) Fields() []*field.Descriptor { return e.fields }

// QueryFields returns the descriptors that participate in the query
// dialect: base fields and query-service-only fields, in declaration
// order.
func (e *Entity) QueryFields() []*field.Descriptor {
	fields := make([]*field.Descriptor, 0, len(e.fields))
	for _, f := range e.fields {
		if f.Context() == field.ContextBase || f.Context() == field.ContextQL {
			fields = append(fields, f)
		}
	}
	return fields
}

// Discriminators returns one equals-comparison per fixed-value field.
// They are folded into every compiled query's where clause so only
// rows of this entity's subtype match within a shared table.
func (e *Entity) Discriminators() []*field.Comparison {
	var conds []*field.Comparison
	for _, f := range e.fields {
		if f.IsDiscriminator() {
			conds = append(conds, f.EQ(f.FixedValue()))
		}
	}
	return conds
}

var _ field.Owner = (*Entity)(nil)
