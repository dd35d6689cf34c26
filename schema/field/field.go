package field

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-openapi/inflect"
)

// Sentinel errors reported by the field algebra. They are detected
// before any network call is attempted.
var (
	// ErrUnsupportedOperator is returned when an operator has no token
	// mapping for the requested dialect and value type.
	ErrUnsupportedOperator = errors.New("unsupported operator")

	// ErrMixedConditions is returned when a single logical combinator
	// receives conditions of different kinds. Mixed logic requires
	// explicit nesting.
	ErrMixedConditions = errors.New("conditions must be of the same kind")

	// ErrUnboundField is returned when a field has no owning entity and
	// therefore no resolvable table.
	ErrUnboundField = errors.New("field is not bound to an entity")
)

// Owner is the entity a field belongs to. It is implemented by
// schema.Entity and resolved lazily so descriptors can be declared
// before their entity is registered.
type Owner interface {
	// Name returns the entity name.
	Name() string

	// QueryTable returns the backing table name for the query dialect.
	QueryTable() string

	// DescendsFrom reports whether the entity is o or derives from o.
	DescendsFrom(o Owner) bool
}

// A Kind describes the value domain of a field.
type Kind int

// Field kinds.
const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindDate
	KindRef // carries a joined sub-record
)

// Context restricts a field to one query surface. Base fields belong
// to both.
type Context int

const (
	ContextBase Context = iota
	ContextQL
	ContextRest
)

// Descriptor identifies one typed attribute of an entity: its
// canonical name, per-dialect aliases and, once registered, the owning
// entity used to resolve the physical table.
type Descriptor struct {
	name    string
	alias   string // native (REST) alias; derived from name when empty
	aliasQL string // query-service alias override
	kind    Kind
	context Context
	fixed   any // discriminator literal, nil otherwise
	owner   Owner
	err     error
}

// String returns a string field descriptor.
func String(name string) *Descriptor { return newDescriptor(name, KindString) }

// Int returns an integer field descriptor.
func Int(name string) *Descriptor { return newDescriptor(name, KindInt) }

// Float returns a float field descriptor.
func Float(name string) *Descriptor { return newDescriptor(name, KindFloat) }

// Bool returns a boolean field descriptor.
func Bool(name string) *Descriptor { return newDescriptor(name, KindBool) }

// Date returns a date field descriptor.
func Date(name string) *Descriptor { return newDescriptor(name, KindDate) }

// Ref returns a reference field descriptor. A reference field carries
// a joined entity's sub-record when its name is used as a join key.
func Ref(name string) *Descriptor { return newDescriptor(name, KindRef) }

// Invalid returns a descriptor representing a failed registry lookup.
// Any comparison built from it fails at compile time with err.
func Invalid(entity, name string) *Descriptor {
	return &Descriptor{
		name: name,
		err:  fmt.Errorf("field: entity %s has no field %q", entity, name),
	}
}

func newDescriptor(name string, kind Kind) *Descriptor {
	d := &Descriptor{name: name, kind: kind}
	if name == "" {
		d.err = errors.New("field: name cannot be empty")
	}
	return d
}

// Alias sets the native alias used by the REST dialect. When unset,
// the alias is the lowerCamel form of the canonical name.
func (d *Descriptor) Alias(alias string) *Descriptor {
	d.alias = alias
	return d
}

// QLAliasOverride sets a query-service alias that differs from the
// native alias (e.g. foreignAmountPaid for amount_paid).
func (d *Descriptor) QLAliasOverride(alias string) *Descriptor {
	d.aliasQL = alias
	return d
}

// QLOnly restricts the field to the query-service dialect.
func (d *Descriptor) QLOnly() *Descriptor {
	d.context = ContextQL
	return d
}

// RestOnly restricts the field to the REST dialect.
func (d *Descriptor) RestOnly() *Descriptor {
	d.context = ContextRest
	return d
}

// Fixed marks the field as a discriminator holding the given literal.
// Discriminator predicates are injected into every compiled query so
// only rows of the entity's own subtype match within a shared table.
func (d *Descriptor) Fixed(v any) *Descriptor {
	d.fixed = v
	return d
}

// Name returns the canonical attribute name.
func (d *Descriptor) Name() string { return d.name }

// Kind returns the field kind.
func (d *Descriptor) Kind() Kind { return d.kind }

// Context returns the dialect context the field belongs to.
func (d *Descriptor) Context() Context { return d.context }

// FixedValue returns the discriminator literal, or nil.
func (d *Descriptor) FixedValue() any { return d.fixed }

// IsDiscriminator reports whether the field holds a fixed literal.
func (d *Descriptor) IsDiscriminator() bool { return d.fixed != nil }

// Owner returns the owning entity, or nil before registration.
func (d *Descriptor) Owner() Owner { return d.owner }

// Err returns the descriptor's deferred error, if any.
func (d *Descriptor) Err() error { return d.err }

// Bind attaches the descriptor to its owning entity. A descriptor
// belongs to exactly one entity; rebinding is a registration error.
func (d *Descriptor) Bind(o Owner) error {
	if d.owner != nil && d.owner != o {
		return fmt.Errorf("field: %s.%s is already bound to %s", o.Name(), d.name, d.owner.Name())
	}
	d.owner = o
	return nil
}

// Clone returns an unbound copy of the descriptor. Used when a derived
// entity inherits its parent's fields.
func (d *Descriptor) Clone() *Descriptor {
	c := *d
	c.owner = nil
	return &c
}

// RestAlias returns the alias used by the REST dialect: the explicit
// native alias, or the lowerCamel form of the canonical name.
func (d *Descriptor) RestAlias() string {
	if d.alias != "" {
		return d.alias
	}
	return inflect.CamelizeDownFirst(d.name)
}

// QLAlias returns the alias used by the query-service dialect. The
// query service matches column aliases case-insensitively and reports
// them lowercased, so the alias is case-normalized here.
func (d *Descriptor) QLAlias() string {
	alias := d.aliasQL
	if alias == "" {
		alias = d.RestAlias()
	}
	return strings.ToLower(alias)
}

// Table returns the backing table of the owning entity. A field with
// no resolvable table is a configuration error.
func (d *Descriptor) Table() (string, error) {
	if d.err != nil {
		return "", d.err
	}
	if d.owner == nil {
		return "", fmt.Errorf("field: %q: %w", d.name, ErrUnboundField)
	}
	return d.owner.QueryTable(), nil
}

// Qualified returns the table-qualified query-service column
// reference, e.g. "customer.companyname".
func (d *Descriptor) Qualified() (string, error) {
	table, err := d.Table()
	if err != nil {
		return "", err
	}
	return table + "." + d.QLAlias(), nil
}

// EQ builds an equals comparison. A nil value renders as a presence
// test in the REST dialect.
func (d *Descriptor) EQ(v any) *Comparison { return d.compare(OpEQ, v) }

// NEQ builds a not-equals comparison.
func (d *Descriptor) NEQ(v any) *Comparison { return d.compare(OpNEQ, v) }

// GT builds a greater-than comparison.
func (d *Descriptor) GT(v any) *Comparison { return d.compare(OpGT, v) }

// GTE builds a greater-or-equal comparison.
func (d *Descriptor) GTE(v any) *Comparison { return d.compare(OpGTE, v) }

// LT builds a less-than comparison.
func (d *Descriptor) LT(v any) *Comparison { return d.compare(OpLT, v) }

// LTE builds a less-or-equal comparison.
func (d *Descriptor) LTE(v any) *Comparison { return d.compare(OpLTE, v) }

// Contains builds a substring comparison.
func (d *Descriptor) Contains(v string) *Comparison { return d.compare(OpContains, v) }

// HasPrefix builds a starts-with comparison.
func (d *Descriptor) HasPrefix(v string) *Comparison { return d.compare(OpHasPrefix, v) }

// HasSuffix builds an ends-with comparison.
func (d *Descriptor) HasSuffix(v string) *Comparison { return d.compare(OpHasSuffix, v) }

// Like builds a LIKE comparison for the query-service dialect.
func (d *Descriptor) Like(v string) *Comparison { return d.compare(OpLike, v) }

func (d *Descriptor) compare(op Op, v any) *Comparison {
	return &Comparison{field: d, value: v, op: op}
}
