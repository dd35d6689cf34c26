package field

import (
	"fmt"
	"strings"

	"github.com/inhq/netsuite/dialect"
)

// Expr is a logical expression that renders to either dialect.
// Rendering is purely structural and deferred until compile time.
type Expr interface {
	// SuiteQL renders the expression as query-service text.
	SuiteQL() (string, error)

	// Rest renders the expression as a REST record-filter string.
	Rest() (string, error)
}

// Comparison is a single (field, operator, literal-or-field) leaf.
// When the right-hand side is another field descriptor the comparison
// is a join predicate rather than a value predicate.
type Comparison struct {
	field *Descriptor
	value any
	op    Op
}

// Field returns the left-hand side descriptor.
func (c *Comparison) Field() *Descriptor { return c.field }

// Value returns the right-hand side literal or descriptor.
func (c *Comparison) Value() any { return c.value }

// Op returns the comparison operator.
func (c *Comparison) Op() Op { return c.op }

// RHS returns the right-hand side descriptor when the comparison is a
// join predicate.
func (c *Comparison) RHS() (*Descriptor, bool) {
	d, ok := c.value.(*Descriptor)
	return d, ok
}

func (c *Comparison) err() error {
	if c.field.err != nil {
		return c.field.err
	}
	if d, ok := c.RHS(); ok && d.err != nil {
		return d.err
	}
	return nil
}

// SuiteQL renders the comparison as "<table>.<alias> <op> '<literal>'".
func (c *Comparison) SuiteQL() (string, error) {
	if err := c.err(); err != nil {
		return "", err
	}
	lhs, err := c.field.Qualified()
	if err != nil {
		return "", err
	}
	tok, err := opToken(dialect.SuiteQL, c.op, c.value)
	if err != nil {
		return "", err
	}
	if d, ok := c.RHS(); ok {
		rhs, err := d.Qualified()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s %s", lhs, tok, rhs), nil
	}
	return fmt.Sprintf("%s %s '%s'", lhs, tok, formatValue(c.value)), nil
}

// Rest renders the comparison as `<alias> <OP> "<literal>"`. Presence
// operators (nil equals/not-equals) emit no literal.
func (c *Comparison) Rest() (string, error) {
	if err := c.err(); err != nil {
		return "", err
	}
	tok, err := opToken(dialect.Rest, c.op, c.value)
	if err != nil {
		return "", err
	}
	alias := c.field.RestAlias()
	if c.value == nil {
		return fmt.Sprintf("%s %s", alias, tok), nil
	}
	return fmt.Sprintf("%s %s %q", alias, tok, formatValue(c.value)), nil
}

// group is a tree node combining expressions with one logical operator.
type group struct {
	op    string // "AND" or "OR"
	exprs []Expr
	err   error
}

// And combines same-kind conditions with AND. The conditions must be
// homogeneous: either all comparisons or a single compound expression.
// A mixed list is a usage error surfaced when the expression is
// rendered or executed; mixed logic requires explicit nesting.
func And(exprs ...Expr) Expr { return combine("AND", exprs) }

// Or combines same-kind conditions with OR under the same homogeneity
// rule as And.
func Or(exprs ...Expr) Expr { return combine("OR", exprs) }

// Merge combines already-validated expressions with AND. It is used by
// the compiler to fold entity discriminator predicates into a caller
// expression and intentionally skips the homogeneity rule applied to
// caller input.
func Merge(exprs ...Expr) Expr {
	if len(exprs) == 1 {
		return exprs[0]
	}
	return &group{op: "AND", exprs: exprs}
}

func combine(op string, exprs []Expr) Expr {
	if len(exprs) == 0 {
		return &group{op: op, err: fmt.Errorf("field: %s requires at least one condition", op)}
	}
	if err := homogeneous(exprs); err != nil {
		return &group{op: op, err: err}
	}
	return &group{op: op, exprs: exprs}
}

// homogeneous rejects condition lists mixing raw comparisons with
// compound nodes, or compound nodes of different operators.
func homogeneous(exprs []Expr) error {
	kind := func(e Expr) string {
		switch e := e.(type) {
		case *Comparison:
			return "comparison"
		case *group:
			return e.op
		default:
			return fmt.Sprintf("%T", e)
		}
	}
	first := kind(exprs[0])
	for _, e := range exprs[1:] {
		if k := kind(e); k != first {
			return fmt.Errorf("field: %w: got %s and %s", ErrMixedConditions, first, k)
		}
	}
	return nil
}

// Err returns the deferred construction error of a combinator result,
// or nil. It reports nil for expressions that are not groups.
func Err(e Expr) error {
	if g, ok := e.(*group); ok {
		return g.err
	}
	return nil
}

// SuiteQL renders the tree fully parenthesized, preserving child order.
func (g *group) SuiteQL() (string, error) { return g.render(Expr.SuiteQL) }

// Rest renders the tree fully parenthesized, preserving child order.
func (g *group) Rest() (string, error) { return g.render(Expr.Rest) }

func (g *group) render(render func(Expr) (string, error)) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	parts := make([]string, 0, len(g.exprs))
	for _, e := range g.exprs {
		s, err := render(e)
		if err != nil {
			return "", err
		}
		parts = append(parts, "("+s+")")
	}
	return strings.Join(parts, " "+g.op+" "), nil
}
