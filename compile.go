package netsuite

import (
	"errors"
	"fmt"
	"strings"

	"github.com/inhq/netsuite/schema"
	"github.com/inhq/netsuite/schema/field"
)

// compileQuery turns the accumulated builder state into query-service
// text and the response shape used to decode its rows. All
// configuration problems (unresolved tables, unsupported operators,
// unknown fields) surface here, before any network call.
func compileQuery(e *schema.Entity, cols []*field.Descriptor, joins []joinSpec, where field.Expr, policy Policy) (string, *shape, error) {
	for _, c := range cols {
		if err := c.Err(); err != nil {
			return "", nil, &ConfigurationError{Entity: e.Name(), Err: err}
		}
	}
	// Only a single join compiles today. Erroring out loudly beats
	// silently dropping the extra joins.
	if len(joins) > 1 {
		return "", nil, &UsageError{Op: "join", Err: errors.New("multiple joins are not supported")}
	}
	selectList, sh, err := compileColumns(e, cols, joins, policy)
	if err != nil {
		return "", nil, err
	}
	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(selectList)
	b.WriteString(" FROM ")
	b.WriteString(e.QueryTable())
	if len(joins) == 1 {
		clause, err := compileJoin(joins[0])
		if err != nil {
			return "", nil, &ConfigurationError{Entity: e.Name(), Err: err}
		}
		b.WriteString(clause)
	}
	whereClause, err := compileWhere(e, joins, where)
	if err != nil {
		return "", nil, err
	}
	b.WriteString(whereClause)
	return b.String(), sh, nil
}

// compileColumns builds the select list and the matching response
// shape. With no explicit columns, no joins and extras explicitly
// allowed it short-circuits to a wildcard, skipping enumeration.
func compileColumns(e *schema.Entity, cols []*field.Descriptor, joins []joinSpec, policy Policy) (string, *shape, error) {
	sh := newShape(e)
	if len(cols) == 0 && len(joins) == 0 && policy == PolicyAllow {
		sh.wildcard = true
		for _, f := range e.QueryFields() {
			sh.cols[f.QLAlias()] = f
		}
		return "*", sh, nil
	}
	var list []string
	// Base entity columns first; join-carrier fields become nested
	// sub-records instead of columns.
	for _, f := range e.QueryFields() {
		if len(cols) > 0 && !columnMatch(e, f, cols, joins) {
			continue
		}
		if carrierOf(f, joins) != nil {
			continue
		}
		qualified, err := f.Qualified()
		if err != nil {
			return "", nil, &ConfigurationError{Entity: e.Name(), Err: err}
		}
		list = append(list, fmt.Sprintf("%s AS %q", qualified, f.QLAlias()))
		sh.cols[f.QLAlias()] = f
	}
	// Joined entity columns, aliased with the carrier's name so the
	// dotted result keys rehydrate into a nested sub-record.
	for _, j := range joins {
		joined, err := joinedEntity(j)
		if err != nil {
			return "", nil, &ConfigurationError{Entity: e.Name(), Err: err}
		}
		sub := newShape(joined)
		for _, f := range joined.QueryFields() {
			if len(cols) > 0 && !columnMatch(joined, f, cols, joins) {
				continue
			}
			qualified, err := f.Qualified()
			if err != nil {
				return "", nil, &ConfigurationError{Entity: joined.Name(), Err: err}
			}
			list = append(list, fmt.Sprintf("%s AS %q", qualified, j.base.QLAlias()+"."+f.QLAlias()))
			sub.cols[f.QLAlias()] = f
		}
		sh.subs[j.base.QLAlias()] = &subShape{carrier: j.base, shape: sub}
	}
	if len(list) == 0 {
		return "", nil, &ConfigurationError{Entity: e.Name(), Err: errors.New("no columns resolved for query")}
	}
	return strings.Join(list, ", "), sh, nil
}

// columnMatch reports whether the attribute participates in the
// explicit column selection. Join-carrier fields always match.
// Matching is by exact (entity, name) identity, relaxed so a field
// declared on an ancestor entity matches the derived entity's
// attribute of the same name.
func columnMatch(e *schema.Entity, f *field.Descriptor, cols []*field.Descriptor, joins []joinSpec) bool {
	if carrierOf(f, joins) != nil {
		return true
	}
	for _, c := range cols {
		if c.Name() == f.Name() && c.Owner() != nil && e.DescendsFrom(c.Owner()) {
			return true
		}
	}
	return false
}

// carrierOf returns the join whose base-side field is f, if any.
func carrierOf(f *field.Descriptor, joins []joinSpec) *joinSpec {
	for i := range joins {
		if joins[i].base.Name() == f.Name() {
			return &joins[i]
		}
	}
	return nil
}

// joinedEntity resolves the entity on the joined side of a join.
func joinedEntity(j joinSpec) (*schema.Entity, error) {
	owner := j.joined.Owner()
	if owner == nil {
		return nil, fmt.Errorf("join field %q: %w", j.joined.Name(), field.ErrUnboundField)
	}
	e, ok := owner.(*schema.Entity)
	if !ok {
		return nil, fmt.Errorf("join field %q has unexpected owner %T", j.joined.Name(), owner)
	}
	return e, nil
}

// compileJoin renders the single supported join clause.
func compileJoin(j joinSpec) (string, error) {
	joinedCol, err := j.joined.Qualified()
	if err != nil {
		return "", err
	}
	baseCol, err := j.base.Qualified()
	if err != nil {
		return "", err
	}
	joinedTable, err := j.joined.Table()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(" %s %s JOIN %s ON %s = %s", j.dir, j.kind, joinedTable, joinedCol, baseCol), nil
}

// compileWhere merges the caller's expression with each participating
// entity's discriminator predicates using AND. The clause is omitted
// entirely when neither exists.
func compileWhere(e *schema.Entity, joins []joinSpec, where field.Expr) (string, error) {
	var discs []field.Expr
	for _, d := range e.Discriminators() {
		discs = append(discs, d)
	}
	for _, j := range joins {
		joined, err := joinedEntity(j)
		if err != nil {
			return "", &ConfigurationError{Entity: e.Name(), Err: err}
		}
		for _, d := range joined.Discriminators() {
			discs = append(discs, d)
		}
	}
	var expr field.Expr
	switch {
	case where != nil && len(discs) > 0:
		expr = field.Merge(append([]field.Expr{where}, discs...)...)
	case where != nil:
		expr = where
	case len(discs) > 0:
		expr = field.Merge(discs...)
	default:
		return "", nil
	}
	if err := field.Err(expr); err != nil {
		return "", &UsageError{Op: "where", Err: err}
	}
	text, err := expr.SuiteQL()
	if err != nil {
		if errors.Is(err, field.ErrMixedConditions) {
			return "", &UsageError{Op: "where", Err: err}
		}
		return "", &ConfigurationError{Entity: e.Name(), Err: err}
	}
	return " WHERE " + text, nil
}
