package netsuite

import (
	"context"
	"errors"
	"fmt"

	"github.com/inhq/netsuite/dialect"
	"github.com/inhq/netsuite/schema"
	"github.com/inhq/netsuite/schema/field"
)

// MaxPageSize is the upper bound the query service accepts for a
// single page.
const MaxPageSize = 1000

// Policy decides how columns outside the requested response shape are
// treated when decoding rows. It is passed explicitly on every
// terminal call; there is no hidden default.
type Policy int

const (
	// PolicyIgnore silently drops unknown columns.
	PolicyIgnore Policy = iota
	// PolicyAllow keeps unknown columns, untyped, in Result.Extras.
	PolicyAllow
	// PolicyForbid fails the page when a row carries unknown columns.
	PolicyForbid
)

// JoinKind is the join operation kind.
type JoinKind string

// Join kinds.
const (
	JoinOuter JoinKind = "OUTER"
	JoinInner JoinKind = "INNER"
	JoinCross JoinKind = "CROSS"
)

// JoinDirection is the join direction.
type JoinDirection string

// Join directions.
const (
	JoinLeft  JoinDirection = "LEFT"
	JoinRight JoinDirection = "RIGHT"
)

// JoinOption configures a single join.
type JoinOption func(*joinSpec)

// WithJoinKind sets the join kind. The default is OUTER.
func WithJoinKind(k JoinKind) JoinOption {
	return func(j *joinSpec) { j.kind = k }
}

// WithJoinDirection sets the join direction. The default is LEFT.
func WithJoinDirection(d JoinDirection) JoinOption {
	return func(j *joinSpec) { j.dir = d }
}

// joinSpec is one resolved join: the base-side field (owned by the
// selected entity), the joined-side field, and the join semantics.
type joinSpec struct {
	base   *field.Descriptor
	joined *field.Descriptor
	kind   JoinKind
	dir    JoinDirection
}

// Result is one logical, fully materialized result set aggregated
// across pages. Offset is 0 and Count equals len(Items) when the
// server was exhausted; HasMore stays true when a max-results bound
// stopped the fetch early.
type Result[T any] struct {
	Items []T
	// Extras holds, per row, the untyped unknown columns kept under
	// PolicyAllow. It is nil under the other policies.
	Extras       []map[string]any
	Count        int
	HasMore      bool
	Offset       int
	TotalResults int
	// Query is the compiled query text, kept for diagnostics.
	Query string
}

// queryState accumulates the builder's state across stages. It is
// exclusively owned by the call stack that created it and must not be
// shared across concurrent operations.
type queryState[T any] struct {
	entity   *schema.Entity
	drv      dialect.Driver
	cols     []*field.Descriptor
	joins    []joinSpec
	where    field.Expr
	err      error
	executed bool
}

// SelectStep is the initial builder stage: column selection is fixed,
// joins and a where clause may still be added.
type SelectStep[T any] struct{ s *queryState[T] }

// JoinStep is the builder stage after one or more joins: more joins or
// a where clause may be added.
type JoinStep[T any] struct{ s *queryState[T] }

// WhereStep is the builder stage after the where clause: only the
// terminal calls remain.
type WhereStep[T any] struct{ s *queryState[T] }

// NewSelect starts a query against the given entity. Columns may be
// field descriptors (individual columns) or entities (all their
// columns). With no columns the response covers the whole entity.
func NewSelect[T any](e *schema.Entity, drv dialect.Driver, cols ...any) *SelectStep[T] {
	s := &queryState[T]{entity: e, drv: drv}
	for _, c := range cols {
		switch c := c.(type) {
		case *field.Descriptor:
			s.cols = append(s.cols, c)
		case *schema.Entity:
			s.cols = append(s.cols, c.Fields()...)
		default:
			s.fail(&UsageError{Op: "select", Err: fmt.Errorf("invalid column type %T", c)})
		}
	}
	return &SelectStep[T]{s}
}

func (s *queryState[T]) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// join resolves which side of the predicate belongs to the selected
// entity and records the join.
func (s *queryState[T]) join(pred *field.Comparison, opts ...JoinOption) {
	if s.executed {
		s.fail(&UsageError{Op: "join", Err: errors.New("query was already executed; builders are single use")})
		return
	}
	j := joinSpec{kind: JoinOuter, dir: JoinLeft}
	for _, opt := range opts {
		opt(&j)
	}
	rhs, ok := pred.RHS()
	if !ok {
		s.fail(&UsageError{Op: "join", Err: fmt.Errorf("join predicate must compare two fields, got %T", pred.Value())})
		return
	}
	lhs := pred.Field()
	switch {
	case lhs.Owner() != nil && s.entity.DescendsFrom(lhs.Owner()):
		j.base, j.joined = lhs, rhs
	case rhs.Owner() != nil && s.entity.DescendsFrom(rhs.Owner()):
		j.base, j.joined = rhs, lhs
	default:
		s.fail(&ConfigurationError{
			Entity: s.entity.Name(),
			Err:    fmt.Errorf("join predicate does not reference %s", s.entity.Name()),
		})
		return
	}
	s.joins = append(s.joins, j)
}

// whereConds validates the condition list: comparisons are combined
// with AND, a compound expression must stand alone.
func (s *queryState[T]) whereConds(conds []field.Expr) {
	if s.executed {
		s.fail(&UsageError{Op: "where", Err: errors.New("query was already executed; builders are single use")})
		return
	}
	if len(conds) == 0 {
		s.fail(&UsageError{Op: "where", Err: errors.New("at least one condition is required")})
		return
	}
	comparisons := true
	for _, c := range conds {
		if _, ok := c.(*field.Comparison); !ok {
			comparisons = false
			break
		}
	}
	switch {
	case comparisons && len(conds) == 1:
		s.where = conds[0]
	case comparisons:
		s.where = field.And(conds...)
	case len(conds) == 1:
		if err := field.Err(conds[0]); err != nil {
			s.fail(&UsageError{Op: "where", Err: err})
			return
		}
		s.where = conds[0]
	default:
		s.fail(&UsageError{
			Op:  "where",
			Err: fmt.Errorf("%w: use nested combinators instead", field.ErrMixedConditions),
		})
	}
}

// Join adds a join derived from a field-to-field comparison. The side
// owned by the selected entity becomes the base of the join.
func (q *SelectStep[T]) Join(pred *field.Comparison, opts ...JoinOption) *JoinStep[T] {
	q.s.join(pred, opts...)
	return &JoinStep[T]{q.s}
}

// Where fixes the query's logical filter.
func (q *SelectStep[T]) Where(conds ...field.Expr) *WhereStep[T] {
	q.s.whereConds(conds)
	return &WhereStep[T]{q.s}
}

// Join adds another join.
func (q *JoinStep[T]) Join(pred *field.Comparison, opts ...JoinOption) *JoinStep[T] {
	q.s.join(pred, opts...)
	return q
}

// Where fixes the query's logical filter.
func (q *JoinStep[T]) Where(conds ...field.Expr) *WhereStep[T] {
	q.s.whereConds(conds)
	return &WhereStep[T]{q.s}
}

// All executes the query and exhausts pagination.
func (q *SelectStep[T]) All(ctx context.Context, policy Policy) (*Result[T], error) {
	return q.s.exec(ctx, MaxPageSize, 0, policy)
}

// Limit executes the query bounded to at most n results. n must be
// positive.
func (q *SelectStep[T]) Limit(ctx context.Context, n int, policy Policy) (*Result[T], error) {
	return q.s.limit(ctx, n, policy)
}

// First executes the query and returns the first result, or nil when
// there is none.
func (q *SelectStep[T]) First(ctx context.Context, policy Policy) (*T, error) {
	return q.s.first(ctx, policy)
}

// One executes the query asserting at most one result exists. It
// returns a NotSingularError when the server reports more rows, and
// nil when there is none.
func (q *SelectStep[T]) One(ctx context.Context, policy Policy) (*T, error) {
	return q.s.one(ctx, policy)
}

// All executes the query and exhausts pagination.
func (q *JoinStep[T]) All(ctx context.Context, policy Policy) (*Result[T], error) {
	return q.s.exec(ctx, MaxPageSize, 0, policy)
}

// Limit executes the query bounded to at most n results.
func (q *JoinStep[T]) Limit(ctx context.Context, n int, policy Policy) (*Result[T], error) {
	return q.s.limit(ctx, n, policy)
}

// First executes the query and returns the first result, or nil when
// there is none.
func (q *JoinStep[T]) First(ctx context.Context, policy Policy) (*T, error) {
	return q.s.first(ctx, policy)
}

// One executes the query asserting at most one result exists.
func (q *JoinStep[T]) One(ctx context.Context, policy Policy) (*T, error) {
	return q.s.one(ctx, policy)
}

// All executes the query and exhausts pagination.
func (q *WhereStep[T]) All(ctx context.Context, policy Policy) (*Result[T], error) {
	return q.s.exec(ctx, MaxPageSize, 0, policy)
}

// Limit executes the query bounded to at most n results.
func (q *WhereStep[T]) Limit(ctx context.Context, n int, policy Policy) (*Result[T], error) {
	return q.s.limit(ctx, n, policy)
}

// First executes the query and returns the first result, or nil when
// there is none.
func (q *WhereStep[T]) First(ctx context.Context, policy Policy) (*T, error) {
	return q.s.first(ctx, policy)
}

// One executes the query asserting at most one result exists.
func (q *WhereStep[T]) One(ctx context.Context, policy Policy) (*T, error) {
	return q.s.one(ctx, policy)
}

func (s *queryState[T]) limit(ctx context.Context, n int, policy Policy) (*Result[T], error) {
	if n <= 0 {
		return nil, &UsageError{Op: "limit", Err: fmt.Errorf("limit must be positive, got %d", n)}
	}
	if n > MaxPageSize {
		n = MaxPageSize
	}
	return s.exec(ctx, n, n, policy)
}

func (s *queryState[T]) first(ctx context.Context, policy Policy) (*T, error) {
	res, err := s.exec(ctx, 1, 1, policy)
	if err != nil {
		return nil, err
	}
	if len(res.Items) == 0 {
		return nil, nil
	}
	return &res.Items[0], nil
}

func (s *queryState[T]) one(ctx context.Context, policy Policy) (*T, error) {
	res, err := s.exec(ctx, 1, 1, policy)
	if err != nil {
		return nil, err
	}
	if res.HasMore {
		return nil, &NotSingularError{Entity: s.entity.Name()}
	}
	if len(res.Items) == 0 {
		return nil, nil
	}
	return &res.Items[0], nil
}

// exec compiles the query, then drives the pagination loop: pages are
// fetched sequentially in increasing offset order, each page's rows
// decoded into the derived response shape and appended until the
// server reports no more pages or maxResults has been reached.
func (s *queryState[T]) exec(ctx context.Context, limit, maxResults int, policy Policy) (*Result[T], error) {
	if s.executed {
		return nil, &UsageError{Op: "exec", Err: errors.New("query was already executed; builders are single use")}
	}
	s.executed = true
	if s.err != nil {
		return nil, s.err
	}
	query, sh, err := compileQuery(s.entity, s.cols, s.joins, s.where, policy)
	if err != nil {
		return nil, err
	}
	var (
		items  []T
		extras []map[string]any
		page   *dialect.Page
		offset int
	)
	for {
		page, err = s.drv.Query(ctx, query, limit, offset)
		if err != nil {
			return nil, err
		}
		for _, row := range page.Items {
			record, extra, err := sh.decode(row, policy)
			if err != nil {
				return nil, err
			}
			item, err := decodeItem[T](s.entity.Name(), record, row)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
			if policy == PolicyAllow {
				extras = append(extras, extra)
			}
		}
		offset += limit
		if !page.HasMore || (maxResults > 0 && offset >= maxResults) {
			break
		}
	}
	res := &Result[T]{
		Items:        items,
		Extras:       extras,
		Count:        len(items),
		HasMore:      page.HasMore,
		Offset:       page.Offset,
		TotalResults: page.TotalResults,
		Query:        query,
	}
	if !page.HasMore {
		res.Offset = 0
	}
	return res, nil
}

// RestFilter renders a REST record-filter string (the q= parameter)
// from the given conditions, under the same homogeneity rule as Where.
func RestFilter(conds ...field.Expr) (string, error) {
	if len(conds) == 0 {
		return "", &UsageError{Op: "find", Err: errors.New("at least one condition is required")}
	}
	comparisons := true
	for _, c := range conds {
		if _, ok := c.(*field.Comparison); !ok {
			comparisons = false
			break
		}
	}
	var expr field.Expr
	switch {
	case comparisons && len(conds) == 1:
		expr = conds[0]
	case comparisons:
		expr = field.And(conds...)
	case len(conds) == 1:
		expr = conds[0]
	default:
		return "", &UsageError{Op: "find", Err: fmt.Errorf("%w: use nested combinators instead", field.ErrMixedConditions)}
	}
	if err := field.Err(expr); err != nil {
		return "", &UsageError{Op: "find", Err: err}
	}
	out, err := expr.Rest()
	if err != nil {
		return "", &ConfigurationError{Err: err}
	}
	return out, nil
}
