package field

import (
	"fmt"
	"time"

	"github.com/inhq/netsuite/dialect"
)

// Op is a comparison operator.
type Op int

// Comparison operators.
const (
	OpEQ Op = iota // =
	OpNEQ
	OpGT
	OpGTE
	OpLT
	OpLTE
	OpContains
	OpHasPrefix
	OpHasSuffix
	OpLike
)

var opNames = [...]string{
	OpEQ:        "eq",
	OpNEQ:       "neq",
	OpGT:        "gt",
	OpGTE:       "gte",
	OpLT:        "lt",
	OpLTE:       "lte",
	OpContains:  "contains",
	OpHasPrefix: "has_prefix",
	OpHasSuffix: "has_suffix",
	OpLike:      "like",
}

// String returns the canonical operator name.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// valueKind classifies a comparison literal for operator-token lookup.
// The REST dialect maps some operators differently per value type.
type valueKind int

const (
	kindNil valueKind = iota
	kindString
	kindBool
	kindDate
	kindNumber
	kindField // right-hand side is another field (join predicate)
)

func kindOf(v any) valueKind {
	switch v.(type) {
	case nil:
		return kindNil
	case string:
		return kindString
	case bool:
		return kindBool
	case time.Time:
		return kindDate
	case *Descriptor:
		return kindField
	default:
		return kindNumber
	}
}

// restOps maps (value kind, operator) to the REST filter token.
// Lookup falls back to restFallback when the kind has no entry.
var restOps = map[valueKind]map[Op]string{
	kindNil: {
		OpEQ:  "EMPTY",
		OpNEQ: "EMPTY_NOT",
	},
	kindString: {
		OpEQ:        "IS",
		OpNEQ:       "IS_NOT",
		OpHasPrefix: "START_WITH",
		OpHasSuffix: "END_WITH",
		OpContains:  "CONTAIN",
	},
	kindBool: {
		OpEQ:  "IS",
		OpNEQ: "IS_NOT",
	},
	kindDate: {
		OpEQ:  "ON",
		OpNEQ: "ON_NOT",
		OpGT:  "AFTER",
		OpGTE: "ON_OR_AFTER",
		OpLT:  "BEFORE",
		OpLTE: "ON_OR_BEFORE",
	},
}

// restFallback holds the REST tokens that apply regardless of value type.
var restFallback = map[Op]string{
	OpEQ:  "EQUAL",
	OpNEQ: "EQUAL_NOT",
}

// suiteqlOps maps operators to SuiteQL tokens. SuiteQL tokens do not
// vary by value type.
var suiteqlOps = map[Op]string{
	OpEQ:   "=",
	OpNEQ:  "!=",
	OpGT:   ">",
	OpGTE:  ">=",
	OpLT:   "<",
	OpLTE:  "<=",
	OpLike: "LIKE",
}

// opToken resolves the dialect token for the given operator and value.
// Resolution is two-level: value-type specific first, then the dialect
// fallback. A pair with no mapping is a hard error.
func opToken(d string, op Op, v any) (string, error) {
	switch d {
	case dialect.SuiteQL:
		// nil has no SuiteQL literal form; only the REST dialect
		// carries presence tests (EMPTY / EMPTY_NOT).
		if kindOf(v) == kindNil {
			break
		}
		if tok, ok := suiteqlOps[op]; ok {
			return tok, nil
		}
	case dialect.Rest:
		if tok, ok := restOps[kindOf(v)][op]; ok {
			return tok, nil
		}
		if tok, ok := restFallback[op]; ok {
			return tok, nil
		}
	default:
		return "", fmt.Errorf("field: unknown dialect %q", d)
	}
	return "", fmt.Errorf("field: %w: operator %s for %T value in %s dialect", ErrUnsupportedOperator, op, v, d)
}

// formatDate renders a date as month/day/year without zero padding,
// the literal form both dialects expect.
func formatDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// formatValue renders a comparison literal without surrounding quotes.
func formatValue(v any) string {
	switch v := v.(type) {
	case time.Time:
		return formatDate(v)
	case bool:
		// NetSuite stores booleans as T/F.
		if v {
			return "T"
		}
		return "F"
	default:
		return fmt.Sprintf("%v", v)
	}
}
