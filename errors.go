package netsuite

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common operations.
var (
	// ErrNotSingular is returned when a query that allows at most one
	// result is told by the server that more rows exist.
	ErrNotSingular = errors.New("netsuite: result not singular")
)

// ConfigurationError reports a broken entity or field declaration:
// an unresolved table or alias, a missing owning entity, or an
// operator with no token for the requested dialect. It is detected at
// compile time, before any network call.
type ConfigurationError struct {
	Entity string // entity being queried
	Err    error  // underlying error
}

// Error returns the error string.
func (e *ConfigurationError) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("netsuite: configuring %s: %v", e.Entity, e.Err)
	}
	return fmt.Sprintf("netsuite: configuration: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigurationError) Unwrap() error { return e.Err }

// IsConfiguration returns true if the error is a ConfigurationError.
func IsConfiguration(err error) bool {
	if err == nil {
		return false
	}
	var e *ConfigurationError
	return errors.As(err, &e)
}

// UsageError reports an illegal use of the query surface: a
// heterogeneous condition list passed to one combinator, or a builder
// reused after execution. It is surfaced immediately and never
// silently coerced.
type UsageError struct {
	Op  string // operation that was misused (e.g. "where", "join")
	Err error  // underlying error
}

// Error returns the error string.
func (e *UsageError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("netsuite: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("netsuite: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *UsageError) Unwrap() error { return e.Err }

// IsUsage returns true if the error is a UsageError.
func IsUsage(err error) bool {
	if err == nil {
		return false
	}
	var e *UsageError
	return errors.As(err, &e)
}

// NotSingularError reports a protocol violation: the server claims
// more rows exist than a single-result call allows. It is distinct
// from "no data" so callers can tell absence from ambiguity apart.
type NotSingularError struct {
	Entity string // entity being queried
}

// Error returns the error string.
func (e *NotSingularError) Error() string {
	return fmt.Sprintf("netsuite: %s result not singular: server reports more rows", e.Entity)
}

// Is reports whether the target error matches NotSingularError.
// This allows errors.Is(err, ErrNotSingular) to return true.
func (e *NotSingularError) Is(err error) bool {
	return err == ErrNotSingular
}

// IsNotSingular returns true if the error is a NotSingularError.
func IsNotSingular(err error) bool {
	if err == nil {
		return false
	}
	var e *NotSingularError
	return errors.As(err, &e) || errors.Is(err, ErrNotSingular)
}

// DecodeError reports a row that does not fit the requested response
// shape under the active extra-field policy. It carries the offending
// row and field path for diagnostics and is fatal for its page; shape
// mismatches are never retried.
type DecodeError struct {
	Entity string         // entity being decoded
	Path   string         // dotted path of the offending column
	Row    map[string]any // the raw row that failed
	Err    error          // underlying error
}

// Error returns the error string.
func (e *DecodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("netsuite: decoding %s row at %q: %v (row=%v)", e.Entity, e.Path, e.Err, e.Row)
	}
	return fmt.Sprintf("netsuite: decoding %s row: %v (row=%v)", e.Entity, e.Err, e.Row)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error { return e.Err }

// IsDecode returns true if the error is a DecodeError.
func IsDecode(err error) bool {
	if err == nil {
		return false
	}
	var e *DecodeError
	return errors.As(err, &e)
}
