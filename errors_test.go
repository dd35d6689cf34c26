package netsuite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigurationError(t *testing.T) {
	inner := errors.New("no resolvable table")
	err := error(&ConfigurationError{Entity: "Customer", Err: inner})
	assert.EqualError(t, err, "netsuite: configuring Customer: no resolvable table")
	assert.ErrorIs(t, err, inner)
	assert.True(t, IsConfiguration(err))
	assert.False(t, IsConfiguration(nil))
	assert.False(t, IsConfiguration(inner))

	assert.EqualError(t, &ConfigurationError{Err: inner}, "netsuite: configuration: no resolvable table")
}

func TestUsageError(t *testing.T) {
	inner := errors.New("mixed conditions")
	err := error(&UsageError{Op: "where", Err: inner})
	assert.EqualError(t, err, "netsuite: where: mixed conditions")
	assert.ErrorIs(t, err, inner)
	assert.True(t, IsUsage(err))
	assert.False(t, IsUsage(inner))
}

func TestNotSingularError(t *testing.T) {
	err := error(&NotSingularError{Entity: "Customer"})
	assert.EqualError(t, err, "netsuite: Customer result not singular: server reports more rows")
	assert.ErrorIs(t, err, ErrNotSingular)
	assert.True(t, IsNotSingular(err))
	assert.True(t, IsNotSingular(ErrNotSingular))
	assert.False(t, IsNotSingular(errors.New("other")))
}

func TestDecodeError(t *testing.T) {
	inner := errors.New("unexpected column")
	row := map[string]any{"x": 1}
	err := error(&DecodeError{Entity: "Customer", Path: "x", Row: row, Err: inner})
	assert.Contains(t, err.Error(), `decoding Customer row at "x"`)
	assert.ErrorIs(t, err, inner)
	assert.True(t, IsDecode(err))
	assert.False(t, IsDecode(inner))
}
