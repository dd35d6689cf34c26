package netsuite

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/inhq/netsuite/schema"
	"github.com/inhq/netsuite/schema/field"
)

// shape is the per-query response shape: the exact columns the
// compiled query can return, plus one nested sub-shape per join keyed
// by the base-side carrier field. It lives only as long as the query
// execution that derived it.
type shape struct {
	entity   *schema.Entity
	wildcard bool
	cols     map[string]*field.Descriptor // query alias -> descriptor
	subs     map[string]*subShape         // carrier alias -> sub-shape
}

type subShape struct {
	carrier *field.Descriptor
	shape   *shape
}

func newShape(e *schema.Entity) *shape {
	return &shape{
		entity: e,
		cols:   make(map[string]*field.Descriptor),
		subs:   make(map[string]*subShape),
	}
}

// decode rehydrates one flat, dot-qualified row into a nested record
// keyed by canonical attribute names. Unknown columns follow the
// caller's extra-field policy: rejected, ignored, or kept untyped in
// the returned extras map.
func (sh *shape) decode(row map[string]any, policy Policy) (map[string]any, map[string]any, error) {
	record := make(map[string]any, len(row))
	var extras map[string]any
	keep := func(key string, v any) error {
		switch {
		case sh.wildcard, policy == PolicyAllow:
			if extras == nil {
				extras = make(map[string]any)
			}
			extras[key] = v
		case policy == PolicyForbid:
			return &DecodeError{
				Entity: sh.entity.Name(),
				Path:   key,
				Row:    row,
				Err:    fmt.Errorf("unexpected column %q", key),
			}
		}
		return nil
	}
	for key, value := range row {
		name, attr, dotted := strings.Cut(key, ".")
		if !dotted {
			desc, ok := sh.cols[strings.ToLower(key)]
			if !ok {
				if err := keep(key, value); err != nil {
					return nil, nil, err
				}
				continue
			}
			record[desc.Name()] = value
			continue
		}
		sub, ok := sh.subs[strings.ToLower(name)]
		if !ok {
			if err := keep(key, value); err != nil {
				return nil, nil, err
			}
			continue
		}
		nested, _ := record[sub.carrier.Name()].(map[string]any)
		if nested == nil {
			nested = make(map[string]any)
			record[sub.carrier.Name()] = nested
		}
		desc, ok := sub.shape.cols[strings.ToLower(attr)]
		if !ok {
			if err := keep(key, value); err != nil {
				return nil, nil, err
			}
			continue
		}
		nested[desc.Name()] = value
	}
	return record, extras, nil
}

// decodeItem converts a decoded record into the caller's item type.
func decodeItem[T any](entity string, record map[string]any, row map[string]any) (T, error) {
	var item T
	raw, err := json.Marshal(record)
	if err != nil {
		return item, &DecodeError{Entity: entity, Row: row, Err: err}
	}
	if err := json.Unmarshal(raw, &item); err != nil {
		return item, &DecodeError{Entity: entity, Row: row, Err: err}
	}
	return item, nil
}
