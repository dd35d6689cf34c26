// Package netsuite implements a typed query engine for NetSuite's
// SuiteQL query service. Callers describe queries against registered
// entities with the field/comparison algebra, a staged builder
// compiles them into dialect text, and flat dot-qualified result rows
// are reconstituted into typed, nested records across paginated
// responses.
package netsuite

import (
	"encoding/json"
	"log/slog"

	"github.com/inhq/netsuite/dialect"
	"github.com/inhq/netsuite/schema"
)

// Client executes queries through a transport driver. It is safe for
// concurrent use: every builder it hands out is exclusively owned by
// its caller.
type Client struct {
	drv dialect.Driver
	log *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// DebugQueries wraps the driver so every outgoing query is logged.
func DebugQueries() Option {
	return func(c *Client) { c.drv = dialect.Debug(c.drv, c.log) }
}

// NewClient returns a client backed by the given driver.
func NewClient(drv dialect.Driver, opts ...Option) *Client {
	c := &Client{drv: drv, log: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Driver returns the underlying transport driver.
func (c *Client) Driver() dialect.Driver { return c.drv }

// Collection binds an entity registration to an item type and hands
// out query builders for it.
type Collection[T any] struct {
	client *Client
	entity *schema.Entity
}

// NewCollection returns a collection for the given entity whose query
// results decode into T.
func NewCollection[T any](c *Client, e *schema.Entity) *Collection[T] {
	return &Collection[T]{client: c, entity: e}
}

// Entity returns the collection's entity registration.
func (c *Collection[T]) Entity() *schema.Entity { return c.entity }

// Select starts a query. Columns may be field descriptors or entities;
// with none, the response covers the whole entity.
func (c *Collection[T]) Select(cols ...any) *SelectStep[T] {
	return NewSelect[T](c.entity, c.client.drv, cols...)
}

// Ref is a reference attribute value: a raw record id when the
// reference was not joined, or the joined sub-record when it was.
type Ref[T any] struct {
	ID    string
	Value *T
}

// UnmarshalJSON accepts a raw id (string or number) or a nested
// record object.
func (r *Ref[T]) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	switch b[0] {
	case '{':
		r.Value = new(T)
		return json.Unmarshal(b, r.Value)
	case '"':
		return json.Unmarshal(b, &r.ID)
	default:
		r.ID = string(b)
		return nil
	}
}

// MarshalJSON emits the joined record when present, the raw id
// otherwise.
func (r Ref[T]) MarshalJSON() ([]byte, error) {
	if r.Value != nil {
		return json.Marshal(r.Value)
	}
	if r.ID == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.ID)
}
