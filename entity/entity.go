// Package entity ships the built-in NetSuite record registrations and
// their row types. Each entity is declared once against the schema
// package; the matching struct carries json tags for the canonical
// attribute names so query results decode into it directly.
//
// Records that share the transaction table derive from the common
// Transaction registration and pin a fixed record type, so compiled
// queries only ever match rows of their own subtype.
package entity

import (
	"github.com/inhq/netsuite"
	"github.com/inhq/netsuite/schema"
	"github.com/inhq/netsuite/schema/field"
)

// Link is a HATEOAS link as returned by the REST record service.
type Link struct {
	Rel  string `json:"rel,omitempty"`
	Href string `json:"href,omitempty"`
}

// GenericItem is the minimal shape shared by every referenced record:
// an id, a display name and its links. Reference attributes resolve to
// it when no more specific type is registered.
type GenericItem struct {
	ID      string `json:"id,omitempty"`
	RefName string `json:"ref_name,omitempty"`
	Links   []Link `json:"links,omitempty"`
}

// GenericItemSchema registers the generic record shape.
var GenericItemSchema = schema.New("GenericItem",
	field.String("id"),
	field.String("ref_name").Alias("refName"),
)

// GenericItems returns the generic record collection for the given
// client.
func GenericItems(c *netsuite.Client) *netsuite.Collection[GenericItem] {
	return netsuite.NewCollection[GenericItem](c, GenericItemSchema)
}
