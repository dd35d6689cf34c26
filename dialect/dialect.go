package dialect

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Dialect names for the two query surfaces NetSuite exposes.
const (
	// SuiteQL is the SQL-like query service dialect.
	SuiteQL = "suiteql"
	// Rest is the REST record-filter dialect.
	Rest = "rest"
)

// Link is a HATEOAS link returned alongside collection pages.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// Page is one physical page of rows returned by the query service.
// Row keys are the column aliases requested by the compiled query;
// joined columns arrive dot-qualified (e.g. "salesrep.firstname").
type Page struct {
	Links        []Link           `json:"links,omitempty"`
	Items        []map[string]any `json:"items"`
	Count        int              `json:"count"`
	HasMore      bool             `json:"hasMore"`
	Offset       int              `json:"offset"`
	TotalResults int              `json:"totalResults"`
}

// Driver is the transport contract consumed by the query engine.
// Implementations own authentication, retries and rate limiting;
// the engine only hands them compiled query text and paging bounds.
type Driver interface {
	// Query executes the query text with the given paging window and
	// returns the resulting page of raw rows.
	Query(ctx context.Context, query string, limit, offset int) (*Page, error)

	// Dialect returns the name of the dialect the driver speaks.
	Dialect() string
}

// DebugDriver is a driver that logs all driver operations.
type DebugDriver struct {
	Driver              // underlying driver.
	log    *slog.Logger // log used for logging.
}

// Debug gets a driver and a logger, and returns a new debugged-driver
// that prints all outgoing queries.
func Debug(d Driver, log *slog.Logger) *DebugDriver {
	if log == nil {
		log = slog.Default()
	}
	return &DebugDriver{d, log}
}

// Query logs its params and calls the underlying driver Query method.
func (d *DebugDriver) Query(ctx context.Context, query string, limit, offset int) (*Page, error) {
	id := uuid.NewString()
	start := time.Now()
	d.log.DebugContext(ctx, "driver.Query",
		slog.String("id", id),
		slog.String("query", query),
		slog.Int("limit", limit),
		slog.Int("offset", offset),
	)
	page, err := d.Driver.Query(ctx, query, limit, offset)
	if err != nil {
		d.log.ErrorContext(ctx, "driver.Query failed",
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	d.log.DebugContext(ctx, "driver.Query done",
		slog.String("id", id),
		slog.Int("count", page.Count),
		slog.Bool("hasMore", page.HasMore),
		slog.Duration("took", time.Since(start)),
	)
	return page, nil
}
