// Package dialect defines the query surfaces the engine can target and
// the transport contract it consumes.
//
// # Supported Dialects
//
// NetSuite exposes two query surfaces, each with its own operator
// tokens and alias-casing rules:
//
//	dialect.SuiteQL = "suiteql"  // SQL-like query service
//	dialect.Rest    = "rest"     // REST record filters
//
// # Driver Interface
//
// The engine consumes exactly one capability from its transport
// collaborator:
//
//	type Driver interface {
//	    Query(ctx context.Context, query string, limit, offset int) (*Page, error)
//	    Dialect() string
//	}
//
// Authentication, signing, retries and rate-limit handling belong to
// the Driver implementation and are opaque to the engine.
//
// # Debugging
//
// Drivers can be wrapped with Debug to log every outgoing query:
//
//	drv := dialect.Debug(suitetalk, slog.Default())
package dialect
