// Package health reports whether the service can do its job.
//
// Storage problems (missing configuration, unreachable or missing bucket)
// make the service unavailable and GET /health answers 503. Catalog schema
// problems only degrade it, since signed URLs still work without the database.
package health
