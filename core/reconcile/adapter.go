package reconcile

import "context"

// Adapter defines how to load both sides of a reconciliation for one model.
type Adapter interface {
	// Name returns the unique name of this adapter (e.g. "catalog").
	Name() string

	// LoadReferences returns every object key referenced by the database,
	// mapped to the ids of the referencing rows. Rows without a key are skipped.
	LoadReferences(ctx context.Context) (map[string][]string, error)

	// LoadStorageSet lists the stored objects and returns their keys.
	// Implementations should list once and avoid per-object HEAD calls.
	LoadStorageSet(ctx context.Context) (map[string]struct{}, error)
}
