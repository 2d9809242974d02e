package reconcile

import "time"

// Result is the reconciliation output for a single object key.
type Result struct {
	// Key is the object key.
	Key string `json:"key"`

	// Refs holds the ids of the rows referencing the key.
	Refs []string `json:"refs"`

	// Referenced indicates whether any row references the key.
	Referenced bool `json:"referenced"`

	// StoragePresent indicates whether the object exists in storage.
	StoragePresent bool `json:"storage_present"`
}

// Status returns "ok", "missing" (referenced but not stored), "orphaned"
// (stored but not referenced) or "unknown" (neither).
func (r Result) Status() string {
	switch {
	case r.Referenced && r.StoragePresent:
		return StatusOK
	case r.Referenced:
		return StatusMissing
	case r.StoragePresent:
		return StatusOrphaned
	default:
		return StatusUnknown
	}
}

// Result statuses.
const (
	StatusOK       = "ok"
	StatusMissing  = "missing"
	StatusOrphaned = "orphaned"
	StatusUnknown  = "unknown"
)

// Summary provides aggregate counts.
type Summary struct {
	// TotalKeys is the number of unique keys across both sources.
	TotalKeys int `json:"total_keys"`

	// Matched counts keys present on both sides.
	Matched int `json:"matched"`

	// MissingStorage counts referenced keys with no stored object.
	MissingStorage int `json:"missing_storage"`

	// Orphaned counts stored objects no row references.
	Orphaned int `json:"orphaned"`
}

// Report is the result of a full reconciliation.
type Report struct {
	Adapter string    `json:"adapter"`
	Built   time.Time `json:"built"`
	Summary Summary   `json:"summary"`
	Results []Result  `json:"results"`
}

// Spec defines a reconciliation run.
type Spec struct {
	// Adapter loads both indices.
	Adapter Adapter

	// CacheTTL is the time-to-live for cached snapshots.
	// If zero, caching is disabled.
	CacheTTL time.Duration
}

// CacheKey returns the key under which snapshots of this spec are cached.
func (s *Spec) CacheKey() string {
	return s.Adapter.Name()
}
