package reconcile

import (
	"context"
	"sort"
)

// ReconcileAll performs a full reconciliation.
// It builds (or reuses) a snapshot, computes the union of keys and returns a
// result for each key, sorted by key.
func ReconcileAll(ctx context.Context, spec *Spec, cache *Cache) (*Report, error) {
	snap, err := cache.GetOrBuild(ctx, spec)
	if err != nil {
		return nil, err
	}

	unionKeys := buildUnion(snap.References, snap.StorageSet)

	report := &Report{
		Adapter: spec.Adapter.Name(),
		Built:   snap.Built,
		Results: make([]Result, 0, len(unionKeys)),
	}
	for key := range unionKeys {
		result := buildResult(key, snap.References, snap.StorageSet)
		report.Results = append(report.Results, result)

		switch result.Status() {
		case StatusOK:
			report.Summary.Matched++
		case StatusMissing:
			report.Summary.MissingStorage++
		case StatusOrphaned:
			report.Summary.Orphaned++
		}
	}
	report.Summary.TotalKeys = len(report.Results)

	// Sort results by key for deterministic output
	sort.Slice(report.Results, func(i, j int) bool {
		return report.Results[i].Key < report.Results[j].Key
	})

	return report, nil
}

// ReconcileOne reports a single key from the snapshot.
// A key unknown to both sources yields a result with both flags false.
func ReconcileOne(ctx context.Context, spec *Spec, cache *Cache, key string) (*Result, error) {
	snap, err := cache.GetOrBuild(ctx, spec)
	if err != nil {
		return nil, err
	}

	result := buildResult(key, snap.References, snap.StorageSet)
	return &result, nil
}

// buildUnion creates a union of all keys from both sources.
func buildUnion(refs map[string][]string, storageSet map[string]struct{}) map[string]struct{} {
	union := make(map[string]struct{}, len(refs)+len(storageSet))
	for key := range refs {
		union[key] = struct{}{}
	}
	for key := range storageSet {
		union[key] = struct{}{}
	}
	return union
}

// buildResult creates a Result for a single key.
func buildResult(key string, refs map[string][]string, storageSet map[string]struct{}) Result {
	ids, referenced := refs[key]
	_, stored := storageSet[key]

	if ids == nil {
		ids = []string{}
	}
	return Result{
		Key:            key,
		Refs:           ids,
		Referenced:     referenced,
		StoragePresent: stored,
	}
}
