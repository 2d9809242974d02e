// Package reconcile compares the object keys a database references with the
// objects actually present in storage.
//
// An Adapter loads two indices: the referenced keys (each with the ids of the
// rows that reference it) and the set of keys present in storage. Both are
// loaded concurrently, then the engine builds the union of keys and reports,
// per key, which side has it.
//
// # Caching
//
// Listing a bucket is slow, so snapshots can be cached per adapter with a TTL.
// Concurrent rebuilds of the same snapshot are collapsed with singleflight.
//
//	cache := reconcile.NewCache()
//	spec := &reconcile.Spec{Adapter: adapter, CacheTTL: 5 * time.Minute}
//
//	report, err := reconcile.ReconcileAll(ctx, spec, cache)
//	result, err := reconcile.ReconcileOne(ctx, spec, cache, "cards/1700000000000.png")
package reconcile
