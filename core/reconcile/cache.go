package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Snapshot holds both indices loaded at one point in time.
type Snapshot struct {
	// References maps referenced object keys to the ids of the referencing rows.
	References map[string][]string

	// StorageSet is the set of object keys present in storage.
	StorageSet map[string]struct{}

	// Built is the timestamp when this snapshot was built.
	Built time.Time

	// TTL is the time-to-live for this snapshot.
	TTL time.Duration
}

// IsExpired returns true if this snapshot has expired based on its TTL.
func (s *Snapshot) IsExpired() bool {
	if s.TTL == 0 {
		return true // No caching
	}
	return time.Since(s.Built) > s.TTL
}

// Cache holds snapshots keyed by spec cache key.
type Cache struct {
	mu        sync.RWMutex
	snapshots map[string]*Snapshot
	sf        singleflight.Group
}

// NewCache creates an empty snapshot cache.
func NewCache() *Cache {
	return &Cache{snapshots: make(map[string]*Snapshot)}
}

// BuildSnapshot loads both indices concurrently.
// This function does NOT store the snapshot; use GetOrBuild for that.
func BuildSnapshot(ctx context.Context, spec *Spec) (*Snapshot, error) {
	var (
		refs       map[string][]string
		storageSet map[string]struct{}
		refsErr    error
		storageErr error
		wg         sync.WaitGroup
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		refs, refsErr = spec.Adapter.LoadReferences(ctx)
	}()

	go func() {
		defer wg.Done()
		storageSet, storageErr = spec.Adapter.LoadStorageSet(ctx)
	}()

	wg.Wait()

	if refsErr != nil {
		return nil, refsErr
	}
	if storageErr != nil {
		return nil, storageErr
	}

	return &Snapshot{
		References: refs,
		StorageSet: storageSet,
		Built:      time.Now(),
		TTL:        spec.CacheTTL,
	}, nil
}

// GetOrBuild returns the cached snapshot for spec, or builds a new one if it
// doesn't exist or has expired. Concurrent builds share one load.
func (c *Cache) GetOrBuild(ctx context.Context, spec *Spec) (*Snapshot, error) {
	cacheKey := spec.CacheKey()

	if snap := c.get(cacheKey); snap != nil && !snap.IsExpired() {
		return snap, nil
	}

	result, err, _ := c.sf.Do(cacheKey, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		if snap := c.get(cacheKey); snap != nil && !snap.IsExpired() {
			return snap, nil
		}

		snap, err := BuildSnapshot(ctx, spec)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.snapshots[cacheKey] = snap
		c.mu.Unlock()

		return snap, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Snapshot), nil
}

// Invalidate removes the snapshot for spec, forcing a rebuild.
func (c *Cache) Invalidate(spec *Spec) {
	c.mu.Lock()
	delete(c.snapshots, spec.CacheKey())
	c.mu.Unlock()
}

func (c *Cache) get(key string) *Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshots[key]
}
