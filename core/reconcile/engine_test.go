package reconcile

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAdapter is a simple test adapter
type mockAdapter struct {
	refs            map[string][]string
	storageSet      map[string]struct{}
	refsLoadFunc    func(context.Context) (map[string][]string, error)
	storageLoadFunc func(context.Context) (map[string]struct{}, error)
	loads           atomic.Int32
}

func (m *mockAdapter) Name() string {
	return "mock"
}

func (m *mockAdapter) LoadReferences(ctx context.Context) (map[string][]string, error) {
	m.loads.Add(1)
	if m.refsLoadFunc != nil {
		return m.refsLoadFunc(ctx)
	}
	return m.refs, nil
}

func (m *mockAdapter) LoadStorageSet(ctx context.Context) (map[string]struct{}, error) {
	if m.storageLoadFunc != nil {
		return m.storageLoadFunc(ctx)
	}
	return m.storageSet, nil
}

func newMockAdapter() *mockAdapter {
	return &mockAdapter{
		refs: map[string][]string{
			"cards/a.png": {"1", "4"},
			"cards/b.png": {"2"},
		},
		storageSet: map[string]struct{}{
			"cards/b.png": {},
			"cards/c.png": {},
		},
	}
}

// TestBuildSnapshot_ErrorHandling tests that load errors from either side are returned.
func TestBuildSnapshot_ErrorHandling(t *testing.T) {
	tests := []struct {
		name       string
		refsErr    error
		storageErr error
		expectErr  string
	}{
		{name: "References load error", refsErr: fmt.Errorf("db error"), expectErr: "db error"},
		{name: "Storage load error", storageErr: fmt.Errorf("storage error"), expectErr: "storage error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := &mockAdapter{
				refsLoadFunc: func(ctx context.Context) (map[string][]string, error) {
					return map[string][]string{}, tt.refsErr
				},
				storageLoadFunc: func(ctx context.Context) (map[string]struct{}, error) {
					return map[string]struct{}{}, tt.storageErr
				},
			}

			_, err := BuildSnapshot(context.Background(), &Spec{Adapter: adapter})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectErr)
		})
	}
}

// TestReconcileAll_UnionKeys tests that the union of both sources is built correctly.
func TestReconcileAll_UnionKeys(t *testing.T) {
	spec := &Spec{Adapter: newMockAdapter()}

	report, err := ReconcileAll(context.Background(), spec, NewCache())
	require.NoError(t, err)

	assert.Equal(t, "mock", report.Adapter)
	require.Len(t, report.Results, 3)

	// Sorted by key
	assert.Equal(t, "cards/a.png", report.Results[0].Key)
	assert.Equal(t, "cards/b.png", report.Results[1].Key)
	assert.Equal(t, "cards/c.png", report.Results[2].Key)

	assert.Equal(t, StatusMissing, report.Results[0].Status())
	assert.Equal(t, []string{"1", "4"}, report.Results[0].Refs)
	assert.Equal(t, StatusOK, report.Results[1].Status())
	assert.Equal(t, StatusOrphaned, report.Results[2].Status())
	assert.Empty(t, report.Results[2].Refs)

	assert.Equal(t, Summary{TotalKeys: 3, Matched: 1, MissingStorage: 1, Orphaned: 1}, report.Summary)
}

func TestReconcileAll_Empty(t *testing.T) {
	adapter := &mockAdapter{refs: map[string][]string{}, storageSet: map[string]struct{}{}}

	report, err := ReconcileAll(context.Background(), &Spec{Adapter: adapter}, NewCache())
	require.NoError(t, err)
	assert.Empty(t, report.Results)
	assert.Equal(t, 0, report.Summary.TotalKeys)
}

func TestReconcileOne(t *testing.T) {
	spec := &Spec{Adapter: newMockAdapter()}
	cache := NewCache()

	tests := []struct {
		key        string
		referenced bool
		stored     bool
		status     string
	}{
		{"cards/a.png", true, false, StatusMissing},
		{"cards/b.png", true, true, StatusOK},
		{"cards/c.png", false, true, StatusOrphaned},
		{"cards/unknown.png", false, false, StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			result, err := ReconcileOne(context.Background(), spec, cache, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.key, result.Key)
			assert.Equal(t, tt.referenced, result.Referenced)
			assert.Equal(t, tt.stored, result.StoragePresent)
			assert.Equal(t, tt.status, result.Status())
		})
	}
}

func TestCache(t *testing.T) {
	t.Run("ReusesFreshSnapshot", func(t *testing.T) {
		adapter := newMockAdapter()
		spec := &Spec{Adapter: adapter, CacheTTL: time.Minute}
		cache := NewCache()

		for i := 0; i < 3; i++ {
			_, err := cache.GetOrBuild(context.Background(), spec)
			require.NoError(t, err)
		}
		assert.Equal(t, int32(1), adapter.loads.Load())

		cache.Invalidate(spec)
		_, err := cache.GetOrBuild(context.Background(), spec)
		require.NoError(t, err)
		assert.Equal(t, int32(2), adapter.loads.Load())
	})

	t.Run("ZeroTTLAlwaysRebuilds", func(t *testing.T) {
		adapter := newMockAdapter()
		spec := &Spec{Adapter: adapter}
		cache := NewCache()

		for i := 0; i < 3; i++ {
			_, err := cache.GetOrBuild(context.Background(), spec)
			require.NoError(t, err)
		}
		assert.Equal(t, int32(3), adapter.loads.Load())
	})

	t.Run("ConcurrentBuildsShareOneLoad", func(t *testing.T) {
		release := make(chan struct{})
		adapter := newMockAdapter()
		adapter.refsLoadFunc = func(ctx context.Context) (map[string][]string, error) {
			<-release
			return map[string][]string{}, nil
		}
		spec := &Spec{Adapter: adapter, CacheTTL: time.Minute}
		cache := NewCache()

		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := cache.GetOrBuild(context.Background(), spec)
				assert.NoError(t, err)
			}()
		}

		// Give the goroutines time to join the in-flight build
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), adapter.loads.Load())
	})

	t.Run("ErrorIsNotCached", func(t *testing.T) {
		fail := true
		adapter := newMockAdapter()
		adapter.storageLoadFunc = func(ctx context.Context) (map[string]struct{}, error) {
			if fail {
				return nil, fmt.Errorf("listing failed")
			}
			return map[string]struct{}{}, nil
		}
		spec := &Spec{Adapter: adapter, CacheTTL: time.Minute}
		cache := NewCache()

		_, err := cache.GetOrBuild(context.Background(), spec)
		require.Error(t, err)

		fail = false
		_, err = cache.GetOrBuild(context.Background(), spec)
		assert.NoError(t, err)
	})

	t.Run("Expiry", func(t *testing.T) {
		snap := &Snapshot{Built: time.Now().Add(-2 * time.Minute), TTL: time.Minute}
		assert.True(t, snap.IsExpired())
		snap.TTL = time.Hour
		assert.False(t, snap.IsExpired())
	})
}
