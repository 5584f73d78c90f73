package status

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryCachesPointers(t *testing.T) {
	r := NewRegistry()
	c := r.Counter("hits")
	c.Add(3)
	assert.Same(t, c, r.Counter("hits"))
	assert.Equal(t, int64(3), r.Counter("hits").Load())

	g := r.Gauge("fps")
	g.Set(59.5)
	assert.Same(t, g, r.Gauge("fps"))
	assert.Equal(t, 2, r.Len())
}

func TestSnapshotSorted(t *testing.T) {
	r := NewRegistry()
	r.Gauge("tick_ms").Set(1.5)
	r.Counter("entities").Store(8)
	r.Counter("waves").Store(1)

	snap := r.Snapshot()
	require.Len(t, snap, 3)
	assert.Equal(t, []Metric{
		{Key: "entities", Value: 8},
		{Key: "tick_ms", Value: 1.5},
		{Key: "waves", Value: 1},
	}, snap)
}

func TestConcurrentCounters(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				r.Counter("shared").Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(8000), r.Counter("shared").Load())
}
