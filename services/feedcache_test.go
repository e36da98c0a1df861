package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedCache_EmptyUntilFirstStore(t *testing.T) {
	fc := NewFeedCache()

	_, ok := fc.Last()
	assert.False(t, ok, "a cache with no successful fetch has nothing to serve")
}

func TestFeedCache_ServesLastSuccessfulResult(t *testing.T) {
	fc := NewFeedCache()

	first := []string{"electrician", "plumber"}
	fc.Store(first)

	snap, ok := fc.Last()
	assert.True(t, ok)
	assert.Equal(t, first, snap.Data)
	assert.False(t, snap.FetchedAt.IsZero())

	// A later fetch replaces the snapshot whole.
	second := []string{"carpenter"}
	fc.Store(second)

	snap, ok = fc.Last()
	assert.True(t, ok)
	assert.Equal(t, second, snap.Data)
}

func TestFeedCache_ConcurrentReplacementsNeverTear(t *testing.T) {
	fc := NewFeedCache()
	fc.Store([]int{0, 0})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			fc.Store([]int{n, n})
		}(i)
		go func() {
			defer wg.Done()
			snap, ok := fc.Last()
			if !ok {
				t.Error("snapshot disappeared")
				return
			}
			pair := snap.Data.([]int)
			if pair[0] != pair[1] {
				t.Errorf("torn snapshot observed: %v", pair)
			}
		}()
	}
	wg.Wait()
}
