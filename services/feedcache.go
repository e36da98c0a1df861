package services

import (
	"sync/atomic"
	"time"
)

// FeedSnapshot is one successful feed query result, replaced whole on every
// refresh so readers never observe a partially written value.
type FeedSnapshot struct {
	Data      interface{}
	FetchedAt time.Time
}

// FeedCache holds the last successful result of a single feed query. It is
// not a lookaside cache: every request still hits the store, and the
// snapshot is served only when the live query fails (degraded mode). It is
// never proactively invalidated.
type FeedCache struct {
	snap atomic.Pointer[FeedSnapshot]
}

func NewFeedCache() *FeedCache {
	return &FeedCache{}
}

// Store replaces the snapshot with a fresh result.
func (fc *FeedCache) Store(data interface{}) {
	fc.snap.Store(&FeedSnapshot{
		Data:      data,
		FetchedAt: time.Now(),
	})
}

// Last returns the most recent snapshot, if any fetch has ever succeeded.
func (fc *FeedCache) Last() (*FeedSnapshot, bool) {
	s := fc.snap.Load()
	return s, s != nil
}
