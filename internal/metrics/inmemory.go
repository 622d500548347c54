package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersRegistered uint64
	LoginSuccesses  uint64
	LoginFailures   uint64
	ItemsCreated    uint64
	ItemsDeleted    uint64
	LikesAdded      uint64
	LikesRemoved    uint64
	FeedCacheHits   uint64
	FeedCacheMisses uint64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	usersRegistered uint64
	loginSuccesses  uint64
	loginFailures   uint64
	itemsCreated    uint64
	itemsDeleted    uint64
	likesAdded      uint64
	likesRemoved    uint64
	feedCacheHits   uint64
	feedCacheMisses uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersRegistered: atomic.LoadUint64(&m.usersRegistered),
		LoginSuccesses:  atomic.LoadUint64(&m.loginSuccesses),
		LoginFailures:   atomic.LoadUint64(&m.loginFailures),
		ItemsCreated:    atomic.LoadUint64(&m.itemsCreated),
		ItemsDeleted:    atomic.LoadUint64(&m.itemsDeleted),
		LikesAdded:      atomic.LoadUint64(&m.likesAdded),
		LikesRemoved:    atomic.LoadUint64(&m.likesRemoved),
		FeedCacheHits:   atomic.LoadUint64(&m.feedCacheHits),
		FeedCacheMisses: atomic.LoadUint64(&m.feedCacheMisses),
	}
}

// IncUserRegistered increments the registration counter.
func (m *InMemoryRecorder) IncUserRegistered() {
	atomic.AddUint64(&m.usersRegistered, 1)
}

// IncLoginSuccess increments the successful login counter.
func (m *InMemoryRecorder) IncLoginSuccess() {
	atomic.AddUint64(&m.loginSuccesses, 1)
}

// IncLoginFailure increments the failed login counter.
func (m *InMemoryRecorder) IncLoginFailure() {
	atomic.AddUint64(&m.loginFailures, 1)
}

// IncItemCreated increments the item created counter.
func (m *InMemoryRecorder) IncItemCreated() {
	atomic.AddUint64(&m.itemsCreated, 1)
}

// IncItemDeleted increments the item deleted counter.
func (m *InMemoryRecorder) IncItemDeleted() {
	atomic.AddUint64(&m.itemsDeleted, 1)
}

// IncLikeAdded increments the like counter.
func (m *InMemoryRecorder) IncLikeAdded() {
	atomic.AddUint64(&m.likesAdded, 1)
}

// IncLikeRemoved increments the unlike counter.
func (m *InMemoryRecorder) IncLikeRemoved() {
	atomic.AddUint64(&m.likesRemoved, 1)
}

// IncFeedCacheHit increments the feed cache hit counter.
func (m *InMemoryRecorder) IncFeedCacheHit() {
	atomic.AddUint64(&m.feedCacheHits, 1)
}

// IncFeedCacheMiss increments the feed cache miss counter.
func (m *InMemoryRecorder) IncFeedCacheMiss() {
	atomic.AddUint64(&m.feedCacheMisses, 1)
}
