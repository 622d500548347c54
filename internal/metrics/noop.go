package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserRegistered is a no-op.
func (n *NoopRecorder) IncUserRegistered() {}

// IncLoginSuccess is a no-op.
func (n *NoopRecorder) IncLoginSuccess() {}

// IncLoginFailure is a no-op.
func (n *NoopRecorder) IncLoginFailure() {}

// IncItemCreated is a no-op.
func (n *NoopRecorder) IncItemCreated() {}

// IncItemDeleted is a no-op.
func (n *NoopRecorder) IncItemDeleted() {}

// IncLikeAdded is a no-op.
func (n *NoopRecorder) IncLikeAdded() {}

// IncLikeRemoved is a no-op.
func (n *NoopRecorder) IncLikeRemoved() {}

// IncFeedCacheHit is a no-op.
func (n *NoopRecorder) IncFeedCacheHit() {}

// IncFeedCacheMiss is a no-op.
func (n *NoopRecorder) IncFeedCacheMiss() {}
