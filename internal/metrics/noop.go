package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncTranslationCacheHit is a no-op.
func (n *NoopRecorder) IncTranslationCacheHit() {}

// IncTranslationCacheMiss is a no-op.
func (n *NoopRecorder) IncTranslationCacheMiss() {}

// IncTranslationPerformed is a no-op.
func (n *NoopRecorder) IncTranslationPerformed() {}

// ObserveTranslateDuration is a no-op.
func (n *NoopRecorder) ObserveTranslateDuration(duration time.Duration) {}

// IncUserRegistered is a no-op.
func (n *NoopRecorder) IncUserRegistered() {}

// IncLoginSuccess is a no-op.
func (n *NoopRecorder) IncLoginSuccess() {}

// IncLoginFailure is a no-op.
func (n *NoopRecorder) IncLoginFailure() {}
