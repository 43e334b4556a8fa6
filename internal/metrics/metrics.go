// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Translation pipeline metrics
	IncTranslationCacheHit()
	IncTranslationCacheMiss()
	IncTranslationPerformed()
	ObserveTranslateDuration(duration time.Duration)

	// Account metrics
	IncUserRegistered()
	IncLoginSuccess()
	IncLoginFailure()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
