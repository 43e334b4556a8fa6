package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	TranslationCacheHits     uint64
	TranslationCacheMisses   uint64
	TranslationsPerformed    uint64
	TranslateDurationCount   uint64
	TranslateDurationTotalNs int64
	UsersRegistered          uint64
	LoginSuccesses           uint64
	LoginFailures            uint64
}

// InMemoryRecorder stores metrics in memory.
// Safe for concurrent use; counters are plain atomics.
type InMemoryRecorder struct {
	translationCacheHits     uint64
	translationCacheMisses   uint64
	translationsPerformed    uint64
	translateDurationCount   uint64
	translateDurationTotalNs int64
	usersRegistered          uint64
	loginSuccesses           uint64
	loginFailures            uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		TranslationCacheHits:     atomic.LoadUint64(&m.translationCacheHits),
		TranslationCacheMisses:   atomic.LoadUint64(&m.translationCacheMisses),
		TranslationsPerformed:    atomic.LoadUint64(&m.translationsPerformed),
		TranslateDurationCount:   atomic.LoadUint64(&m.translateDurationCount),
		TranslateDurationTotalNs: atomic.LoadInt64(&m.translateDurationTotalNs),
		UsersRegistered:          atomic.LoadUint64(&m.usersRegistered),
		LoginSuccesses:           atomic.LoadUint64(&m.loginSuccesses),
		LoginFailures:            atomic.LoadUint64(&m.loginFailures),
	}
}

// IncTranslationCacheHit increments the cache hit counter.
func (m *InMemoryRecorder) IncTranslationCacheHit() {
	atomic.AddUint64(&m.translationCacheHits, 1)
}

// IncTranslationCacheMiss increments the cache miss counter.
func (m *InMemoryRecorder) IncTranslationCacheMiss() {
	atomic.AddUint64(&m.translationCacheMisses, 1)
}

// IncTranslationPerformed increments the translations counter.
func (m *InMemoryRecorder) IncTranslationPerformed() {
	atomic.AddUint64(&m.translationsPerformed, 1)
}

// ObserveTranslateDuration records how long a translate request took.
func (m *InMemoryRecorder) ObserveTranslateDuration(duration time.Duration) {
	atomic.AddUint64(&m.translateDurationCount, 1)
	atomic.AddInt64(&m.translateDurationTotalNs, duration.Nanoseconds())
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

var _ Recorder = (*InMemoryRecorder)(nil)
var _ Snapshotter = (*InMemoryRecorder)(nil)
