package handler

import (
	"fmt"
	"net/http"

	"github.com/translata/translata/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "translata_translation_cache_hits_total %d\n", snap.TranslationCacheHits)
	writeMetric(w, "translata_translation_cache_misses_total %d\n", snap.TranslationCacheMisses)
	writeMetric(w, "translata_translations_total %d\n", snap.TranslationsPerformed)
	writeMetric(w, "translata_translate_duration_seconds_count %d\n", snap.TranslateDurationCount)
	writeMetric(w, "translata_translate_duration_seconds_sum %.6f\n", float64(snap.TranslateDurationTotalNs)/1e9)

	writeMetric(w, "translata_users_registered_total %d\n", snap.UsersRegistered)
	writeMetric(w, "translata_logins_total{status=\"success\"} %d\n", snap.LoginSuccesses)
	writeMetric(w, "translata_logins_total{status=\"failure\"} %d\n", snap.LoginFailures)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
