package handler

import (
	"fmt"
	"net/http"

	"github.com/wearcast/wearcast/internal/metrics"
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

	writeMetric(w, "wearcast_users_registered_total %d\n", snap.UsersRegistered)
	writeMetric(w, "wearcast_logins_total{status=\"success\"} %d\n", snap.LoginSuccesses)
	writeMetric(w, "wearcast_logins_total{status=\"failure\"} %d\n", snap.LoginFailures)

	writeMetric(w, "wearcast_items_created_total %d\n", snap.ItemsCreated)
	writeMetric(w, "wearcast_items_deleted_total %d\n", snap.ItemsDeleted)
	writeMetric(w, "wearcast_likes_added_total %d\n", snap.LikesAdded)
	writeMetric(w, "wearcast_likes_removed_total %d\n", snap.LikesRemoved)

	writeMetric(w, "wearcast_feed_cache_hits_total %d\n", snap.FeedCacheHits)
	writeMetric(w, "wearcast_feed_cache_misses_total %d\n", snap.FeedCacheMisses)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
