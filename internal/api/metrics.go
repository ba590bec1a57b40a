package api

import (
	"net/http"

	"github.com/VictoriaMetrics/metrics"
)

// MetricsHandler renders the metrics in set in Prometheus text format.
// Process metrics are appended when withProcess is set.
func MetricsHandler(set *metrics.Set, withProcess bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		set.WritePrometheus(w)
		if withProcess {
			metrics.WriteProcessMetrics(w)
		}
	}
}

// NewMetricsMux returns a mux serving /metrics.
func NewMetricsMux(set *metrics.Set) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(set, true))
	return mux
}
