package middleware

import (
	"fmt"
	"net/http"

	"github.com/VictoriaMetrics/metrics"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Metrics counts completed requests per method and status class.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			name := fmt.Sprintf(`http_requests_total{method=%q,status=%q}`, r.Method, statusClass(status))
			metrics.GetOrCreateCounter(name).Inc()
		})
	}
}

// MetricsHandler serves the accumulated counters in Prometheus text format.
func MetricsHandler(w http.ResponseWriter, r *http.Request) {
	metrics.WritePrometheus(w, true)
}

func statusClass(status int) string {
	return fmt.Sprintf("%dxx", status/100)
}
