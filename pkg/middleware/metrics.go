package middleware

import (
	"net/http"
	"time"

	"github.com/JaimeStill/task-manager/pkg/metrics"
)

// Metrics returns middleware that records each request against the route
// pattern matched by the inner ServeMux.
func Metrics(m *metrics.HTTP) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			done := m.Track()
			defer done()

			start := time.Now()
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)
			m.Observe(r.Method, r.Pattern, rec.status, time.Since(start))
		})
	}
}
