package metrics_test

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/task-manager/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTP_Observe(t *testing.T) {
	reg := metrics.NewRegistry()
	m := metrics.NewHTTP(reg, "tm")

	m.Observe("POST", "POST /tasks", 201, 15*time.Millisecond)
	m.Observe("GET", "", 404, time.Millisecond)

	rec := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	assert.Contains(t, body, `tm_http_requests_total{method="POST",route="POST /tasks",status="201"} 1`)
	assert.Contains(t, body, `route="unmatched"`)
	assert.Contains(t, body, "tm_http_request_duration_seconds_bucket")
	assert.True(t, strings.Contains(body, "go_goroutines"), "runtime collector missing")
}

func TestHTTP_ObserveCollapsesUnknownMethods(t *testing.T) {
	reg := metrics.NewRegistry()
	m := metrics.NewHTTP(reg, "tm")

	for _, method := range []string{"FOO", "BREW", "PROPFIND"} {
		m.Observe(method, "", 405, time.Millisecond)
	}
	m.Observe("DELETE", "", 404, time.Millisecond)

	expected := `
# HELP tm_http_requests_total Total number of HTTP requests handled
# TYPE tm_http_requests_total counter
tm_http_requests_total{method="DELETE",route="unmatched",status="404"} 1
tm_http_requests_total{method="OTHER",route="unmatched",status="405"} 3
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "tm_http_requests_total"))
}

func TestHTTP_Track(t *testing.T) {
	reg := metrics.NewRegistry()
	m := metrics.NewHTTP(reg, "tm")

	first := m.Track()
	second := m.Track()
	assertInFlight(t, reg, 2)

	first()
	second()
	assertInFlight(t, reg, 0)
}

func assertInFlight(t *testing.T, reg *prometheus.Registry, n int) {
	t.Helper()
	expected := fmt.Sprintf(`
# HELP tm_http_requests_in_flight Number of HTTP requests currently being served
# TYPE tm_http_requests_in_flight gauge
tm_http_requests_in_flight %d
`, n)
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "tm_http_requests_in_flight"))
}
