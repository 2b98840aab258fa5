package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/task-manager/pkg/metrics"
	"github.com/JaimeStill/task-manager/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_LabelsByPattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewHTTP(reg, "test")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	h := middleware.Metrics(m)(mux)

	for _, path := range []string{"/tasks/a", "/tasks/b", "/nowhere"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", path, nil))
	}

	expected := `
# HELP test_http_requests_total Total number of HTTP requests handled
# TYPE test_http_requests_total counter
test_http_requests_total{method="GET",route="GET /tasks/{id}",status="404"} 2
test_http_requests_total{method="GET",route="unmatched",status="404"} 1
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, testutil.CollectAndCount(reg, "test_http_request_duration_seconds"))
}

func TestMetrics_TracksInFlight(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewHTTP(reg, "test")

	var during float64
	h := middleware.Metrics(m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		during = gaugeValue(t, reg, "test_http_requests_in_flight")
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("BREW", "/coffee", nil))

	assert.Equal(t, 1.0, during)
	assert.Equal(t, 0.0, gaugeValue(t, reg, "test_http_requests_in_flight"))

	expected := `
# HELP test_http_requests_total Total number of HTTP requests handled
# TYPE test_http_requests_total counter
test_http_requests_total{method="OTHER",route="unmatched",status="200"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_http_requests_total"))
}

func gaugeValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			return mf.GetMetric()[0].GetGauge().GetValue()
		}
	}
	t.Fatalf("metric %s not gathered", name)
	return 0
}
