package middleware_test

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/task-manager/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(r.URL.Path))
}

func TestSystem_AppliesInRegistrationOrder(t *testing.T) {
	var order []string
	tag := func(name string) middleware.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	sys := middleware.New()
	sys.Use(tag("outer"))
	sys.Use(tag("inner"))

	h := sys.Apply(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestSystem_Empty(t *testing.T) {
	h := middleware.New().Apply(http.HandlerFunc(ok))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/tasks", nil))

	assert.Equal(t, "/tasks", rec.Body.String())
}

func TestLogger_GeneratesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	h := middleware.Logger(logger)(http.HandlerFunc(ok))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/tasks?x=1", nil))

	id := rec.Header().Get(middleware.RequestIDHeader)
	require.NotEmpty(t, id)
	assert.Contains(t, buf.String(), "id="+id)
	assert.Contains(t, buf.String(), "method=GET")
	assert.Contains(t, buf.String(), "uri=\"/tasks?x=1\"")
	assert.Contains(t, buf.String(), "status=200")
}

func TestLogger_ReusesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	h := middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest("DELETE", "/tasks/1", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(middleware.RequestIDHeader))
	assert.Contains(t, buf.String(), "id=abc-123")
	assert.Contains(t, buf.String(), "status=404")
}

func TestMaxBytes(t *testing.T) {
	var readErr error
	h := middleware.MaxBytes(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/", strings.NewReader(`{"a":1}`)))
	assert.NoError(t, readErr)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/", strings.NewReader(`{"title":"too long"}`)))
	var tooLarge *http.MaxBytesError
	assert.ErrorAs(t, readErr, &tooLarge)
}

func TestMaxBytes_Disabled(t *testing.T) {
	next := http.HandlerFunc(ok)
	h := middleware.MaxBytes(0)(next)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/x", strings.NewReader(strings.Repeat("a", 1<<16))))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTrimSlash(t *testing.T) {
	h := middleware.TrimSlash()(http.HandlerFunc(ok))

	tests := []struct {
		name     string
		method   string
		target   string
		status   int
		location string
		body     string
	}{
		{"root untouched", "GET", "/", 200, "", "/"},
		{"no slash", "GET", "/tasks", 200, "", "/tasks"},
		{"get redirects", "GET", "/tasks/", 301, "/tasks", ""},
		{"query kept", "GET", "/tasks/?a=1", 301, "/tasks?a=1", ""},
		{"post rewritten", "POST", "/tasks/", 200, "", "/tasks"},
		{"patch rewritten", "PATCH", "/tasks/abc//", 200, "", "/tasks/abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.status, rec.Code)
			if tt.location != "" {
				assert.Equal(t, tt.location, rec.Header().Get("Location"))
			}
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}
