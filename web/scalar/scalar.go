// Package scalar serves the interactive API reference page. The page loads
// the Scalar UI and renders the OpenAPI document served at SpecURL.
package scalar

import (
	_ "embed"
	"net/http"
)

// SpecURL is the path of the OpenAPI document the page renders.
const SpecURL = "/api/openapi.json"

//go:embed index.html
var indexHTML []byte

func Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(indexHTML)
	}
}
