package routes

import (
	"net/http"
	"strings"

	"github.com/JaimeStill/task-manager/pkg/openapi"
)

// Route represents an HTTP route with method, pattern, and handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}

// AddToSpec adds every documented route in the group, and its children,
// to spec. Routes without their own tags inherit the group tags.
func (g Group) AddToSpec(basePath string, spec *openapi.Spec) {
	prefix := basePath + g.Prefix
	for _, route := range g.Routes {
		if route.OpenAPI == nil {
			continue
		}

		op := route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = g.Tags
		}
		spec.AddOperation(specPath(prefix+route.Pattern), route.Method, op)
	}

	for _, child := range g.Children {
		child.AddToSpec(prefix, spec)
	}
}

// specPath converts a ServeMux path into its OpenAPI form.
func specPath(path string) string {
	path = strings.TrimSuffix(path, "{$}")
	path = strings.ReplaceAll(path, "...}", "}")
	if path == "" {
		return "/"
	}
	return path
}
