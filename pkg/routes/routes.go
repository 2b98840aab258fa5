// Package routes provides deterministic HTTP route registration.
package routes

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/task-manager/pkg/openapi"
)

// ErrDuplicateRoute indicates two routes resolve to the same method and path
// shape. Wildcard names are ignored: "/tasks/{id}" and "/tasks/{taskId}" collide.
var ErrDuplicateRoute = errors.New("duplicate route")

// Register mounts every route of groups on mux beneath basePath and, when
// spec is non-nil, documents them. It fails on the first duplicate without
// registering it.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) error {
	seen := make(map[string]string)

	for _, group := range groups {
		if err := registerGroup(mux, basePath, group, seen); err != nil {
			return err
		}
		if spec != nil {
			group.AddToSpec(basePath, spec)
		}
	}
	return nil
}

func registerGroup(mux *http.ServeMux, parentPrefix string, group Group, seen map[string]string) error {
	prefix := parentPrefix + group.Prefix

	for _, route := range group.Routes {
		path := prefix + route.Pattern
		if path == "" {
			path = "/"
		}
		pattern := route.Method + " " + path

		key := route.Method + " " + shape(path)
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: %q conflicts with %q", ErrDuplicateRoute, pattern, prev)
		}
		seen[key] = pattern

		mux.HandleFunc(pattern, route.Handler)
	}

	for _, child := range group.Children {
		if err := registerGroup(mux, prefix, child, seen); err != nil {
			return err
		}
	}
	return nil
}

// shape replaces every wildcard name in path with an empty placeholder.
func shape(path string) string {
	var b strings.Builder
	for {
		open := strings.Index(path, "{")
		if open < 0 {
			b.WriteString(path)
			return b.String()
		}
		end := strings.Index(path[open:], "}")
		if end < 0 {
			b.WriteString(path)
			return b.String()
		}

		name := path[open+1 : open+end]
		b.WriteString(path[:open])
		switch {
		case name == "$":
			b.WriteString("{$}")
		case strings.HasSuffix(name, "..."):
			b.WriteString("{...}")
		default:
			b.WriteString("{}")
		}
		path = path[open+end+1:]
	}
}
