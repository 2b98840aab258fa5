// Package middleware provides composable HTTP middleware and a System that
// applies them in registration order.
package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// System collects middleware and applies it to a handler.
type System interface {
	Use(mw Middleware)
	Apply(handler http.Handler) http.Handler
}

type system struct {
	stack []Middleware
}

// New creates an empty middleware System.
func New() System {
	return &system{
		stack: []Middleware{},
	}
}

// Use appends mw to the stack. The first middleware registered is the
// outermost at request time.
func (s *system) Use(mw Middleware) {
	s.stack = append(s.stack, mw)
}

func (s *system) Apply(handler http.Handler) http.Handler {
	for i := len(s.stack) - 1; i >= 0; i-- {
		handler = s.stack[i](handler)
	}
	return handler
}
