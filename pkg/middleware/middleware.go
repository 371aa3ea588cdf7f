// Package middleware provides an ordered HTTP middleware stack and the
// middleware used by API modules: CORS, request logging, and request body
// limiting.
package middleware

import "net/http"

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Stack manages an ordered set of middleware. Middleware added first wraps
// outermost: Use(a), Use(b) applied to h yields a(b(h)).
type Stack struct {
	chain []Middleware
}

// NewStack creates an empty middleware Stack.
func NewStack() *Stack {
	return &Stack{}
}

// Use appends middleware to the stack.
func (s *Stack) Use(mw Middleware) {
	s.chain = append(s.chain, mw)
}

// Apply wraps handler with the stack's middleware.
func (s *Stack) Apply(handler http.Handler) http.Handler {
	for i := len(s.chain) - 1; i >= 0; i-- {
		handler = s.chain[i](handler)
	}
	return handler
}
