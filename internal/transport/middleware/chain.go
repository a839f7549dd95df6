package middleware

import "net/http"

// Middleware wraps an http.Handler with pre/post behaviour.
type Middleware func(http.Handler) http.Handler

// Chain composes middleware so the first argument runs outermost:
// Chain(a, b)(h) serves a(b(h)).
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		wrapped := h
		for i := len(mws) - 1; i >= 0; i-- {
			wrapped = mws[i](wrapped)
		}
		return wrapped
	}
}
