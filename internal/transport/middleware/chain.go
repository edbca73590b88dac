package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain folds middleware into one. The first argument ends up outermost,
// so Chain(RequestID, Recovery, Auth) assigns a request id before anything
// else runs and recovers panics from everything inside it.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}
