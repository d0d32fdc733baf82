package realip

import (
	"context"
	"net/http"
)

// resolvedContextKey is used as a key for storing the resolution in the
// request context.
type resolvedContextKey struct{}

// Middleware resolves the client address once per request and stores the
// result in the request context for downstream handlers to read via
// FromContext.
func Middleware(resolver *Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			resolved := resolver.ResolveRequest(r)
			ctx := context.WithValue(r.Context(), resolvedContextKey{}, resolved)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext returns the resolution stored by Middleware. The second return
// value reports whether a resolution was present.
func FromContext(ctx context.Context) (Resolved, bool) {
	resolved, ok := ctx.Value(resolvedContextKey{}).(Resolved)
	return resolved, ok
}
