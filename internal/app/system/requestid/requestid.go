// Package requestid assigns every request an identifier, echoes it in the
// X-Request-ID response header, and makes it available to loggers.
package requestid

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Header is the header used to propagate request IDs.
const Header = "X-Request-ID"

type ctxKey struct{}

// Middleware keeps an incoming X-Request-ID or generates a UUID.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
	})
}

// FromContext returns the request ID, or "" outside the middleware.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
