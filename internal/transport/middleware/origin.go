package middleware

import (
	"net/http"

	"github.com/heartmarshall/accountaudit/internal/origin"
	"github.com/heartmarshall/accountaudit/pkg/ctxutil"
)

// ClientOrigin resolves the client's network origin once per request and
// stores it in the context for handlers and the request logger.
func ClientOrigin() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxutil.WithOrigin(r.Context(), origin.FromRequest(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
