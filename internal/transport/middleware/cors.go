package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/accountaudit/internal/config"
)

// CORS answers preflights itself and decorates allowed cross-origin responses.
// A "*" entry allows any origin; without credentials it is answered with a
// literal "*", otherwise the request origin is echoed. The request ID header
// is exposed so browser clients can quote it.
func CORS(cfg config.CORSConfig) Middleware {
	origins := splitList(cfg.AllowedOrigins)
	methods := cfg.AllowedMethods
	headers := cfg.AllowedHeaders
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				if allowed, wildcard := matchOrigin(origin, origins); allowed {
					if wildcard && !cfg.AllowCredentials {
						w.Header().Set("Access-Control-Allow-Origin", "*")
					} else {
						w.Header().Set("Access-Control-Allow-Origin", origin)
						w.Header().Add("Vary", "Origin")
					}
					if cfg.AllowCredentials {
						w.Header().Set("Access-Control-Allow-Credentials", "true")
					}
					w.Header().Set("Access-Control-Expose-Headers", RequestIDHeader)
				}
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// matchOrigin reports whether origin is allowed and whether the match came
// from a wildcard entry.
func matchOrigin(origin string, allowed []string) (ok, wildcard bool) {
	for _, a := range allowed {
		if a == origin {
			return true, false
		}
	}
	for _, a := range allowed {
		if a == "*" {
			return true, true
		}
	}
	return false, false
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
