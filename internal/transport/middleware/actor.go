package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/accountaudit/internal/auth"
	"github.com/heartmarshall/accountaudit/pkg/ctxutil"
)

// RequireActor returns middleware that resolves the bearer credential into
// an account ID with authenticator. Requests without a usable credential are
// rejected with 401 before reaching next.
func RequireActor(authenticator auth.ActorAuthenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential, ok := bearerCredential(r)
			if !ok {
				writeError(w, http.StatusUnauthorized, "Authorization header is required")
				return
			}

			actorID, err := authenticator.Authenticate(credential)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Invalid authorization credential")
				return
			}

			if h, ok := r.Context().Value(actorHolderKey{}).(*actorHolder); ok {
				h.id, h.set = actorID, true
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithActorID(r.Context(), actorID)))
		})
	}
}

// bearerCredential extracts the value after "Bearer " in the Authorization
// header. The scheme is matched case-insensitively.
func bearerCredential(r *http.Request) (string, bool) {
	h := r.Header.Get("Authorization")
	scheme, value, found := strings.Cut(h, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

// actorHolder lets RequireActor report the actor back to the outer Logger,
// whose request context is not the one RequireActor extends.
type actorHolder struct {
	id  uuid.UUID
	set bool
}

type actorHolderKey struct{}

func withActorHolder(ctx context.Context, h *actorHolder) context.Context {
	return context.WithValue(ctx, actorHolderKey{}, h)
}
