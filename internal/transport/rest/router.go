package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/accountaudit/internal/auth"
	"github.com/heartmarshall/accountaudit/internal/config"
	"github.com/heartmarshall/accountaudit/internal/transport/middleware"
)

// APIPrefixes are the path prefixes the account routes are mounted under.
var APIPrefixes = []string{"/api/auth", "/api"}

// RouterDeps holds everything NewRouter wires together.
type RouterDeps struct {
	Logger        *slog.Logger
	Auth          *AuthHandler
	Health        *HealthHandler
	Authenticator auth.ActorAuthenticator
	CORS          config.CORSConfig
}

// NewRouter builds the HTTP handler with routes and the global middleware
// chain.
func NewRouter(d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	requireActor := middleware.RequireActor(d.Authenticator)
	for _, p := range APIPrefixes {
		mux.HandleFunc("POST "+p+"/signup", d.Auth.Signup)
		mux.HandleFunc("POST "+p+"/login", d.Auth.Login)
		mux.HandleFunc("POST "+p+"/logout", d.Auth.Logout)
		mux.Handle("GET "+p+"/activities", requireActor(http.HandlerFunc(d.Auth.Activities)))
	}

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)

	return middleware.Chain(
		middleware.RequestID(),
		middleware.ClientOrigin(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
	)(mux)
}
