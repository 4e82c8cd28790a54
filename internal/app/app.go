package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	postgres "github.com/heartmarshall/accountaudit/internal/adapter/postgres"
	"github.com/heartmarshall/accountaudit/internal/adapter/postgres/account"
	"github.com/heartmarshall/accountaudit/internal/adapter/postgres/activity"
	"github.com/heartmarshall/accountaudit/internal/auth"
	"github.com/heartmarshall/accountaudit/internal/config"
	"github.com/heartmarshall/accountaudit/internal/password"
	"github.com/heartmarshall/accountaudit/internal/service/audit"
	authsvc "github.com/heartmarshall/accountaudit/internal/service/auth"
	"github.com/heartmarshall/accountaudit/internal/transport/rest"
)

// database is what the HTTP stack needs from the connection pool.
type database interface {
	postgres.Querier
	Ping(ctx context.Context) error
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires the services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("mode", cfg.App.Mode),
		slog.String("auth_mode", cfg.Auth.Mode),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	defer pool.Close()

	handler, err := NewHandler(cfg, logger, pool)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// NewHandler wires stores, services and transport into an http.Handler.
func NewHandler(cfg *config.Config, logger *slog.Logger, db database) (http.Handler, error) {
	policy, err := authsvc.PolicyFromActions(cfg.Audit.FatalActions)
	if err != nil {
		return nil, err
	}

	authenticator, err := newAuthenticator(cfg.Auth)
	if err != nil {
		return nil, err
	}

	svc := authsvc.NewService(
		logger,
		account.New(db),
		audit.NewLog(activity.New(db)),
		password.NewHasher(cfg.Auth.PasswordHashCost),
		policy,
	)

	return rest.NewRouter(rest.RouterDeps{
		Logger:        logger,
		Auth:          rest.NewAuthHandler(svc, logger, cfg.App.IsDevelopment()),
		Health:        rest.NewHealthHandler(db, BuildVersion()),
		Authenticator: authenticator,
		CORS:          cfg.CORS,
	}), nil
}

func newAuthenticator(cfg config.AuthConfig) (auth.ActorAuthenticator, error) {
	switch cfg.Mode {
	case config.AuthModePassthrough:
		return auth.PassthroughAuthenticator{}, nil
	case config.AuthModeJWT:
		return auth.NewJWTAuthenticator(cfg.JWTSecret, cfg.JWTIssuer), nil
	default:
		return nil, fmt.Errorf("unknown auth mode %q", cfg.Mode)
	}
}

// serve runs srv until ctx is done, then shuts it down gracefully within
// shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
