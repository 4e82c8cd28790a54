package config

import (
	"time"

	"github.com/heartmarshall/accountaudit/internal/domain"
)

// Operating modes.
const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// Actor authentication modes.
const (
	AuthModePassthrough = "passthrough"
	AuthModeJWT         = "jwt"
)

// Config is the root application configuration.
type Config struct {
	App      AppConfig      `yaml:"app"`
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Audit    AuditConfig    `yaml:"audit"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// AppConfig holds process-wide settings.
type AppConfig struct {
	Mode string `yaml:"mode" env:"APP_MODE" env-default:"production"`
}

// IsDevelopment reports whether internal error details may be exposed.
func (c AppConfig) IsDevelopment() bool { return c.Mode == ModeDevelopment }

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"5000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds credential and actor authentication settings.
type AuthConfig struct {
	Mode             string `yaml:"mode"               env:"AUTH_MODE"               env-default:"passthrough"`
	JWTSecret        string `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"`
	JWTIssuer        string `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"`
	PasswordHashCost int    `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
}

// AuditConfig holds audit trail settings.
type AuditConfig struct {
	// FatalActionsRaw lists actions whose failed audit write fails the request,
	// e.g. "LOGIN,LOGOUT". Empty means every failure is tolerated.
	FatalActionsRaw string `yaml:"fatal_actions" env:"AUDIT_FATAL_ACTIONS"`

	// FatalActions is parsed from FatalActionsRaw during validation.
	FatalActions []domain.Action `yaml:"-" env:"-"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
