// Package config loads application configuration from environment variables.
// Each service builds its settings struct once at startup and passes it to
// collaborators explicitly; nothing in this package caches state globally.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// CommonSettings holds configuration shared by every service in this
// repository. Field tags map directly to environment variables; defaults
// cover local development so only secrets and the database URL are required.
type CommonSettings struct {
	ProjectName string `env:"PROJECT_NAME" envDefault:"specter"`
	ServiceName string `env:"SERVICE_NAME,required"`
	Version     string `env:"VERSION" envDefault:"0.1.0"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Debug       bool   `env:"DEBUG" envDefault:"false"`

	Port     string `env:"APP_PORT" envDefault:"8080"`
	RootPath string `env:"ROOT_PATH" envDefault:"/api/v1"`

	CORSOrigins []string `env:"BACKEND_CORS_ORIGINS" envSeparator:","`

	Database  DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

// DatabaseConfig controls the PostgreSQL connection pool. Retry settings
// smooth over transient startup races when the database container comes up
// alongside the service.
type DatabaseConfig struct {
	URL             string        `env:"DATABASE_URL,required"`
	MaxConns        int32         `env:"DB_MAX_CONNS" envDefault:"25"`
	MinConns        int32         `env:"DB_MIN_CONNS" envDefault:"2"`
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`
	RetryAttempts   int           `env:"DB_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval   time.Duration `env:"DB_RETRY_INTERVAL" envDefault:"2s"`
}

// IdentitySettings extends the common settings with everything the identity
// service needs to hash passwords and sign access tokens.
type IdentitySettings struct {
	CommonSettings

	SecretKey                string `env:"SECRET_KEY,required"`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"30"`
	BcryptCost               int    `env:"BCRYPT_COST" envDefault:"12"`
	RabbitURL                string `env:"RABBITMQ_URL"`
}

// GlobdocSettings extends the common settings for the document repository
// service. The secret key is only used to verify tokens issued by identity.
type GlobdocSettings struct {
	CommonSettings

	SecretKey      string        `env:"SECRET_KEY,required"`
	TenantCacheTTL time.Duration `env:"TENANT_CACHE_TTL" envDefault:"5m"`
}

// LoadIdentity reads identity service settings from the environment. A .env
// file is honoured when present; a missing file is not an error.
func LoadIdentity() (IdentitySettings, error) {
	_ = godotenv.Load()
	var cfg IdentitySettings
	if err := env.Parse(&cfg); err != nil {
		return IdentitySettings{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// LoadGlobdoc reads globdoc service settings from the environment.
func LoadGlobdoc() (GlobdocSettings, error) {
	_ = godotenv.Load()
	var cfg GlobdocSettings
	if err := env.Parse(&cfg); err != nil {
		return GlobdocSettings{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
