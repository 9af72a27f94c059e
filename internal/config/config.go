package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	Auth         AuthConfig         `yaml:"auth"`
	Enrichment   EnrichmentConfig   `yaml:"enrichment"`
	PublicLookup PublicLookupConfig `yaml:"public_lookup"`
	MediaProxy   MediaProxyConfig   `yaml:"media_proxy"`
	Log          LogConfig          `yaml:"log"`
	CORS         CORSConfig         `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
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
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"false"`
}

// AuthConfig holds JWT authentication settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"wordmemo"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"168h"`
	BcryptCost     int           `yaml:"bcrypt_cost"      env:"AUTH_BCRYPT_COST"      env-default:"10"`
}

// EnrichmentConfig holds settings for the external text-enrichment provider.
type EnrichmentConfig struct {
	APIKey  string        `yaml:"api_key" env:"ENRICHMENT_API_KEY"`
	BaseURL string        `yaml:"base_url" env:"ENRICHMENT_BASE_URL" env-default:"https://api.deepseek.com/v1/chat/completions"`
	Model   string        `yaml:"model"    env:"ENRICHMENT_MODEL"    env-default:"deepseek-chat"`
	Timeout time.Duration `yaml:"timeout"  env:"ENRICHMENT_TIMEOUT"  env-default:"15s"`
}

// PublicLookupConfig gates the unauthenticated lookup endpoint.
// Requests carrying SharedCode record counters against a fixed aggregate
// identity (created at startup); requests without it only probe.
type PublicLookupConfig struct {
	SharedCode        string `yaml:"shared_code"        env:"PUBLIC_LOOKUP_SHARED_CODE"`
	IdentityUsername  string `yaml:"identity_username"  env:"PUBLIC_LOOKUP_IDENTITY"       env-default:"public"`
	IdentityEmail     string `yaml:"identity_email"     env:"PUBLIC_LOOKUP_IDENTITY_EMAIL" env-default:"public@wordmemo.local"`
}

// MediaProxyConfig holds settings for the NCE asset passthrough proxy.
type MediaProxyConfig struct {
	BaseURL string        `yaml:"base_url" env:"MEDIA_PROXY_BASE_URL" env-default:"https://nce.ichochy.com"`
	Timeout time.Duration `yaml:"timeout"  env:"MEDIA_PROXY_TIMEOUT"  env-default:"30s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// EnrichmentEnabled reports whether the provider is configured.
// Without an API key every cache miss in automatic mode fails enrichment.
func (c EnrichmentConfig) EnrichmentEnabled() bool {
	return c.APIKey != ""
}
