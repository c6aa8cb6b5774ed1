package server

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Runtime modes. Development bypasses rate limiting and switches the
// logger to the console encoder.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config carries every runtime setting. Variable names match the
// original deployment environment so the service is a drop-in
// replacement there.
type Config struct {
	Host string `envconfig:"HOST" default:"127.0.0.1"`
	Port int    `envconfig:"PORT" default:"1337"`
	Env  string `envconfig:"APP_ENV" default:"production"`

	// Comma-separated origin allow-list; entries are trimmed.
	CORSOrigin string `envconfig:"CORS_ORIGIN" default:"http://localhost:3000"`

	RateLimitWindowMS    int `envconfig:"RATE_LIMIT_WINDOW_MS" default:"900000"`
	RateLimitMaxRequests int `envconfig:"RATE_LIMIT_MAX_REQUESTS" default:"100"`

	DatabaseHost     string `envconfig:"DATABASE_HOST" default:"localhost"`
	DatabasePort     int    `envconfig:"DATABASE_PORT" default:"5432"`
	DatabaseName     string `envconfig:"DATABASE_NAME" default:"adhesions"`
	DatabaseUsername string `envconfig:"DATABASE_USERNAME" default:"postgres"`
	DatabasePassword string `envconfig:"DATABASE_PASSWORD" default:""`
	DatabaseSSL      bool   `envconfig:"DATABASE_SSL" default:"false"`

	// bcrypt hash of the admin password, as produced by cmd/hashpass.
	AdminPasswordHash string `envconfig:"ADMIN_PASSWORD" default:""`
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func (c Config) DevMode() bool {
	return c.Env == EnvDevelopment
}

func (c Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowMS) * time.Millisecond
}

// AllowedOrigins splits CORS_ORIGIN on commas, trimming whitespace and
// dropping empty entries.
func (c Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSOrigin, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// DatabaseURL assembles a postgres:// DSN from the DATABASE_* settings.
func (c Config) DatabaseURL() string {
	sslmode := "disable"
	if c.DatabaseSSL {
		sslmode = "require"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DatabaseUsername, c.DatabasePassword),
		Host:     fmt.Sprintf("%s:%d", c.DatabaseHost, c.DatabasePort),
		Path:     c.DatabaseName,
		RawQuery: "sslmode=" + sslmode,
	}
	return u.String()
}
