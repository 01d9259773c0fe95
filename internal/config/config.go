package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates runtime configuration for the Sponsvisa API.
type Config struct {
	Server       ServerConfig
	Postgres     PostgresConfig
	Auth         AuthConfig
	Verification VerificationConfig
	SMTP         SMTPConfig
	Metrics      MetricsConfig
}

// ServerConfig parameterizes the HTTP server.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Address returns the listen address in host:port form.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// PostgresConfig contains PostgreSQL connection details.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN returns the PostgreSQL DSN string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Database, p.SSLMode)
}

// AuthConfig groups authentication-related settings. Access and refresh
// tokens use distinct secrets and TTLs so a leaked access token stays
// short-lived and refresh tokens can be invalidated independently.
type AuthConfig struct {
	AccessTokenSecret   string
	RefreshTokenSecret  string
	AccessTokenTTL      time.Duration
	RefreshTokenTTL     time.Duration
	BcryptCost          int
	AccessCookieMaxAge  time.Duration
	RefreshCookieMaxAge time.Duration
	CookieDomain        string
	CookieSecure        bool
}

// VerificationConfig groups email verification code settings.
type VerificationConfig struct {
	CodeAlphabet string
	CodeLength   int
	ExpireTime   time.Duration
}

// SMTPConfig carries outbound mail settings. An empty Host disables real
// delivery and routes mail to the log-only sender.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// MetricsConfig groups observability settings.
type MetricsConfig struct {
	PrometheusPath string
}

// Load reads configuration values from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host:         getString("SPONSVISA_API_HOST", "0.0.0.0"),
			Port:         getInt("SPONSVISA_API_PORT", 4000),
			ReadTimeout:  getDuration("SPONSVISA_API_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("SPONSVISA_API_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDuration("SPONSVISA_API_IDLE_TIMEOUT", 60*time.Second),
		},
		Postgres: PostgresConfig{
			Host:     getString("POSTGRES_HOST", "localhost"),
			Port:     getInt("POSTGRES_PORT", 5432),
			User:     getString("POSTGRES_USER", "sponsvisa_app"),
			Password: getString("POSTGRES_PASSWORD", "change-me"),
			Database: getString("POSTGRES_DB", "sponsvisa"),
			SSLMode:  strings.ToLower(getString("POSTGRES_SSL_MODE", "disable")),
		},
		Auth:         loadAuthConfig(),
		Verification: loadVerificationConfig(),
		SMTP: SMTPConfig{
			Host:     getString("EMAIL_HOST", ""),
			Port:     getInt("EMAIL_PORT", 465),
			Username: getString("EMAIL_USER", ""),
			Password: getString("EMAIL_PASSWORD", ""),
			From:     getString("EMAIL_FROM", ""),
		},
		Metrics: MetricsConfig{
			PrometheusPath: getString("SPONSVISA_METRICS_PATH", "/metrics"),
		},
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		val = strings.ToLower(strings.TrimSpace(val))
		switch val {
		case "1", "true", "t", "yes", "y":
			return true
		case "0", "false", "f", "no", "n":
			return false
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func loadAuthConfig() AuthConfig {
	cost := getInt("SPONSVISA_AUTH_BCRYPT_COST", 10)
	if cost < 4 || cost > 31 {
		cost = 10
	}

	return AuthConfig{
		AccessTokenSecret:   getString("JWT_ACCESS_KEY", "change-me-to-a-32-byte-secret"),
		RefreshTokenSecret:  getString("JWT_REFRESH_SECRET", "change-me-to-a-64-byte-secret"),
		AccessTokenTTL:      getDuration("JWT_ACCESS_TIME", 15*time.Minute),
		RefreshTokenTTL:     getDuration("JWT_REFRESH_TIME", 720*time.Hour),
		BcryptCost:          cost,
		AccessCookieMaxAge:  getDuration("SPONSVISA_ACCESS_COOKIE_MAX_AGE", 168*time.Hour),
		RefreshCookieMaxAge: getDuration("SPONSVISA_REFRESH_COOKIE_MAX_AGE", 720*time.Hour),
		CookieDomain:        getString("SPONSVISA_COOKIE_DOMAIN", ""),
		CookieSecure:        getBool("SPONSVISA_COOKIE_SECURE", false),
	}
}

func loadVerificationConfig() VerificationConfig {
	length := getInt("SPONSVISA_VERIFICATION_CODE_LENGTH", 6)
	if length < 4 || length > 10 {
		length = 6
	}

	alphabet := getString("SPONSVISA_VERIFICATION_CODE_SEED", "0123456789")
	if alphabet == "" {
		alphabet = "0123456789"
	}

	return VerificationConfig{
		CodeAlphabet: alphabet,
		CodeLength:   length,
		ExpireTime:   getDuration("SPONSVISA_VERIFICATION_CODE_EXPIRE_TIME", 5*time.Minute),
	}
}
