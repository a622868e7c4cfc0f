// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct shared by all services.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Gateway  GatewayConfig  `mapstructure:"gateway"`
	Intel    IntelConfig    `mapstructure:"intel"`
	Render   RenderConfig   `mapstructure:"render"`
	SvcAPI   SvcAPIConfig   `mapstructure:"svc_api"`
	Database DatabaseConfig `mapstructure:"database"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServerConfig holds HTTP server settings applied to every listener.
type ServerConfig struct {
	ReadTimeout     int `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int `mapstructure:"shutdown_timeout"` // milliseconds
}

// GatewayConfig holds settings for the apply-pipeline gateway.
type GatewayConfig struct {
	ListenAddr      string          `mapstructure:"listen_addr"`
	IntelURL        string          `mapstructure:"intel_url"`
	RenderURL       string          `mapstructure:"render_url"`
	UpstreamTimeout int             `mapstructure:"upstream_timeout"` // milliseconds
	UpstreamRetries int             `mapstructure:"upstream_retries"`
	JWTSecret       string          `mapstructure:"jwt_secret"`
	AllowedEmails   []string        `mapstructure:"allowed_emails"` // admin bypass for rate limiting
	RateLimit       RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig holds sliding-window rate limiter settings.
type RateLimitConfig struct {
	RequestsPerWindow int `mapstructure:"requests_per_window"`
	WindowSeconds     int `mapstructure:"window_seconds"`
}

// IntelConfig holds settings for the company lookup service.
type IntelConfig struct {
	ListenAddr   string `mapstructure:"listen_addr"`
	CacheEnabled bool   `mapstructure:"cache_enabled"`
	CacheTTL     int    `mapstructure:"cache_ttl"` // seconds
}

// RenderConfig holds settings for the resume render service.
type RenderConfig struct {
	ListenAddr string `mapstructure:"listen_addr"`
}

// SvcAPIConfig holds settings for the bootstrap skeleton service.
type SvcAPIConfig struct {
	ListenAddr string `mapstructure:"listen_addr"`
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
