// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configuration from configs/config.yaml, an optional
// environment-specific overlay, and environment variables. Every field has a
// code default so all services start with no config file present.
func Load() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	// Enable ENV override like GATEWAY_JWT_SECRET
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}
	v.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = v.MergeInConfig() // overlay is optional

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile loads .env from the working directory or repo root, if present.
func loadEnvFile() {
	for _, path := range []string{".env", "../../.env"} {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "resume-services")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.environment", "development")

	v.SetDefault("server.read_timeout", 15000)
	v.SetDefault("server.write_timeout", 15000)
	v.SetDefault("server.shutdown_timeout", 10000)

	v.SetDefault("gateway.listen_addr", ":8080")
	v.SetDefault("gateway.intel_url", "http://localhost:8081/intel/lookup_company")
	v.SetDefault("gateway.render_url", "http://localhost:8082/render/resume")
	v.SetDefault("gateway.upstream_timeout", 20000)
	v.SetDefault("gateway.upstream_retries", 2)
	v.SetDefault("gateway.jwt_secret", "your-secret-key-change-in-production")
	v.SetDefault("gateway.rate_limit.requests_per_window", 60)
	v.SetDefault("gateway.rate_limit.window_seconds", 300)

	v.SetDefault("intel.listen_addr", ":8081")
	v.SetDefault("intel.cache_enabled", false)
	v.SetDefault("intel.cache_ttl", 600)

	v.SetDefault("render.listen_addr", ":8082")

	v.SetDefault("svc_api.listen_addr", ":3001")

	v.SetDefault("database.postgres.host", "localhost")
	v.SetDefault("database.postgres.port", 5432)
	v.SetDefault("database.postgres.database", "resume_services")
	v.SetDefault("database.postgres.user", "postgres")
	v.SetDefault("database.postgres.max_connections", 20)
	v.SetDefault("database.postgres.max_idle", 5)
	v.SetDefault("database.postgres.sslmode", "disable")

	v.SetDefault("database.redis.address", "localhost:6379")
	v.SetDefault("database.redis.db", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

func validateConfig(cfg *Config) error {
	for name, addr := range map[string]string{
		"gateway": cfg.Gateway.ListenAddr,
		"intel":   cfg.Intel.ListenAddr,
		"render":  cfg.Render.ListenAddr,
		"svc_api": cfg.SvcAPI.ListenAddr,
	} {
		if addr == "" {
			return fmt.Errorf("%s.listen_addr must not be empty", name)
		}
	}

	if cfg.Gateway.RateLimit.RequestsPerWindow <= 0 {
		return fmt.Errorf("gateway.rate_limit.requests_per_window must be positive")
	}
	if cfg.Gateway.RateLimit.WindowSeconds <= 0 {
		return fmt.Errorf("gateway.rate_limit.window_seconds must be positive")
	}
	if cfg.Gateway.UpstreamTimeout <= 0 {
		return fmt.Errorf("gateway.upstream_timeout must be positive")
	}

	return nil
}
