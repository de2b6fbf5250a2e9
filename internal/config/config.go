package config

import (
	"fmt"
	"os"
	"strconv"

	"battle-of-monsters/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	DBPath         string
	ServerPort     string
	LogLevel       zerolog.Level
	ImportMaxBytes int64
	HealthcheckURL string
}

func Load() (*Config, error) {
	// a missing .env is fine, the environment still applies
	_ = godotenv.Load()

	level, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	maxBytes := constants.DefaultImportMaxBytes
	if v := os.Getenv("IMPORT_MAX_BYTES"); v != "" {
		maxBytes, err = strconv.ParseInt(v, 10, 64)
		if err != nil || maxBytes <= 0 {
			return nil, fmt.Errorf("IMPORT_MAX_BYTES must be a positive integer, got %q", v)
		}
	}

	cfg := &Config{
		DBPath:         getEnv("DB_PATH", "monsters.db"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		LogLevel:       level,
		ImportMaxBytes: maxBytes,
	}

	if _, err := strconv.ParseUint(cfg.ServerPort, 10, 16); err != nil {
		return nil, fmt.Errorf("SERVER_PORT must be a port number, got %q", cfg.ServerPort)
	}

	cfg.HealthcheckURL = getEnv("HEALTHCHECK_URL", fmt.Sprintf("http://127.0.0.1:%s/healthz", cfg.ServerPort))

	return cfg, nil
}

// Log writes the effective configuration once the logger exists.
func (c *Config) Log(logger zerolog.Logger) {
	logger.Info().
		Str("db_path", c.DBPath).
		Str("server_port", c.ServerPort).
		Str("log_level", c.LogLevel.String()).
		Int64("import_max_bytes", c.ImportMaxBytes).
		Msg("configuration loaded")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)
