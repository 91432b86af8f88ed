package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DB        DBConfig
	LogLevel  string
	LogFormat string
}

type DBConfig struct {
	Engine string
	DSN    string
}

// Load reads configuration from the environment, honoring an optional .env
// file in the working directory.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		DB: DBConfig{
			Engine: getEnv("MUTATOR_DB_ENGINE", "postgres"),
			DSN:    os.Getenv("MUTATOR_DB_DSN"),
		},
		LogLevel:  getEnv("MUTATOR_LOG_LEVEL", "info"),
		LogFormat: getEnv("MUTATOR_LOG_FORMAT", "json"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the fields every run needs. The DSN is deliberately not
// required here: dry runs never open a connection, so db.Open enforces it.
func (c Config) Validate() error {
	switch strings.ToLower(c.DB.Engine) {
	case "postgres", "mysql":
	default:
		return fmt.Errorf("MUTATOR_DB_ENGINE must be postgres or mysql, got %q", c.DB.Engine)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("MUTATOR_LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
