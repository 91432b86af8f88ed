package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MUTATOR_DB_ENGINE", "")
	t.Setenv("MUTATOR_DB_DSN", "postgres://localhost/dev")
	t.Setenv("MUTATOR_LOG_LEVEL", "")
	t.Setenv("MUTATOR_LOG_FORMAT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DB.Engine)
	assert.Equal(t, "postgres://localhost/dev", cfg.DB.DSN)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadExplicitValues(t *testing.T) {
	t.Setenv("MUTATOR_DB_ENGINE", "mysql")
	t.Setenv("MUTATOR_DB_DSN", "root@tcp(localhost:3306)/dev")
	t.Setenv("MUTATOR_LOG_LEVEL", "debug")
	t.Setenv("MUTATOR_LOG_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mysql", cfg.DB.Engine)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestValidateRejectsUnknownEngine(t *testing.T) {
	cfg := Config{DB: DBConfig{Engine: "sqlite"}, LogFormat: "json"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MUTATOR_DB_ENGINE")
}

func TestValidateRejectsUnknownLogFormat(t *testing.T) {
	cfg := Config{DB: DBConfig{Engine: "postgres"}, LogFormat: "xml"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MUTATOR_LOG_FORMAT")
}
