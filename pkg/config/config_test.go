package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:3001"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "carein.db", cfg.Database.URL)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAI.Model)
	assert.InDelta(t, 0.7, cfg.OpenAI.Temperature, 0.0001)
	assert.Equal(t, 500, cfg.OpenAI.MaxTokens)
	assert.True(t, cfg.Audit.Transactional)
	assert.Equal(t, "0.0.0.0:8000", cfg.GetServerAddr())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_BASE_URL", "https://api.groq.com/openai/v1")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "host=db user=postgres dbname=carein sslmode=disable")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "https://app.example.com")
	t.Setenv("AUDIT_TRANSACTIONAL", "false")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.Server.AllowedOrigins)
	assert.False(t, cfg.Audit.Transactional)
	assert.True(t, cfg.IsProduction())
}

func TestFromEnv_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestValidate_UnknownDriver(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("DATABASE_DRIVER", "oracle")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_DRIVER")
}

func TestValidate_ConnectTimeout(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("DATABASE_CONNECT_TIMEOUT", "0s")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_CONNECT_TIMEOUT")
}

func TestLoadDatabase_IgnoresProviderSettings(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("DATABASE_URL", "migrate.db")

	cfg, err := LoadDatabase()
	require.NoError(t, err)
	assert.Equal(t, "migrate.db", cfg.Database.URL)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
}
