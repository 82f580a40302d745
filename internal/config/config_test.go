package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setBaseEnv sets the minimum environment for a postgres + google config.
func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("BOT_PASSWORD", "test_password")
	t.Setenv("DB_PASSWORD", "test_db_password")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("TRANSLATE_PROVIDER", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("TIMEZONE", "")
	t.Setenv("REMINDER_CHECK_INTERVAL", "")
	t.Setenv("REVIEW_SIZE", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("API_TOKEN", "")
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			} else {
				os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	assert.Equal(t, 42, getEnvInt("TEST_INT", 7))

	t.Setenv("TEST_INT", "forty-two")
	assert.Equal(t, 7, getEnvInt("TEST_INT", 7))

	t.Setenv("TEST_INT", "")
	assert.Equal(t, 7, getEnvInt("TEST_INT", 7))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "15m")
	assert.Equal(t, 15*time.Minute, getEnvDuration("TEST_DURATION", time.Hour))

	t.Setenv("TEST_DURATION", "soon")
	assert.Equal(t, time.Hour, getEnvDuration("TEST_DURATION", time.Hour))
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_WithDefaults(t *testing.T) {
	setBaseEnv(t)
	for _, key := range []string{"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "HTTP_ADDR", "ESPEAK_VOICE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "test_password", cfg.BotPassword)
	assert.Equal(t, DriverPostgres, cfg.StorageDriver)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "wordsaver", cfg.Database.Name)
	assert.Equal(t, "wordsaver", cfg.Database.User)
	assert.Equal(t, ProviderGoogle, cfg.Translation.Provider)
	assert.Equal(t, "en", cfg.Translation.SourceLang)
	assert.Equal(t, "en-us", cfg.Speech.Voice)
	assert.Equal(t, 10, cfg.ReviewSize)
	assert.Equal(t, time.Hour, cfg.ReminderInterval)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Empty(t, cfg.HTTPAddr)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		errField string
	}{
		{
			name:     "missing bot token",
			env:      map[string]string{"BOT_TOKEN": ""},
			errField: "BOT_TOKEN",
		},
		{
			name:     "missing bot password",
			env:      map[string]string{"BOT_PASSWORD": ""},
			errField: "BOT_PASSWORD",
		},
		{
			name:     "missing db password for postgres",
			env:      map[string]string{"DB_PASSWORD": ""},
			errField: "DB_PASSWORD",
		},
		{
			name:     "unknown storage driver",
			env:      map[string]string{"STORAGE_DRIVER": "mongo"},
			errField: "STORAGE_DRIVER",
		},
		{
			name:     "openai without key",
			env:      map[string]string{"TRANSLATE_PROVIDER": ProviderOpenAI},
			errField: "OPENAI_API_KEY",
		},
		{
			name:     "unknown provider",
			env:      map[string]string{"TRANSLATE_PROVIDER": "deepl"},
			errField: "TRANSLATE_PROVIDER",
		},
		{
			name:     "bad timezone",
			env:      map[string]string{"TIMEZONE": "Mars/Olympus"},
			errField: "TIMEZONE",
		},
		{
			name:     "http api without token",
			env:      map[string]string{"HTTP_ADDR": ":8080"},
			errField: "API_TOKEN",
		},
		{
			name:     "non-positive reminder interval",
			env:      map[string]string{"REMINDER_CHECK_INTERVAL": "0s"},
			errField: "REMINDER_CHECK_INTERVAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errField)
		})
	}
}

func TestLoad_SQLiteWithoutDBPassword(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORAGE_DRIVER", DriverSQLite)
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("SQLITE_PATH", "/tmp/words.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
	assert.Equal(t, "/tmp/words.db", cfg.SQLitePath)
}

func TestLoad_OpenAIProvider(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("TRANSLATE_PROVIDER", ProviderOpenAI)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("TIMEZONE", "Asia/Jerusalem")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sk-test", cfg.Translation.OpenAIKey)
	assert.Equal(t, "Asia/Jerusalem", cfg.Location.String())
}

func TestLoad_HTTPAPIWithToken(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("API_TOKEN", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "s3cret", cfg.APIToken)
}
