package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata" // zone database for minimal containers

	"github.com/joho/godotenv"
)

// Storage drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Translation providers
const (
	ProviderGoogle = "google"
	ProviderOpenAI = "openai"
)

// Config holds all application configuration
type Config struct {
	BotToken    string
	BotPassword string
	Location    *time.Location

	StorageDriver string
	Database      DatabaseConfig
	SQLitePath    string

	Translation TranslationConfig
	Speech      SpeechConfig

	ReviewSize       int
	ReminderInterval time.Duration

	HTTPAddr       string
	APIToken       string
	RateLimitRPS   int
	RateLimitBurst int
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// TranslationConfig selects and configures the translator
type TranslationConfig struct {
	Provider    string
	BaseURL     string
	SourceLang  string
	TargetLang  string
	OpenAIKey   string
	OpenAIModel string
}

// SpeechConfig configures espeak-ng
type SpeechConfig struct {
	Binary string
	Voice  string
	Speed  int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	loc, err := time.LoadLocation(getEnv("TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	cfg := &Config{
		BotToken:      os.Getenv("BOT_TOKEN"),
		BotPassword:   os.Getenv("BOT_PASSWORD"),
		Location:      loc,
		StorageDriver: getEnv("STORAGE_DRIVER", DriverPostgres),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "wordsaver"),
			User:     getEnv("DB_USER", "wordsaver"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		SQLitePath: getEnv("SQLITE_PATH", "data/wordsaver.db"),
		Translation: TranslationConfig{
			Provider:    getEnv("TRANSLATE_PROVIDER", ProviderGoogle),
			BaseURL:     getEnv("TRANSLATE_URL", "https://translate.googleapis.com/translate_a/single"),
			SourceLang:  getEnv("SOURCE_LANG", "en"),
			TargetLang:  getEnv("TARGET_LANG", "he"),
			OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
			OpenAIModel: getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		},
		Speech: SpeechConfig{
			Binary: getEnv("ESPEAK_BINARY", "espeak-ng"),
			Voice:  getEnv("ESPEAK_VOICE", "en-us"),
			Speed:  getEnvInt("ESPEAK_SPEED", 155),
		},
		ReviewSize:       getEnvInt("REVIEW_SIZE", 10),
		ReminderInterval: getEnvDuration("REMINDER_CHECK_INTERVAL", time.Hour),
		HTTPAddr:         os.Getenv("HTTP_ADDR"),
		APIToken:         os.Getenv("API_TOKEN"),
		RateLimitRPS:     getEnvInt("RATE_LIMIT_RPS", 2),
		RateLimitBurst:   getEnvInt("RATE_LIMIT_BURST", 5),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.BotPassword == "" {
		return fmt.Errorf("BOT_PASSWORD is required")
	}

	switch c.StorageDriver {
	case DriverPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	switch c.Translation.Provider {
	case ProviderGoogle:
	case ProviderOpenAI:
		if c.Translation.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required")
		}
	default:
		return fmt.Errorf("unknown TRANSLATE_PROVIDER %q", c.Translation.Provider)
	}

	if c.HTTPAddr != "" && c.APIToken == "" {
		return fmt.Errorf("API_TOKEN is required when HTTP_ADDR is set")
	}

	if c.ReminderInterval <= 0 {
		return fmt.Errorf("REMINDER_CHECK_INTERVAL must be positive")
	}

	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt reads an int from the environment or returns a fallback
func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return i
}

// getEnvDuration reads a time.Duration from the environment or returns a fallback
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return d
}
