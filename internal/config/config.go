package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Word sources
const (
	SourceEmbedded = "embedded"
	SourcePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	TargetScore    int
	Difficulty     string
	WordBank       string
	FPS            int
	Sound          bool
	LogFile        string
	WordSource     string
	UserID         int64
	MigrationsPath string
	Database       DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	targetScore, err := getEnvInt("WORDFALL_TARGET_SCORE", 20000)
	if err != nil {
		return nil, err
	}
	fps, err := getEnvInt("WORDFALL_FPS", 60)
	if err != nil {
		return nil, err
	}
	sound, err := strconv.ParseBool(getEnv("WORDFALL_SOUND", "true"))
	if err != nil {
		return nil, fmt.Errorf("WORDFALL_SOUND must be a boolean: %w", err)
	}

	cfg := &Config{
		TargetScore:    targetScore,
		Difficulty:     strings.ToLower(getEnv("WORDFALL_DIFFICULTY", "normal")),
		WordBank:       getEnv("WORDFALL_WORD_BANK", "1200"),
		FPS:            fps,
		Sound:          sound,
		LogFile:        getEnv("WORDFALL_LOG_FILE", "wordfall.log"),
		WordSource:     strings.ToLower(getEnv("WORDFALL_WORD_SOURCE", SourceEmbedded)),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "file://migrations"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "languager"),
			User:     getEnv("DB_USER", "languager"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate fields
	if cfg.TargetScore <= 0 {
		return nil, fmt.Errorf("WORDFALL_TARGET_SCORE must be positive")
	}
	if cfg.FPS < 1 || cfg.FPS > 240 {
		return nil, fmt.Errorf("WORDFALL_FPS must be between 1 and 240")
	}
	switch cfg.Difficulty {
	case "easy", "normal", "hard":
	default:
		return nil, fmt.Errorf("WORDFALL_DIFFICULTY must be one of easy, normal, hard")
	}

	switch cfg.WordSource {
	case SourceEmbedded:
	case SourcePostgres:
		userID, err := strconv.ParseInt(os.Getenv("WORDFALL_USER_ID"), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("WORDFALL_USER_ID is required for the postgres word source")
		}
		cfg.UserID = userID
		if cfg.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required for the postgres word source")
		}
	default:
		return nil, fmt.Errorf("WORDFALL_WORD_SOURCE must be %q or %q", SourceEmbedded, SourcePostgres)
	}

	return cfg, nil
}

// UsePostgres reports whether the saved-words bank should be loaded
func (c *Config) UsePostgres() bool {
	return c.WordSource == SourcePostgres
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

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
