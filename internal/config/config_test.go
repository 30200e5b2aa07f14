package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"WORDFALL_TARGET_SCORE",
	"WORDFALL_DIFFICULTY",
	"WORDFALL_WORD_BANK",
	"WORDFALL_FPS",
	"WORDFALL_SOUND",
	"WORDFALL_LOG_FILE",
	"WORDFALL_WORD_SOURCE",
	"WORDFALL_USER_ID",
	"MIGRATIONS_PATH",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"DB_USER",
	"DB_PASSWORD",
}

// clearConfigEnv blanks every key Load reads; t.Setenv restores them afterwards
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
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
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	n, err := getEnvInt("TEST_INT", 7)
	assert.NoError(t, err)
	assert.Equal(t, 42, n)

	t.Setenv("TEST_INT", "")
	n, err = getEnvInt("TEST_INT", 7)
	assert.NoError(t, err)
	assert.Equal(t, 7, n)

	t.Setenv("TEST_INT", "many")
	_, err = getEnvInt("TEST_INT", 7)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "TEST_INT")
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
	clearConfigEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 20000, cfg.TargetScore)
	assert.Equal(t, "normal", cfg.Difficulty)
	assert.Equal(t, "1200", cfg.WordBank)
	assert.Equal(t, 60, cfg.FPS)
	assert.True(t, cfg.Sound)
	assert.Equal(t, "wordfall.log", cfg.LogFile)
	assert.Equal(t, SourceEmbedded, cfg.WordSource)
	assert.False(t, cfg.UsePostgres())
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "languager", cfg.Database.Name)
	assert.Equal(t, "languager", cfg.Database.User)
}

func TestLoad_Overrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("WORDFALL_TARGET_SCORE", "500")
	t.Setenv("WORDFALL_DIFFICULTY", "HARD")
	t.Setenv("WORDFALL_WORD_BANK", "2000")
	t.Setenv("WORDFALL_FPS", "30")
	t.Setenv("WORDFALL_SOUND", "false")
	t.Setenv("WORDFALL_WORD_SOURCE", "postgres")
	t.Setenv("WORDFALL_USER_ID", "123")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.TargetScore)
	assert.Equal(t, "hard", cfg.Difficulty)
	assert.Equal(t, "2000", cfg.WordBank)
	assert.Equal(t, 30, cfg.FPS)
	assert.False(t, cfg.Sound)
	assert.True(t, cfg.UsePostgres())
	assert.Equal(t, int64(123), cfg.UserID)
	assert.Equal(t, "secret", cfg.Database.Password)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		errContains string
	}{
		{
			name:        "non-numeric target",
			env:         map[string]string{"WORDFALL_TARGET_SCORE": "lots"},
			errContains: "WORDFALL_TARGET_SCORE",
		},
		{
			name:        "negative target",
			env:         map[string]string{"WORDFALL_TARGET_SCORE": "-5"},
			errContains: "WORDFALL_TARGET_SCORE",
		},
		{
			name:        "fps out of range",
			env:         map[string]string{"WORDFALL_FPS": "1000"},
			errContains: "WORDFALL_FPS",
		},
		{
			name:        "bad sound flag",
			env:         map[string]string{"WORDFALL_SOUND": "loud"},
			errContains: "WORDFALL_SOUND",
		},
		{
			name:        "unknown difficulty",
			env:         map[string]string{"WORDFALL_DIFFICULTY": "nightmare"},
			errContains: "WORDFALL_DIFFICULTY",
		},
		{
			name:        "unknown word source",
			env:         map[string]string{"WORDFALL_WORD_SOURCE": "redis"},
			errContains: "WORDFALL_WORD_SOURCE",
		},
		{
			name:        "postgres without user id",
			env:         map[string]string{"WORDFALL_WORD_SOURCE": "postgres", "DB_PASSWORD": "secret"},
			errContains: "WORDFALL_USER_ID",
		},
		{
			name:        "postgres without password",
			env:         map[string]string{"WORDFALL_WORD_SOURCE": "postgres", "WORDFALL_USER_ID": "1"},
			errContains: "DB_PASSWORD",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
