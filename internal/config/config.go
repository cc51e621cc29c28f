package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Topic sources
const (
	SourceDir     = "dir"
	SourceBuiltin = "builtin"
)

// Config holds all application configuration
type Config struct {
	DataDir      string
	MistakesFile string
	TopicSource  string
	Fields       FieldsConfig
	LogLevel     string
	NoColor      bool
}

// FieldsConfig names the header columns of topic files
type FieldsConfig struct {
	English string
	Chinese string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:      getEnv("FLASHCARDS_DATA_DIR", "data"),
		MistakesFile: getEnv("FLASHCARDS_MISTAKES_FILE", "wrong_words.txt"),
		TopicSource:  getEnv("FLASHCARDS_TOPIC_SOURCE", SourceDir),
		Fields: FieldsConfig{
			English: getEnv("FLASHCARDS_EN_FIELD", "en"),
			Chinese: getEnv("FLASHCARDS_CN_FIELD", "cn"),
		},
		LogLevel: getEnv("FLASHCARDS_LOG_LEVEL", "warn"),
		NoColor:  os.Getenv("NO_COLOR") != "",
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field values, including ones overridden after Load
func (c *Config) Validate() error {
	switch c.TopicSource {
	case SourceDir, SourceBuiltin:
	default:
		return fmt.Errorf("FLASHCARDS_TOPIC_SOURCE must be %q or %q, got %q", SourceDir, SourceBuiltin, c.TopicSource)
	}
	if c.TopicSource == SourceDir && strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("FLASHCARDS_DATA_DIR is required")
	}
	if strings.TrimSpace(c.MistakesFile) == "" {
		return fmt.Errorf("FLASHCARDS_MISTAKES_FILE is required")
	}
	if strings.TrimSpace(c.Fields.English) == "" || strings.TrimSpace(c.Fields.Chinese) == "" {
		return fmt.Errorf("FLASHCARDS_EN_FIELD and FLASHCARDS_CN_FIELD are required")
	}
	if c.Fields.English == c.Fields.Chinese {
		return fmt.Errorf("FLASHCARDS_EN_FIELD and FLASHCARDS_CN_FIELD must differ")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level
func (c *Config) Level() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return level, fmt.Errorf("FLASHCARDS_LOG_LEVEL: %w", err)
	}
	return level, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
