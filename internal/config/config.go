package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	DBPath          string
	LogLevel        string
	QuizOptionCount int  // options per multiple-choice question
	StrictPinyin    bool // disable the diacritic-folding fallback for typed pinyin
	RequestTimeout  int  // seconds
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:            envOr("ADDR", ":8080"),
		DBPath:          envOr("DB_PATH", "file:hsk1.db"),
		LogLevel:        envOr("LOG_LEVEL", "INFO"),
		QuizOptionCount: envIntOr("QUIZ_OPTION_COUNT", 4),
		StrictPinyin:    envBoolOr("STRICT_PINYIN", false),
		RequestTimeout:  envIntOr("REQUEST_TIMEOUT", 30),
	}
}

// Validate checks the configuration for values no component can work with.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.QuizOptionCount < 2 || c.QuizOptionCount > 8 {
		return fmt.Errorf("QUIZ_OPTION_COUNT must be between 2 and 8, got %d", c.QuizOptionCount)
	}
	if c.RequestTimeout < 1 {
		return fmt.Errorf("REQUEST_TIMEOUT must be at least 1 second, got %d", c.RequestTimeout)
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}
