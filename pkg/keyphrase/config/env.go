package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by LoadEnv
const (
	EnvTopK          = "KEYPHRASE_TOPK"
	EnvSpan          = "KEYPHRASE_SPAN"
	EnvIterations    = "KEYPHRASE_ITERATIONS"
	EnvUseTextRank   = "KEYPHRASE_USE_TEXTRANK"
	EnvPreserveOrder = "KEYPHRASE_PRESERVE_ORDER"
	EnvDB            = "KEYPHRASE_DB"
)

// LoadEnv loads file into the process environment without overriding
// variables that are already set. An empty file means ".env" when present.
func LoadEnv(file string) error {
	if file == "" {
		_ = godotenv.Load()
		return nil
	}
	if err := godotenv.Load(file); err != nil {
		return fmt.Errorf("load env file %s: %w", file, err)
	}
	return nil
}

// applyEnv overlays KEYPHRASE_* variables on ex
func applyEnv(ex *Extract) {
	if v, ok := getEnvInt(EnvTopK); ok {
		ex.TopK = &v
	}
	if v, ok := getEnvInt(EnvSpan); ok {
		ex.Span = &v
	}
	if v, ok := getEnvInt(EnvIterations); ok {
		ex.Iterations = &v
	}
	if v, ok := getEnvBool(EnvUseTextRank); ok {
		ex.UseTextRank = &v
	}
	if v, ok := getEnvBool(EnvPreserveOrder); ok {
		ex.PreserveOrder = &v
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string) (int, bool) {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue, true
		}
	}
	return 0, false
}

func getEnvBool(key string) (bool, bool) {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue, true
		}
	}
	return false, false
}
