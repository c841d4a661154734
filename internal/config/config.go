package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr              string
	DBPath            string
	LogLevel          string
	LogJSON           bool
	OpenAIAPIKey      string
	OpenAIBaseURL     string
	LLMModel          string
	SpeechToTextModel string
	LLMMaxTokens      int
	LLMTimeout        time.Duration
	AudioTempDir      string
	MaxAudioBytes     int64
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:              envOr("ADDR", ":8080"),
		DBPath:            envOr("DB_PATH", "file:sirius.db"),
		LogLevel:          envOr("LOG_LEVEL", "info"),
		LogJSON:           envBoolOr("LOG_JSON", false),
		OpenAIAPIKey:      envOr("OPENAI_API_KEY", ""),
		OpenAIBaseURL:     envOr("OPENAI_BASE_URL", ""),
		LLMModel:          envOr("LLM_MODEL", "gpt-4o-mini"),
		SpeechToTextModel: envOr("LLM_MODEL_SPEECH_TO_TEXT", "whisper-1"),
		LLMMaxTokens:      envIntOr("LLM_MAX_TOKENS", 1024),
		LLMTimeout:        envDurationOr("LLM_TIMEOUT", 60*time.Second),
		AudioTempDir:      envOr("AUDIO_TEMP_DIR", os.TempDir()),
		MaxAudioBytes:     int64(envIntOr("MAX_AUDIO_MB", 25)) << 20,
	}
}

// Validate checks the configuration for values the server cannot start with.
// All problems are reported at once so a broken deployment fails with a
// complete picture instead of one error per restart.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	if c.LLMModel == "" {
		problems = append(problems, "LLM_MODEL cannot be empty")
	}
	if c.SpeechToTextModel == "" {
		problems = append(problems, "LLM_MODEL_SPEECH_TO_TEXT cannot be empty")
	}
	if c.LLMMaxTokens <= 0 {
		problems = append(problems, "LLM_MAX_TOKENS must be positive")
	}
	if c.LLMTimeout <= 0 {
		problems = append(problems, "LLM_TIMEOUT must be positive")
	}
	if c.MaxAudioBytes <= 0 {
		problems = append(problems, "MAX_AUDIO_MB must be positive")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, "LOG_LEVEL must be one of debug, info, warn, error")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
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

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid value for %s=%q, using default %s", key, v, def)
	}
	return def
}
