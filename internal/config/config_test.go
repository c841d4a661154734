package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirius-edu/sirius/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:              ":8080",
		DBPath:            "test.db",
		LogLevel:          "info",
		LLMModel:          "gpt-4o-mini",
		SpeechToTextModel: "whisper-1",
		LLMMaxTokens:      1024,
		LLMTimeout:        time.Minute,
		AudioTempDir:      os.TempDir(),
		MaxAudioBytes:     25 << 20,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.LogLevel = "verbose"

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""
	cfg.DBPath = ""
	cfg.LLMMaxTokens = 0
	cfg.LLMTimeout = 0

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "ADDR cannot be empty")
	assert.Contains(t, errStr, "DB_PATH cannot be empty")
	assert.Contains(t, errStr, "LLM_MAX_TOKENS")
	assert.Contains(t, errStr, "LLM_TIMEOUT")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "custom.db")
	t.Setenv("LLM_MODEL", "gpt-4o")
	t.Setenv("LLM_TIMEOUT", "30s")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "custom.db", cfg.DBPath)
	assert.Equal(t, "gpt-4o", cfg.LLMModel)
	assert.Equal(t, 30*time.Second, cfg.LLMTimeout)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ADDR", "DB_PATH", "LLM_MODEL", "LLM_MAX_TOKENS", "LLM_MODEL_SPEECH_TO_TEXT"} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "gpt-4o-mini", cfg.LLMModel)
	assert.Equal(t, "whisper-1", cfg.SpeechToTextModel)
	assert.Equal(t, 1024, cfg.LLMMaxTokens)
}
