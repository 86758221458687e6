package common

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/clauselens/clauselens/constants"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	Upload UploadConfig
	LLM    LLMConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	HTTPAddr string
}

// UploadConfig holds upload/extraction limits
type UploadConfig struct {
	MaxFileBytes     int64
	MaxContractChars int
}

// LLMConfig holds provider-related configuration
type LLMConfig struct {
	OpenAIKey   string
	OpenAIModel string
	GeminiKey   string
	GeminiModel string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// LoadConfig loads configuration from environment variables. A .env file in
// the working directory is merged in first when present.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			HTTPAddr: getEnv("HTTP_ADDR", ":8080"),
		},
		Upload: UploadConfig{
			MaxFileBytes:     getEnvAsInt64("MAX_FILE_BYTES", constants.MaxUploadBytesDefault),
			MaxContractChars: getEnvAsInt("MAX_CONTRACT_CHARS", constants.MaxContractCharsDefault),
		},
		LLM: LLMConfig{
			OpenAIKey:   getEnv("OPENAI_API_KEY", ""),
			OpenAIModel: getEnv("OPENAI_MODEL", "gpt-4"),
			GeminiKey:   getEnv("GEMINI_API_KEY", ""),
			GeminiModel: getEnv("GEMINI_MODEL", "gemini-2.0-flash-exp"),
			Temperature: getEnvAsFloat32("LLM_TEMPERATURE", 0.1),
			MaxTokens:   getEnvAsInt("LLM_MAX_TOKENS", 4000),
			Timeout:     getEnvAsDuration("LLM_TIMEOUT", 45*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration. At least one provider key is
// required; the gateway skips providers without a key.
func (c *Config) Validate() error {
	if c.LLM.OpenAIKey == "" && c.LLM.GeminiKey == "" {
		return NewAppError(CodeConfig, "OPENAI_API_KEY or GEMINI_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.HTTPAddr == "" {
		return NewAppError(CodeConfig, "HTTP_ADDR is required", ErrInvalidInput)
	}
	if c.Upload.MaxFileBytes <= 0 {
		return NewAppError(CodeConfig, "MAX_FILE_BYTES must be positive", ErrInvalidInput)
	}
	return nil
}
