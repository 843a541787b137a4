package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Generator selects the ReplyGenerator backend.
type Generator string

const (
	GeneratorMock   Generator = "mock"
	GeneratorGemini Generator = "gemini"
	GeneratorOpenAI Generator = "openai"
)

type Config struct {
	TelegramToken string

	Generator Generator

	// Gemini (Vertex AI) backend.
	GCPProjectID string
	GCPLocation  string
	GeminiModel  string

	// OpenAI-compatible backend.
	OpenAIKey   string
	OpenAIModel string

	// GenerateTimeout bounds a single reply-generation call.
	GenerateTimeout time.Duration
}

// Load reads the configuration from the environment (a local .env file is
// honored when present). The Telegram token is the one required credential;
// without it the process must not start.
func Load() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("TELEGRAM_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN must be set")
	}

	cfg := &Config{
		TelegramToken: token,

		Generator: Generator(getEnv("COURSIER_GENERATOR", string(GeneratorGemini))),

		GCPProjectID: getEnv("COURSIER_GCP_PROJECT", ""),
		GCPLocation:  getEnv("COURSIER_GCP_LOCATION", "us-central1"),
		GeminiModel:  getEnv("COURSIER_GEMINI_MODEL", "gemini-2.5-flash"),

		OpenAIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIModel: getEnv("OPENAI_MODEL", "gpt-4o-mini"),

		GenerateTimeout: getDurationEnv("COURSIER_GENERATE_TIMEOUT", 60*time.Second),
	}

	switch cfg.Generator {
	case GeneratorMock, GeneratorGemini, GeneratorOpenAI:
	default:
		return nil, fmt.Errorf("unknown generator backend %q", cfg.Generator)
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
