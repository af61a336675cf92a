package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Question generation
	Provider     string // "llm" (OpenAI-compatible) or "gemini"
	LLMURL       string // OpenAI-compatible endpoint, e.g. "http://localhost:1234"
	LLMModel     string // model name, e.g. "qwen3-8b"
	GeminiAPIKey string // required when Provider is "gemini"
	GeminiModel  string

	// Trending-topic search
	SearchURL    string // empty disables search, static hints are used
	SearchAPIKey string
	RedisURL     string // empty disables the hint cache

	// Storage
	DBPath     string
	CatalogDir string // empty falls back to the built-in catalog
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		Provider:        getenvDefault("QUESTION_PROVIDER", "llm"),
		LLMURL:          getenvDefault("LLM_URL", "http://localhost:1234"),
		LLMModel:        getenvDefault("LLM_MODEL", "qwen3-8b"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getenvDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		SearchURL:       os.Getenv("SEARCH_URL"),
		SearchAPIKey:    os.Getenv("SEARCH_API_KEY"),
		RedisURL:        os.Getenv("REDIS_URL"),
		DBPath:          getenvDefault("DB_PATH", "satpilot.db"),
		CatalogDir:      os.Getenv("CATALOG_DIR"),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}
