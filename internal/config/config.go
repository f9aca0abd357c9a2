package config

import (
	"fmt"
	"os"
)

// Store backend names accepted in STORE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Categorization provider names accepted in CATEGORIZE_PROVIDER.
const (
	ProviderLocal  = "local"
	ProviderRemote = "remote"
	ProviderOpenAI = "openai"
)

// Config holds application configuration.
type Config struct {
	ServerPort     string
	AllowedOrigins string

	StoreBackend string
	DataDir      string
	SQLitePath   string
	DatabaseURL  string
	RedisURL     string

	ClassifierConfigPath string

	CategorizeProvider string
	CategorizeURL      string
	OpenAIKey          string
	OpenAIModel        string
	OpenAIBaseURL      string

	RatelimitRate   string
	ServerDebugMode bool
	OTELEnabled     bool
	OTELEndpoint    string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),

		StoreBackend: getEnv("STORE_BACKEND", BackendFile),
		DataDir:      getEnv("DATA_DIR", "./data"),
		SQLitePath:   getEnv("SQLITE_PATH", "./data/catalog.db"),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379/0"),

		ClassifierConfigPath: getEnv("CLASSIFIER_CONFIG", ""),

		CategorizeProvider: getEnv("CATEGORIZE_PROVIDER", ProviderLocal),
		CategorizeURL:      getEnv("CATEGORIZE_URL", ""),
		OpenAIKey:          getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:        getEnv("AI_MODEL", ""),
		OpenAIBaseURL:      getEnv("AI_BASE_URL", ""),

		RatelimitRate:   getEnv("RATELIMIT_RATE", "20-S"),
		ServerDebugMode: getEnvBool("SERVER_DEBUG_MODE", false),
		OTELEnabled:     getEnvBool("OTEL_ENABLED", false),
		OTELEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}

	switch cfg.StoreBackend {
	case BackendMemory, BackendFile, BackendSQLite, BackendRedis:
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
	}

	switch cfg.CategorizeProvider {
	case ProviderLocal:
	case ProviderRemote:
		if cfg.CategorizeURL == "" {
			return nil, fmt.Errorf("CATEGORIZE_URL is required for the remote provider")
		}
	case ProviderOpenAI:
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
		}
	default:
		return nil, fmt.Errorf("unknown CATEGORIZE_PROVIDER %q", cfg.CategorizeProvider)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
