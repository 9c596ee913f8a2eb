package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	apperrors "latticework/backend/pkg/errors"
)

// Config holds all application configuration
type Config struct {
	// App
	Port string
	Env  string

	// Knowledge base
	FeedPath       string // Local RSS feed document
	CrosslinksPath string // Cross-link document between models
	SourcesPath    string // Optional multi-source registry (YAML)

	// AI
	LLMBaseURL string // OpenAI-compatible endpoint; chat stays disabled when empty
	LLMAPIKey  string
	ModelID    string

	// Neo4j (publisher only)
	Neo4jURI      string
	Neo4jUser     string
	Neo4jPassword string

	// Fetching
	FetchConcurrency int // Parallel feed source fetches
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("ENV", "development"),
		FeedPath:         getEnv("FEED_PATH", "latticeworkofmodels.substack.com_feed.xml"),
		CrosslinksPath:   getEnv("CROSSLINKS_PATH", "crosslinks.json"),
		SourcesPath:      getEnv("SOURCES_PATH", ""),
		LLMBaseURL:       getEnv("LLM_BASE_URL", ""),
		LLMAPIKey:        getEnv("LLM_API_KEY", ""),
		ModelID:          getEnv("MODEL_ID", "openrouter/anthropic/claude-sonnet-4"),
		Neo4jURI:         getEnv("NEO4J_URI", "bolt://localhost:7687"),
		Neo4jUser:        getEnv("NEO4J_USER", "neo4j"),
		Neo4jPassword:    getEnv("NEO4J_PASSWORD", "password"),
		FetchConcurrency: getEnvInt("FETCH_CONCURRENCY", 4),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.FeedPath == "" {
		return apperrors.NewConfigMissingRequired("FEED_PATH")
	}
	if c.Port == "" {
		return apperrors.NewConfigMissingRequired("PORT")
	}
	if c.FetchConcurrency < 1 {
		c.FetchConcurrency = 1
	}
	// LLM endpoint and Neo4j credentials are optional; the chat surface
	// and the graph publisher stay disabled without them
	return nil
}

// ChatEnabled returns true when an LLM endpoint is configured
func (c *Config) ChatEnabled() bool {
	return c.LLMBaseURL != ""
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
