package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	apperrors "rabbithole/backend/pkg/errors"
)

// Config holds all application configuration
type Config struct {
	// App
	Port            string
	Env             string
	LogLevel        string
	CORSOrigins     []string
	ShutdownTimeout time.Duration

	// AI chat proxy (any OpenAI-compatible endpoint)
	ChatBaseURL  string
	ChatAPIKey   string
	ChatModel    string
	ChatProvider string // stored on recorded chats
	ChatTimeout  time.Duration

	// Neo4j export
	Neo4jURI      string
	Neo4jUser     string
	Neo4jPassword string
}

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5000",
	"http://127.0.0.1:5173",
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", ""),
		CORSOrigins:     getEnvList("CORS_ORIGINS", defaultCORSOrigins),
		ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 5)) * time.Second,
		ChatBaseURL:     getEnv("CHAT_BASE_URL", "https://api.perplexity.ai"),
		ChatAPIKey:      getEnv("CHAT_API_KEY", ""),
		ChatModel:       getEnv("CHAT_MODEL", "sonar"),
		ChatProvider:    getEnv("CHAT_PROVIDER", "perplexity"),
		ChatTimeout:     time.Duration(getEnvInt("CHAT_TIMEOUT_SECONDS", 30)) * time.Second,
		Neo4jURI:        getEnv("NEO4J_URI", ""),
		Neo4jUser:       getEnv("NEO4J_USER", "neo4j"),
		Neo4jPassword:   getEnv("NEO4J_PASSWORD", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.Port == "" {
		return apperrors.NewConfigMissingRequired("PORT")
	}
	if c.ChatTimeout <= 0 {
		return apperrors.NewConfigValidationFailed("CHAT_TIMEOUT_SECONDS", "must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return apperrors.NewConfigValidationFailed("SHUTDOWN_TIMEOUT_SECONDS", "must be positive")
	}
	if c.ChatAPIKey != "" && c.ChatModel == "" {
		return apperrors.NewConfigMissingRequired("CHAT_MODEL")
	}
	// Chat key and Neo4j are optional; the features they back are disabled without them
	return nil
}

// ChatEnabled reports whether the chat proxy has credentials
func (c *Config) ChatEnabled() bool {
	return c.ChatAPIKey != "" && c.ChatBaseURL != ""
}

// GraphEnabled reports whether a Neo4j target is configured
func (c *Config) GraphEnabled() bool {
	return c.Neo4jURI != ""
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

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
