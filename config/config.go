package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL   = "https://api.kolosal.ai/v1"
	defaultModel     = "Claude Sonnet 4.5"
	defaultPort      = "8000"
	defaultUploadDir = "uploads"
	defaultLogLevel  = "info"
)

// Config holds every process-wide setting. It is loaded once at startup
// and passed by reference; nothing mutates it afterwards.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	Port      string
	UploadDir string
	PublicDir string
	LogLevel  string
}

// Load reads .env (when present) and the environment into a Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, falling back to environment variables")
	}

	return &Config{
		APIKey:    os.Getenv("KOLOSAL_API_KEY"),
		BaseURL:   envOr("KOLOSAL_BASE_URL", defaultBaseURL),
		Model:     envOr("MODEL_NAME", defaultModel),
		Port:      envOr("PORT", defaultPort),
		UploadDir: envOr("UPLOAD_DIR", defaultUploadDir),
		PublicDir: envOr("PUBLIC_DIR", "public"),
		LogLevel:  envOr("LOG_LEVEL", defaultLogLevel),
	}
}

// Configured reports whether a remote API key is available.
func (c *Config) Configured() bool {
	return c.APIKey != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
