package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// EmailConfig holds configuration for the outbound mailer.
type EmailConfig struct {
	Provider           string
	FromAddress        string
	FromName           string
	SESRegion          string
	SESAccessKeyID     string
	SESSecretAccessKey string
	InsecureSkipVerify bool
}

// Config holds all configuration for the application
type Config struct {
	Environment    string
	Port           string
	StaticDir      string
	AllowedOrigins []string
	Email          EmailConfig
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Load .env file if not in production
	// We don't return error here because in production .env might not exist
	// and we rely on system environment variables
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment: env,
		Port:        os.Getenv("PORT"),
		StaticDir:   os.Getenv("STATIC_DIR"),
		Email: EmailConfig{
			Provider:           os.Getenv("EMAIL_PROVIDER"),
			FromAddress:        os.Getenv("EMAIL_FROM_ADDRESS"),
			FromName:           os.Getenv("EMAIL_FROM_NAME"),
			SESRegion:          os.Getenv("AWS_SES_REGION"),
			SESAccessKeyID:     os.Getenv("AWS_SES_ACCESS_KEY_ID"),
			SESSecretAccessKey: os.Getenv("AWS_SES_SECRET_ACCESS_KEY"),
			InsecureSkipVerify: os.Getenv("AWS_SES_INSECURE_SKIP_VERIFY") == "true",
		},
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = "static"
	}
	if cfg.Email.Provider == "" {
		cfg.Email.Provider = "noop"
	}

	return cfg, nil
}
