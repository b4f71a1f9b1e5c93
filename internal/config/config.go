package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	GoEnv string `env:"GO_ENV" default:"development"`

	// Service
	HTTPPort int `env:"HTTP_PORT" default:"8080"`

	// Gemini gateway
	GeminiAPIKey        string        `env:"GEMINI_API_KEY" required:"true"`
	GeminiModel         string        `env:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	AIRequestTimeout    time.Duration `env:"AI_REQUEST_TIMEOUT" default:"30s"`
	AIRequestsPerMinute int           `env:"AI_REQUESTS_PER_MINUTE" default:"30"`

	// Development
	CORSOrigins  []string `env:"CORS_ORIGINS" default:"http://localhost:3000"`
	SeedDemoData bool     `env:"SEED_DEMO_DATA" default:"true"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// .env is optional; system env vars win either way
	if err := godotenv.Load(".env"); err != nil {
		fmt.Printf("Warning: .env file not found: %v\n", err)
	}

	config := &Config{}

	if err := loadEnvString(&config.GoEnv, "GO_ENV", "development"); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.HTTPPort, "HTTP_PORT", 8080); err != nil {
		return nil, err
	}

	// Gemini
	if err := loadEnvStringRequired(&config.GeminiAPIKey, "GEMINI_API_KEY"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.GeminiModel, "GEMINI_MODEL", "gemini-2.5-flash"); err != nil {
		return nil, err
	}
	if err := loadEnvDuration(&config.AIRequestTimeout, "AI_REQUEST_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.AIRequestsPerMinute, "AI_REQUESTS_PER_MINUTE", 30); err != nil {
		return nil, err
	}

	// Development
	if err := loadEnvStringSlice(&config.CORSOrigins, "CORS_ORIGINS", []string{"http://localhost:3000"}); err != nil {
		return nil, err
	}
	if err := loadEnvBool(&config.SeedDemoData, "SEED_DEMO_DATA", true); err != nil {
		return nil, err
	}

	return config, nil
}

// Helper functions for type conversion and validation
func loadEnvString(target *string, key, defaultValue string) error {
	if value := os.Getenv(key); value != "" {
		*target = value
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvStringRequired(target *string, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return fmt.Errorf("required environment variable %s is not set", key)
	}
	*target = value
	return nil
}

func loadEnvInt(target *int, key string, defaultValue int) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvBool(target *bool, key string, defaultValue bool) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvDuration(target *time.Duration, key string, defaultValue time.Duration) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvStringSlice(target *[]string, key string, defaultValue []string) error {
	if value := os.Getenv(key); value != "" {
		*target = strings.Split(value, ",")
		for i, v := range *target {
			(*target)[i] = strings.TrimSpace(v)
		}
	} else {
		*target = defaultValue
	}
	return nil
}

// Validate performs validation on the loaded configuration
func (c *Config) Validate() error {
	var errors []string

	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		errors = append(errors, "HTTP_PORT must be between 1 and 65535")
	}
	if c.AIRequestTimeout <= 0 {
		errors = append(errors, "AI_REQUEST_TIMEOUT must be positive")
	}
	if c.AIRequestsPerMinute < 1 {
		errors = append(errors, "AI_REQUESTS_PER_MINUTE must be at least 1")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errors, "; "))
	}
	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}
