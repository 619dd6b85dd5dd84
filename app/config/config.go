package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the staff auth service
type Config struct {
	// Server
	Port     string `env:"PORT" default:"9600"`
	Host     string `env:"HOST" default:"0.0.0.0"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`

	// Database
	DatabaseHost     string `env:"DB_HOST" default:"staff-postgres"`
	DatabasePort     string `env:"DB_PORT" default:"5432"`
	DatabaseName     string `env:"DB_NAME" default:"staff_db"`
	DatabaseUser     string `env:"DB_USER" default:"staff_user"`
	DatabasePassword string `env:"DB_PASSWORD" required:"true"`
	DatabaseSSLMode  string `env:"DB_SSL_MODE" default:"require"`

	// Tokens
	TokenSecretKey string        `env:"TOKEN_SECRET_KEY" required:"true"`
	TokenTTL       time.Duration `env:"TOKEN_TTL" default:"5h"`

	// Identity rules
	CompanyDomain string `env:"COMPANY_DOMAIN" default:"cfe.mx"`
	BcryptCost    int    `env:"BCRYPT_COST" default:"0"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9600")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	config.DatabaseHost = getEnvOrDefault("DB_HOST", "staff-postgres")
	config.DatabasePort = getEnvOrDefault("DB_PORT", "5432")
	config.DatabaseName = getEnvOrDefault("DB_NAME", "staff_db")
	config.DatabaseUser = getEnvOrDefault("DB_USER", "staff_user")
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	if config.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", "require")

	// Token configuration
	config.TokenSecretKey = os.Getenv("TOKEN_SECRET_KEY")
	if config.TokenSecretKey == "" {
		return nil, fmt.Errorf("TOKEN_SECRET_KEY is required")
	}

	var err error
	tokenTTLStr := getEnvOrDefault("TOKEN_TTL", "5h")
	config.TokenTTL, err = time.ParseDuration(tokenTTLStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	// Identity rules
	config.CompanyDomain = getEnvOrDefault("COMPANY_DOMAIN", "cfe.mx")

	bcryptCostStr := getEnvOrDefault("BCRYPT_COST", "0")
	config.BcryptCost, err = strconv.Atoi(bcryptCostStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.ParseInt(c.Port, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Token lifetime below a minute means something is misconfigured
	if c.TokenTTL < time.Minute {
		return fmt.Errorf("token TTL must be at least 1 minute, got: %v", c.TokenTTL)
	}

	if c.CompanyDomain == "" {
		return fmt.Errorf("company domain must not be empty")
	}
	if strings.Contains(c.CompanyDomain, "@") {
		return fmt.Errorf("company domain must not contain '@': %s", c.CompanyDomain)
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
