package config

import (
	"fmt"
	"os"
	"time"
)

// AuthConfig holds configuration for API authentication.
type AuthConfig struct {
	// Secret signs issued JWT tokens. Loaded from JWT_SECRET.
	Secret string

	// TokenTTL is the lifetime of issued tokens.
	// Default: 24 hours.
	TokenTTL time.Duration

	// AdminUser and AdminPassword are the credentials accepted by the
	// login endpoint.
	AdminUser     string
	AdminPassword string
}

// LoadAuthConfig loads authentication configuration from environment variables.
func LoadAuthConfig() (*AuthConfig, error) {
	config := &AuthConfig{
		Secret:        os.Getenv("JWT_SECRET"),
		TokenTTL:      getEnvDuration("JWT_TOKEN_TTL", 24*time.Hour),
		AdminUser:     getEnvOrDefault("ADMIN_USER", "admin"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid auth configuration: %w", err)
	}

	return config, nil
}

// Validate checks configuration correctness.
func (c *AuthConfig) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("JWT_SECRET cannot be empty")
	}

	if len(c.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}

	if c.TokenTTL <= 0 {
		return fmt.Errorf("JWT_TOKEN_TTL must be positive")
	}

	if c.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD cannot be empty")
	}

	return nil
}
