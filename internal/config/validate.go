package config

import (
	"fmt"
	"net/mail"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Auth.MinPasswordLength < 1 {
		return fmt.Errorf("auth.min_password_length must be >= 1 (got %d)", c.Auth.MinPasswordLength)
	}

	if _, err := mail.ParseAddress(c.Auth.SeedAdminEmail); err != nil {
		return fmt.Errorf("auth.seed_admin_email: %w", err)
	}

	if len(c.Auth.SeedAdminPassword) < c.Auth.MinPasswordLength {
		return fmt.Errorf("auth.seed_admin_password shorter than auth.min_password_length (%d)",
			c.Auth.MinPasswordLength)
	}

	if c.Uploads.MaxSizeBytes <= 0 {
		return fmt.Errorf("uploads.max_size_bytes must be > 0 (got %d)", c.Uploads.MaxSizeBytes)
	}

	return nil
}
