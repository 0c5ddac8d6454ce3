package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that every value the server cannot run without is
// present. Redis settings are deliberately not required; the server
// degrades to running without rate limiting.
func ValidateConfig(cfg *Config) error {
	var errs []string

	required := []struct {
		field string
		value string
	}{
		{"SERVER_PORT", cfg.ServerPort},
		{"DB_HOST", cfg.DBHost},
		{"DB_PORT", cfg.DBPort},
		{"DB_USER or db_user secret", cfg.DBUser},
		{"DB_NAME", cfg.DBName},
		{"JWT_SECRET or jwt_secret secret", cfg.JWTSecret},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Sprintf("required configuration %s is not set", r.field))
		}
	}

	if !IsDevelopment() && cfg.DBPassword == "" {
		errs = append(errs, "DB_PASSWORD or db_password secret is required outside development")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "\n"))
	}

	return nil
}
