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

// ConfigRequirements defines required configuration for each environment.
// Names are the secret file names; CI reports them as environment variables.
type ConfigRequirements struct {
	RequiredSettings []string
	RequiredSecrets  []string
}

var (
	// Environment-specific requirements
	requirements = map[Environment]ConfigRequirements{
		Development: {
			RequiredSettings: []string{"db_host", "db_port", "db_name"},
			RequiredSecrets:  []string{"db_user", "db_password", "jwt_secret"},
		},
		Test: {
			RequiredSettings: []string{"db_host", "db_port", "db_name"},
			RequiredSecrets:  []string{"db_user", "db_password", "jwt_secret"},
		},
		CI: {
			RequiredSettings: []string{"db_host", "db_port", "db_user", "db_name", "db_ssl_mode"},
			RequiredSecrets:  []string{"db_password", "jwt_secret"},
		},
		Production: {
			RequiredSettings: []string{"server_host", "db_host", "db_port", "db_name", "db_ssl_mode", "redis_host", "redis_port"},
			RequiredSecrets:  []string{"db_user", "db_password", "jwt_secret", "redis_password"},
		},
	}
)

// ValidateConfig checks if the configuration meets the requirements for its environment
func ValidateConfig(cfg *Config) error {
	env := cfg.Environment
	if env == "" {
		env = GetEnvironment()
	}
	reqs, ok := requirements[env]
	if !ok {
		return ValidationError{Field: "ENV", Message: fmt.Sprintf("unknown environment %q", env)}
	}

	var errors []string
	for _, name := range reqs.RequiredSettings {
		if cfg.value(name) == "" {
			errors = append(errors, missing(env, name, "setting"))
		}
	}
	for _, name := range reqs.RequiredSecrets {
		if cfg.value(name) == "" {
			errors = append(errors, missing(env, name, "secret"))
		}
	}
	if cfg.RateLimitPerMinute < 0 {
		errors = append(errors, "RATE_LIMIT_PER_MINUTE must not be negative")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}
	return nil
}

func missing(env Environment, name, kind string) string {
	if env == CI {
		return fmt.Sprintf("required environment variable %s is not set", strings.ToUpper(name))
	}
	return fmt.Sprintf("required %s %s is not set", kind, name)
}
