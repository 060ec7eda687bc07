package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultSecretsDir   = "/run/secrets"
	defaultCacheTTL     = 10 * time.Minute
	defaultRateLimit    = 60
	defaultLogMode      = "development"
	defaultAWSRegion    = "us-east-1"
	defaultServerPort   = "8080"
	defaultReportExpiry = 15 * time.Minute
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort  string
	ServerHost  string
	CORSOrigins []string

	// Database configuration
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// Engine tuning
	LogMode            string
	CacheTTL           time.Duration
	RateLimitPerMinute int

	// Report export; disabled when ReportBucket is empty
	ReportBucket string
	ReportExpiry time.Duration
	AWSRegion    string
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{Environment: env}

	switch env {
	case CI:
		if err := loadCIConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load CI configuration: %w", err)
		}
	case Development, Test:
		loadDevConfig(cfg)
	case Production:
		loadProdConfig(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := loadTuning(cfg); err != nil {
		return nil, err
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadCIConfig loads configuration for CI using only environment variables.
// Secrets come from the TEST_ prefixed variables the pipeline injects.
func loadCIConfig(cfg *Config) error {
	cfg.ServerPort = os.Getenv("SERVER_PORT")
	cfg.ServerHost = os.Getenv("SERVER_HOST")
	cfg.DBHost = os.Getenv("DB_HOST")
	cfg.DBPort = os.Getenv("DB_PORT")
	cfg.DBUser = os.Getenv("DB_USER")
	cfg.DBName = os.Getenv("DB_NAME")
	cfg.DBSSLMode = os.Getenv("DB_SSL_MODE")
	cfg.RedisHost = os.Getenv("REDIS_HOST")
	cfg.RedisPort = os.Getenv("REDIS_PORT")

	cfg.DBPassword = os.Getenv("TEST_DB_PASSWORD")
	if cfg.DBPassword == "" {
		return fmt.Errorf("TEST_DB_PASSWORD environment variable is required in CI environment")
	}
	cfg.JWTSecret = os.Getenv("TEST_JWT_SECRET")
	cfg.RedisPassword = os.Getenv("TEST_REDIS_PASSWORD")
	cfg.RedisURL = os.Getenv("TEST_REDIS_URL")
	cfg.RedisDB = 0

	return nil
}

// loadDevConfig reads Docker secrets and falls back to the matching upper
// case environment variable for anything not mounted.
func loadDevConfig(cfg *Config) {
	for name, dst := range cfg.settings() {
		v := readSecret(name)
		if v == "" {
			v = os.Getenv(strings.ToUpper(name))
		}
		*dst = v
	}
	cfg.RedisDB = 0
}

// loadProdConfig loads configuration for production using only Docker secrets
func loadProdConfig(cfg *Config) {
	for name, dst := range cfg.settings() {
		*dst = readSecret(name)
	}
	cfg.RedisDB = 0
}

// settings maps secret file names to the fields they populate.
func (c *Config) settings() map[string]*string {
	return map[string]*string{
		"server_port":    &c.ServerPort,
		"server_host":    &c.ServerHost,
		"db_host":        &c.DBHost,
		"db_port":        &c.DBPort,
		"db_user":        &c.DBUser,
		"db_password":    &c.DBPassword,
		"db_name":        &c.DBName,
		"db_ssl_mode":    &c.DBSSLMode,
		"redis_host":     &c.RedisHost,
		"redis_port":     &c.RedisPort,
		"redis_password": &c.RedisPassword,
		"redis_url":      &c.RedisURL,
		"jwt_secret":     &c.JWTSecret,
	}
}

// value returns the loaded value of a named setting.
func (c *Config) value(name string) string {
	if p, ok := c.settings()[name]; ok {
		return *p
	}
	return ""
}

// loadTuning reads the non-secret knobs, which come from plain environment
// variables in every environment.
func loadTuning(cfg *Config) error {
	var err error
	if cfg.ServerPort == "" {
		cfg.ServerPort = defaultServerPort
	}
	cfg.LogMode = envString("LOG_MODE", defaultLogMode)
	if cfg.Environment == Production && os.Getenv("LOG_MODE") == "" {
		cfg.LogMode = "production"
	}
	if cfg.CacheTTL, err = envDuration("CACHE_TTL", defaultCacheTTL); err != nil {
		return err
	}
	if cfg.RateLimitPerMinute, err = envInt("RATE_LIMIT_PER_MINUTE", defaultRateLimit); err != nil {
		return err
	}
	if cfg.ReportExpiry, err = envDuration("REPORT_URL_EXPIRY", defaultReportExpiry); err != nil {
		return err
	}
	cfg.CORSOrigins = envList("CORS_ORIGINS")
	cfg.ReportBucket = os.Getenv("REPORT_BUCKET")
	cfg.AWSRegion = envString("AWS_REGION", defaultAWSRegion)
	return nil
}

// DSN returns the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// RedisConfigured reports whether enough redis settings exist to connect.
func (c *Config) RedisConfigured() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = defaultSecretsDir
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, ValidationError{Field: key, Message: fmt.Sprintf("must be a positive integer, got %q", v)}
	}
	return n, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, ValidationError{Field: key, Message: fmt.Sprintf("must be a positive duration, got %q", v)}
	}
	return d, nil
}

func envList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
