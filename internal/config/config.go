package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string        `yaml:"server_port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`

	// Database configuration
	DBHost              string        `yaml:"db_host"`
	DBPort              int           `yaml:"db_port"`
	DBUser              string        `yaml:"db_user"`
	DBPassword          string        `yaml:"db_password"`
	DBName              string        `yaml:"db_name"`
	DBSSLMode           string        `yaml:"db_ssl_mode"`
	DBMaxConns          int32         `yaml:"db_max_conns"`
	DBMinConns          int32         `yaml:"db_min_conns"`
	DBMaxConnLifetime   time.Duration `yaml:"db_max_conn_lifetime"`
	DBMaxConnIdleTime   time.Duration `yaml:"db_max_conn_idle_time"`
	DBHealthCheckPeriod time.Duration `yaml:"db_health_check_period"`

	// Blog configuration
	PageSize       int    `yaml:"page_size"`
	MigrationsPath string `yaml:"migrations_path"`

	// Logging configuration
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// Metrics configuration
	MetricsInterval time.Duration `yaml:"metrics_interval"`
}

// Defaults returns the configuration used when neither a file nor the
// environment sets a value.
func Defaults() *Config {
	return &Config{
		ServerPort:          "8080",
		ReadTimeout:         30 * time.Second,
		WriteTimeout:        30 * time.Second,
		IdleTimeout:         120 * time.Second,
		DBHost:              "localhost",
		DBPort:              5432,
		DBUser:              "postgres",
		DBPassword:          "postgres",
		DBName:              "blog",
		DBSSLMode:           "disable",
		DBMaxConns:          25,
		DBMinConns:          5,
		DBMaxConnLifetime:   time.Hour,
		DBMaxConnIdleTime:   30 * time.Minute,
		DBHealthCheckPeriod: time.Minute,
		PageSize:            30,
		MigrationsPath:      "migrations",
		LogLevel:            "info",
		LogFormat:           "json",
		MetricsInterval:     15 * time.Second,
	}
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile loads configuration from an optional YAML file and then applies
// environment variable overrides. An empty path skips the file.
func LoadFile(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overrides fields whose environment variable is set.
func (c *Config) applyEnv() {
	c.ServerPort = getEnv("SERVER_PORT", c.ServerPort)
	c.ReadTimeout = getEnvDuration("HTTP_READ_TIMEOUT", c.ReadTimeout)
	c.WriteTimeout = getEnvDuration("HTTP_WRITE_TIMEOUT", c.WriteTimeout)
	c.IdleTimeout = getEnvDuration("HTTP_IDLE_TIMEOUT", c.IdleTimeout)
	c.DBHost = getEnv("DB_HOST", c.DBHost)
	c.DBPort = getEnvInt("DB_PORT", c.DBPort)
	c.DBUser = getEnv("DB_USER", c.DBUser)
	c.DBPassword = getEnv("DB_PASSWORD", c.DBPassword)
	c.DBName = getEnv("DB_NAME", c.DBName)
	c.DBSSLMode = getEnv("DB_SSL_MODE", c.DBSSLMode)
	c.DBMaxConns = int32(getEnvInt("DB_MAX_CONNS", int(c.DBMaxConns)))
	c.DBMinConns = int32(getEnvInt("DB_MIN_CONNS", int(c.DBMinConns)))
	c.DBMaxConnLifetime = getEnvDuration("DB_MAX_CONN_LIFETIME", c.DBMaxConnLifetime)
	c.DBMaxConnIdleTime = getEnvDuration("DB_MAX_CONN_IDLE_TIME", c.DBMaxConnIdleTime)
	c.DBHealthCheckPeriod = getEnvDuration("DB_HEALTH_CHECK_PERIOD", c.DBHealthCheckPeriod)
	c.PageSize = getEnvInt("BLOG_PAGE_SIZE", c.PageSize)
	c.MigrationsPath = getEnv("MIGRATIONS_PATH", c.MigrationsPath)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)
	c.MetricsInterval = getEnvDuration("METRICS_INTERVAL", c.MetricsInterval)
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS must not exceed DB_MAX_CONNS")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("BLOG_PAGE_SIZE must be at least 1")
	}
	if c.MetricsInterval <= 0 {
		return fmt.Errorf("METRICS_INTERVAL must be positive")
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text")
	}
	return nil
}

// DatabaseURL returns a postgres:// connection URL usable by pgx and migrate.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSSLMode}}.Encode(),
	}
	return u.String()
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
