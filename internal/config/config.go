// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Push     PushConfig
	Queue    QueueConfig
	Sweep    SweepConfig
}

type ServerConfig struct {
	GRPCPort         string
	Environment      string
	AutoMigrate      bool
	EnableReflection bool
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type PushConfig struct {
	BaseURL     string
	Timeout     time.Duration
	TestingMode bool
}

type QueueConfig struct {
	Workers     int
	BufferSize  int
	MaxAttempts int
	RetryDelay  time.Duration
	JobTimeout  time.Duration
}

type SweepConfig struct {
	Enabled bool
	// Hour of day (0-23, server local time) at which the due-date sweep runs.
	Hour int
}

func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			GRPCPort:         getEnv("GRPC_PORT", "50051"),
			Environment:      getEnv("ENVIRONMENT", "development"),
			AutoMigrate:      getEnvAsBool("AUTO_MIGRATE", true),
			EnableReflection: getEnvAsBool("ENABLE_REFLECTION", true),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "taskmanager"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Push: PushConfig{
			BaseURL:     getEnv("EXPO_PUSH_URL", "https://exp.host/--/api/v2/push/send"),
			Timeout:     getEnvAsDuration("EXPO_PUSH_TIMEOUT", 10*time.Second),
			TestingMode: getEnvAsBool("PUSH_TESTING_MODE", false),
		},
		Queue: QueueConfig{
			Workers:     getEnvAsInt("QUEUE_WORKERS", 4),
			BufferSize:  getEnvAsInt("QUEUE_BUFFER_SIZE", 256),
			MaxAttempts: getEnvAsInt("QUEUE_MAX_ATTEMPTS", 3),
			RetryDelay:  getEnvAsDuration("QUEUE_RETRY_DELAY", 5*time.Second),
			JobTimeout:  getEnvAsDuration("QUEUE_JOB_TIMEOUT", 30*time.Second),
		},
		Sweep: SweepConfig{
			Enabled: getEnvAsBool("DUE_DATE_SWEEP_ENABLED", true),
			Hour:    getEnvAsInt("DUE_DATE_SWEEP_HOUR", 8),
		},
	}, nil
}

// ValidateConfig checks values that would otherwise fail at runtime.
func (c *Config) ValidateConfig() error {
	if c.Queue.Workers < 1 {
		return fmt.Errorf("QUEUE_WORKERS must be at least 1, got %d", c.Queue.Workers)
	}
	if c.Queue.MaxAttempts < 1 {
		return fmt.Errorf("QUEUE_MAX_ATTEMPTS must be at least 1, got %d", c.Queue.MaxAttempts)
	}
	if c.Sweep.Hour < 0 || c.Sweep.Hour > 23 {
		return fmt.Errorf("DUE_DATE_SWEEP_HOUR must be between 0 and 23, got %d", c.Sweep.Hour)
	}
	return nil
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	// Try parsing as duration string (e.g., "15m", "24h")
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}

	return defaultValue
}
