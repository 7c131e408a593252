package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/commercekit/payfix/internal/domain"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Fixtures FixturesConfig
	Output   OutputConfig
	Logger   LoggerConfig
}

// FixturesConfig controls batch generation
type FixturesConfig struct {
	Count    int                    // records per batch
	Seed     int64                  // 0 means unseeded (fresh batch every run)
	Statuses []domain.PaymentStatus // empty means the full status set
	Methods  []domain.PaymentMethod // empty means the full method set
}

// OutputConfig controls where the generated batch is written
type OutputConfig struct {
	Path   string // empty means stdout
	Pretty bool
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level       string // debug, info, warn, error
	Development bool
}

// LoadFromEnv loads configuration from the environment, reading a local
// .env file first if one exists.
func LoadFromEnv() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := &Config{
		Fixtures: FixturesConfig{
			Count: getEnvAsInt("FIXTURE_COUNT", 50),
			Seed:  getEnvAsInt64("FIXTURE_SEED", 0),
		},
		Output: OutputConfig{
			Path:   getEnv("OUTPUT_PATH", ""),
			Pretty: getEnvAsBool("OUTPUT_PRETTY", true),
		},
		Logger: LoggerConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnvAsBool("LOG_DEVELOPMENT", false),
		},
	}

	if cfg.Fixtures.Count < 0 {
		return nil, fmt.Errorf("FIXTURE_COUNT must not be negative, got %d", cfg.Fixtures.Count)
	}

	statuses, err := parseStatusList(os.Getenv("FIXTURE_STATUSES"))
	if err != nil {
		return nil, fmt.Errorf("FIXTURE_STATUSES: %w", err)
	}
	cfg.Fixtures.Statuses = statuses

	methods, err := parseMethodList(os.Getenv("FIXTURE_METHODS"))
	if err != nil {
		return nil, fmt.Errorf("FIXTURE_METHODS: %w", err)
	}
	cfg.Fixtures.Methods = methods

	return cfg, nil
}

func parseStatusList(raw string) ([]domain.PaymentStatus, error) {
	if raw == "" {
		return nil, nil
	}
	var statuses []domain.PaymentStatus
	for _, part := range strings.Split(raw, ",") {
		status, err := domain.ParsePaymentStatus(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func parseMethodList(raw string) ([]domain.PaymentMethod, error) {
	if raw == "" {
		return nil, nil
	}
	var methods []domain.PaymentMethod
	for _, part := range strings.Split(raw, ",") {
		method, err := domain.ParsePaymentMethod(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}
	return methods, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
