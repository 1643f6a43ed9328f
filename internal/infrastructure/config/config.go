package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

type Config struct {
	Development bool
	Port        string
	// Public base URL used for notification and back URLs
	AppURL string

	// Mercado Pago
	MercadoPagoAccessToken   string
	MercadoPagoWebhookSecret string
	MercadoPagoLookupTimeout time.Duration
	PaymentGatewayMock       bool

	// Storage
	StorageBackend   string
	AWSRegion        string
	AWSAccessKeyID   string
	AWSSecretKey     string
	DynamoDBEndpoint string
	PaymentsTable    string
	PoolsTable       string
	UsersTable       string

	FreePoolLimit int
}

// LoadConfig loads and validates the configuration from environment
// variables. The .env file is loaded by godotenv/autoload in the entrypoint.
func LoadConfig() (*Config, error) {
	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv reads the configuration without validating it, so callers can
// apply overrides first.
func FromEnv() *Config {
	return &Config{
		Development: getEnvAsBool("DEVELOPMENT", false),
		Port:        getEnv("PORT", "8080"),
		AppURL:      strings.TrimRight(getEnv("APP_URL", ""), "/"),

		MercadoPagoAccessToken:   getEnv("MERCADOPAGO_ACCESS_TOKEN", ""),
		MercadoPagoWebhookSecret: getEnv("MERCADOPAGO_WEBHOOK_SECRET", ""),
		MercadoPagoLookupTimeout: getEnvAsDuration("MERCADOPAGO_LOOKUP_TIMEOUT", 10*time.Second),
		PaymentGatewayMock:       isMockEnabled("PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"),

		StorageBackend:   strings.ToLower(getEnv("STORAGE_BACKEND", StorageDynamoDB)),
		AWSRegion:        getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:   getEnv("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretKey:     getEnv("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint: getEnv("DYNAMODB_ENDPOINT", ""),
		PaymentsTable:    getEnv("PAYMENTS_TABLE", "payments"),
		PoolsTable:       getEnv("POOLS_TABLE", "vaquinhas"),
		UsersTable:       getEnv("USERS_TABLE", "users"),

		FreePoolLimit: getEnvAsInt("FREE_POOL_LIMIT", 3),
	}
}

// Validate checks that all required configuration fields are properly set
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.StorageBackend != StorageDynamoDB && c.StorageBackend != StorageMemory {
		return fmt.Errorf("invalid STORAGE_BACKEND %q: expected %s or %s", c.StorageBackend, StorageDynamoDB, StorageMemory)
	}
	if c.FreePoolLimit <= 0 {
		return fmt.Errorf("FREE_POOL_LIMIT must be positive")
	}
	if c.MercadoPagoLookupTimeout <= 0 {
		return fmt.Errorf("MERCADOPAGO_LOOKUP_TIMEOUT must be positive")
	}
	if !c.PaymentGatewayMock && c.MercadoPagoWebhookSecret == "" {
		return fmt.Errorf("MERCADOPAGO_WEBHOOK_SECRET is required")
	}
	return nil
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(name); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBool(name string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(name); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func isMockEnabled(keys ...string) bool {
	for _, key := range keys {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

// getEnvAsDuration accepts Go durations ("5s") or plain seconds ("5").
func getEnvAsDuration(name string, defaultValue time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(name)
	if !exists || valueStr == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
