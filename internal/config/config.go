package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the process settings shared by the api, worker and CLI.
type Config struct {
	HTTPAddr         string
	RunLocal         bool
	LogLevel         string
	AWSRegion        string
	AWSEndpoint      string
	OrdersTable      string
	IdempotencyTable string
	QueueURL         string
	MetricsNamespace string
	WhatsAppNumber   string
	WhatsAppBaseURL  string
	CatalogPath      string
	PollInterval     time.Duration
	IdempotencyTTL   time.Duration
}

// Load reads the environment, first applying the given .env files (or
// ./.env when none are named). Missing files are ignored and variables
// already set in the environment win over file values.
func Load(envFiles ...string) (Config, error) {
	_ = godotenv.Load(envFiles...)

	runLocal, err := strconv.ParseBool(getenv("RUN_LOCAL", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("RUN_LOCAL: %w", err)
	}
	poll, err := time.ParseDuration(getenv("ORDERS_POLL_INTERVAL", "2s"))
	if err != nil {
		return Config{}, fmt.Errorf("ORDERS_POLL_INTERVAL: %w", err)
	}
	ttl, err := time.ParseDuration(getenv("IDEMPOTENCY_TTL", "48h"))
	if err != nil {
		return Config{}, fmt.Errorf("IDEMPOTENCY_TTL: %w", err)
	}
	if poll <= 0 || ttl <= 0 {
		return Config{}, fmt.Errorf("durations must be positive: poll=%s ttl=%s", poll, ttl)
	}

	return Config{
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		RunLocal:         runLocal,
		LogLevel:         getenv("LOG_LEVEL", "info"),
		AWSRegion:        getenv("AWS_REGION", "us-east-1"),
		AWSEndpoint:      os.Getenv("AWS_ENDPOINT_OVERRIDE"),
		OrdersTable:      getenv("ORDERS_TABLE", "orders"),
		IdempotencyTable: getenv("IDEMPOTENCY_TABLE", "idempotency"),
		QueueURL:         os.Getenv("ORDERS_QUEUE_URL"),
		MetricsNamespace: getenv("METRICS_NAMESPACE", "Potter/Storefront"),
		WhatsAppNumber:   os.Getenv("WHATSAPP_NUMBER"),
		WhatsAppBaseURL:  getenv("WHATSAPP_BASE_URL", "https://wa.me"),
		CatalogPath:      os.Getenv("CATALOG_PATH"),
		PollInterval:     poll,
		IdempotencyTTL:   ttl,
	}, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
