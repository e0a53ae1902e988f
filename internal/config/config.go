package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config carries everything the binaries need, resolved once at startup.
// Handlers receive it through constructors; nothing reads the environment
// after Load returns.
type Config struct {
	Port     string
	RunLocal bool

	OrdersTable   string
	CouponsTable  string
	UsersTable    string
	ProductsTable string
	ContactTable  string

	OrderEventsQueueURL string
	MetricsNamespace    string

	Razorpay RazorpayConfig
}

// RazorpayConfig holds the payment gateway credentials. When either key is
// empty the payments component reports itself unavailable instead of
// half-initializing.
type RazorpayConfig struct {
	KeyID     string
	KeySecret string
	BaseURL   string
}

// Configured reports whether gateway credentials were provided.
func (r RazorpayConfig) Configured() bool {
	return r.KeyID != "" && r.KeySecret != ""
}

// Load reads configuration from the environment. A .env file is loaded first
// when present, so local runs work without exporting anything.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("config: loaded .env file")
	}

	cfg := &Config{
		Port:                getEnv("PORT", "8080"),
		RunLocal:            getBool("RUN_LOCAL"),
		OrdersTable:         getEnv("ORDERS_TABLE", "orders"),
		CouponsTable:        getEnv("COUPONS_TABLE", "coupons"),
		UsersTable:          getEnv("USERS_TABLE", "users"),
		ProductsTable:       getEnv("PRODUCTS_TABLE", "products"),
		ContactTable:        getEnv("CONTACT_TABLE", "contact_messages"),
		OrderEventsQueueURL: os.Getenv("ORDER_EVENTS_QUEUE_URL"),
		MetricsNamespace:    getEnv("METRICS_NAMESPACE", "Orderflow"),
		Razorpay: RazorpayConfig{
			KeyID:     os.Getenv("RAZORPAY_KEY_ID"),
			KeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
			BaseURL:   getEnv("RAZORPAY_BASE_URL", "https://api.razorpay.com"),
		},
	}

	if cfg.OrdersTable == "" {
		return nil, fmt.Errorf("config: ORDERS_TABLE must not be empty")
	}

	if !cfg.Razorpay.Configured() {
		log.Warn().Msg("config: razorpay credentials not set, online payments disabled")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && b
}
