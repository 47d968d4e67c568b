package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Store    StoreConfig
	WhatsApp WhatsAppConfig
	Catalog  CatalogConfig
	Cart     CartConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type StoreConfig struct {
	Name string
}

type WhatsAppConfig struct {
	SellerNumber string // international format without '+'
	BaseURL      string
}

type CatalogConfig struct {
	Path string // JSON catalog file; empty means compiled-in defaults
}

type CartConfig struct {
	SessionTTL    time.Duration
	SweepSchedule string // cron expression for the abandoned-cart sweep
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
		Store: StoreConfig{
			Name: getEnv("STORE_NAME", "BrewRAIN"),
		},
		WhatsApp: WhatsAppConfig{
			SellerNumber: getEnv("WHATSAPP_SELLER_NUMBER", "6285155178234"),
			BaseURL:      getEnv("WHATSAPP_BASE_URL", "https://wa.me"),
		},
		Catalog: CatalogConfig{
			Path: getEnv("CATALOG_PATH", ""),
		},
		Cart: CartConfig{
			SessionTTL:    parseDuration(getEnv("CART_SESSION_TTL", "6h")),
			SweepSchedule: getEnv("CART_SWEEP_SCHEDULE", "*/10 * * * *"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Printf("Invalid duration %s, using default 6h", s)
		return 6 * time.Hour
	}
	return duration
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		result = append(result, strings.TrimSpace(part))
	}
	return result
}
