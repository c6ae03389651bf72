package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Settings holds everything the storefront reads from the environment.
type Settings struct {
	Port string

	// StoreBackend selects the persistence medium: bolt (default), memory
	// or postgres.
	StoreBackend string
	StorePath    string
	DatabaseURL  string

	// Catalog sources: http(s) URLs or local JSON file paths.
	ServicesURL string
	ProductsURL string

	LogMode     string
	LogFile     string
	SlowRequest time.Duration

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string
}

// Load reads .env (when present) and the process environment.
func Load() *Settings {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	return &Settings{
		Port:         getEnv("PORT", "8080"),
		StoreBackend: getEnv("STORE_BACKEND", "bolt"),
		StorePath:    getEnv("STORE_PATH", "storefront.db"),
		DatabaseURL:  os.Getenv("DB_URL"),

		ServicesURL: getEnv("CATALOG_SERVICES_URL", "data/services.json"),
		ProductsURL: getEnv("CATALOG_PRODUCTS_URL", "data/products.json"),

		LogMode:     getEnv("LOG_MODE", "development"),
		LogFile:     os.Getenv("LOG_FILE"),
		SlowRequest: time.Duration(cast.ToInt(getEnv("SLOW_REQUEST_MS", "200"))) * time.Millisecond,

		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFrom:       os.Getenv("TWILIO_PHONE_NUMBER"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
