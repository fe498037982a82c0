package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	JWTSecret      string
	JWTExpiry      string
	DataDir        string
	ProductsFile   string
	TaxRatePercent int
	GuestShipping  int
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	taxRate := 5
	if v := os.Getenv("TAX_RATE_PERCENT"); v != "" {
		taxRate, _ = strconv.Atoi(v)
	}

	guestShipping := 150
	if v := os.Getenv("GUEST_SHIPPING_FEE"); v != "" {
		guestShipping, _ = strconv.Atoi(v)
	}

	AppConfig = &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("APP_PORT", getEnv("PORT", "3000")),
		JWTSecret:      getEnv("JWT_SECRET", "secret"),
		JWTExpiry:      getEnv("JWT_EXPIRY", "24h"),
		DataDir:        getEnv("DATA_DIR", "./data"),
		ProductsFile:   getEnv("PRODUCTS_FILE", "products.json"),
		TaxRatePercent: taxRate,
		GuestShipping:  guestShipping,
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
