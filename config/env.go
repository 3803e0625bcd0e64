package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv          string
	Port            string
	ShopAPIURL      string
	ShopAPITimeout  time.Duration
	RedisURL        string
	RedisAddr       string
	RedisPassword   string
	SessionTTL      time.Duration
	SessionCookie   string
	ProductCacheTTL time.Duration
	OriginURL       string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	AppConfig = &Config{
		AppEnv:          getEnv("APP_ENV", "development"),
		Port:            getEnv("APP_PORT", getEnv("PORT", "8080")),
		ShopAPIURL:      getEnv("SHOP_API_URL", "https://buyfishapi.onrender.com/api/shop"),
		ShopAPITimeout:  parseDuration(getEnv("SHOP_API_TIMEOUT", "15s"), 15*time.Second),
		RedisURL:        os.Getenv("REDIS_URL"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		SessionTTL:      parseDuration(getEnv("SESSION_TTL", "24h"), 24*time.Hour),
		SessionCookie:   getEnv("SESSION_COOKIE", "buyfish_session"),
		ProductCacheTTL: parseDuration(getEnv("PRODUCT_CACHE_TTL", "5m"), 5*time.Minute),
		OriginURL:       os.Getenv("ORIGIN_URL"),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
	log.Printf("Shop API: %s", AppConfig.ShopAPIURL)
}

func parseDuration(value string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return def
	}
	return d
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
