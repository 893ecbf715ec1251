package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	JWT_SECRET  string
	JWT_TTL     int
	CORS_ORIGIN string
	AUTO_RESET  bool
	LOG_LEVEL   string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	JWT_SECRET = mustEnv("JWT_SECRET")
	JWT_TTL = getEnvAsInt("JWT_TTL_HOURS", 24)
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")
	AUTO_RESET = getEnvAsBool("AUTO_RESET", false)
	LOG_LEVEL = getEnv("LOG_LEVEL", "info")

	SetLogLevel(LOG_LEVEL)
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Invalid integer for %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return v
}

func getEnvAsBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("Invalid boolean for %s=%q, using %t", key, raw, fallback)
		return fallback
	}
	return v
}
