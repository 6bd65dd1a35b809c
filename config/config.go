package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_URL      string
	CORS_ORIGIN string
	DEBUG       bool

	BLOB_CONNECTION_STRING string
	BLOB_CONTAINER         string
	BLOB_PUBLIC_BASE_URL   string
)

// LoadEnv validates the whole environment once at startup.
// Handlers never re-check env presence; a missing required value is fatal here.
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")
	DEBUG = getEnv("DEBUG", "false") == "true"

	BLOB_CONNECTION_STRING = mustEnv("AZURE_STORAGE_CONNECTION_STRING")
	BLOB_CONTAINER = getEnv("BLOB_CONTAINER", "southbound-images")
	BLOB_PUBLIC_BASE_URL = getEnv("BLOB_PUBLIC_BASE_URL", "")
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
