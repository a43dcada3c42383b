package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all process configuration, read once at startup.
type Config struct {
	Port          string
	APIKey        string
	AssistantName string
	AssistantHost string
	Model         string
	UseMock       bool
	UploadDir     string
	DBPath        string
	WatchUploads  bool
}

// Load reads .env (if present) and the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment only")
	}

	return &Config{
		Port:          getEnv("PORT", "8000"),
		APIKey:        getEnv("PINECONE_API_KEY", ""),
		AssistantName: getEnv("ASSISTANT_NAME", "manulassistan"),
		AssistantHost: getEnv("ASSISTANT_HOST", "https://prod-1-data.ke.pinecone.io"),
		Model:         getEnv("ASSISTANT_MODEL", "gpt-4o"),
		UseMock:       getEnvAsBool("ASSISTANT_MOCK", false),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		DBPath:        getEnv("DB_PATH", "assistant.db"),
		WatchUploads:  getEnvAsBool("WATCH_UPLOADS", false),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
