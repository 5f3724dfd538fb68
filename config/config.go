package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig carries every runtime setting of the statement server.
type AppConfig struct {
	ServerAddr         string
	LogLevel           string
	CORSOrigins        string
	MaxUploadSizeBytes int64
	RunTTL             time.Duration
	RunSweepInterval   time.Duration
}

var Cfg *AppConfig

// Load reads .env (when present) and the OS environment into Cfg.
// Passing explicit file paths loads those instead of ./.env. Missing keys
// fall back to defaults that suit a local deployment.
func Load(envFiles ...string) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Println("Info: No .env file found, relying on OS environment variables and defaults. Error (if any):", err)
	} else {
		log.Println(".env file loaded successfully.")
	}

	Cfg = &AppConfig{
		ServerAddr:         getEnv("SERVER_ADDR", ":8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		CORSOrigins:        getEnv("CORS_ORIGINS", "*"),
		MaxUploadSizeBytes: int64(getEnvAsInt("MAX_UPLOAD_MB", 10)) * 1024 * 1024,
		RunTTL:             time.Duration(getEnvAsInt("RUN_TTL_MINUTES", 60)) * time.Minute,
		RunSweepInterval:   time.Duration(getEnvAsInt("RUN_SWEEP_MINUTES", 10)) * time.Minute,
	}

	log.Printf("Configuration loaded: Addr=%s, LogLevel=%s, RunTTL=%s",
		Cfg.ServerAddr, Cfg.LogLevel, Cfg.RunTTL)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid integer value for %s ('%s'), using default: %d", key, valueStr, fallback)
	return fallback
}
