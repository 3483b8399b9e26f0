package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL  string
	HTTPPort     string
	LogLevel     string
	Analyzer     string // "stub" or "gemini"
	GeminiAPIKey string
	ScanDelayMS  int // simulated latency of the stub analyzer
}

var AppConfig Config

func LoadConfig() {
	err := godotenv.Load() // Load .env file if it exists
	if err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = Config{
		DatabaseURL:  getEnv("DATABASE_URL", "food_tracker.db"),
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
		Analyzer:     getEnv("ANALYZER", "stub"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		ScanDelayMS:  getEnvAsInt("SCAN_DELAY_MS", 2000),
	}

	if AppConfig.Analyzer != "stub" && AppConfig.Analyzer != "gemini" {
		log.Fatalf("ANALYZER must be \"stub\" or \"gemini\", got %q", AppConfig.Analyzer)
	}

	if AppConfig.Analyzer == "gemini" && AppConfig.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable is required when ANALYZER=gemini")
	}
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
