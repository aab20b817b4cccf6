package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	GinMode       string
	MongoURI      string
	MongoDatabase string
	RabbitMQURI   string
	EventExchange string
	LLMBaseURL    string
	LLMAPIKey     string
	LLMModel      string
	LLMTimeout    time.Duration
	JWTSecret     string
	SweepInterval time.Duration
	TimerDuration int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:          getEnvOrDefault("PORT", "8000"),
		GinMode:       getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:      getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGO_DATABASE", "interview_service"),
		RabbitMQURI:   getEnvOrDefault("RABBITMQ_URI", ""),
		EventExchange: getEnvOrDefault("RABBITMQ_EXCHANGE", ""),
		LLMBaseURL:    getEnvOrDefault("LLM_BASE_URL", "http://localhost:11434/v1"),
		LLMAPIKey:     getEnvOrDefault("LLM_API_KEY", ""),
		LLMModel:      getEnvOrDefault("LLM_MODEL", "gemini-2.0-flash-lite"),
		LLMTimeout:    getDurationOrDefault("LLM_TIMEOUT_SECONDS", 8*time.Second),
		JWTSecret:     getEnvOrDefault("JWT_SECRET", "your-jwt-secret-key"),
		SweepInterval: getDurationOrDefault("SWEEP_INTERVAL_SECONDS", 30*time.Second),
		TimerDuration: getIntOrDefault("TIMER_DURATION_SECONDS", 1800),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return time.Duration(n) * time.Second
		}
	}
	return defaultValue
}
