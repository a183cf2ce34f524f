package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server      ServerConfig
	HuggingFace HuggingFaceConfig
	Analysis    AnalysisConfig
	Session     SessionConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type HuggingFaceConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	Timeout     time.Duration
}

type AnalysisConfig struct {
	MaxResumeChars int
	MaxRoleSkills  int
}

type SessionConfig struct {
	TTL      time.Duration
	JoinWait time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		HuggingFace: HuggingFaceConfig{
			APIKey:      getEnv("HF_API_KEY", ""),
			BaseURL:     getEnv("HF_BASE_URL", "https://router.huggingface.co"),
			Model:       getEnv("HF_MODEL", "meta-llama/Llama-3.1-8B-Instruct:novita"),
			Temperature: getEnvAsFloat("HF_TEMPERATURE", 0.3),
			Timeout:     getEnvAsDuration("HF_TIMEOUT", "60s"),
		},
		Analysis: AnalysisConfig{
			MaxResumeChars: getEnvAsInt("MAX_RESUME_CHARS", 1500),
			MaxRoleSkills:  getEnvAsInt("MAX_ROLE_SKILLS", 12),
		},
		Session: SessionConfig{
			TTL:      getEnvAsDuration("SESSION_TTL", "30m"),
			JoinWait: getEnvAsDuration("ANALYSIS_JOIN_WAIT", "10s"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
