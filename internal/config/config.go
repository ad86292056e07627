package config

import (
	"os"
)

type MollieConfig struct {
	APIKey string
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type EmailConfig struct {
	APIKey      string
	FromAddress string
	FromName    string
}

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	PublicBaseURL string
	FrontendURL   string
	Mollie        MollieConfig
	OpenAI        OpenAIConfig
	Email         EmailConfig
}

func LoadConfig() *Config {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		FrontendURL:   getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	cfg.Mollie.APIKey = os.Getenv("MOLLIE_API_KEY")

	cfg.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.OpenAI.BaseURL = os.Getenv("OPENAI_BASE_URL")
	cfg.OpenAI.Model = os.Getenv("OPENAI_MODEL")

	cfg.Email.APIKey = os.Getenv("RESEND_API_KEY")
	cfg.Email.FromAddress = getEnv("EMAIL_FROM_ADDRESS", "no-reply@cookbuddy.app")
	cfg.Email.FromName = getEnv("EMAIL_FROM_NAME", "CookBuddy")

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
