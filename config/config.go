package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	SQLitePath  string
	RedisAddr   string
	RedisPass   string
	JWTSecret   string
	Port        string
	CORSOrigins []string
	SMTPHost    string
	SMTPPort    string
	SMTPUser    string
	SMTPPass    string

	GoogleClientID string
	GoogleSecret   string
	GoogleRedirect string

	// AI provider settings (openai | openrouter | deepseek | ollama)
	AIProvider string
	AIBaseURL  string
	AIAPIKey   string
	AIModel    string

	// SerpAPI Google Flights proxy
	SerpAPIKey     string
	SerpAPIBaseURL string
	// fallback departure airport for price watches without an origin
	HomeAirport string

	// Push / analytics (log-only integrations)
	OneSignalAppID  string
	OneSignalAPIKey string
	PostHogAPIKey   string
	PostHogHost     string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return &Config{
		DBDriver:        getenvOrDefault("DB_DRIVER", "sqlite"),
		DBHost:          os.Getenv("DB_HOST"),
		DBPort:          getenvOrDefault("DB_PORT", "5432"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		SQLitePath:      getenvOrDefault("SQLITE_PATH", "packyourbags.db"),
		RedisAddr:       getenvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPass:       os.Getenv("REDIS_PASSWORD"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		Port:            getenvOrDefault("PORT", "8080"),
		CORSOrigins:     splitOrigins(getenvOrDefault("CORS_ORIGINS", "http://localhost:3000")),
		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        getenvOrDefault("SMTP_PORT", "587"),
		SMTPUser:        os.Getenv("SMTP_USER"),
		SMTPPass:        os.Getenv("SMTP_PASS"),
		GoogleClientID:  os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleSecret:    os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirect:  os.Getenv("GOOGLE_REDIRECT_URI"),
		AIProvider:      getenvOrDefault("AI_PROVIDER", "openai"),
		AIBaseURL:       os.Getenv("AI_BASE_URL"),
		AIAPIKey:        os.Getenv("AI_API_KEY"),
		AIModel:         getenvOrDefault("AI_MODEL", "gpt-4o-mini"),
		SerpAPIKey:      os.Getenv("SERPAPI_KEY"),
		SerpAPIBaseURL:  getenvOrDefault("SERPAPI_BASE_URL", "https://serpapi.com"),
		HomeAirport:     getenvOrDefault("HOME_AIRPORT", "JFK"),
		OneSignalAppID:  os.Getenv("ONESIGNAL_APP_ID"),
		OneSignalAPIKey: os.Getenv("ONESIGNAL_API_KEY"),
		PostHogAPIKey:   os.Getenv("POSTHOG_API_KEY"),
		PostHogHost:     getenvOrDefault("POSTHOG_HOST", "https://app.posthog.com"),
	}
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
