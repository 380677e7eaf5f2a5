package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// SMTP Transport Configuration
	EmailHost   string
	EmailPort   string
	EmailSecure bool // true = implicit TLS, false = STARTTLS when offered
	EmailUser   string
	EmailPass   string
	EmailFrom   string // Verified sender display address
	// Recipient Directory (category -> destination mailbox)
	ContactEmailProfessional string
	ContactEmailPersonal     string
	ContactEmailEducational  string
	// SMTP socket timeout
	SMTPTimeoutSeconds int
	// Redis/Upstash Configuration (rate limiting)
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitContactThreshold int
	RateLimitGlobalThreshold  int
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// SMTP Transport Configuration
		EmailHost:   getEnv("EMAIL_HOST", "smtp.gmail.com"),
		EmailPort:   getEnv("EMAIL_PORT", "587"),
		EmailSecure: getEnvBool("EMAIL_SECURE", false),
		EmailUser:   getEnv("EMAIL_USER", ""),
		EmailPass:   getEnv("EMAIL_PASS", ""),
		EmailFrom:   getEnv("EMAIL_FROM", "Portfolio Contact Form <no-reply@example.com>"),
		// Recipient Directory
		ContactEmailProfessional: getEnv("CONTACT_EMAIL_PROFESSIONAL", ""),
		ContactEmailPersonal:     getEnv("CONTACT_EMAIL_PERSONAL", ""),
		ContactEmailEducational:  getEnv("CONTACT_EMAIL_EDUCATIONAL", ""),
		// SMTP socket timeout (covers dial and each command round-trip)
		SMTPTimeoutSeconds: getEnvInt("SMTP_TIMEOUT_SECONDS", 10),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),   // 1 minute window
		RateLimitContactThreshold: getEnvInt("RATE_LIMIT_CONTACT_THRESHOLD", 5), // 5 submissions per window
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 60), // 60 requests per window
	}

	// Surface misconfiguration at startup instead of on the first submission
	if cfg.EmailUser == "" || cfg.EmailPass == "" {
		log.Println("WARNING: EMAIL_USER/EMAIL_PASS not configured. Contact form dispatch will be unavailable.")
	}
	if cfg.ContactEmailProfessional == "" {
		log.Println("WARNING: CONTACT_EMAIL_PROFESSIONAL not configured. Submissions cannot be routed.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
