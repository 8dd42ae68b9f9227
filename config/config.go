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
	DatabaseURL string
	JWTSecret   string

	GeminiAPIKey string
	GeminiModel  string

	SMTPHost         string
	SMTPPort         int
	SMTPUser         string
	SMTPPassword     string
	ContactRecipient string

	AllowedOrigins []string
}

func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		Port:             get("PORT", "8080"),
		DatabaseURL:      must("DATABASE_URL"),
		JWTSecret:        must("JWT_SECRET"),
		GeminiAPIKey:     get("GEMINI_API_KEY", ""),
		GeminiModel:      get("GEMINI_MODEL", "gemini-1.5-flash"),
		SMTPHost:         get("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:         getInt("SMTP_PORT", 587),
		SMTPUser:         get("SMTP_USER", ""),
		SMTPPassword:     get("SMTP_PASSWORD", ""),
		ContactRecipient: get("CONTACT_RECIPIENT", ""),
		AllowedOrigins:   splitList(get("ALLOWED_ORIGINS", "*")),
	}
	return cfg
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("invalid %s: %v", k, err)
	}
	return n
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env: %s", k)
	}
	return v
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
