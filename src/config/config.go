package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config gathers everything the handlers and collaborators need at startup.
// Nothing outside this package reads the environment directly, so tests can
// construct a Config by hand and swap collaborators freely.
type Config struct {
	Port           string
	AllowedOrigins string
	PublicBaseURL  string

	MongoURI string
	MongoDB  string
	RedisURI string

	JWTSecret string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string

	// NotificationRecipients is the internal distribution list alerted on
	// every new submission.
	NotificationRecipients []string

	PaymentAPIURL string
	PaymentAPIKey string

	UploadDir string

	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// Load reads .env (if present) and assembles the config. Only MONGO_URI is
// hard-required; everything else degrades per feature (no redis means no
// wizard sessions, no SMTP means notifications are logged and skipped).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	cfg := &Config{
		Port:           getenv("PORT", "8888"),
		AllowedOrigins: getenv("ALLOWED_ORIGINS", "*"),
		PublicBaseURL:  strings.TrimRight(getenv("PUBLIC_BASE_URL", "http://localhost:8888"), "/"),
		MongoURI:       os.Getenv("MONGO_URI"),
		MongoDB:        getenv("MONGO_DB", "cethos"),
		RedisURI:       os.Getenv("REDIS_URI"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		SMTPHost:       os.Getenv("SMTP_HOST"),
		SMTPUser:       os.Getenv("SMTP_USER"),
		SMTPPass:       os.Getenv("SMTP_PASS"),
		SMTPFrom:       os.Getenv("SMTP_FROM"),
		PaymentAPIURL:  os.Getenv("PAYMENT_API_URL"),
		PaymentAPIKey:  os.Getenv("PAYMENT_API_KEY"),
		UploadDir:      getenv("UPLOAD_DIR", "uploads"),
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		AdminName:      getenv("ADMIN_NAME", "Cethos Staff"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI environment variable not set")
	}

	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT %q: %v", v, err)
		}
		cfg.SMTPPort = port
	}

	for _, r := range strings.Split(os.Getenv("NOTIFY_RECIPIENTS"), ",") {
		if r = strings.TrimSpace(r); r != "" {
			cfg.NotificationRecipients = append(cfg.NotificationRecipients, r)
		}
	}

	return cfg, nil
}

// SMTPConfigured reports whether mail can actually be dialed.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPPort != 0 && c.SMTPFrom != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
