package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	AppEnv string
	// Proxies whose X-Forwarded-For is believed; empty trusts none
	TrustedProxies []string
	// Document store
	DBUrl     string
	DBName    string
	DBTimeout time.Duration
	// Redis (rate limiting)
	RedisURL      string
	RedisPassword string
	// Rate limiting for POST /contact
	ContactRateLimit       int
	RateLimitWindowSeconds int
	// SMTP notification (optional)
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SMTPFromEmail  string
	ContactEmailTo string
	// AMQP notification (optional)
	AMQPUrl      string
	ContactQueue string
	// Upper bound for all notifications of one submission
	NotifyTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	// .env is optional; real deployments inject the environment directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "8000"),
		AppEnv:    getEnv("APP_ENV", "development"),

		TrustedProxies: getEnvList("TRUSTED_PROXIES"),

		DBUrl:     getEnv("DATABASE_URL", ""),
		DBName:    getEnv("DATABASE_NAME", ""),
		DBTimeout: time.Duration(getEnvInt("DB_TIMEOUT_SECONDS", 5)) * time.Second,

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		ContactRateLimit:       getEnvInt("CONTACT_RATE_LIMIT", 5),
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),

		SMTPHost:       getEnv("SMTP_HOST", ""),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:  getEnv("SMTP_FROM_EMAIL", ""),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", ""),

		AMQPUrl:      getEnv("AMQP_URL", ""),
		ContactQueue: getEnv("CONTACT_QUEUE", "contact.submitted"),

		NotifyTimeout: time.Duration(getEnvInt("NOTIFY_TIMEOUT_SECONDS", 10)) * time.Second,
	}

	if cfg.SMTPFromEmail == "" {
		cfg.SMTPFromEmail = cfg.SMTPUsername
	}

	return cfg, nil
}

// DatabaseURLSet reports whether DATABASE_URL was provided
func (c *Config) DatabaseURLSet() bool {
	return c.DBUrl != ""
}

// DatabaseNameSet reports whether DATABASE_NAME was provided
func (c *Config) DatabaseNameSet() bool {
	return c.DBName != ""
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

// getEnvList splits a comma separated variable, dropping empty items
func getEnvList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
