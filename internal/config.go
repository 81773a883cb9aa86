package internal

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Port     int
	LogLevel string

	// Application base URL (for absolute links and structured data)
	BaseURL string

	// Postmark Configuration
	// When the server token is empty, the server falls back to the dev
	// mailer, which writes emails to EmailDevDir instead of sending them.
	PostmarkServerToken  string
	PostmarkAccountToken string
	EmailSender          string // From address, must be a verified sender signature
	ContactRecipient     string // Business inbox for contact notifications
	EmailReplyTo         string // Contact-back address shown to customers
	EmailDevDir          string // Directory for dev mailer output

	// Template and asset directories
	TemplatesDir string
	StaticDir    string

	// Storage Configuration
	StorageProvider string // "local" or "r2"

	// Local Storage (development)
	LocalStoragePath string
	LocalStorageURL  string

	// R2 Storage (production image variants)
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string // Optional custom domain URL

	// Contact form rate limiting
	ContactRateLimit  int
	ContactRateWindow time.Duration

	// Metrics endpoint authentication
	// If both are empty, the /metrics endpoint will be unprotected
	MetricsUsername string
	MetricsPassword string
}

func NewConfig() (*Config, error) {
	// Load .env file if it exists (ignored in production)
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		BaseURL: getEnv("BASE_URL", "http://localhost:8080"),

		PostmarkServerToken:  getEnv("POSTMARK_SERVER_TOKEN", ""),
		PostmarkAccountToken: getEnv("POSTMARK_ACCOUNT_TOKEN", ""),
		EmailSender:          getEnv("EMAIL_SENDER", "post@mediweb.no"),
		ContactRecipient:     getEnv("CONTACT_RECIPIENT", "post@mediweb.no"),
		EmailReplyTo:         getEnv("EMAIL_REPLY_TO", "post@mediweb.no"),
		EmailDevDir:          getEnv("EMAIL_DEV_DIR", "./tmp/emails"),

		TemplatesDir: getEnv("TEMPLATES_DIR", "./web/templates"),
		StaticDir:    getEnv("STATIC_DIR", "./web/static"),

		// Storage defaults to local filesystem for development
		StorageProvider:  getEnv("STORAGE_PROVIDER", "local"),
		LocalStoragePath: getEnv("LOCAL_STORAGE_PATH", "./web/static"),
		LocalStorageURL:  getEnv("LOCAL_STORAGE_URL", "http://localhost:8080/static"),

		// R2 configuration (production only)
		R2AccountID:       getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:      getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:       getEnv("R2_PUBLIC_URL", ""),

		ContactRateLimit:  getEnvInt("CONTACT_RATE_LIMIT", 5),
		ContactRateWindow: getEnvDuration("CONTACT_RATE_WINDOW", 10*time.Minute),

		// Metrics authentication
		MetricsUsername: getEnv("METRICS_USERNAME", ""),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),
	}

	// Validate storage configuration
	if cfg.StorageProvider == "r2" {
		if cfg.R2AccountID == "" {
			return nil, fmt.Errorf("R2_ACCOUNT_ID is required when STORAGE_PROVIDER is 'r2'")
		}
		if cfg.R2AccessKeyID == "" {
			return nil, fmt.Errorf("R2_ACCESS_KEY_ID is required when STORAGE_PROVIDER is 'r2'")
		}
		if cfg.R2SecretAccessKey == "" {
			return nil, fmt.Errorf("R2_SECRET_ACCESS_KEY is required when STORAGE_PROVIDER is 'r2'")
		}
		if cfg.R2BucketName == "" {
			return nil, fmt.Errorf("R2_BUCKET_NAME is required when STORAGE_PROVIDER is 'r2'")
		}
	} else if cfg.StorageProvider != "local" {
		return nil, fmt.Errorf("STORAGE_PROVIDER must be either 'local' or 'r2', got: %s", cfg.StorageProvider)
	}

	// Production must send real mail
	if cfg.Env == "production" && cfg.PostmarkServerToken == "" {
		return nil, fmt.Errorf("POSTMARK_SERVER_TOKEN is required in production")
	}

	return cfg, nil
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
