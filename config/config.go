package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	LogLevel    string
	// Session token signing key (HS256)
	SessionSecret string
	// Store access
	DBQueryTimeout time.Duration
	// Locale used for alphabetic sorting of names and catalog titles
	CollationLocale string
	// SMTP Configuration
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	MailFrom     string
	// CRM Configuration
	CRMBaseURL  string
	CRMAuth     string
	CRMCustomer string
	CRMUser     string
	CRMPassword string
	CRMTimeout  time.Duration
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	// Outgoing notification concurrency
	MailConcurrency int
	// Profile photo storage. S3 wins when configured, else ImageDir on disk.
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Region          string
	S3Bucket          string
	S3Endpoint        string
	S3PublicURL       string
	ImageDir          string
}

func LoadConfig() (*Config, error) {
	// .env is only present locally
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "3000"),
		DBUrl:           getEnv("DATABASE_URL", ""),
		FrontendURL:     strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:8080"), "/"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		SessionSecret:   getEnv("SESSION_SECRET", getEnv("COOKIE_SECRET", "")),
		DBQueryTimeout:  getEnvDuration("DB_QUERY_TIMEOUT", 5*time.Second),
		CollationLocale: getEnv("COLLATION_LOCALE", "fi"),
		// SMTP Configuration
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", ""),
		// CRM Configuration
		CRMBaseURL:  strings.TrimRight(getEnv("CRM_URL", ""), "/"),
		CRMAuth:     getEnv("CRM_AUTH", ""),
		CRMCustomer: getEnv("CRM_CUSTOMER", ""),
		CRMUser:     getEnv("CRM_USER", ""),
		CRMPassword: getEnv("CRM_PASSWORD", ""),
		CRMTimeout:  getEnvDuration("CRM_TIMEOUT", 10*time.Second),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		MailConcurrency:          getEnvInt("MAIL_CONCURRENCY", 4),
		// Photo storage
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Region:          getEnv("S3_REGION", ""),
		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
		S3PublicURL:       getEnv("S3_PUBLIC_URL", ""),
		ImageDir:          getEnv("IMAGE_DIR", "./kuvat"),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.SessionSecret == "" {
		log.Println("WARNING: SESSION_SECRET is missing. Every session token will be rejected.")
	}
	if cfg.SMTPHost == "" || cfg.SMTPUsername == "" || cfg.SMTPPassword == "" || cfg.MailFrom == "" {
		log.Println("WARNING: SMTP_* parameters and MAIL_FROM should be set. Notification emails are disabled.")
	}
	if cfg.CRMBaseURL == "" || cfg.CRMCustomer == "" || cfg.CRMUser == "" || cfg.CRMPassword == "" {
		log.Println("WARNING: CRM_* parameters should be set. Title catalogs will be unavailable.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	if cfg.S3Bucket == "" {
		log.Printf("WARNING: S3_BUCKET not configured. Profile photos are stored in %s.", cfg.ImageDir)
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

// getEnvDuration accepts Go duration strings ("5s", "250ms")
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
