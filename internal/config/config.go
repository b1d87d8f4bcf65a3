package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type DB struct {
	URL        string
	DbHOST     string
	DbPORT     string
	DbUSER     string
	DbPASSWORD string
	DbNAME     string
	DbSSLMODE  string
}

type MinIO struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	BucketName string
	UseSSL     bool
	PublicURL  string
}

// Enabled reports whether media uploads are configured.
func (m MinIO) Enabled() bool {
	return m.Endpoint != ""
}

type RateLimit struct {
	Requests int
	Window   time.Duration
}

type Auth struct {
	Required            bool
	JWTSecretKey        string
	AccessTokenDuration time.Duration
	AdminUsername       string
	AdminPasswordHash   string
}

type Config struct {
	ServerPort     int
	DB             DB
	MinIO          MinIO
	Auth           Auth
	RateLimit      RateLimit
	AllowedOrigins []string
	APIURL         string
	LogLevel       string
	MaxBodySize    int64
	MaxUploadSize  int64
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return fallback
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		return fallback
	}
	return duration
}

// splitList splits a comma separated env value, dropping blanks.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func LoadDB() DB {
	return DB{
		URL:        getEnv("DATABASE_URL", ""),
		DbHOST:     getEnv("DB_HOST", "localhost"),
		DbPORT:     getEnv("DB_PORT", "5432"),
		DbUSER:     getEnv("DB_USER", "postgres"),
		DbPASSWORD: getEnv("DB_PASSWORD", "password"),
		DbNAME:     getEnv("DB_NAME", "blog"),
		DbSSLMODE:  getEnv("DB_SSLMODE", "disable"),
	}
}

// DSN returns DATABASE_URL when set, otherwise a keyword/value string
// assembled from the DB_* variables.
func (d DB) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.DbHOST,
		d.DbPORT,
		d.DbUSER,
		d.DbPASSWORD,
		d.DbNAME,
		d.DbSSLMODE,
	)
}

func LoadMinIO() MinIO {
	return MinIO{
		Endpoint:   getEnv("MINIO_ENDPOINT", ""),
		AccessKey:  getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		SecretKey:  getEnv("MINIO_SECRET_KEY", "minioadmin"),
		BucketName: getEnv("MINIO_BUCKET_NAME", "blog-media"),
		UseSSL:     getEnvBool("MINIO_USE_SSL", false),
		PublicURL:  getEnv("MINIO_PUBLIC_URL", ""),
	}
}

func LoadAuth() Auth {
	return Auth{
		Required:            getEnvBool("AUTH_REQUIRED", false),
		JWTSecretKey:        getEnv("JWT_SECRET_KEY", ""),
		AccessTokenDuration: parseDuration(getEnv("ACCESS_TOKEN_DURATION", "2h"), 2*time.Hour),
		AdminUsername:       getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash:   getEnv("ADMIN_PASSWORD_HASH", ""),
	}
}

func loadAllowedOrigins() []string {
	origins := splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:5174"))
	if frontend := strings.TrimSpace(os.Getenv("FRONTEND_URL")); frontend != "" {
		origins = append(origins, frontend)
	}
	return origins
}

// LoadConfig reads .env (if any) and the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug(".env file not found, using environment variables")
	}

	return &Config{
		ServerPort: getEnvAsInt("PORT", 3001),
		DB:         LoadDB(),
		MinIO:      LoadMinIO(),
		Auth:       LoadAuth(),
		RateLimit: RateLimit{
			Requests: getEnvAsInt("RATE_LIMIT_REQUESTS", 100),
			Window:   parseDuration(getEnv("RATE_LIMIT_WINDOW", "15m"), 15*time.Minute),
		},
		AllowedOrigins: loadAllowedOrigins(),
		APIURL:         strings.TrimRight(getEnv("BLOG_API_URL", "http://localhost:3001"), "/"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		MaxBodySize:    getEnvAsInt64("MAX_BODY_SIZE", 10<<20),
		MaxUploadSize:  getEnvAsInt64("MAX_UPLOAD_SIZE", 10<<20),
	}
}

// Validate checks combinations that cannot work at runtime.
func (c *Config) Validate() error {
	if c.Auth.Required && c.Auth.JWTSecretKey == "" {
		return fmt.Errorf("AUTH_REQUIRED is set but JWT_SECRET_KEY is empty")
	}
	if c.Auth.Required && c.Auth.AdminPasswordHash == "" {
		return fmt.Errorf("AUTH_REQUIRED is set but ADMIN_PASSWORD_HASH is empty")
	}
	if c.RateLimit.Requests <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", c.RateLimit.Requests)
	}
	return nil
}
