package config

import (
	"os"
	"strconv"
	"strings"
)

// Retention policies for uploaded answer sheets once a request has been answered.
const (
	RetentionKeep    = "keep"
	RetentionDelete  = "delete"
	RetentionArchive = "archive"
)

// UploadConfig holds settings for the local upload directory and accepted file types.
type UploadConfig struct {
	Dir               string
	AllowedExtensions []string
	MaxBytes          int
	Retention         string
}

// ScoringConfig holds settings for the simulated scorer.
type ScoringConfig struct {
	MaxScore int
}

// DatabaseConfig holds PostgreSQL database connection settings.
// The submissions ledger is only enabled when Host is set.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// Enabled reports whether a database has been configured.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// MinIOConfig holds object storage settings for MinIO, used by the archive retention policy.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// CORSConfig holds cross-origin settings.
type CORSConfig struct {
	AllowOrigins string
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level    string
	TimeZone string
}

// AppConfig is the centralized configuration struct for the application.
// It is built once at startup and passed to constructors.
type AppConfig struct {
	AppHost  string
	Port     string
	Upload   UploadConfig
	Scoring  ScoringConfig
	Database DatabaseConfig
	MinIO    MinIOConfig
	CORS     CORSConfig
	Log      LogConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:5000"),
		Port:    getEnv("PORT", "5000"),
		Upload: UploadConfig{
			Dir:               getEnv("UPLOAD_DIR", "./uploads"),
			AllowedExtensions: getEnvList("UPLOAD_ALLOWED_EXTENSIONS", []string{"pdf"}),
			MaxBytes:          getEnvInt("UPLOAD_MAX_BYTES", 10<<20),
			Retention:         normalizeRetention(getEnv("UPLOAD_RETENTION", RetentionKeep)),
		},
		Scoring: ScoringConfig{
			MaxScore: getEnvInt("SCORING_MAX_SCORE", 50),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "*"),
		},
		Log: LogConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			TimeZone: getEnv("LOG_TZ", "UTC"),
		},
	}
}

// normalizeRetention maps unknown policies to keep so a typo never deletes uploads.
func normalizeRetention(v string) string {
	switch p := strings.ToLower(strings.TrimSpace(v)); p {
	case RetentionKeep, RetentionDelete, RetentionArchive:
		return p
	default:
		return RetentionKeep
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

// getEnvList splits a comma separated value, trimming blanks and leading dots.
func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.TrimPrefix(strings.TrimSpace(part), ".")
		if part != "" {
			out = append(out, strings.ToLower(part))
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
