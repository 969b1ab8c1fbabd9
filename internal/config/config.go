package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"
)

// Render modes select how page routes answer.
const (
	RenderHTML = "html"
	RenderJSON = "json"
)

// Storage backends for accepted uploads.
const (
	StorageDisk  = "disk"
	StorageMinIO = "minio"
)

// Repository backends for submissions and signups.
const (
	RepositoryNone     = "none"
	RepositoryPostgres = "postgres"
	RepositoryRedis    = "redis"
)

// DefaultMaxUploadBytes is the largest CV accepted (inclusive).
const DefaultMaxUploadBytes int64 = 5 * 1024 * 1024

// DatabaseConfig holds PostgreSQL database connection settings.
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
	// ApplicationName is reported to the server (pg_stat_activity).
	ApplicationName   string
	ConnectTimeoutSec int
	// StartupAttempts bounds how often the first ping is retried while the
	// database is still coming up.
	StartupAttempts int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// RedisConfig holds settings for the redis repository backend.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// RabbitMQConfig holds settings for submission event publishing.
// An empty URL disables publishing.
type RabbitMQConfig struct {
	URL        string
	Exchange   string
	RoutingKey string
}

// UploadConfig controls where and how CV uploads are stored.
type UploadConfig struct {
	Dir      string
	MaxBytes int64
	Backend  string
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string
	Format string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost           string
	Port              string
	RenderMode        string
	RepositoryBackend string
	SignupValidation  bool
	Upload            UploadConfig
	Log               LogConfig
	Database          DatabaseConfig
	MinIO             MinIOConfig
	Redis             RedisConfig
	RabbitMQ          RabbitMQConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:           getEnv("APP_HOST", "localhost:3000"),
		Port:              getEnv("PORT", "3000"),
		RenderMode:        getEnv("RENDER_MODE", RenderHTML),
		RepositoryBackend: getEnv("REPOSITORY_BACKEND", RepositoryNone),
		SignupValidation:  getEnvBool("SIGNUP_VALIDATION", true),
		Upload: UploadConfig{
			Dir:      getEnv("UPLOAD_DIR", "uploads"),
			MaxBytes: getEnvInt64("UPLOAD_MAX_BYTES", DefaultMaxUploadBytes),
			Backend:  getEnv("STORAGE_BACKEND", StorageDisk),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
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
			ApplicationName:    getEnv("DB_APPLICATION_NAME", "careers"),
			ConnectTimeoutSec:  getEnvInt("DB_CONNECT_TIMEOUT_SEC", 5),
			StartupAttempts:    getEnvInt("DB_STARTUP_ATTEMPTS", 5),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Redis: RedisConfig{
			Addr:      getEnv("REDIS_ADDR", "localhost:6379"),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getEnvInt("REDIS_DB", 0),
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "careers"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:        getEnv("RABBITMQ_URL", ""),
			Exchange:   getEnv("RABBITMQ_EXCHANGE", "careers.events"),
			RoutingKey: getEnv("RABBITMQ_ROUTING_KEY", "application.submitted"),
		},
	}
}

// ApplyFlags lets command-line flags override the environment for the few
// settings operators change per run.
func (c *AppConfig) ApplyFlags(args []string) error {
	fs := pflag.NewFlagSet("careers", pflag.ContinueOnError)
	port := fs.StringP("port", "p", c.Port, "HTTP listen port")
	mode := fs.String("render-mode", c.RenderMode, "page rendering: html or json")
	dir := fs.String("upload-dir", c.Upload.Dir, "directory for accepted CV files")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.Port = *port
	c.RenderMode = *mode
	c.Upload.Dir = *dir
	return c.Validate()
}

// Validate rejects option values the server cannot start with.
func (c *AppConfig) Validate() error {
	switch c.RenderMode {
	case RenderHTML, RenderJSON:
	default:
		return fmt.Errorf("invalid render mode %q", c.RenderMode)
	}
	switch c.Upload.Backend {
	case StorageDisk, StorageMinIO:
	default:
		return fmt.Errorf("invalid storage backend %q", c.Upload.Backend)
	}
	switch c.RepositoryBackend {
	case RepositoryNone, RepositoryPostgres, RepositoryRedis:
	default:
		return fmt.Errorf("invalid repository backend %q", c.RepositoryBackend)
	}
	if c.Upload.MaxBytes <= 0 {
		return fmt.Errorf("upload max bytes must be positive")
	}
	return nil
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

func getEnvInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return i
		}
	}
	return def
}
