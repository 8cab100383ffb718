package config

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Http     HttpConfig     `json:"http"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	S3       S3Config       `json:"s3"`
	APIKey   string         `json:"api_key,omitempty"`
	Alert    AlertConfig    `json:"alert"`
	Client   ClientConfig   `json:"client"`
	GC       GCConfig       `json:"gc"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	PublicBaseURL   string        `json:"public_base_url"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type S3Config struct {
	Region       string `json:"region"`
	Bucket       string `json:"bucket"`
	BaseEndpoint string `json:"base_endpoint"`
	AccessKey    string `json:"access_key,omitempty"`
	SecretKey    string `json:"secret_key,omitempty"`
}

type AlertConfig struct {
	URL      string `json:"url"`
	Disabled bool   `json:"disabled"`
}

// ClientConfig configures the report CLI: where the support gateway
// lives and which device capability endpoints to use.
type ClientConfig struct {
	GatewayURL     string        `json:"gateway_url"`
	PositionURL    string        `json:"position_url"`
	GeocodeURL     string        `json:"geocode_url"`
	RequestTimeout time.Duration `json:"request_timeout"`
	UploadTimeout  time.Duration `json:"upload_timeout"`
	CaptureChunkKB int           `json:"capture_chunk_kb"`
}

// GCConfig controls the orphaned-evidence sweeper. Retried submissions
// can leave uploaded blobs no ticket ever references.
type GCConfig struct {
	Interval  time.Duration `json:"interval"`
	OrphanAge time.Duration `json:"orphan_age"`
}

func Load(ctx context.Context) (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
			PublicBaseURL:   getEnv("HTTP_PUBLIC_BASE_URL", "http://localhost:8080"),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "livecrime_db"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        20,
			MinConns:        1,
			MaxConnLifetime: 1 * time.Hour,
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "redis-local:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		S3: S3Config{
			Region:       getEnv("S3_REGION", "us-east-1"),
			Bucket:       getEnv("S3_BUCKET", "livecrime-evidence"),
			BaseEndpoint: getEnv("S3_BASE_ENDPOINT", "http://minio-local:9000"),
			AccessKey:    getEnv("S3_ACCESS_KEY", "minioadmin"),
			SecretKey:    getEnv("S3_SECRET_KEY", "minioadmin"),
		},
		APIKey: getEnv("API_KEY", "super-secret-key"),
		Alert: AlertConfig{
			URL:      getEnv("ALERT_WEBHOOK_URL", ""),
			Disabled: getEnvBool("ALERT_WEBHOOK_DISABLED", false),
		},
		Client: ClientConfig{
			GatewayURL:     getEnv("GATEWAY_URL", "http://localhost:8080"),
			PositionURL:    getEnv("POSITION_URL", ""),
			GeocodeURL:     getEnv("GEOCODE_URL", "https://nominatim.openstreetmap.org"),
			RequestTimeout: getEnvDuration("CLIENT_REQUEST_TIMEOUT", 10*time.Second),
			UploadTimeout:  getEnvDuration("CLIENT_UPLOAD_TIMEOUT", 60*time.Second),
			CaptureChunkKB: getEnvInt("CAPTURE_CHUNK_KB", 4),
		},
		GC: GCConfig{
			Interval:  getEnvDuration("EVIDENCE_GC_INTERVAL", 10*time.Minute),
			OrphanAge: getEnvDuration("EVIDENCE_GC_ORPHAN_AGE", 24*time.Hour),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.String("s3_bucket", cfg.S3.Bucket))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || (len(c.Http.Port) > 0 && c.Http.Port[0] != ':') {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}

	if c.S3.Bucket == "" {
		return errors.New("S3_BUCKET required")
	}

	if c.Alert.Disabled {
		log.Println("WARN: alert webhooks DISABLED via ALERT_WEBHOOK_DISABLED=true")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
