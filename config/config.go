package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/farellandr/eventhub/internal/models"
)

const (
	SessionBackendMemory   = "memory"
	SessionBackendPostgres = "postgres"
	SessionBackendRedis    = "redis"
)

type Config struct {
	Port string

	JWTSecret string
	JWTExpire time.Duration

	SessionBackend string
	SessionTTL     time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SimulateLatency bool
	CORSOrigins     []string
	TrustedProxies  []string
	LoginRate       float64
	LoginBurst      int
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		SessionBackend: getEnv("SESSION_BACKEND", SessionBackendMemory),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		CORSOrigins:    strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
		TrustedProxies: splitList(os.Getenv("TRUSTED_PROXIES")),
	}

	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set, using an insecure default")
		cfg.JWTSecret = "secret"
	}

	var err error
	if cfg.JWTExpire, err = time.ParseDuration(getEnv("JWT_EXPIRE", "24h")); err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRE: %w", err)
	}
	if cfg.SessionTTL, err = time.ParseDuration(getEnv("SESSION_TTL", "168h")); err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	if cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	if cfg.SimulateLatency, err = strconv.ParseBool(getEnv("SIMULATE_LATENCY", "false")); err != nil {
		return nil, fmt.Errorf("invalid SIMULATE_LATENCY: %w", err)
	}
	if cfg.LoginRate, err = strconv.ParseFloat(getEnv("LOGIN_RATE", "1"), 64); err != nil {
		return nil, fmt.Errorf("invalid LOGIN_RATE: %w", err)
	}
	if cfg.LoginBurst, err = strconv.Atoi(getEnv("LOGIN_BURST", "5")); err != nil {
		return nil, fmt.Errorf("invalid LOGIN_BURST: %w", err)
	}

	switch cfg.SessionBackend {
	case SessionBackendMemory, SessionBackendPostgres, SessionBackendRedis:
	default:
		return nil, fmt.Errorf("unknown SESSION_BACKEND %q", cfg.SessionBackend)
	}

	slog.Debug("config loaded",
		"port", cfg.Port,
		"session_backend", cfg.SessionBackend,
		"jwt_expire", cfg.JWTExpire,
		"simulate_latency", cfg.SimulateLatency,
		"trusted_proxies", cfg.TrustedProxies,
	)
	return cfg, nil
}

// splitList parses a comma separated list. An empty value yields nil.
func splitList(raw string) []string {
	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.SessionRecord{}); err != nil {
		return nil, err
	}

	return db, nil
}

func InitRedis(ctx context.Context, cfg *Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
