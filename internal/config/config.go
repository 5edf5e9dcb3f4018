package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gym-membership-go/pkg/logger"
)

type Config struct {
	HTTPPort       string
	Env            string
	CORSOrigins    []string
	MetricsEnabled bool
	RequestTimeout time.Duration
	Plans          PlansConfig
	DB             DBConfig
	Redis          RedisConfig
}

type PlansConfig struct {
	CacheTTL time.Duration
}

type DBConfig struct {
	DSN             string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// MigrationsDir overrides the embedded migrations when set.
	MigrationsDir   string
}

// RedisConfig is optional. An empty URL keeps the plan cache in process.
type RedisConfig struct {
	URL      string
	PoolSize int
}

func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

func Load(log logger.Logger) (Config, error) {
	if err := loadDotEnv(log); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	return Config{
		HTTPPort:       getEnv("HTTP_PORT", "3000"),
		Env:            getEnv("ENV", "development"),
		CORSOrigins:    getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),
		RequestTimeout: getEnvDuration("HTTP_REQUEST_TIMEOUT", 15*time.Second),
		Plans: PlansConfig{
			CacheTTL: getEnvDuration("PLANS_CACHE_TTL", 5*time.Minute),
		},
		DB: DBConfig{
			DSN:             getEnv("DB_DSN", getEnv("DATABASE_URL", "")),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Name:            getEnv("DB_NAME", "gym_membership"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			TimeZone:        getEnv("DB_TIMEZONE", "UTC"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			MigrationsDir:   getEnv("DB_MIGRATIONS_DIR", ""),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			PoolSize: getEnvInt("REDIS_POOL_SIZE", 10),
		},
	}, nil
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// getEnvList splits a comma separated value, dropping blanks.
func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	items := make([]string, 0, 4)
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}

func (c DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.TimeZone
}
