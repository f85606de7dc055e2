package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Matching MatchingConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
	PoolMinConns   int32
}

type JWTConfig struct {
	AccessSecret string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

// MatchingConfig carries the tunable scoring policy. The weights themselves
// live in the compat package; only service-level policy is configured here.
type MatchingConfig struct {
	MatchThreshold int
	MaxResults     int
	BatchWorkers   int
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         opt("DB_PORT"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     opt("DB_PASSWORD"),
		DBSSLMode:      opt("DB_SSL_MODE"),
		ConnectTimeout: durationEnv("DB_CONNECT_TIMEOUT_SECONDS", 0),
		PoolMaxConns:   int32(intEnv("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:   int32(intEnv("DB_POOL_MIN_CONNS", 0)),
	}

	cfg.JWT = JWTConfig{
		AccessSecret: req("JWT_SECRET"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
		TTL:      durationEnv("REDIS_TTL", 600*time.Second),
	}

	cfg.Matching = MatchingConfig{
		MatchThreshold: intEnv("MATCH_THRESHOLD", 60),
		MaxResults:     intEnv("MATCH_MAX_RESULTS", 20),
		BatchWorkers:   intEnv("MATCH_BATCH_WORKERS", 8),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func intEnv(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func durationEnv(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}
