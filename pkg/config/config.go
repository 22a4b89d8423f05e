package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppEnv   string
	LogLevel string
	Port     string

	StoreDriver string
	StoreDSN    string
	SeedCatalog bool

	JWTSecret     string
	JWTTTL        time.Duration
	AdminUsername string
	AdminPassword string

	ShutdownTimeout time.Duration
}

func Load() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Port:     getEnv("APP_PORT", "5000"),

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", "sqlite")),
		StoreDSN:    getEnv("STORE_DSN", "file:farm.db?_pragma=busy_timeout(5000)"),
		SeedCatalog: getEnvBool("SEED_CATALOG", true),

		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTTTL:        getEnvDuration("JWT_TTL", 12*time.Hour),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

// AuthEnabled reports whether admin routes are guarded by bearer tokens.
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

type ClientConfig struct {
	APIBaseURL string
	CartFile   string
	CartKey    string
	RedisAddr  string
	LogLevel   string
}

func LoadClient() ClientConfig {
	return ClientConfig{
		APIBaseURL: getEnv("STOREFRONT_API", "http://localhost:5000"),
		CartFile:   getEnv("STOREFRONT_CART_FILE", ".storefront.json"),
		CartKey:    getEnv("STOREFRONT_CART_KEY", "mansouriaCart"),
		RedisAddr:  os.Getenv("STOREFRONT_REDIS_ADDR"),
		LogLevel:   getEnv("LOG_LEVEL", "warn"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
