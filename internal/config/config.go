package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port           string
	AllowedOrigins []string
	JWTSecret      string
	JWTExpiry      time.Duration
	LogFile        string
	LogLevel       string

	SeedData      bool
	StaffEmail    string
	StaffPassword string

	CacheEnabled bool
	Redis        RedisConfig

	RateLimitEnabled bool
	RateLimitPerMin  int
	RateLimitBurst   int
}

type RedisConfig struct {
	URL      string
	Host     string
	Port     string
	Password string
	DB       int
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using process environment")
	}

	port := getEnv("PORT", "8080")
	origins := getEnv("ALLOWED_ORIGINS", "*")

	expiry, err := time.ParseDuration(getEnv("JWT_EXPIRY", "24h"))
	if err != nil {
		expiry = 24 * time.Hour
	}

	return &Config{
		Port:           port,
		AllowedOrigins: splitAndTrim(origins),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTExpiry:      expiry,
		LogFile:        os.Getenv("LOG_FILE"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),

		SeedData:      getBool("SEED_DATA", true),
		StaffEmail:    getEnv("STAFF_EMAIL", "desk@kurumaya.example"),
		StaffPassword: getEnv("STAFF_PASSWORD", "change-me"),

		CacheEnabled: getBool("CACHE_ENABLED", false),
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getInt("REDIS_DB", 0),
		},

		RateLimitEnabled: getBool("RATE_LIMIT_ENABLED", true),
		RateLimitPerMin:  getInt("RATE_LIMIT_PER_MINUTE", 120),
		RateLimitBurst:   getInt("RATE_LIMIT_BURST", 30),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
