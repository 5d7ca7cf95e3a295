package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort     string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	JWTSecret      string
	CookieName     string
	CookieSecure   bool
	AllowedOrigins []string
	GatewayURL     string
	GatewayKey     string
	SwaggerHost    string
}

// Load builds Config from environment with sensible defaults.
// A .env.local file is read first if present so local runs need no exported vars.
func Load() *Config {
	_ = godotenv.Load(".env.local")

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		MySQLDSN:       getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/surveywallet?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      getEnv("JWT_SECRET", "change-me"),
		CookieName:     getEnv("SESSION_COOKIE_NAME", "swl_token"),
		CookieSecure:   getEnvBool("SESSION_COOKIE_SECURE", false),
		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", "http://localhost:5173"),
		GatewayURL:     getEnv("PAYMENT_GATEWAY_URL", "https://api.stripe.com/v1"),
		GatewayKey:     os.Getenv("PAYMENT_GATEWAY_KEY"),
		SwaggerHost:    os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvList(key, def string) []string {
	raw := getEnv(key, def)
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
