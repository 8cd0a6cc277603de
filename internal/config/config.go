package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort          string
	MySQLDSN            string
	RedisAddr           string
	RedisDB             int
	RedisPass           string
	JWTSecret           string
	SwaggerHost         string
	DashboardWindowDays int
	RateLimitRPS        float64
	DBLogLevel          string
	ResetDB             bool
	SeedFile            string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: ignoring .env: %v", err)
	}

	return &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		MySQLDSN:            getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/ecotrack?charset=utf8mb4&parseTime=True&loc=UTC"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:             getEnvInt("REDIS_DB", 0),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		JWTSecret:           getEnv("JWT_SECRET", "change-me"),
		SwaggerHost:         os.Getenv("SWAGGER_HOST"),
		DashboardWindowDays: getEnvInt("DASHBOARD_WINDOW_DAYS", 30),
		RateLimitRPS:        getEnvFloat("RATE_LIMIT_RPS", 20),
		DBLogLevel:          getEnv("DB_LOG_LEVEL", "warn"),
		ResetDB:             getEnvBool("RESET_DB", false),
		SeedFile:            os.Getenv("SEED_FILE"),
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

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
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
