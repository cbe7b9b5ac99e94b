package config

import (
	"strings"
	"time"

	"supreme_fitness_backend/pkg/utils"
)

// Config holds everything the process needs at startup. It is built once in
// main and handed to the components that use it; nothing reads the
// environment after Load returns.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret   string
	TokenTTL    time.Duration
	CORSOrigins []string
}

// Load reads the configuration from environment variables, applying local
// development defaults.
func Load() Config {
	cfg := Config{
		Port:       utils.Getenv("PORT", "8080"),
		DBHost:     utils.Getenv("DB_HOST", "localhost"),
		DBPort:     utils.Getenv("DB_PORT", "5432"),
		DBUser:     utils.Getenv("DB_USER", "fitness_user"),
		DBPassword: utils.Getenv("DB_PASSWORD", "fitness_password"),
		DBName:     utils.Getenv("DB_NAME", "supreme_fitness_db"),
		DBSSLMode:  utils.Getenv("DB_SSLMODE", "disable"),
		JWTSecret:  utils.Getenv("JWT_SECRET", "dev-only-signing-key-change-me"),
	}

	ttlMinutes := utils.Getenv("TOKEN_TTL_MINUTES", "30")
	ttl, err := time.ParseDuration(ttlMinutes + "m")
	if err != nil || ttl <= 0 {
		ttl = 30 * time.Minute
	}
	cfg.TokenTTL = ttl

	origins := utils.Getenv("CORS_ALLOWED_ORIGINS", "")
	if origins != "" {
		cfg.CORSOrigins = strings.Split(origins, ",")
	} else {
		cfg.CORSOrigins = []string{"http://localhost:3000", "http://localhost:3001"}
	}

	return cfg
}
