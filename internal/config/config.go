package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDialect  string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	Port       string
	JWTSecret  string
	JWTExpiry  time.Duration
	GinMode    string
}

// Load reads configuration from the environment once at startup.
// A .env file is honored when present. JWTSecret deliberately has no
// default: the auth middleware treats an empty secret as a server
// configuration error on the first authenticated request.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBDialect:  getEnv("DB_DIALECT", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "warduser"),
		DBPassword: getEnv("DB_PASS", "wardpassword"),
		DBName:     getEnv("DB_NAME", "ward_staffing"),
		Port:       getEnv("PORT", "8080"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		JWTExpiry:  getDurationEnv("JWT_EXPIRES_IN", 15*time.Minute),
		GinMode:    getEnv("GIN_MODE", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
