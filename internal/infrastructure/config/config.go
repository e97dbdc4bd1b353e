package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file if it exists (ignores error if not found)
	godotenv.Load()
}

// InsecureDefaultSecret is the development fallback signing secret. Running
// production with it defeats token verification entirely.
const InsecureDefaultSecret = "your-super-secret-key-that-is-long-enough"

type Config struct {
	Port         string
	Env          string // "development" or "production"
	JWTSecret    string
	TokenExpiry  int    // hours
	DatabasePath string // empty keeps accounts in memory
	FrontendURL  string
}

func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		JWTSecret:    getEnv("JWT_SECRET", InsecureDefaultSecret),
		TokenExpiry:  int(getEnvAsInt64("TOKEN_EXPIRY_HOURS", 168)),
		DatabasePath: getEnv("DATABASE_PATH", ""),
		FrontendURL:  getEnv("FRONTEND_URL", "http://localhost:3000"),
	}
}

// IsProduction reports whether the process runs in production mode; it
// controls the Secure cookie attribute.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}
