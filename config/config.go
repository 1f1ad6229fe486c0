package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment.
type Config struct {
	MongoURI     string
	MongoDB      string
	RedisAddr    string
	HTTPPort     string
	AppBaseURL   string
	StatsTTL     time.Duration
	SelectorSeed int64
}

// Load reads configuration from the environment, applying a local .env
// file when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "thrgacha"),
		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:     getEnv("PORT", "8080"),
		AppBaseURL:   getEnv("APP_BASE_URL", "http://localhost:3000"),
		StatsTTL:     getDuration("STATS_CACHE_TTL_SEC", 15),
		SelectorSeed: getInt64("SELECTOR_SEED", 0),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultSec int) time.Duration {
	if val := os.Getenv(key); val != "" {
		if sec, err := strconv.Atoi(val); err == nil && sec > 0 {
			return time.Duration(sec) * time.Second
		}
	}
	return time.Duration(defaultSec) * time.Second
}

func getInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			return n
		}
	}
	return defaultVal
}
