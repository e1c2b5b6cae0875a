package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string

	// PublicBaseURL is the externally visible origin used to build
	// chart image URLs, e.g. "https://api.astrologerinranchi.com".
	PublicBaseURL string
	AllowOrigin   string

	StaticDir  string
	FontPath   string
	VSOP87Path string

	NominatimBaseURL string
	PhotonBaseURL    string

	RedisURL        string
	GeocodeCacheTTL time.Duration
	RequestTimeout  time.Duration
}

func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "8080"),
		Environment:      getEnv("ENVIRONMENT", "production"),
		PublicBaseURL:    getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
		AllowOrigin:      getEnv("ALLOW_ORIGIN", "https://astrologerinranchi.com"),
		StaticDir:        getEnv("STATIC_DIR", "static"),
		FontPath:         getEnv("FONT_PATH", "fonts/NotoSansDevanagari-Regular.ttf"),
		VSOP87Path:       getEnv("VSOP87_PATH", ""),
		NominatimBaseURL: getEnv("NOMINATIM_BASE_URL", ""),
		PhotonBaseURL:    getEnv("PHOTON_BASE_URL", ""),
		RedisURL:         getEnv("REDIS_URL", ""),
		GeocodeCacheTTL:  getDuration("GEOCODE_CACHE_TTL_HOURS", 24) * time.Hour,
		RequestTimeout:   getDuration("REQUEST_TIMEOUT_SECONDS", 30) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return time.Duration(n)
		}
	}
	return time.Duration(defaultValue)
}
