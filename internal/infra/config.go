package infra

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Storage mode values accepted by STORAGE_MODE.
const (
	StorageModeMemory   = "memory"
	StorageModeFile     = "file"
	StorageModePostgres = "postgres"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv             string
	Port               string
	StorageMode        string
	StoragePath        string
	DatabaseURL        string
	HuggingFaceAPIKey  string
	HuggingFaceBaseURL string
	PollinationsURL    string
	GeoIPDBPath        string
	WatermarkText      string
	EnhancePrompts     bool
	HTTPReadTimeout    time.Duration
	HTTPWriteTimeout   time.Duration
	HTTPIdleTimeout    time.Duration
	RateLimitPerMin    int
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		Port:               getEnv("PORT", "8080"),
		StorageMode:        getEnv("STORAGE_MODE", StorageModeFile),
		StoragePath:        getEnv("STORAGE_PATH", "attached_assets"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		HuggingFaceAPIKey:  os.Getenv("HUGGINGFACE_API_KEY"),
		HuggingFaceBaseURL: getEnv("HUGGINGFACE_BASE_URL", "https://api-inference.huggingface.co"),
		PollinationsURL:    getEnv("POLLINATIONS_BASE_URL", "https://image.pollinations.ai"),
		GeoIPDBPath:        os.Getenv("GEOIP_DB_PATH"),
		WatermarkText:      getEnv("WATERMARK_TEXT", "AnveshAI"),
		EnhancePrompts:     getEnvBool("ENHANCE_PROMPTS", false),
		HTTPReadTimeout:    time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:   time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 120)),
		HTTPIdleTimeout:    time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:    getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
	}

	switch cfg.StorageMode {
	case StorageModeMemory, StorageModeFile, StorageModePostgres:
	default:
		return nil, fmt.Errorf("unsupported STORAGE_MODE %q", cfg.StorageMode)
	}

	if cfg.StorageMode == StorageModePostgres && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when STORAGE_MODE=postgres")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
