package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "PORT", "STORAGE_MODE", "STORAGE_PATH", "DATABASE_URL",
		"HUGGINGFACE_API_KEY", "HUGGINGFACE_BASE_URL", "POLLINATIONS_BASE_URL",
		"GEOIP_DB_PATH", "WATERMARK_TEXT", "ENHANCE_PROMPTS", "RATE_LIMIT_PER_MINUTE",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != "development" {
		t.Errorf("app env = %q, want development", cfg.AppEnv)
	}
	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.StorageMode != StorageModeFile {
		t.Errorf("storage mode = %q, want file", cfg.StorageMode)
	}
	if cfg.StoragePath != "attached_assets" {
		t.Errorf("storage path = %q, want attached_assets", cfg.StoragePath)
	}
	if cfg.WatermarkText != "AnveshAI" {
		t.Errorf("watermark text = %q", cfg.WatermarkText)
	}
	if cfg.EnhancePrompts {
		t.Errorf("prompt enhancement should default to off")
	}
	if cfg.HTTPWriteTimeout != 120*time.Second {
		t.Errorf("write timeout = %v, want 120s", cfg.HTTPWriteTimeout)
	}
	if cfg.RateLimitPerMin != 60 {
		t.Errorf("rate limit = %d, want 60", cfg.RateLimitPerMin)
	}
}

func TestLoadConfigRejectsUnknownStorageMode(t *testing.T) {
	t.Setenv("STORAGE_MODE", "redis")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for unsupported storage mode")
	}
}

func TestLoadConfigPostgresRequiresDatabaseURL(t *testing.T) {
	t.Setenv("STORAGE_MODE", StorageModePostgres)
	t.Setenv("DATABASE_URL", "")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error when postgres mode has no DATABASE_URL")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost:5432/anveshai")
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageMode != StorageModePostgres {
		t.Fatalf("storage mode = %q", cfg.StorageMode)
	}
}

func TestLoadConfigReadsOverrides(t *testing.T) {
	t.Setenv("STORAGE_MODE", StorageModeMemory)
	t.Setenv("ENHANCE_PROMPTS", "true")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "5")
	t.Setenv("WATERMARK_TEXT", "OtherBrand")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageMode != StorageModeMemory {
		t.Errorf("storage mode = %q", cfg.StorageMode)
	}
	if !cfg.EnhancePrompts {
		t.Errorf("prompt enhancement should be on")
	}
	if cfg.RateLimitPerMin != 5 {
		t.Errorf("rate limit = %d, want 5", cfg.RateLimitPerMin)
	}
	if cfg.WatermarkText != "OtherBrand" {
		t.Errorf("watermark text = %q", cfg.WatermarkText)
	}
}
