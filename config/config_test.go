package config

import (
	"testing"
	"time"
)

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("COMMAND_TIMEOUT", "30s")
	t.Setenv("COMPRESS_MODE", "buffer")
	t.Setenv("MAX_CONCURRENT", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.CommandTimeout != 30*time.Second {
		t.Errorf("CommandTimeout = %v", cfg.CommandTimeout)
	}
	if cfg.CompressMode != CompressModeBuffer {
		t.Errorf("CompressMode = %q", cfg.CompressMode)
	}
	if cfg.MaxConcurrent != 8 {
		t.Errorf("MaxConcurrent = %d", cfg.MaxConcurrent)
	}
}

func TestLoadRejectsUnknownCompressMode(t *testing.T) {
	t.Setenv("COMPRESS_MODE", "ram")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown compress mode")
	}
}

func TestLoadRejectsZeroConcurrency(t *testing.T) {
	t.Setenv("MAX_CONCURRENT", "0")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for zero concurrency")
	}
}
