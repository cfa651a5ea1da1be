package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Compression modes. Tmp writes temp files and runs the full gs+qpdf
// pipeline; buffer streams through gs stdin/stdout without touching disk.
const (
	CompressModeTmp    = "tmp"
	CompressModeBuffer = "buffer"
)

// Config holds application configuration, populated from the environment.
type Config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	MaxFileSize    int64         `env:"MAX_FILE_SIZE" envDefault:"52428800"`
	TempDir        string        `env:"TEMP_DIR" envDefault:"./temp"`
	CommandTimeout time.Duration `env:"COMMAND_TIMEOUT" envDefault:"60s"`
	MaxConcurrent  int64         `env:"MAX_CONCURRENT" envDefault:"4"`
	CompressMode   string        `env:"COMPRESS_MODE" envDefault:"tmp"`
	GsBin          string        `env:"GS_BIN" envDefault:"gs"`
	QpdfBin        string        `env:"QPDF_BIN" envDefault:"qpdf"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.CompressMode != CompressModeTmp && cfg.CompressMode != CompressModeBuffer {
		return nil, fmt.Errorf("COMPRESS_MODE must be %q or %q, got %q",
			CompressModeTmp, CompressModeBuffer, cfg.CompressMode)
	}
	if cfg.MaxConcurrent < 1 {
		return nil, fmt.Errorf("MAX_CONCURRENT must be at least 1, got %d", cfg.MaxConcurrent)
	}
	return &cfg, nil
}
