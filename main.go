package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"pdf_service/api"
	"pdf_service/config"
	"pdf_service/pdf"
)

const (
	// ServerReadTimeout is the HTTP server read timeout
	ServerReadTimeout = 15 * time.Second

	// ServerWriteTimeout is the HTTP server write timeout
	ServerWriteTimeout = 2 * time.Minute

	// ServerIdleTimeout is the HTTP server idle timeout
	ServerIdleTimeout = 60 * time.Second

	// GracefulShutdownTimeout is the timeout for graceful shutdown
	GracefulShutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := initLogger("info")
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}

	logger := initLogger(cfg.LogLevel)

	svc, err := pdf.NewService(cfg.GsBin, cfg.QpdfBin, cfg.TempDir, cfg.CommandTimeout, cfg.MaxConcurrent, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize pdf service")
	}

	// Fail fast when the external tools are missing.
	if err := svc.CheckTools(); err != nil {
		logger.Fatal().Err(err).Msg("external PDF tools unavailable")
	}
	logger.Info().Str("gs", cfg.GsBin).Str("qpdf", cfg.QpdfBin).Msg("external PDF tools available")

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), api.RequestLogger(logger))
	r.MaxMultipartMemory = cfg.MaxFileSize

	api.SetupRoutes(r, api.NewHandler(cfg, svc, logger))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  ServerReadTimeout,
		WriteTimeout: ServerWriteTimeout,
		IdleTimeout:  ServerIdleTimeout,
	}

	go func() {
		logger.Info().
			Str("addr", srv.Addr).
			Int64("max_file_size", cfg.MaxFileSize).
			Str("temp_dir", cfg.TempDir).
			Str("compress_mode", cfg.CompressMode).
			Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), GracefulShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited gracefully")
}

func initLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Str("app", "pdf_service").Logger()
}
