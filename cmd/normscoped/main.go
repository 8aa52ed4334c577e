// Command normscoped is the normscope HTTP service.
// It serves the scoring and norms API and a health check.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/normscope/normscope/internal/api"
	"github.com/normscope/normscope/internal/export"
	"github.com/normscope/normscope/internal/logging"
	"github.com/normscope/normscope/pkg/scoring"
)

type config struct {
	Port              string
	APIKey            string
	ExportDestination string
	S3                export.S3Config
	LogLevel          string
	LogEncoding       string
	CORSOrigins       []string
	RateLimit         int
	ShutdownTimeout   time.Duration
}

func loadConfig() config {
	return config{
		Port:              envOrDefault("PORT", "8080"),
		APIKey:            os.Getenv("API_KEY"),
		ExportDestination: os.Getenv("EXPORT_DESTINATION"),
		S3: export.S3Config{
			Region:    envOrDefault("S3_REGION", "us-east-1"),
			Endpoint:  os.Getenv("S3_ENDPOINT"),
			AccessKey: os.Getenv("S3_ACCESS_KEY"),
			SecretKey: os.Getenv("S3_SECRET_KEY"),
		},
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogEncoding:     envOrDefault("LOG_ENCODING", "json"),
		CORSOrigins:     splitList(os.Getenv("CORS_ORIGINS")),
		RateLimit:       envInt("RATE_LIMIT", 0),
		ShutdownTimeout: 10 * time.Second,
	}
}

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()
	cfg := loadConfig()

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Encoding: cfg.LogEncoding})
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var sink export.Sink
	if cfg.ExportDestination != "" {
		sink, err = export.Open(ctx, cfg.ExportDestination, cfg.S3)
		if err != nil {
			logger.Fatal("open export sink", zap.String("destination", cfg.ExportDestination), zap.Error(err))
		}
	}

	handler := api.NewHandler(api.Options{
		Engine:      scoring.NewEngine(nil),
		Sink:        sink,
		Logger:      logger,
		APIKey:      cfg.APIKey,
		CORSOrigins: cfg.CORSOrigins,
		RateLimit:   cfg.RateLimit,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting normscoped",
			zap.String("addr", srv.Addr),
			zap.Bool("auth", cfg.APIKey != ""),
			zap.Bool("export", sink != nil))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
