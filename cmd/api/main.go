package main

import (
	"context"
	"errors"
	"net/http"
	"os"

	"keypad-calculator/internal/config"
	"keypad-calculator/internal/observability"
	"keypad-calculator/internal/server"

	"go.uber.org/zap"
)

func main() {

	ctx := context.Background()

	if err := loadDotEnv(); err != nil {
		panic(err)
	}

	cfgPath := os.Getenv("CALC_CONFIG")
	if cfgPath == "" {
		cfgPath = config.DefaultPath
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		panic(err)
	}

	// Logger
	if err := observability.InitLogger(cfg.Log.Level, cfg.Log.Development); err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	// Logs, traces, metrics
	shutdownTelemetry, err := initTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		observability.Logger.Fatal("telemetry init failed", zap.Error(err))
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			observability.Logger.Warn("telemetry shutdown", zap.Error(err))
		}
	}()

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: server.NewRouter(),
	}

	go func() {
		observability.Logger.Info("server started",
			zap.String("addr", cfg.Server.Addr),
			zap.Bool("telemetry", cfg.Telemetry.Enabled),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			observability.Logger.Fatal("server failed", zap.Error(err))
		}
	}()

	timeout, _ := cfg.ShutdownTimeout() // validated by config.Load
	waitForShutdown(srv, timeout)
}
