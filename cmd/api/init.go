package main

import (
	"context"
	"errors"
	"fmt"

	"keypad-calculator/internal/calculator"
	"keypad-calculator/internal/config"
	"keypad-calculator/internal/counter"
	"keypad-calculator/internal/observability"
)

type shutdownFunc func(context.Context) error

// initTelemetry starts the OTLP log, trace and metric pipelines when enabled
// and always registers the domain instruments, which fall back to the no-op
// global provider otherwise. The returned func shuts everything down in
// reverse order.
func initTelemetry(ctx context.Context, cfg config.TelemetryConfig) (shutdownFunc, error) {
	var shutdowns []shutdownFunc

	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	if cfg.Enabled {
		logShutdown, err := observability.InitLogging(ctx, cfg.ServiceName)
		if err != nil {
			return nil, fmt.Errorf("init logging: %w", err)
		}
		shutdowns = append(shutdowns, logShutdown)

		traceShutdown, err := observability.InitTracing(ctx, cfg.ServiceName)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("init tracing: %w", err), shutdown(ctx))
		}
		shutdowns = append(shutdowns, traceShutdown)

		metricShutdown, err := observability.InitMetrics(ctx, cfg.ServiceName)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("init metrics: %w", err), shutdown(ctx))
		}
		shutdowns = append(shutdowns, metricShutdown)
	}

	if err := calculator.InitMetrics(); err != nil {
		return nil, errors.Join(err, shutdown(ctx))
	}
	if err := counter.InitMetrics(); err != nil {
		return nil, errors.Join(err, shutdown(ctx))
	}

	return shutdown, nil
}
