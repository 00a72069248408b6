package counter

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	actionsCounter metric.Int64Counter
	errorCounter   metric.Int64Counter
)

// InitMetrics registers the counter's OTel instruments.
func InitMetrics() error {
	meter := otel.Meter("counter")

	var err error

	actionsCounter, err = meter.Int64Counter("counter.actions.total",
		metric.WithDescription("Counter actions applied, by action"),
		metric.WithUnit("{action}"),
	)
	if err != nil {
		return fmt.Errorf("creating actions counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("counter.errors.total",
		metric.WithDescription("Rejected counter requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}
