package counter

import (
	"encoding/json"
	"net/http"

	"keypad-calculator/internal/handlers"
	"keypad-calculator/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("counter")

// DispatchHandler handles POST /counter/dispatch: the caller sends the current
// count and a list of actions and gets the folded count back.
func DispatchHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "counter.dispatch",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	var req DispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "dispatch", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	actions := make([]Action, 0, len(req.Actions))
	for _, raw := range req.Actions {
		a, err := ParseAction(raw)
		if err != nil {
			observability.RecordError(ctx, span, logger, errorCounter, "dispatch", "unknown action", err, http.StatusBadRequest, w)
			return
		}
		actions = append(actions, a)
	}

	state, err := Dispatch(State{Count: req.Count}, actions...)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "dispatch", "unknown action", err, http.StatusBadRequest, w)
		return
	}

	for _, a := range actions {
		actionsCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("action", string(a))))
	}

	span.SetAttributes(
		attribute.Int("counter.initial", req.Count),
		attribute.Int("counter.result", state.Count),
	)
	span.SetStatus(codes.Ok, "")

	logger.Info("counter dispatched",
		zap.Int("initial", req.Count),
		zap.Int("count", state.Count),
		zap.Int("actions", len(actions)),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, DispatchResponse{Count: state.Count, Applied: len(actions)})
}
