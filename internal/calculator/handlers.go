package calculator

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"keypad-calculator/internal/handlers"
	"keypad-calculator/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("calculator")

// BinaryOp returns the handler for POST /calculator/{op}. Division by zero
// is answered like any other result: "Infinity", "-Infinity" or "NaN".
func BinaryOp(op Operator) http.HandlerFunc {
	opName := op.Name()

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := observability.LoggerWithTrace(ctx)
		requestID := observability.RequestIDFromContext(ctx)

		ctx, span := tracer.Start(ctx, "calculator."+opName,
			trace.WithAttributes(
				attribute.String("calculator.operation", opName),
				attribute.String("request.id", requestID),
			),
		)
		defer span.End()

		var req CalcRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid request body", err, http.StatusBadRequest, w)
			return
		}

		a, b := float64(req.A), float64(req.B)
		span.SetAttributes(
			attribute.Float64("calculator.operand.a", a),
			attribute.Float64("calculator.operand.b", b),
		)

		start := time.Now()
		result := Calculate(a, b, op)
		elapsed := sinceMillis(start)

		attrs := metric.WithAttributes(attribute.String("operation", opName))
		opsCounter.Add(ctx, 1, attrs)
		opsHistogram.Record(ctx, elapsed, attrs)
		resultGauge.Record(ctx, result, attrs)

		display := FormatNumber(result)
		span.AddEvent("computation.complete", trace.WithAttributes(
			attribute.String("result", display),
			attribute.Float64("duration_ms", elapsed),
		))
		span.SetStatus(codes.Ok, "")

		logger.Info("calculator operation completed",
			zap.String("operation", opName),
			zap.Float64("a", a),
			zap.Float64("b", b),
			zap.String("result", display),
			zap.String("request_id", requestID),
			zap.Float64("duration_ms", elapsed),
		)

		handlers.WriteJSON(w, http.StatusOK, CalcResponse{
			Operation: opName,
			A:         req.A,
			B:         req.B,
			Result:    Number(result),
			Display:   display,
		})
	}
}

// Chain handles POST /calculator/chain. Steps are applied to a running total
// strictly left to right, each under its own child span.
func Chain(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.chain",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	var req ChainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "chain", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	if len(req.Steps) == 0 {
		observability.RecordError(ctx, span, logger, errorCounter, "chain", "no steps provided", fmt.Errorf("steps array is empty"), http.StatusBadRequest, w)
		return
	}

	// Resolve every operator before evaluating so a bad step rejects the
	// whole chain without partial metrics.
	ops := make([]Operator, len(req.Steps))
	for i, step := range req.Steps {
		op, err := ParseOperator(step.Op)
		if err != nil {
			observability.RecordError(ctx, span, logger, errorCounter, "chain", fmt.Sprintf("unknown operation %q at step %d", step.Op, i), err, http.StatusBadRequest, w)
			return
		}
		ops[i] = op
	}

	span.SetAttributes(
		attribute.Float64("chain.initial", float64(req.Initial)),
		attribute.Int("chain.steps_count", len(req.Steps)),
	)

	running := float64(req.Initial)
	results := make([]ChainResult, 0, len(req.Steps))

	for i, step := range req.Steps {
		op := ops[i]
		value := float64(step.Value)
		_, stepSpan := tracer.Start(ctx, fmt.Sprintf("calculator.chain.step.%d.%s", i, op.Name()),
			trace.WithAttributes(
				attribute.Int("chain.step.index", i),
				attribute.String("chain.step.operation", op.Name()),
				attribute.Float64("chain.step.input", running),
				attribute.Float64("chain.step.value", value),
			),
		)

		stepStart := time.Now()
		prev := running
		running = Calculate(running, value, op)
		stepElapsed := sinceMillis(stepStart)

		attrs := metric.WithAttributes(attribute.String("operation", op.Name()))
		opsCounter.Add(ctx, 1, attrs)
		opsHistogram.Record(ctx, stepElapsed, attrs)

		stepSpan.SetAttributes(attribute.String("chain.step.result", FormatNumber(running)))
		stepSpan.SetStatus(codes.Ok, "")
		stepSpan.End()

		logger.Debug("chain step completed",
			zap.Int("step", i),
			zap.String("operation", op.Name()),
			zap.Float64("input", prev),
			zap.Float64("value", value),
			zap.String("result", FormatNumber(running)),
		)

		results = append(results, ChainResult{Op: op, Value: step.Value, Result: Number(running)})
	}

	resultGauge.Record(ctx, running, metric.WithAttributes(attribute.String("operation", "chain")))

	display := FormatNumber(running)
	span.SetAttributes(attribute.String("chain.result", display))
	span.SetStatus(codes.Ok, "")

	logger.Info("chained calculation completed",
		zap.Float64("initial", float64(req.Initial)),
		zap.String("result", display),
		zap.Int("steps", len(req.Steps)),
		zap.String("request_id", requestID),
	)

	handlers.WriteJSON(w, http.StatusOK, ChainResponse{
		Initial: req.Initial,
		Steps:   results,
		Result:  Number(running),
		Display: display,
	})
}

// Keys handles POST /calculator/keys: the key sequence is replayed on the
// supplied snapshot (or a cleared keypad) and the resulting snapshot returned.
// Nothing is kept server-side between calls.
func Keys(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "calculator.keys",
		trace.WithAttributes(attribute.String("request.id", requestID)),
	)
	defer span.End()

	var req KeysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "keys", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	state := NewState()
	if req.State != nil {
		restored, err := Restore(*req.State)
		if err != nil {
			observability.RecordError(ctx, span, logger, errorCounter, "keys", "invalid state", err, http.StatusBadRequest, w)
			return
		}
		state = restored
	}

	keys, err := ParseSequence(req.Keys)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "keys", "invalid key sequence", err, http.StatusBadRequest, w)
		return
	}
	span.SetAttributes(attribute.Int("calculator.keys.count", len(keys)))

	start := time.Now()
	state, err = Replay(state, keys, func(k Key, _ State) {
		keysCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", k.Kind.String())))
		if k.Kind == KeyOperator || k.Kind == KeyEquals {
			opsCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "keys")))
		}
	})
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "keys", "invalid key sequence", err, http.StatusBadRequest, w)
		return
	}
	elapsed := sinceMillis(start)
	opsHistogram.Record(ctx, elapsed, metric.WithAttributes(attribute.String("operation", "keys")))

	// Every snapshot handed out must be accepted back by Restore.
	if err := checkDisplayLen(state.Display()); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "keys", "display too long", err, http.StatusBadRequest, w)
		return
	}

	snap := state.Snapshot()
	span.SetAttributes(attribute.String("calculator.display", snap.Display))
	span.SetStatus(codes.Ok, "")

	logger.Info("key sequence replayed",
		zap.Int("keys", len(keys)),
		zap.String("display", snap.Display),
		zap.Bool("pending", snap.Pending != nil),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, KeysResponse{State: snap, KeysApplied: len(keys)})
}

func sinceMillis(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
