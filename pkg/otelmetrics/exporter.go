package otelmetrics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/petrijr/fxaflow/pkg/api"
)

var (
	ErrNilMeter  = errors.New("nil meter")
	ErrNilSource = errors.New("nil snapshot source")
)

// SnapshotSource supplies the current metric totals. *api.BasicMetrics
// implements it.
type SnapshotSource interface {
	Snapshot() api.BasicMetricsSnapshot
}

var (
	outcomeCompleted = metric.WithAttributes(attribute.String("outcome", "completed"))
	outcomeFailed    = metric.WithAttributes(attribute.String("outcome", "failed"))
	outcomeSuccess   = metric.WithAttributes(attribute.String("outcome", "success"))
	outcomeCallError = metric.WithAttributes(attribute.String("outcome", "call_error"))
)

// Exporter holds the registered instruments for one snapshot source.
type Exporter struct {
	source       SnapshotSource
	registration metric.Registration

	eventsStarted metric.Int64ObservableCounter
	eventsEnded   metric.Int64ObservableCounter
	steps         metric.Int64ObservableCounter
	anomalies     metric.Int64ObservableCounter
	stepAvg       metric.Float64ObservableGauge
}

// New registers fxaflow instruments on meter and wires them to source. Call
// Close to unregister when the source is discarded.
func New(meter metric.Meter, source SnapshotSource) (*Exporter, error) {
	if meter == nil {
		return nil, ErrNilMeter
	}
	if source == nil {
		return nil, ErrNilSource
	}

	e := &Exporter{source: source}

	var err error
	e.eventsStarted, err = meter.Int64ObservableCounter(
		"fxaflow_events_started_total",
		metric.WithDescription("Events submitted to the state machine."),
	)
	if err != nil {
		return nil, fmt.Errorf("create events started counter: %w", err)
	}

	e.eventsEnded, err = meter.Int64ObservableCounter(
		"fxaflow_events_ended_total",
		metric.WithDescription("Events finished, by outcome."),
	)
	if err != nil {
		return nil, fmt.Errorf("create events ended counter: %w", err)
	}

	e.steps, err = meter.Int64ObservableCounter(
		"fxaflow_steps_total",
		metric.WithDescription("Account call steps executed, by outcome."),
	)
	if err != nil {
		return nil, fmt.Errorf("create steps counter: %w", err)
	}

	e.anomalies, err = meter.Int64ObservableCounter(
		"fxaflow_anomalies_total",
		metric.WithDescription("Transition anomalies reported by the state machine."),
	)
	if err != nil {
		return nil, fmt.Errorf("create anomalies counter: %w", err)
	}

	e.stepAvg, err = meter.Float64ObservableGauge(
		"fxaflow_step_duration_avg_ms",
		metric.WithDescription("Average duration of successful account calls."),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create step duration gauge: %w", err)
	}

	registration, err := meter.RegisterCallback(func(_ context.Context, observer metric.Observer) error {
		snap := e.source.Snapshot()
		observer.ObserveInt64(e.eventsStarted, snap.EventsStarted)
		observer.ObserveInt64(e.eventsEnded, snap.EventsCompleted, outcomeCompleted)
		observer.ObserveInt64(e.eventsEnded, snap.EventsFailed, outcomeFailed)
		observer.ObserveInt64(e.steps, snap.StepsCompleted, outcomeSuccess)
		observer.ObserveInt64(e.steps, snap.CallErrors, outcomeCallError)
		observer.ObserveInt64(e.anomalies, snap.Anomalies)
		observer.ObserveFloat64(e.stepAvg, float64(snap.AvgStepDuration)/float64(time.Millisecond))
		return nil
	}, e.eventsStarted, e.eventsEnded, e.steps, e.anomalies, e.stepAvg)
	if err != nil {
		return nil, fmt.Errorf("register callback: %w", err)
	}

	e.registration = registration
	return e, nil
}

// Close unregisters the collection callback.
func (e *Exporter) Close() error {
	if e == nil || e.registration == nil {
		return nil
	}
	return e.registration.Unregister()
}
