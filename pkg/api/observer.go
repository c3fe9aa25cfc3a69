package api

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// EventInfo identifies one ProcessEvent call in observer callbacks.
type EventInfo struct {
	// ID is unique per ProcessEvent call, for correlating its callbacks.
	ID string

	// Event is the event name, e.g. "BeginOAuthFlow".
	Event string

	// State is the name of the public state the call began in.
	State string
}

// Observer receives callbacks from the state machine for logging and metrics.
//
// Implementations should be fast and non-blocking; heavy work should be done
// asynchronously so as not to delay event processing. All strings passed to
// observers are variant names, never payloads, so they are safe to log.
type Observer interface {
	// OnEventStart is called once when ProcessEvent begins, before the
	// first internal step runs.
	OnEventStart(ctx context.Context, info EventInfo)

	// OnEventCompleted is called when ProcessEvent returns successfully.
	// state names the resulting public state (which equals info.State when
	// the event was gracefully cancelled mid-flow).
	OnEventCompleted(ctx context.Context, info EventInfo, state string, duration time.Duration)

	// OnEventFailed is called when ProcessEvent returns an error.
	OnEventFailed(ctx context.Context, info EventInfo, err error, duration time.Duration)

	// OnStepStart is called before invoking the account operation for an
	// internal step, e.g. "Uninitialized(GetAuthState)".
	OnStepStart(ctx context.Context, info EventInfo, step string)

	// OnStepCompleted is called after the account operation returns, for
	// both successes and failures. outcome names the resulting internal
	// event ("CallError" for failures); err is the raw account error, nil
	// on success.
	OnStepCompleted(ctx context.Context, info EventInfo, step string, outcome string, err error, duration time.Duration)

	// OnAnomaly is called when the machine detects a transition-table
	// defect: an unmatched (step, outcome) pair, an invalid event for the
	// current state, or an account failure on a step that must not fail.
	OnAnomaly(ctx context.Context, info EventInfo, message string)
}

// NoopObserver is an Observer that does nothing.
// It is used as the default when no observer is configured.
type NoopObserver struct{}

func (NoopObserver) OnEventStart(ctx context.Context, info EventInfo) {}
func (NoopObserver) OnEventCompleted(ctx context.Context, info EventInfo, state string, d time.Duration) {
}
func (NoopObserver) OnEventFailed(ctx context.Context, info EventInfo, err error, d time.Duration) {}
func (NoopObserver) OnStepStart(ctx context.Context, info EventInfo, step string)                  {}
func (NoopObserver) OnStepCompleted(ctx context.Context, info EventInfo, step string, outcome string, err error, d time.Duration) {
}
func (NoopObserver) OnAnomaly(ctx context.Context, info EventInfo, message string) {}

// CompositeObserver fans out callbacks to multiple observers.
type CompositeObserver struct {
	observers []Observer
}

// NewCompositeObserver creates an Observer that forwards callbacks to each
// non-nil observer in obs.
func NewCompositeObserver(obs ...Observer) Observer {
	filtered := make([]Observer, 0, len(obs))
	for _, o := range obs {
		if o != nil {
			filtered = append(filtered, o)
		}
	}
	if len(filtered) == 0 {
		return NoopObserver{}
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &CompositeObserver{observers: filtered}
}

func (c *CompositeObserver) OnEventStart(ctx context.Context, info EventInfo) {
	for _, o := range c.observers {
		o.OnEventStart(ctx, info)
	}
}

func (c *CompositeObserver) OnEventCompleted(ctx context.Context, info EventInfo, state string, d time.Duration) {
	for _, o := range c.observers {
		o.OnEventCompleted(ctx, info, state, d)
	}
}

func (c *CompositeObserver) OnEventFailed(ctx context.Context, info EventInfo, err error, d time.Duration) {
	for _, o := range c.observers {
		o.OnEventFailed(ctx, info, err, d)
	}
}

func (c *CompositeObserver) OnStepStart(ctx context.Context, info EventInfo, step string) {
	for _, o := range c.observers {
		o.OnStepStart(ctx, info, step)
	}
}

func (c *CompositeObserver) OnStepCompleted(ctx context.Context, info EventInfo, step string, outcome string, err error, d time.Duration) {
	for _, o := range c.observers {
		o.OnStepCompleted(ctx, info, step, outcome, err, d)
	}
}

func (c *CompositeObserver) OnAnomaly(ctx context.Context, info EventInfo, message string) {
	for _, o := range c.observers {
		o.OnAnomaly(ctx, info, message)
	}
}

// LoggingObserver writes structured logs using log/slog.
type LoggingObserver struct {
	Logger *slog.Logger
}

// NewLoggingObserver creates an Observer that logs event / step lifecycle
// callbacks using the provided slog.Logger. If logger is nil, slog.Default()
// is used.
func NewLoggingObserver(logger *slog.Logger) Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{Logger: logger}
}

func (o *LoggingObserver) OnEventStart(ctx context.Context, info EventInfo) {
	o.Logger.InfoContext(ctx, "event_start",
		slog.String("event_id", info.ID),
		slog.String("event", info.Event),
		slog.String("state", info.State),
	)
}

func (o *LoggingObserver) OnEventCompleted(ctx context.Context, info EventInfo, state string, d time.Duration) {
	o.Logger.InfoContext(ctx, "event_completed",
		slog.String("event_id", info.ID),
		slog.String("event", info.Event),
		slog.String("state", state),
		slog.Duration("duration", d),
	)
}

func (o *LoggingObserver) OnEventFailed(ctx context.Context, info EventInfo, err error, d time.Duration) {
	o.Logger.ErrorContext(ctx, "event_failed",
		slog.String("event_id", info.ID),
		slog.String("event", info.Event),
		slog.String("state", info.State),
		slog.Duration("duration", d),
		slog.Any("error", err),
	)
}

func (o *LoggingObserver) OnStepStart(ctx context.Context, info EventInfo, step string) {
	o.Logger.DebugContext(ctx, "step_start",
		slog.String("event_id", info.ID),
		slog.String("step", step),
	)
}

func (o *LoggingObserver) OnStepCompleted(ctx context.Context, info EventInfo, step string, outcome string, err error, d time.Duration) {
	level := slog.LevelDebug
	if err != nil {
		level = slog.LevelWarn
	}
	o.Logger.Log(ctx, level, "step_completed",
		slog.String("event_id", info.ID),
		slog.String("step", step),
		slog.String("outcome", outcome),
		slog.Duration("duration", d),
		slog.Any("error", err),
	)
}

func (o *LoggingObserver) OnAnomaly(ctx context.Context, info EventInfo, message string) {
	o.Logger.ErrorContext(ctx, "state_machine_anomaly",
		slog.String("event_id", info.ID),
		slog.String("event", info.Event),
		slog.String("state", info.State),
		slog.String("message", message),
	)
}

// BasicMetrics collects simple counters and aggregate step durations.
// It implements Observer, and can be combined with LoggingObserver via
// NewCompositeObserver.
type BasicMetrics struct {
	NoopObserver

	eventsStarted     atomic.Int64
	eventsCompleted   atomic.Int64
	eventsFailed      atomic.Int64
	stepsCompleted    atomic.Int64
	callErrors        atomic.Int64
	anomalies         atomic.Int64
	totalStepDuration atomic.Int64 // nanoseconds
}

// BasicMetricsSnapshot is an immutable snapshot of BasicMetrics.
type BasicMetricsSnapshot struct {
	EventsStarted   int64
	EventsCompleted int64
	EventsFailed    int64

	// StepsCompleted counts successful account calls; CallErrors counts
	// failed ones.
	StepsCompleted int64
	CallErrors     int64

	Anomalies int64

	// AvgStepDuration averages over successful account calls.
	AvgStepDuration time.Duration
}

func (m *BasicMetrics) OnEventStart(ctx context.Context, info EventInfo) {
	m.eventsStarted.Add(1)
}

func (m *BasicMetrics) OnEventCompleted(ctx context.Context, info EventInfo, state string, d time.Duration) {
	m.eventsCompleted.Add(1)
}

func (m *BasicMetrics) OnEventFailed(ctx context.Context, info EventInfo, err error, d time.Duration) {
	m.eventsFailed.Add(1)
}

func (m *BasicMetrics) OnStepCompleted(ctx context.Context, info EventInfo, step string, outcome string, err error, d time.Duration) {
	if err != nil {
		m.callErrors.Add(1)
		return
	}
	m.stepsCompleted.Add(1)
	m.totalStepDuration.Add(d.Nanoseconds())
}

func (m *BasicMetrics) OnAnomaly(ctx context.Context, info EventInfo, message string) {
	m.anomalies.Add(1)
}

// Snapshot returns a snapshot of the current metrics.
func (m *BasicMetrics) Snapshot() BasicMetricsSnapshot {
	steps := m.stepsCompleted.Load()
	totalNs := m.totalStepDuration.Load()

	var avg time.Duration
	if steps > 0 {
		avg = time.Duration(totalNs / steps)
	}

	return BasicMetricsSnapshot{
		EventsStarted:   m.eventsStarted.Load(),
		EventsCompleted: m.eventsCompleted.Load(),
		EventsFailed:    m.eventsFailed.Load(),
		StepsCompleted:  steps,
		CallErrors:      m.callErrors.Load(),
		Anomalies:       m.anomalies.Load(),
		AvgStepDuration: avg,
	}
}
