package api

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// RecordType identifies a telemetry record.
type RecordType string

const (
	RecordEventStarted   RecordType = "event.started"
	RecordEventCompleted RecordType = "event.completed"
	RecordEventFailed    RecordType = "event.failed"

	RecordStepStarted   RecordType = "step.started"
	RecordStepCompleted RecordType = "step.completed"

	RecordAnomaly RecordType = "anomaly"
)

// TelemetryRecord is a minimal append-only record for audit/debugging.
// It is intentionally small and stable; every field holds a variant name or
// an error string, never an event payload.
type TelemetryRecord struct {
	At      time.Time  `json:"at"`
	Type    RecordType `json:"type"`
	EventID string     `json:"event_id"`

	Event string `json:"event,omitempty"`
	State string `json:"state,omitempty"`

	Step    string `json:"step,omitempty"`
	Outcome string `json:"outcome,omitempty"`

	Error  string `json:"error,omitempty"`
	Detail string `json:"detail,omitempty"`

	DurationMS int64 `json:"duration_ms,omitempty"`
}

// JSONObserver writes one JSON-encoded TelemetryRecord per callback, one
// record per line. It is safe for concurrent use (the machine serializes
// events, but composite observers may be shared across machines).
type JSONObserver struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewJSONObserver creates an Observer that appends telemetry records to w.
func NewJSONObserver(w io.Writer) *JSONObserver {
	return &JSONObserver{enc: json.NewEncoder(w)}
}

func (o *JSONObserver) write(rec TelemetryRecord) {
	rec.At = time.Now().UTC()
	o.mu.Lock()
	defer o.mu.Unlock()
	// An unwritable sink must not disturb event processing.
	_ = o.enc.Encode(rec)
}

func (o *JSONObserver) OnEventStart(ctx context.Context, info EventInfo) {
	o.write(TelemetryRecord{
		Type:    RecordEventStarted,
		EventID: info.ID,
		Event:   info.Event,
		State:   info.State,
	})
}

func (o *JSONObserver) OnEventCompleted(ctx context.Context, info EventInfo, state string, d time.Duration) {
	o.write(TelemetryRecord{
		Type:       RecordEventCompleted,
		EventID:    info.ID,
		Event:      info.Event,
		State:      state,
		DurationMS: d.Milliseconds(),
	})
}

func (o *JSONObserver) OnEventFailed(ctx context.Context, info EventInfo, err error, d time.Duration) {
	o.write(TelemetryRecord{
		Type:       RecordEventFailed,
		EventID:    info.ID,
		Event:      info.Event,
		State:      info.State,
		Error:      err.Error(),
		DurationMS: d.Milliseconds(),
	})
}

func (o *JSONObserver) OnStepStart(ctx context.Context, info EventInfo, step string) {
	o.write(TelemetryRecord{
		Type:    RecordStepStarted,
		EventID: info.ID,
		Step:    step,
	})
}

func (o *JSONObserver) OnStepCompleted(ctx context.Context, info EventInfo, step string, outcome string, err error, d time.Duration) {
	rec := TelemetryRecord{
		Type:       RecordStepCompleted,
		EventID:    info.ID,
		Step:       step,
		Outcome:    outcome,
		DurationMS: d.Milliseconds(),
	}
	if err != nil {
		rec.Error = err.Error()
	}
	o.write(rec)
}

func (o *JSONObserver) OnAnomaly(ctx context.Context, info EventInfo, message string) {
	o.write(TelemetryRecord{
		Type:    RecordAnomaly,
		EventID: info.ID,
		Event:   info.Event,
		State:   info.State,
		Detail:  message,
	})
}
