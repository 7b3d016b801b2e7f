package wizard

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"slices"
)

// EventKind classifies session events.
type EventKind string

const (
	EventStepChanged  EventKind = "step_changed"
	EventEntryAdded   EventKind = "entry_added"
	EventEntryRemoved EventKind = "entry_removed"
	EventRejected     EventKind = "mutation_rejected"
	EventRestarted    EventKind = "restarted"
	EventExported     EventKind = "exported"
)

// Event describes one thing that happened to a session.
type Event struct {
	SessionID string
	Kind      EventKind
	Step      Step
	Fields    map[string]any
	Err       error
}

// Observer receives session events. Events are delivered synchronously
// on the goroutine that mutated the session.
type Observer interface {
	OnEvent(ctx context.Context, event Event)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnEvent(context.Context, Event) {}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, event Event)

func (f ObserverFunc) OnEvent(ctx context.Context, event Event) { f(ctx, event) }

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes session events to w as slog text records.
func NewLogObserver(w io.Writer, level slog.Level) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

// NewSlogObserver writes session events through an existing logger.
func NewSlogObserver(logger *slog.Logger) Observer {
	if logger == nil {
		return NoopObserver{}
	}
	return &logObserver{logger: logger}
}

func (o *logObserver) OnEvent(ctx context.Context, event Event) {
	attrs := make([]any, 0, 6+len(event.Fields)*2)
	attrs = append(attrs,
		"session_id", event.SessionID,
		"event", string(event.Kind),
		"step", event.Step.String(),
	)
	for _, k := range slices.Sorted(maps.Keys(event.Fields)) {
		attrs = append(attrs, k, event.Fields[k])
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.WarnContext(ctx, "wizard_event", attrs...)
		return
	}
	o.logger.DebugContext(ctx, "wizard_event", attrs...)
}

// MultiObserver fans events out to several observers in order.
type MultiObserver []Observer

func (m MultiObserver) OnEvent(ctx context.Context, event Event) {
	for _, o := range m {
		if o != nil {
			o.OnEvent(ctx, event)
		}
	}
}
