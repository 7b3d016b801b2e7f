// Package wizard holds the state of one proposal-writing session: the
// Proposal being edited and the stage the user is on.
//
// All mutations happen synchronously on the caller's goroutine; a Session
// has a single writer and no locking.
package wizard

import (
	"context"
	"fmt"

	"github.com/alexanderramin/propwiz/internal/domain"
	"github.com/google/uuid"
)

// Session owns the mutable Proposal and its Navigator.
type Session struct {
	id       string
	axes     domain.AxisSet
	proposal *domain.Proposal
	nav      Navigator
	observer Observer
}

// NewSession starts a session at StepBasics with an empty proposal.
func NewSession(axes domain.AxisSet, observer Observer) *Session {
	if observer == nil {
		observer = NoopObserver{}
	}
	if axes.Len() == 0 {
		axes = domain.NewAxisSet(nil)
	}
	return &Session{
		id:       uuid.NewString(),
		axes:     axes,
		proposal: domain.NewProposal(),
		observer: observer,
	}
}

// ID identifies the session in logs.
func (s *Session) ID() string { return s.id }

// Axes returns the strategic axes offered for selection.
func (s *Session) Axes() domain.AxisSet { return s.axes }

// Proposal returns the live proposal. Callers must not retain it across
// Restart, which replaces it.
func (s *Session) Proposal() *domain.Proposal { return s.proposal }

// Snapshot returns a deep copy of the current proposal.
func (s *Session) Snapshot() *domain.Proposal { return s.proposal.Clone() }

// Step returns the current stage.
func (s *Session) Step() Step { return s.nav.Current() }

// Navigator exposes the bounds checks for the current stage.
func (s *Session) Navigator() Navigator { return s.nav }

// Advance moves to the next stage.
func (s *Session) Advance() bool {
	from := s.nav.Current()
	if !s.nav.Advance() {
		return false
	}
	s.emitStep(from)
	return true
}

// Retreat moves to the previous stage.
func (s *Session) Retreat() bool {
	from := s.nav.Current()
	if !s.nav.Retreat() {
		return false
	}
	s.emitStep(from)
	return true
}

// Restart discards the proposal and returns to the first stage.
func (s *Session) Restart() {
	from := s.nav.Current()
	s.nav.Restart()
	s.proposal = domain.NewProposal()
	s.emit(Event{Kind: EventRestarted, Fields: map[string]any{"from": from.String()}})
	if from != s.nav.Current() {
		s.emitStep(from)
	}
}

// SetField replaces a scalar field. The strategic axis only accepts a
// configured label or the empty string.
func (s *Session) SetField(f domain.ScalarField, value string) error {
	if f == domain.FieldStrategicAxis {
		return s.SetStrategicAxis(value)
	}
	if err := s.proposal.Set(f, value); err != nil {
		s.reject(err, map[string]any{"field": string(f)})
		return err
	}
	return nil
}

// SetStrategicAxis selects one of the configured axes, or clears the
// selection when label is empty.
func (s *Session) SetStrategicAxis(label string) error {
	if label != "" && !s.axes.Contains(label) {
		err := fmt.Errorf("%w: %q", domain.ErrUnknownAxis, label)
		s.reject(err, map[string]any{"field": string(domain.FieldStrategicAxis)})
		return err
	}
	s.proposal.StrategicAxis = label
	return nil
}

// AddEntry appends an empty entry to a list and returns its ID.
func (s *Session) AddEntry(kind domain.ListKind) (int, error) {
	id, err := s.proposal.AddEntry(kind)
	if err != nil {
		s.reject(err, map[string]any{"list": string(kind)})
		return 0, err
	}
	s.emit(Event{Kind: EventEntryAdded, Fields: map[string]any{"list": string(kind), "id": id}})
	return id, nil
}

// RemoveEntry deletes a list entry. Removing the last entry or a missing
// one leaves the list untouched and returns the reason.
func (s *Session) RemoveEntry(kind domain.ListKind, id int) error {
	if err := s.proposal.RemoveEntry(kind, id); err != nil {
		s.reject(err, map[string]any{"list": string(kind), "id": id})
		return err
	}
	s.emit(Event{Kind: EventEntryRemoved, Fields: map[string]any{"list": string(kind), "id": id}})
	return nil
}

// SetListField replaces one column of one list entry.
func (s *Session) SetListField(kind domain.ListKind, id int, column, value string) error {
	if err := s.proposal.SetListField(kind, id, column, value); err != nil {
		s.reject(err, map[string]any{"list": string(kind), "id": id, "column": column})
		return err
	}
	return nil
}

// RecordExport reports the outcome of an export action.
func (s *Session) RecordExport(target string, err error) {
	s.emit(Event{Kind: EventExported, Fields: map[string]any{"target": target}, Err: err})
}

func (s *Session) emitStep(from Step) {
	s.emit(Event{Kind: EventStepChanged, Fields: map[string]any{"from": from.String()}})
}

func (s *Session) reject(err error, fields map[string]any) {
	s.emit(Event{Kind: EventRejected, Fields: fields, Err: err})
}

func (s *Session) emit(e Event) {
	e.SessionID = s.id
	e.Step = s.nav.Current()
	s.observer.OnEvent(context.Background(), e)
}
