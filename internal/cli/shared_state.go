package cli

import "github.com/alexanderramin/propwiz/internal/wizard"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App     *App
	Session *wizard.Session

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the lines left for the active view after the
// header (title, stepper, rule) and the status bar (rule, hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}

// ContentWidth returns the usable width, with a floor for tiny terminals.
func (s *SharedState) ContentWidth() int {
	if s.Width < 40 {
		return 40
	}
	return s.Width
}
