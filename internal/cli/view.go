package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewStage ViewID = iota
	ViewReview
	ViewForm
)

// View is a tea.Model that can sit on the navigation stack.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// viewForStep builds the view for the session's current stage.
func viewForStep(state *SharedState) View {
	if state.Session.Navigator().CanRestart() {
		return newReviewView(state)
	}
	return newStageView(state)
}
