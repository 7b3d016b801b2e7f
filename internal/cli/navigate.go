package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/propwiz/internal/cli/formatter"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// replaceViewMsg swaps the top view, as a stage change does.
type replaceViewMsg struct {
	view View
}

// refreshViewMsg asks every view on the stack to reload from the session.
type refreshViewMsg struct{}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel pops the wizard view, then runs nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// flashMsg shows a transient line in the status bar.
type flashMsg struct {
	text string
}

// clearFlashMsg expires the flash with the matching sequence number.
type clearFlashMsg struct {
	seq int
}

// flashDuration is how long a flash stays in the status bar.
const flashDuration = 2 * time.Second

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

func flash(text string) tea.Cmd {
	return func() tea.Msg { return flashMsg{text: text} }
}

func flashError(err error) tea.Cmd {
	return flash(formatter.Error(err.Error()))
}
