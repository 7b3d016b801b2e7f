package cli

import (
	"testing"

	"github.com/alexanderramin/propwiz/internal/domain"
	"github.com/alexanderramin/propwiz/internal/teatest"
	"github.com/alexanderramin/propwiz/internal/wizard"
	tea "github.com/charmbracelet/bubbletea"
)

// TestDriver wraps teatest.Driver with access to the appModel internals
// (view stack, session, flash line) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app, sets the terminal size and
// drains Init.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// NextStage presses alt+n n times.
func (d *TestDriver) NextStage(n int) {
	d.T.Helper()
	for range n {
		d.PressAlt('n')
	}
}

// PrevStage presses alt+p.
func (d *TestDriver) PrevStage() {
	d.T.Helper()
	d.PressAlt('p')
}

// Tabs presses Tab n times.
func (d *TestDriver) Tabs(n int) {
	d.T.Helper()
	for range n {
		d.PressTab()
	}
}

// CtrlN adds an entry; CtrlX removes the focused one.
func (d *TestDriver) CtrlN() { d.T.Helper(); d.Press(tea.KeyCtrlN) }
func (d *TestDriver) CtrlX() { d.T.Helper(); d.Press(tea.KeyCtrlX) }

// ── Inspection ───────────────────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// Session returns the wizard session behind the TUI.
func (d *TestDriver) Session() *wizard.Session {
	return d.appModel().state.Session
}

// Proposal returns the live proposal.
func (d *TestDriver) Proposal() *domain.Proposal {
	return d.Session().Proposal()
}

// Step returns the current stage.
func (d *TestDriver) Step() wizard.Step {
	return d.Session().Step()
}

// Flash returns the transient status line.
func (d *TestDriver) Flash() string {
	return d.appModel().flash
}

// IsQuitting reports whether the model is shutting down.
func (d *TestDriver) IsQuitting() bool {
	return d.Quitting || d.appModel().quitting
}
