package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/propwiz/internal/cli/formatter"
	"github.com/alexanderramin/propwiz/internal/export"
	"github.com/alexanderramin/propwiz/internal/report"
)

// reviewView shows the formatted report and offers the export actions.
type reviewView struct {
	state *SharedState
	vp    viewport.Model
	text  string
}

func newReviewView(state *SharedState) *reviewView {
	v := &reviewView{
		state: state,
		vp:    viewport.New(state.ContentWidth(), state.ContentHeight()),
	}
	v.reload()
	return v
}

func (v *reviewView) reload() {
	v.text = report.Format(v.state.Session.Proposal(), v.state.App.reportOptions()).Text
	v.vp.SetContent(v.text)
	v.vp.GotoTop()
}

func (v *reviewView) Init() tea.Cmd { return nil }

func (v *reviewView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = v.state.ContentWidth()
		v.vp.Height = v.state.ContentHeight()
		return v, nil
	case refreshViewMsg:
		v.reload()
		return v, nil
	case tea.KeyMsg:
		ctx := context.Background()
		switch {
		case key.Matches(msg, reviewKeys.Copy):
			return v, resultFlash(copyReport(ctx, v.state.App, v.state.Session))
		case key.Matches(msg, reviewKeys.HTML):
			return v, resultFlash(writeExport(ctx, v.state.App, v.state.Session, export.KindHTML))
		case key.Matches(msg, reviewKeys.Markdown):
			return v, resultFlash(writeExport(ctx, v.state.App, v.state.Session, export.KindMarkdown))
		case key.Matches(msg, reviewKeys.Restart):
			return v, v.confirmRestart()
		case key.Matches(msg, reviewKeys.Retreat):
			if v.state.Session.Retreat() {
				return v, replaceView(viewForStep(v.state))
			}
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *reviewView) confirmRestart() tea.Cmd {
	var confirmed bool
	form := wizardConfirm("Discard this proposal and start over?", &confirmed)
	return startWizardCmd(v.state, "Restart", form, func() tea.Cmd {
		if !confirmed {
			return flash(formatter.Dim("Cancelled."))
		}
		v.state.Session.Restart()
		return replaceView(viewForStep(v.state))
	})
}

func (v *reviewView) View() string {
	return v.vp.View()
}

func (v *reviewView) ID() ViewID    { return ViewReview }
func (v *reviewView) Title() string { return v.state.Session.Step().String() }

func (v *reviewView) ShortHelp() []key.Binding {
	return []key.Binding{
		reviewKeys.Copy,
		reviewKeys.HTML,
		reviewKeys.Markdown,
		reviewKeys.Restart,
		reviewKeys.Retreat,
		reviewKeys.Quit,
	}
}

// resultFlash turns an export outcome into a status bar flash.
func resultFlash(msg string, err error) tea.Cmd {
	if err != nil {
		return flashError(err)
	}
	return flash(formatter.Success(msg))
}
