package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/propwiz/internal/cli/formatter"
	"github.com/alexanderramin/propwiz/internal/domain"
)

// propwizHuhTheme styles huh forms with the Gruvbox palette.
func propwizHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// noAxisLabel is the select option that clears the strategic axis.
const noAxisLabel = "(none)"

// wizardSelectAxis offers the configured axes plus an empty choice.
// The current value of result is preselected.
func wizardSelectAxis(axes domain.AxisSet, result *string) *huh.Form {
	options := make([]huh.Option[string], 0, axes.Len()+1)
	options = append(options, huh.NewOption(noAxisLabel, ""))
	for _, label := range axes.Labels() {
		options = append(options, huh.NewOption(label, label))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Strategic axis").
				Description("The national research priority this project serves.").
				Options(options...).
				Value(result),
		),
	).WithTheme(propwizHuhTheme()).WithShowHelp(false)
}

// wizardConfirm asks a yes/no question.
func wizardConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(propwizHuhTheme()).WithShowHelp(false)
}
