package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/alexanderramin/propwiz/internal/cli/formatter"
	"github.com/alexanderramin/propwiz/internal/config"
	"github.com/alexanderramin/propwiz/internal/export"
	"github.com/alexanderramin/propwiz/internal/report"
	"github.com/alexanderramin/propwiz/internal/wizard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds the configuration and collaborators used by CLI commands.
type App struct {
	Config   config.Config
	Logger   *slog.Logger
	Exporter *export.Exporter

	// IsInteractive reports whether stdin is a terminal. When nil or false
	// the line-prompt wizard runs instead of the full-screen one.
	IsInteractive func() bool
}

func (a *App) newSession() *wizard.Session {
	return wizard.NewSession(a.Config.Axes(), wizard.NewSlogObserver(a.Logger))
}

func (a *App) reportOptions() report.Options {
	return a.Config.ReportOptions()
}

func (a *App) exporter() *export.Exporter {
	if a.Exporter == nil {
		a.Exporter = export.NewExporter(nil, a.Config.Export.Dir, a.Logger)
	}
	return a.Exporter
}

// exportFlags select the exports written after the line-prompt wizard.
type exportFlags struct {
	copy     bool
	html     bool
	markdown bool
}

func (f *exportFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&f.copy, "copy", false, "copy the report to the clipboard (line-prompt mode)")
	fs.BoolVar(&f.html, "html", false, "write the print view as HTML (line-prompt mode)")
	fs.BoolVar(&f.markdown, "markdown", false, "write the report as Markdown (line-prompt mode)")
}

// NewRootCmd creates the top-level "propwiz" command and registers its
// subcommands against app.
func NewRootCmd(app *App) *cobra.Command {
	var flags exportFlags

	root := &cobra.Command{
		Use:   "propwiz",
		Short: "Research proposal wizard",
		Long: `propwiz walks through a research project proposal in seven stages
(Basics, Context, Plan, Impact, Team, Budget, Review) and formats it as a
plain-text report that can be copied or exported.

On a terminal it runs full screen; with piped input it asks one question
per line.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return runLineWizard(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), app, flags)
		},
	}
	flags.register(root.Flags())

	root.AddCommand(
		newAxesCmd(app),
		newConfigCmd(app),
	)
	return root
}

func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}
	return nil
}

func newAxesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "axes",
		Short: "List the strategic axes offered in the Context stage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			labels := app.Config.Axes().Labels()
			rows := make([][]string, len(labels))
			for i, l := range labels {
				rows[i] = []string{strconv.Itoa(i + 1), l}
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"#", "STRATEGIC AXIS"}, rows))
			return nil
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := app.Config
			orNone := func(s string) string {
				if s == "" {
					return formatter.Dim("(none)")
				}
				return s
			}
			rows := [][]string{
				{"config file", config.Path()},
				{"report.currency", c.Report.Currency},
				{"report.number_format", c.Report.NumberFormat},
				{"export.dir", orNone(c.Export.Dir)},
				{"log.file", orNone(c.Log.File)},
				{"log.level", c.Log.Level},
				{"strategic_axes", strconv.Itoa(c.Axes().Len())},
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"KEY", "VALUE"}, rows))
			return nil
		},
	}
}
