package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexanderramin/propwiz/internal/cli/formatter"
	"github.com/alexanderramin/propwiz/internal/domain"
	"github.com/alexanderramin/propwiz/internal/export"
	"github.com/alexanderramin/propwiz/internal/report"
	"github.com/alexanderramin/propwiz/internal/wizard"
)

// lineWizard asks for the proposal one line at a time. It serves piped
// input and terminals where the full-screen wizard cannot run. End of
// input answers every remaining question with an empty line.
type lineWizard struct {
	in      io.Reader
	out     io.Writer
	session *wizard.Session
}

func runLineWizard(ctx context.Context, in io.Reader, out io.Writer, app *App, flags exportFlags) error {
	in = bufio.NewReader(in)
	w := &lineWizard{in: in, out: out, session: app.newSession()}
	for {
		if err := w.collect(); err != nil {
			return err
		}

		text := report.Format(w.session.Proposal(), app.reportOptions()).Text
		fmt.Fprint(out, "\n"+text)

		if err := w.export(ctx, app, flags); err != nil {
			return err
		}
		if !promptYesNoIO(in, out, "\nStart over? [y/N]: ", false) {
			return nil
		}
		w.session.Restart()
	}
}

// collect walks the stages up to Review.
func (w *lineWizard) collect() error {
	for w.session.Step() != wizard.StepReview {
		step := w.session.Step()
		fmt.Fprintf(w.out, "\n%s\n", formatter.Header(fmt.Sprintf("%d/%d %s", int(step), int(wizard.LastStep), step)))

		for _, b := range stageLayouts[step] {
			var err error
			switch {
			case b.isList():
				err = w.askList(b)
			case b.Field == domain.FieldStrategicAxis:
				err = w.askAxis()
			default:
				err = w.askField(b)
			}
			if err != nil {
				return err
			}
		}
		w.session.Advance()
	}
	return nil
}

// readLine returns the next answer. eof is true once input is exhausted.
func (w *lineWizard) readLine() (line string, eof bool, err error) {
	line, err = readPromptLine(w.in)
	if errors.Is(err, io.EOF) {
		return line, line == "", nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading answer: %w", err)
	}
	return line, false, nil
}

func (w *lineWizard) askField(b stageBlock) error {
	fmt.Fprintf(w.out, "%s: ", b.Label)
	line, _, err := w.readLine()
	if err != nil {
		return err
	}
	return w.session.SetField(b.Field, line)
}

// askAxis accepts an axis number, an exact label or an empty line.
func (w *lineWizard) askAxis() error {
	labels := w.session.Axes().Labels()
	fmt.Fprintln(w.out, "Strategic axes:")
	for i, l := range labels {
		fmt.Fprintf(w.out, "  %d) %s\n", i+1, l)
	}

	for {
		fmt.Fprint(w.out, "Strategic axis [number, Enter to skip]: ")
		line, eof, err := w.readLine()
		if err != nil {
			return err
		}
		answer := strings.TrimSpace(line)
		if answer == "" || eof {
			return nil
		}
		if n, convErr := strconv.Atoi(answer); convErr == nil && n >= 1 && n <= len(labels) {
			answer = labels[n-1]
		}
		if err := w.session.SetStrategicAxis(answer); err == nil {
			return nil
		}
		fmt.Fprintf(w.out, "  %s\n", formatter.Error(fmt.Sprintf("enter a number from 1 to %d", len(labels))))
	}
}

// askList fills entries until the first column of an entry is left empty.
// The first entry reuses the list's initial blank entry.
func (w *lineWizard) askList(b stageBlock) error {
	first := b.Columns[0]
	fmt.Fprintf(w.out, "%s %s\n", b.Label, formatter.Dim("(leave "+strings.ToLower(first.Label)+" empty to finish)"))

	ids := w.session.Proposal().EntryIDs(b.List)
	for pos := 1; ; pos++ {
		fmt.Fprintf(w.out, "  %d. %s: ", pos, first.Label)
		line, eof, err := w.readLine()
		if err != nil {
			return err
		}
		if eof || strings.TrimSpace(line) == "" {
			return nil
		}

		id := ids[0]
		if pos > 1 {
			if id, err = w.session.AddEntry(b.List); err != nil {
				return err
			}
		}
		if err := w.session.SetListField(b.List, id, first.Column, line); err != nil {
			return err
		}

		for _, c := range b.Columns[1:] {
			fmt.Fprintf(w.out, "     %s: ", c.Label)
			val, _, err := w.readLine()
			if err != nil {
				return err
			}
			if err := w.session.SetListField(b.List, id, c.Column, val); err != nil {
				return err
			}
		}
	}
}

// export runs the exports selected by flags. A clipboard failure is
// reported and skipped; a failed file write stops the run.
func (w *lineWizard) export(ctx context.Context, app *App, flags exportFlags) error {
	if flags.copy {
		if msg, err := copyReport(ctx, app, w.session); err != nil {
			fmt.Fprintln(w.out, formatter.Error(err.Error()))
		} else {
			fmt.Fprintln(w.out, formatter.Success(msg))
		}
	}

	var kinds []export.Kind
	if flags.html {
		kinds = append(kinds, export.KindHTML)
	}
	if flags.markdown {
		kinds = append(kinds, export.KindMarkdown)
	}
	for _, k := range kinds {
		msg, err := writeExport(ctx, app, w.session, k)
		if err != nil {
			return err
		}
		fmt.Fprintln(w.out, formatter.Success(msg))
	}
	return nil
}
