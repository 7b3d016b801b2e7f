package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/propwiz/internal/export"
	"github.com/alexanderramin/propwiz/internal/report"
	"github.com/alexanderramin/propwiz/internal/wizard"
)

// copyReport puts the formatted report on the clipboard.
func copyReport(ctx context.Context, app *App, s *wizard.Session) (string, error) {
	text := report.Format(s.Proposal(), app.reportOptions()).Text
	err := app.exporter().Copy(ctx, text)
	s.RecordExport("clipboard", err)
	if err != nil {
		return "", err
	}
	return "Copied!", nil
}

// writeExport renders the proposal as kind and writes it to the export
// directory, named after the acronym or title.
func writeExport(ctx context.Context, app *App, s *wizard.Session, kind export.Kind) (string, error) {
	p := s.Proposal()
	opts := app.reportOptions()

	var content string
	var err error
	switch kind {
	case export.KindHTML:
		content, err = report.RenderHTML(p, opts)
	case export.KindMarkdown:
		content, err = report.RenderMarkdown(p, opts)
	default:
		err = fmt.Errorf("%w: %q", export.ErrUnknownKind, kind)
	}

	var path string
	if err == nil {
		path, err = app.exporter().WriteFile(ctx, kind, export.FileName(p.Acronym, p.Title), content)
	}
	s.RecordExport(string(kind), err)
	if err != nil {
		return "", err
	}
	return "Wrote " + path, nil
}
