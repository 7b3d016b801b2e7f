// Package export delivers a finished report: to the system clipboard, or
// as print-view HTML and Markdown files.
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/atotto/clipboard"
	"golang.org/x/text/unicode/norm"
)

// Kind is the format of an exported file.
type Kind string

const (
	KindHTML     Kind = "html"
	KindMarkdown Kind = "markdown"
)

// Ext returns the file extension for k, including the dot.
func (k Kind) Ext() string {
	switch k {
	case KindHTML:
		return ".html"
	case KindMarkdown:
		return ".md"
	default:
		return ".txt"
	}
}

// ErrUnknownKind indicates an export format other than HTML or Markdown.
var ErrUnknownKind = errors.New("unknown export kind")

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard uses the platform clipboard (pbcopy, xclip, xsel,
// wl-copy or the Windows API).
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}

// Exporter copies reports and writes export files.
type Exporter struct {
	clip   Clipboard
	dir    string
	logger *slog.Logger
}

// NewExporter writes files under dir ("" for the working directory).
// A nil clipboard uses SystemClipboard; a nil logger discards.
func NewExporter(clip Clipboard, dir string, logger *slog.Logger) *Exporter {
	if clip == nil {
		clip = SystemClipboard{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Exporter{clip: clip, dir: dir, logger: logger}
}

// Copy places text on the clipboard. Failures are logged and returned;
// the report itself is unaffected.
func (e *Exporter) Copy(ctx context.Context, text string) error {
	if err := e.clip.WriteAll(text); err != nil {
		e.logger.ErrorContext(ctx, "clipboard copy failed", "error", err)
		return fmt.Errorf("copying report: %w", err)
	}
	e.logger.DebugContext(ctx, "report copied", "bytes", len(text))
	return nil
}

// WriteFile writes content as <slug(name)><ext> in the export directory
// and returns the path written.
func (e *Exporter) WriteFile(ctx context.Context, kind Kind, name, content string) (string, error) {
	if kind != KindHTML && kind != KindMarkdown {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if e.dir != "" {
		if err := os.MkdirAll(e.dir, 0o755); err != nil {
			e.logger.ErrorContext(ctx, "export dir create failed", "dir", e.dir, "error", err)
			return "", fmt.Errorf("creating export dir: %w", err)
		}
	}
	path := filepath.Join(e.dir, Slug(name)+kind.Ext())
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.logger.ErrorContext(ctx, "export write failed", "path", path, "error", err)
		return "", fmt.Errorf("writing %s export: %w", kind, err)
	}
	e.logger.InfoContext(ctx, "report exported", "kind", string(kind), "path", path)
	return path, nil
}

// FileName picks the export base name: the acronym when set, else the
// title, else "proposal".
func FileName(acronym, title string) string {
	if s := strings.TrimSpace(acronym); s != "" {
		return s
	}
	if s := strings.TrimSpace(title); s != "" {
		return s
	}
	return "proposal"
}

// Slug lowercases s, strips accents and joins words with dashes.
// "Étude Eau & Sol" becomes "etude-eau-sol".
func Slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range norm.NFD.String(s) {
		switch {
		case unicode.Is(unicode.Mn, r):
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(unicode.ToLower(r))
		default:
			dash = true
		}
	}
	if b.Len() == 0 {
		return "proposal"
	}
	return b.String()
}
