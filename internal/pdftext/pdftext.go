// Package pdftext turns a source document into the raw page text the
// extraction engine consumes. Only the first page is read; invoice content
// beyond page one is out of scope.
package pdftext

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"
)

type Config struct {
	Pdftotext string        // binary name or absolute path; if empty -> "pdftotext"
	Timeout   time.Duration // per-document budget for the exec fallback
}

type ExtractionResult struct {
	Text     string
	Pages    int
	Method   string // "pdf-lib" | "pdftotext"
	Duration time.Duration
	Warnings []string
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// Extract returns the first-page text of the document at path. The in-process
// reader is tried first; when it fails, pdftotext is run as a fallback.
// An empty result is not an error here: the caller treats empty text as the
// scanned-document case.
func (e *Extractor) Extract(ctx context.Context, path string) (ExtractionResult, error) {
	start := time.Now()

	text, pages, err := readFirstPage(path)
	if err == nil && strings.TrimSpace(text) != "" {
		return ExtractionResult{
			Text:     sanitize(text),
			Pages:    pages,
			Method:   "pdf-lib",
			Duration: time.Since(start),
		}, nil
	}

	var warns []string
	if err != nil {
		warns = append(warns, fmt.Sprintf("pdf-lib: %v", err))
		e.logger.Debug("pdftext.lib.failed", "path", path, "error", err)
	}

	text, pages, execWarns, err := e.pdftotextFirstPage(ctx, path)
	warns = append(warns, execWarns...)
	if err != nil {
		return ExtractionResult{Warnings: warns, Duration: time.Since(start)}, err
	}
	return ExtractionResult{
		Text:     sanitize(text),
		Pages:    pages,
		Method:   "pdftotext",
		Duration: time.Since(start),
		Warnings: warns,
	}, nil
}

func readFirstPage(path string) (string, int, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open PDF: %w", err)
	}
	defer f.Close()

	pages := r.NumPage()
	if pages < 1 {
		return "", 0, fmt.Errorf("document has no pages")
	}
	text, err := r.Page(1).GetPlainText(nil)
	if err != nil {
		return "", pages, fmt.Errorf("extract page text: %w", err)
	}
	return text, pages, nil
}

func (e *Extractor) pdftotextFirstPage(ctx context.Context, path string) (string, int, []string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	// pdftotext -f 1 -l 1 -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext,
		"-f", "1", "-l", "1", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", 0, []string{string(errb)}, err
	}
	text := string(out)
	// A form-feed \f is used as page separator by default.
	pages := 1 + strings.Count(text, "\f")
	if i := strings.IndexByte(text, '\f'); i >= 0 {
		text = text[:i]
	}
	return text, pages, nil, nil
}

// sanitize produces clean NFC UTF-8: decoded PDF glyph streams occasionally
// carry composed forms or stray invalid sequences.
func sanitize(text string) string {
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, string(utf8.RuneError))
	}
	return norm.NFC.String(text)
}
