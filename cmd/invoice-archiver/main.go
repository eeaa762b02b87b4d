package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/invoice-kit/invoice-archiver/internal/common"
	"github.com/invoice-kit/invoice-archiver/internal/export"
	"github.com/invoice-kit/invoice-archiver/internal/extract"
	"github.com/invoice-kit/invoice-archiver/internal/ingest"
	"github.com/invoice-kit/invoice-archiver/internal/pdftext"
	"github.com/invoice-kit/invoice-archiver/internal/pipeline"
	"github.com/invoice-kit/invoice-archiver/internal/profile"
	repo "github.com/invoice-kit/invoice-archiver/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir         = flag.String("dir", "", "directory holding the invoice PDFs (required)")
		template    = flag.String("template", "", "destination XLSX template (required)")
		profilePath = flag.String("profile", "", "invoice profile JSON (defaults to built-in profile)")
		dsn         = flag.String("dsn", "", "ledger DSN (overrides LEDGER_DSN)")
		inmem       = flag.Bool("inmem", false, "use an in-memory SQLite ledger")
		noRename    = flag.Bool("no-rename", false, "skip renaming source PDFs")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}
	if *template == "" {
		printError("Error: --template is required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if *dsn != "" {
		cfg.Ledger.DSN = *dsn
	}
	if *inmem {
		cfg.Ledger.DSN = "file::memory:?cache=shared"
	}
	if *profilePath != "" {
		cfg.Profile.Path = *profilePath
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Profile: file when given, built-in defaults otherwise.
	prof := profile.Default()
	if cfg.Profile.Path != "" {
		p, err := profile.Load(cfg.Profile.Path)
		if err != nil {
			logger.Error("failed to load profile", "path", cfg.Profile.Path, "error", err)
			os.Exit(1)
		}
		prof = p
	}
	logger.Info("using profile", "buyer", prof.BuyerName, "seller", prof.SellerName)

	// Ledger is a supplement; run without it if it cannot be opened.
	var jobsRepo *repo.ExtractJobRepository
	db, err := repo.Open(ctx, repo.Config{DSN: cfg.Ledger.DSN, DialTimeout: cfg.Ledger.DialTimeout}, logger)
	if err != nil {
		logger.Warn("ledger unavailable, continuing without it", "error", err)
	} else {
		defer repo.Close(db, logger)
		jobsRepo = repo.NewExtractJobRepository(db, logger)
	}

	fieldExtractor, err := extract.NewExtractor(prof, logger)
	if err != nil {
		logger.Error("failed to build extractor", "error", err)
		os.Exit(1)
	}
	textExtractor := pdftext.NewExtractor(pdftext.Config{
		Pdftotext: cfg.PDFText.Pdftotext,
		Timeout:   cfg.PDFText.Timeout,
	}, logger)

	ingestor := ingest.NewFSIngestor(logger)
	paths, stats, err := ingestor.CollectDirectory(ctx, *dir, true)
	if err != nil {
		logger.Error("failed to scan directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("scan complete", "scanned", stats.Scanned, "matched", stats.Matched, "skipped", stats.Skipped)
	if len(paths) == 0 {
		printError("Error: no PDF documents found under %s\n", *dir)
		os.Exit(1)
	}

	processor := pipeline.NewProcessor(logger, textExtractor, fieldExtractor, jobsRepo)
	exporter := export.NewService(prof, logger)
	batch := pipeline.NewBatch(logger, processor, exporter, !*noRename)

	result, err := batch.Run(ctx, paths, *template)
	if err != nil {
		logger.Error("batch failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Batch complete!\n")
	fmt.Printf("- Documents found: %d\n", len(paths))
	fmt.Printf("- Extracted: %d\n", result.Succeeded)
	fmt.Printf("- Skipped: %d\n", result.Failed)
	fmt.Printf("- Output: %s\n", result.OutputXLSX)
}
