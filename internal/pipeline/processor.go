package pipeline

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/invoice-kit/invoice-archiver/internal/common"
	"github.com/invoice-kit/invoice-archiver/internal/entity"
	"github.com/invoice-kit/invoice-archiver/internal/extract"
	"github.com/invoice-kit/invoice-archiver/internal/pdftext"
	"github.com/invoice-kit/invoice-archiver/internal/repository"
)

// TextSource yields the page text for a source document.
// pdftext.Extractor is the production implementation; tests stub it.
type TextSource interface {
	Extract(ctx context.Context, path string) (pdftext.ExtractionResult, error)
}

// Processor coordinates text extraction then field extraction for one
// document, recording the outcome in the ledger when one is attached.
type Processor struct {
	logger *slog.Logger
	text   TextSource
	fields *extract.Extractor
	jobs   *repository.ExtractJobRepository // nil -> no ledger
}

func NewProcessor(logger *slog.Logger, text TextSource, fields *extract.Extractor, jobs *repository.ExtractJobRepository) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{logger: logger, text: text, fields: fields, jobs: jobs}
}

// ProcessFile extracts one document. Ledger writes are best-effort and never
// fail the document.
func (p *Processor) ProcessFile(ctx context.Context, batchID uuid.UUID, path string) (*entity.InvoiceRecord, error) {
	jobID := uuid.Nil
	if p.jobs != nil {
		id, err := p.jobs.Start(ctx, batchID, path)
		if err != nil {
			p.logger.Warn("ledger.start.failed", "path", path, "error", err)
		} else {
			jobID = id
		}
	}

	res, err := p.text.Extract(ctx, path)
	if err != nil {
		p.finishFailure(ctx, jobID, err.Error())
		return nil, common.WrapError(err, "extract text")
	}
	if res.Text == "" {
		// Scanned documents decode to nothing; warn and skip.
		p.logger.Warn("processor.no_text", "path", path, "method", res.Method)
		p.finishFailure(ctx, jobID, common.ErrNoText.Error())
		return nil, common.ErrNoText
	}

	rec, err := p.fields.Extract(res.Text)
	if err != nil {
		p.finishFailure(ctx, jobID, err.Error())
		return nil, common.WrapError(err, "extract fields")
	}

	if p.jobs != nil && jobID != uuid.Nil {
		if err := p.jobs.FinishSuccess(ctx, jobID, rec); err != nil {
			p.logger.Warn("ledger.finish.failed", "job_id", jobID, "error", err)
		}
	}

	p.logger.Info("processor.extract.ok",
		"path", path,
		"invoice_no", rec.InvoiceNo,
		"total", rec.Total,
		"drawer", rec.Drawer,
		"method", res.Method,
	)
	return rec, nil
}

func (p *Processor) finishFailure(ctx context.Context, jobID uuid.UUID, cause string) {
	if p.jobs == nil || jobID == uuid.Nil {
		return
	}
	if err := p.jobs.FinishFailure(ctx, jobID, cause); err != nil {
		p.logger.Warn("ledger.finish.failed", "job_id", jobID, "error", err)
	}
}
