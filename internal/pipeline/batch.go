package pipeline

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/invoice-kit/invoice-archiver/internal/archive"
	"github.com/invoice-kit/invoice-archiver/internal/common"
	"github.com/invoice-kit/invoice-archiver/internal/entity"
	"github.com/invoice-kit/invoice-archiver/internal/export"
)

// DocResult is the per-document outcome of a batch run, in input order.
type DocResult struct {
	SourcePath string
	Record     *entity.InvoiceRecord
	RenamedTo  string
	Err        string
}

// BatchResult summarizes one run.
type BatchResult struct {
	BatchID    uuid.UUID
	Results    []DocResult
	OutputXLSX string
	Succeeded  int
	Failed     int
}

// Batch runs documents strictly sequentially: all extraction first, then one
// spreadsheet write, then renames. Per-document failures are logged and
// skipped; the spreadsheet save is the only batch-fatal step and always
// precedes any rename, so no source file is touched against an unsaved
// workbook.
type Batch struct {
	logger    *slog.Logger
	processor *Processor
	exporter  *export.Service
	rename    bool
}

func NewBatch(logger *slog.Logger, processor *Processor, exporter *export.Service, rename bool) *Batch {
	if logger == nil {
		logger = slog.Default()
	}
	return &Batch{logger: logger, processor: processor, exporter: exporter, rename: rename}
}

// Run processes paths in order against the given template. A run in which
// every document fails aborts before any file mutation.
func (b *Batch) Run(ctx context.Context, paths []string, templatePath string) (*BatchResult, error) {
	out := &BatchResult{BatchID: uuid.New()}
	b.logger.Info("batch.start", "batch_id", out.BatchID, "documents", len(paths))

	var records []*entity.InvoiceRecord
	for _, path := range paths {
		rec, err := b.processor.ProcessFile(ctx, out.BatchID, path)
		if err != nil {
			b.logger.Warn("batch.document.skipped", "path", path, "error", err)
			out.Results = append(out.Results, DocResult{SourcePath: path, Err: err.Error()})
			out.Failed++
			continue
		}
		out.Results = append(out.Results, DocResult{SourcePath: path, Record: rec})
		out.Succeeded++
		records = append(records, rec)
	}

	if out.Succeeded == 0 {
		return out, common.WrapError(common.ErrNoRecords, "batch")
	}

	outputPath, err := b.exporter.WriteWorkbook(templatePath, records)
	if err != nil {
		// Fatal: the renames below must never run against a workbook that
		// failed to save.
		return out, common.WrapError(err, "write workbook")
	}
	out.OutputXLSX = outputPath

	if b.rename {
		b.renameAll(out)
	}

	b.logger.Info("batch.done",
		"batch_id", out.BatchID,
		"succeeded", out.Succeeded,
		"failed", out.Failed,
		"output", out.OutputXLSX,
	)
	return out, nil
}

// renameAll moves each successfully extracted source to its archive name.
// A rename failure leaves that source path unchanged and the batch continues.
func (b *Batch) renameAll(out *BatchResult) {
	for i := range out.Results {
		r := &out.Results[i]
		if r.Record == nil {
			continue
		}
		target := archive.TargetPath(r.SourcePath, r.Record)
		if err := os.Rename(r.SourcePath, target); err != nil {
			b.logger.Warn("batch.rename.failed", "path", r.SourcePath, "error", err)
			continue
		}
		r.RenamedTo = target
		b.logger.Info("batch.rename.ok", "from", r.SourcePath, "to", target)
	}
}
