package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/invoice-kit/invoice-archiver/constants"
	"github.com/invoice-kit/invoice-archiver/internal/entity"
)

// ExtractJobRepository records per-document outcomes of batch runs.
type ExtractJobRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewExtractJobRepository(db *sql.DB, logger *slog.Logger) *ExtractJobRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractJobRepository{db: db, logger: logger}
}

// Start inserts a RUNNING row for one document and returns its job ID.
func (r *ExtractJobRepository) Start(ctx context.Context, batchID uuid.UUID, sourcePath string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO extract_job (id, batch_id, source_path, status, started_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		id.String(), batchID.String(), sourcePath, string(constants.JobStatusRunning), time.Now().UTC(),
	)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// FinishSuccess marks a job EXTRACT_OK and stores the extracted record.
func (r *ExtractJobRepository) FinishSuccess(ctx context.Context, jobID uuid.UUID, rec *entity.InvoiceRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`UPDATE extract_job
		 SET status = $1, invoice_no = $2, total = $3, extracted_json = $4, finished_at = $5
		 WHERE id = $6`,
		string(constants.JobStatusExtractOK), rec.InvoiceNo, rec.Total, string(raw), time.Now().UTC(), jobID.String(),
	)
	return err
}

// FinishFailure marks a job FAILED with its cause.
func (r *ExtractJobRepository) FinishFailure(ctx context.Context, jobID uuid.UUID, cause string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE extract_job SET status = $1, error_message = $2, finished_at = $3 WHERE id = $4`,
		string(constants.JobStatusFailed), cause, time.Now().UTC(), jobID.String(),
	)
	return err
}

// ListByBatch returns a batch's jobs in start order.
func (r *ExtractJobRepository) ListByBatch(ctx context.Context, batchID uuid.UUID) ([]entity.ExtractJob, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, batch_id, source_path, status, error_message, invoice_no, total, extracted_json, started_at, finished_at
		 FROM extract_job WHERE batch_id = $1 ORDER BY started_at, id`,
		batchID.String(),
	)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			r.logger.Warn("close rows", "error", cerr)
		}
	}()

	var jobs []entity.ExtractJob
	for rows.Next() {
		var j entity.ExtractJob
		var id, batch string
		var finished sql.NullTime
		if err := rows.Scan(&id, &batch, &j.SourcePath, &j.Status, &j.ErrorMessage,
			&j.InvoiceNo, &j.Total, &j.ExtractedJSON, &j.StartedAt, &finished); err != nil {
			return nil, err
		}
		if j.ID, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		if j.BatchID, err = uuid.Parse(batch); err != nil {
			return nil, err
		}
		if finished.Valid {
			t := finished.Time
			j.FinishedAt = &t
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
