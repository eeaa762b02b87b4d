package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExtractJob is one ledger row: the outcome of extracting a single document
// within a batch run.
type ExtractJob struct {
	ID            uuid.UUID
	BatchID       uuid.UUID
	SourcePath    string
	Status        string
	ErrorMessage  string
	InvoiceNo     string
	Total         string
	ExtractedJSON string
	StartedAt     time.Time
	FinishedAt    *time.Time
}
