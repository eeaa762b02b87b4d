package constants

// JobStatus is the canonical status for rows in extract_job.
type JobStatus string

// Stable values (store these exact strings in the ledger).
const (
	JobStatusRunning   JobStatus = "RUNNING"    // in progress
	JobStatusExtractOK JobStatus = "EXTRACT_OK" // fields extracted
	JobStatusFailed    JobStatus = "FAILED"     // terminal failure
)
