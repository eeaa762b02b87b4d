package ingest

// DirStats aggregates a directory scan.
type DirStats struct {
	Scanned int
	Matched int
	Skipped int
}
