package types

import (
	"time"

	"github.com/google/uuid"
)

// CheckError describes a check that could not produce a report.
type CheckError struct {
	Rule    Rule   `json:"rule"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// FileResult holds everything produced for one measurement file.
type FileResult struct {
	Path        string            `json:"path"`
	RecordCount int               `json:"record_count"`
	Reports     []ViolationReport `json:"reports"`
	Errors      []CheckError      `json:"errors,omitempty"`
	IngestError string            `json:"ingest_error,omitempty"`
}

// ViolationCount returns the number of flagged data points across all reports.
func (f FileResult) ViolationCount() int {
	total := 0
	for _, report := range f.Reports {
		total += len(report.DataPoint)
	}
	return total
}

// PhotoResult holds the outcome of the duplicate photo check. Report is nil
// when no duplicates were found.
type PhotoResult struct {
	ImageCount int              `json:"image_count"`
	Report     *ViolationReport `json:"report"`
}

// RunResult is the output of one invocation over a data directory.
type RunResult struct {
	RunID         uuid.UUID    `json:"run_id"`
	DataDirectory string       `json:"data_directory"`
	StartedAt     time.Time    `json:"started_at"`
	FinishedAt    time.Time    `json:"finished_at"`
	Files         []FileResult `json:"files"`
	Photos        PhotoResult  `json:"photos"`
}

// ViolationCount returns the number of flagged data points in the whole run.
func (r *RunResult) ViolationCount() int {
	total := 0
	for _, file := range r.Files {
		total += file.ViolationCount()
	}
	if r.Photos.Report != nil {
		total += len(r.Photos.Report.DataPoint)
	}
	return total
}

// ErrorCount returns the number of failed checks and unreadable files.
func (r *RunResult) ErrorCount() int {
	total := 0
	for _, file := range r.Files {
		total += len(file.Errors)
		if file.IngestError != "" {
			total++
		}
	}
	return total
}
