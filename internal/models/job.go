package models

// JobStatus represents the status of a conversion job.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusConverting JobStatus = "converting"
	JobStatusComplete   JobStatus = "complete"
	JobStatusError      JobStatus = "error"
)

// ConvertJob tracks one background conversion of a stored document.
type ConvertJob struct {
	ID               string    `json:"id"`
	FileID           string    `json:"fileId"`
	Status           JobStatus `json:"status"`
	Progress         float64   `json:"progress"` // 0-100
	ShapeCount       int       `json:"shapeCount,omitempty"`
	SkippedCount     int       `json:"skippedCount,omitempty"`
	ProcessingTimeMs int64     `json:"processingTimeMs,omitempty"`
	Error            string    `json:"error,omitempty"`
}

// NewConvertJob creates a pending job.
func NewConvertJob(id, fileID string) *ConvertJob {
	return &ConvertJob{
		ID:     id,
		FileID: fileID,
		Status: JobStatusPending,
	}
}
