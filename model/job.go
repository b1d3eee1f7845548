package model

import (
	"time"
)

// JobStatus represents the status of a long-running job
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusRunning    JobStatus = "running"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
	JobStatusCancelling JobStatus = "cancelling"
	JobStatusCancelled  JobStatus = "cancelled"
)

// JobType represents the type of job being executed
type JobType string

const (
	JobTypeCorpusMatrix JobType = "corpus_matrix"
)

// Job represents a long-running background distance computation
type Job struct {
	ID          string            `json:"id"`
	Type        JobType           `json:"type"`
	Status      JobStatus         `json:"status"`
	CorpusName  string            `json:"corpus_name"`
	Progress    *JobProgress      `json:"progress,omitempty"`
	Error       string            `json:"error,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	StartedAt   *time.Time        `json:"started_at,omitempty"`
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	Result      [][]Value         `json:"result,omitempty"` // populated once the matrix is computed
}

// JobProgress tracks the progress of a job
type JobProgress struct {
	Current int    `json:"current"`
	Total   int    `json:"total"`
	Message string `json:"message,omitempty"`
}

// GetProgressPercentage returns the progress as a percentage (0-100)
func (jp *JobProgress) GetProgressPercentage() float64 {
	if jp.Total == 0 {
		return 0
	}
	return float64(jp.Current) / float64(jp.Total) * 100
}

// JobMetricsData represents job metrics data without mutex (safe for copying)
type JobMetricsData struct {
	JobsCreated          int64               `json:"jobs_created"`
	JobsCompleted        int64               `json:"jobs_completed"`
	JobsFailed           int64               `json:"jobs_failed"`
	TotalExecutionTime   time.Duration       `json:"total_execution_time_ns"`
	AverageExecutionTime time.Duration       `json:"average_execution_time_ns"`
	JobsByType           map[JobType]int64   `json:"jobs_by_type"`
	JobsByStatus         map[JobStatus]int64 `json:"jobs_by_status"`
	LastUpdated          time.Time           `json:"last_updated"`
}
