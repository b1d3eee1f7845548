// Package config provides configuration structures for the distance
// service: worker limits, request size ceilings, and job retention.
package config

import (
	"fmt"
	"time"
)

const (
	// DefaultMaxVectorLength bounds the number of strings accepted per
	// request vector or corpus.
	DefaultMaxVectorLength = 100_000

	// DefaultJobRetention is how long finished jobs stay queryable.
	DefaultJobRetention = 24 * time.Hour

	// DefaultMaxConcurrentJobs limits background matrix jobs running at once.
	DefaultMaxConcurrentJobs = 4
)

// Settings contains all configuration options for the distance service.
type Settings struct {
	Workers           int           `json:"workers"`             // Concurrent matrix columns; 0 means one per CPU
	MaxVectorLength   int           `json:"max_vector_length"`   // Upper bound on input vector and corpus sizes
	MaxConcurrentJobs int           `json:"max_concurrent_jobs"` // Background matrix jobs allowed to run at once
	JobRetention      time.Duration `json:"job_retention_ns"`    // How long finished jobs stay queryable
}

// DefaultSettings returns the settings the service starts with when no flag
// overrides them.
func DefaultSettings() Settings {
	return Settings{
		Workers:           0,
		MaxVectorLength:   DefaultMaxVectorLength,
		MaxConcurrentJobs: DefaultMaxConcurrentJobs,
		JobRetention:      DefaultJobRetention,
	}
}

// Validate checks the settings for basic requirements and returns a list of
// conflict messages, empty when the settings are usable.
func (s *Settings) Validate() []string {
	var conflicts []string

	if s.Workers < 0 {
		conflicts = append(conflicts, fmt.Sprintf("workers must not be negative, got %d", s.Workers))
	}
	if s.MaxVectorLength <= 0 {
		conflicts = append(conflicts, fmt.Sprintf("max_vector_length must be positive, got %d", s.MaxVectorLength))
	}
	if s.MaxConcurrentJobs <= 0 {
		conflicts = append(conflicts, fmt.Sprintf("max_concurrent_jobs must be positive, got %d", s.MaxConcurrentJobs))
	}
	if s.JobRetention <= 0 {
		conflicts = append(conflicts, "job_retention_ns must be positive")
	}

	return conflicts
}
