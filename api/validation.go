// Package api provides validation utilities for API request handling.
package api

import (
	"strings"
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ValidateCorpusName validates a corpus name parameter
func ValidateCorpusName(corpusName string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if corpusName == "" {
		result.AddError("corpusName", "Corpus name is required")
		return result
	}

	if strings.TrimSpace(corpusName) != corpusName {
		result.AddError("corpusName", "Corpus name cannot have leading or trailing whitespace")
		return result
	}

	return result
}

// ValidateDistanceRequest checks the shape of a distance request. Numeric
// parameter ranges are the dispatcher's contract; only what must be caught
// before dispatch is checked here.
func ValidateDistanceRequest(req *DistanceRequest) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if req == nil {
		result.AddError("request", "Request body is required")
		return result
	}
	if req.Method == "" {
		result.AddError("method", "Distance method is required")
	}
	if len(req.Weights) != 0 && len(req.Weights) != 4 {
		result.AddError("weights", "Weights must have exactly 4 components (deletion, insertion, substitution, transposition)")
	}
	if req.Workers < 0 {
		result.AddError("workers", "Workers must not be negative")
	}

	return result
}
