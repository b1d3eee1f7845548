package api

import (
	"testing"
)

func TestValidateCorpusName(t *testing.T) {
	tests := []struct {
		name       string
		corpusName string
		wantErrors int
	}{
		{"valid name", "cities", 0},
		{"empty name", "", 1},
		{"leading whitespace", " cities", 1},
		{"trailing whitespace", "cities ", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateCorpusName(tt.corpusName)
			if len(result.Errors) != tt.wantErrors {
				t.Errorf("Expected %d errors, got %d: %v", tt.wantErrors, len(result.Errors), result.Errors)
			}
		})
	}
}

func TestValidateDistanceRequest(t *testing.T) {
	tests := []struct {
		name       string
		request    *DistanceRequest
		wantErrors int
	}{
		{
			name:       "nil request",
			request:    nil,
			wantErrors: 1,
		},
		{
			name:       "valid minimal request",
			request:    &DistanceRequest{Method: "lv"},
			wantErrors: 0,
		},
		{
			name:       "missing method",
			request:    &DistanceRequest{},
			wantErrors: 1,
		},
		{
			name:       "full weight vector accepted",
			request:    &DistanceRequest{Method: "osa", Weights: []float64{1, 1, 1, 0.5}},
			wantErrors: 0,
		},
		{
			name:       "short weight vector rejected",
			request:    &DistanceRequest{Method: "osa", Weights: []float64{1, 1, 1}},
			wantErrors: 1,
		},
		{
			name:       "negative workers rejected",
			request:    &DistanceRequest{Method: "lv", Workers: -1},
			wantErrors: 1,
		},
		{
			name:       "multiple problems all reported",
			request:    &DistanceRequest{Weights: []float64{1}, Workers: -1},
			wantErrors: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateDistanceRequest(tt.request)
			if len(result.Errors) != tt.wantErrors {
				t.Errorf("Expected %d errors, got %d: %v", tt.wantErrors, len(result.Errors), result.Errors)
			}
		})
	}
}
