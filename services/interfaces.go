package services

import (
	"context"

	"github.com/gcbaptista/go-stringdist/model"
)

// DistanceQuery is one distance request: two text vectors, a method tag,
// and the optional per-metric parameters. A nil entry in A or B is a
// missing string and propagates to an Unknown result. Omitted parameters
// take the documented defaults: unit weights, no distance ceiling, q = 1,
// p = 0.
type DistanceQuery struct {
	A       []*string `json:"a"`
	B       []*string `json:"b"`
	Method  string    `json:"method"`
	Weights []float64 `json:"weights,omitempty"` // (deletion, insertion, substitution, transposition)
	MaxDist *float64  `json:"max_dist,omitempty"`
	Q       *int      `json:"q,omitempty"`
	P       *float64  `json:"p,omitempty"`
	Workers int       `json:"workers,omitempty"` // Matrix mode only; 0 means one per CPU
}

// PairwiseResult is the elementwise result vector, one distance per
// position of the recycled input vectors.
type PairwiseResult struct {
	Distances []model.Value `json:"distances"`
	Method    string        `json:"method"`
	Took      int64         `json:"took"`     // milliseconds
	QueryID   string        `json:"query_id"` // unique UUID for this query
}

// MatrixResult is the |A| x |B| cross-product result.
type MatrixResult struct {
	Distances [][]model.Value `json:"distances"`
	Rows      int             `json:"rows"`
	Cols      int             `json:"cols"`
	Method    string          `json:"method"`
	Took      int64           `json:"took"`     // milliseconds
	QueryID   string          `json:"query_id"` // unique UUID for this query
}

// CorpusInfo describes one stored corpus without its contents.
type CorpusInfo struct {
	Name      string `json:"name"`
	Size      int    `json:"size"`
	CreatedAt int64  `json:"created_at"` // unix seconds
}

// Distancer computes distances for supplied operand vectors.
type Distancer interface {
	Pairwise(query DistanceQuery) (PairwiseResult, error)
	Matrix(ctx context.Context, query DistanceQuery) (MatrixResult, error)
}

// CorpusManager manages named string vectors stored for reuse as the A side
// of matrix computations.
type CorpusManager interface {
	CreateCorpus(name string, values []string) error
	GetCorpus(name string) (CorpusInfo, error)
	DeleteCorpus(name string) error
	ListCorpora() []CorpusInfo
	// MatrixAgainstCorpus starts an asynchronous matrix computation with the
	// stored corpus as the A side and returns the job ID tracking it.
	MatrixAgainstCorpus(name string, query DistanceQuery) (string, error)
}

// JobTracker exposes background job state
type JobTracker interface {
	GetJob(jobID string) (*model.Job, error)
	ListJobs(corpusName string, status *model.JobStatus) []*model.Job
	JobMetrics() model.JobMetricsData
	JobSuccessRate() float64
}

// DistanceService is the full surface the HTTP API is built on.
type DistanceService interface {
	Distancer
	CorpusManager
	JobTracker
}
