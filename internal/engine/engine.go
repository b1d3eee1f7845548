// Package engine wires the distance dispatcher, batch orchestrator, corpus
// store, and job manager into the services.DistanceService surface.
package engine

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/gcbaptista/go-stringdist/config"
	"github.com/gcbaptista/go-stringdist/internal/batch"
	"github.com/gcbaptista/go-stringdist/internal/editdist"
	"github.com/gcbaptista/go-stringdist/internal/encoder"
	internalErrors "github.com/gcbaptista/go-stringdist/internal/errors"
	"github.com/gcbaptista/go-stringdist/internal/jobs"
	"github.com/gcbaptista/go-stringdist/internal/metric"
	"github.com/gcbaptista/go-stringdist/model"
	"github.com/gcbaptista/go-stringdist/services"
	"github.com/gcbaptista/go-stringdist/store"
)

// Engine computes string distances over request vectors and stored corpora.
// It implements the services.DistanceService interface.
type Engine struct {
	settings config.Settings
	corpora  *store.CorpusStore
	jobs     *jobs.Manager
}

// NewEngine creates a new distance engine and starts its job manager.
func NewEngine(settings config.Settings) *Engine {
	eng := &Engine{
		settings: settings,
		corpora:  store.NewCorpusStore(),
		jobs:     jobs.NewManager(settings.MaxConcurrentJobs, settings.JobRetention),
	}
	eng.jobs.Start()
	return eng
}

// Close shuts down the engine, waiting for running jobs to finish.
func (e *Engine) Close() {
	e.jobs.Stop()
}

// Pairwise computes the elementwise distance vector for a query, recycling
// the shorter input vector.
func (e *Engine) Pairwise(query services.DistanceQuery) (services.PairwiseResult, error) {
	startTime := time.Now()

	method, params, err := e.resolveQuery(query)
	if err != nil {
		return services.PairwiseResult{}, err
	}
	if err := e.checkVectorLength("a", len(query.A)); err != nil {
		return services.PairwiseResult{}, err
	}
	if err := e.checkVectorLength("b", len(query.B)); err != nil {
		return services.PairwiseResult{}, err
	}

	distances, err := batch.Pairwise(method, encoder.EncodeAll(query.A), encoder.EncodeAll(query.B), params)
	if err != nil {
		return services.PairwiseResult{}, err
	}

	return services.PairwiseResult{
		Distances: model.Values(distances),
		Method:    string(method),
		Took:      time.Since(startTime).Milliseconds(),
		QueryID:   uuid.New().String(),
	}, nil
}

// Matrix computes the full cross-product distance matrix for a query.
func (e *Engine) Matrix(ctx context.Context, query services.DistanceQuery) (services.MatrixResult, error) {
	startTime := time.Now()

	method, params, err := e.resolveQuery(query)
	if err != nil {
		return services.MatrixResult{}, err
	}
	if err := e.checkVectorLength("a", len(query.A)); err != nil {
		return services.MatrixResult{}, err
	}
	if err := e.checkVectorLength("b", len(query.B)); err != nil {
		return services.MatrixResult{}, err
	}

	matrix, err := batch.Matrix(ctx, method, encoder.EncodeAll(query.A), encoder.EncodeAll(query.B), params, e.workers(query.Workers))
	if err != nil {
		return services.MatrixResult{}, err
	}

	return services.MatrixResult{
		Distances: model.ValueMatrix(matrix),
		Rows:      len(query.A),
		Cols:      len(query.B),
		Method:    string(method),
		Took:      time.Since(startTime).Milliseconds(),
		QueryID:   uuid.New().String(),
	}, nil
}

// CreateCorpus encodes and stores a named string vector for reuse.
func (e *Engine) CreateCorpus(name string, values []string) error {
	if err := e.checkVectorLength("values", len(values)); err != nil {
		return err
	}
	if _, err := e.corpora.Create(name, values); err != nil {
		return err
	}
	log.Printf("Created corpus '%s' with %d strings", name, len(values))
	return nil
}

// GetCorpus describes one stored corpus.
func (e *Engine) GetCorpus(name string) (services.CorpusInfo, error) {
	corpus, err := e.corpora.Get(name)
	if err != nil {
		return services.CorpusInfo{}, err
	}
	return corpusInfo(corpus), nil
}

// DeleteCorpus removes a stored corpus. Jobs already running against it
// keep their snapshot of the sequences.
func (e *Engine) DeleteCorpus(name string) error {
	if err := e.corpora.Delete(name); err != nil {
		return err
	}
	log.Printf("Deleted corpus '%s'", name)
	return nil
}

// ListCorpora describes all stored corpora, sorted by name.
func (e *Engine) ListCorpora() []services.CorpusInfo {
	corpora := e.corpora.List()
	infos := make([]services.CorpusInfo, 0, len(corpora))
	for _, corpus := range corpora {
		infos = append(infos, corpusInfo(corpus))
	}
	return infos
}

// MatrixAgainstCorpus starts an asynchronous matrix computation with the
// stored corpus as the A side and the query's B vector as columns. It
// returns the job ID tracking the computation; the finished matrix is
// attached to the job.
func (e *Engine) MatrixAgainstCorpus(name string, query services.DistanceQuery) (string, error) {
	corpus, err := e.corpora.Get(name)
	if err != nil {
		return "", err
	}

	method, params, err := e.resolveQuery(query)
	if err != nil {
		return "", err
	}
	// Contract violations must surface here, synchronously, not as a failed job.
	if err := params.Validate(); err != nil {
		return "", err
	}
	if err := e.checkVectorLength("b", len(query.B)); err != nil {
		return "", err
	}

	sequencesB := encoder.EncodeAll(query.B)
	workers := e.workers(query.Workers)

	jobID := e.jobs.CreateJob(model.JobTypeCorpusMatrix, name, map[string]string{
		"method": string(method),
		"rows":   strconv.Itoa(len(corpus.Sequences)),
		"cols":   strconv.Itoa(len(sequencesB)),
	})

	err = e.jobs.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		e.jobs.UpdateJobProgress(job.ID, 0, len(sequencesB), "Computing distance matrix")
		matrix, err := batch.Matrix(ctx, method, corpus.Sequences, sequencesB, params, workers)
		if err != nil {
			return fmt.Errorf("matrix computation for corpus '%s': %w", name, err)
		}
		e.jobs.SetJobResult(job.ID, model.ValueMatrix(matrix))
		e.jobs.UpdateJobProgress(job.ID, len(sequencesB), len(sequencesB), "Completed")
		return nil
	})
	if err != nil {
		return "", err
	}
	return jobID, nil
}

// GetJob retrieves a job by ID.
func (e *Engine) GetJob(jobID string) (*model.Job, error) {
	return e.jobs.GetJob(jobID)
}

// ListJobs returns all jobs for a corpus, optionally filtered by status.
func (e *Engine) ListJobs(corpusName string, status *model.JobStatus) []*model.Job {
	return e.jobs.ListJobs(corpusName, status)
}

// JobMetrics returns current job performance metrics.
func (e *Engine) JobMetrics() model.JobMetricsData {
	return e.jobs.GetMetrics()
}

// JobSuccessRate returns the overall job success rate (0.0 to 1.0).
func (e *Engine) JobSuccessRate() float64 {
	return e.jobs.GetJobSuccessRate()
}

// resolveQuery parses the method tag and folds the query's overrides over
// the default parameters. Numeric validation stays with the dispatcher; only
// the shape of the weights slice is checked here.
func (e *Engine) resolveQuery(query services.DistanceQuery) (metric.Method, metric.Params, error) {
	method, err := metric.ParseMethod(query.Method)
	if err != nil {
		return "", metric.Params{}, err
	}

	params := metric.DefaultParams()
	if len(query.Weights) > 0 {
		if len(query.Weights) != 4 {
			return "", metric.Params{}, internalErrors.NewValidationError("weights",
				fmt.Sprintf("must have exactly 4 components (deletion, insertion, substitution, transposition), got %d", len(query.Weights)))
		}
		params.Weights = editdist.Weights{
			Deletion:      query.Weights[0],
			Insertion:     query.Weights[1],
			Substitution:  query.Weights[2],
			Transposition: query.Weights[3],
		}
	}
	if query.MaxDist != nil {
		params.MaxDist = *query.MaxDist
	}
	if query.Q != nil {
		params.Q = *query.Q
	}
	if query.P != nil {
		params.P = *query.P
	}
	return method, params, nil
}

func (e *Engine) checkVectorLength(field string, length int) error {
	if length > e.settings.MaxVectorLength {
		return internalErrors.NewValidationError(field,
			fmt.Sprintf("exceeds the maximum vector length of %d", e.settings.MaxVectorLength))
	}
	return nil
}

func (e *Engine) workers(queryWorkers int) int {
	if queryWorkers > 0 {
		return queryWorkers
	}
	return e.settings.Workers
}

func corpusInfo(corpus *store.Corpus) services.CorpusInfo {
	return services.CorpusInfo{
		Name:      corpus.Name,
		Size:      len(corpus.Values),
		CreatedAt: corpus.CreatedAt.Unix(),
	}
}
