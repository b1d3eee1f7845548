// Package batch applies a distance metric over vectors of sequences: either
// elementwise with cyclic recycling of the shorter vector, or as the full
// cross-product matrix with the columns fanned out across workers. Parameter
// validation happens once per call at this boundary; a validation failure
// aborts the whole call before any pair is scored.
package batch

import (
	"context"
	"log"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/gcbaptista/go-stringdist/internal/metric"
	"github.com/gcbaptista/go-stringdist/model"
)

// Pairwise computes the distance at each position k between a[k mod len(a)]
// and b[k mod len(b)], producing max(len(a), len(b)) results. When the
// longer length is not a multiple of the shorter one the trailing cycle is
// partial; recycling still proceeds with a non-fatal warning. Either vector
// empty yields an empty result.
func Pairwise(m metric.Method, a, b []model.Sequence, p metric.Params) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	distances := make([]float64, 0) // Initialize as empty slice, not nil
	if len(a) == 0 || len(b) == 0 {
		return distances, nil
	}

	longer, shorter := len(a), len(b)
	if shorter > longer {
		longer, shorter = shorter, longer
	}
	if longer%shorter != 0 {
		log.Printf("Warning: longer vector length (%d) is not a multiple of shorter vector length (%d)", longer, shorter)
	}

	for k := 0; k < longer; k++ {
		distances = append(distances, metric.Distance(m, a[k%len(a)], b[k%len(b)], p))
	}
	return distances, nil
}

// Matrix computes the len(a) x len(b) cross-product matrix, cell (i, j)
// holding the distance between a[i] and b[j]. Each column of b is an
// independent task; up to workers of them run concurrently (0 means
// runtime.NumCPU()). Every task writes only its own column, so results land
// at their originating index regardless of completion order and the output
// is identical to a sequential computation. Cancelling ctx abandons the
// columns not yet started and fails the whole call.
func Matrix(ctx context.Context, m metric.Method, a, b []model.Sequence, p metric.Params, workers int) ([][]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	matrix := make([][]float64, len(a))
	for i := range matrix {
		matrix[i] = make([]float64, len(b))
	}
	if len(a) == 0 || len(b) == 0 {
		return matrix, nil
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for j := range b {
		j := j
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := range a {
				matrix[i][j] = metric.Distance(m, a[i], b[j], p)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return matrix, nil
}
