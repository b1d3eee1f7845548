// Package metric routes a (method, operands, parameters) request to the
// correct distance algorithm. Parameters are validated once at this
// boundary; the algorithm packages themselves assume validated input and
// stay free of per-call checks. Distances are float64: finite non-negative
// when computed, +Inf when undefined for the pair or over the configured
// ceiling, NaN when either operand is Unknown.
package metric

import (
	"math"

	"github.com/gcbaptista/go-stringdist/internal/editdist"
	internalErrors "github.com/gcbaptista/go-stringdist/internal/errors"
	"github.com/gcbaptista/go-stringdist/internal/jaro"
	"github.com/gcbaptista/go-stringdist/internal/qgram"
	"github.com/gcbaptista/go-stringdist/model"
)

// Method identifies one of the supported distance metrics.
type Method string

const (
	OSA                Method = "osa"
	Levenshtein        Method = "lv"
	DamerauLevenshtein Method = "dl"
	Hamming            Method = "hamming"
	LCS                Method = "lcs"
	QGram              Method = "qgram"
	Cosine             Method = "cosine"
	Jaccard            Method = "jaccard"
	JaroWinkler        Method = "jw"
)

// Methods returns the closed set of supported method tags.
func Methods() []Method {
	return []Method{OSA, Levenshtein, DamerauLevenshtein, Hamming, LCS, QGram, Cosine, Jaccard, JaroWinkler}
}

// ParseMethod resolves a method tag, failing with an UnknownMethodError for
// anything outside the closed set.
func ParseMethod(tag string) (Method, error) {
	switch Method(tag) {
	case OSA, Levenshtein, DamerauLevenshtein, Hamming, LCS, QGram, Cosine, Jaccard, JaroWinkler:
		return Method(tag), nil
	}
	return "", internalErrors.NewUnknownMethodError(tag)
}

// Params carries every tunable a metric can consume. Weights apply to the
// weighted edit distances, MaxDist to the edit-distance family, Q to the
// q-gram metrics, and P to Jaro-Winkler.
type Params struct {
	Weights editdist.Weights
	MaxDist float64 // editdist.Unbounded() disables the ceiling
	Q       int
	P       float64
}

// DefaultParams returns unit weights, no distance ceiling, q = 1 and p = 0.
func DefaultParams() Params {
	return Params{
		Weights: editdist.DefaultWeights(),
		MaxDist: editdist.Unbounded(),
		Q:       1,
		P:       0,
	}
}

// Validate checks the caller contract: weight components finite, positive
// and at most 1; MaxDist non-negative (or +Inf for unbounded); Q
// non-negative; P within [0, 0.25]. Violations return a ValidationError and
// never a numeric sentinel.
func (p Params) Validate() error {
	weights := map[string]float64{
		"weights.deletion":      p.Weights.Deletion,
		"weights.insertion":     p.Weights.Insertion,
		"weights.substitution":  p.Weights.Substitution,
		"weights.transposition": p.Weights.Transposition,
	}
	for field, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return internalErrors.NewValidationError(field, "must be finite")
		}
		if w <= 0 || w > 1 {
			return internalErrors.NewValidationError(field, "must be in (0, 1]")
		}
	}
	if math.IsNaN(p.MaxDist) || p.MaxDist < 0 {
		return internalErrors.NewValidationError("max_dist", "must be non-negative")
	}
	if p.Q < 0 {
		return internalErrors.NewValidationError("q", "must be non-negative")
	}
	if math.IsNaN(p.P) || p.P < 0 || p.P > 0.25 {
		return internalErrors.NewValidationError("p", "must be in [0, 0.25]")
	}
	return nil
}

// Distance computes one metric for one pair of sequences. Unknown operands
// short-circuit to NaN before any algorithm runs. Callers are expected to
// have validated m and p already; an unvalidated method tag yields NaN.
func Distance(m Method, a, b model.Sequence, p Params) float64 {
	if a.IsUnknown() || b.IsUnknown() {
		return math.NaN()
	}

	pointsA := a.Points()
	pointsB := b.Points()

	switch m {
	case Hamming:
		return editdist.Hamming(pointsA, pointsB, p.MaxDist)
	case Levenshtein:
		return editdist.Levenshtein(pointsA, pointsB, p.Weights, p.MaxDist)
	case OSA:
		return editdist.OSA(pointsA, pointsB, p.Weights, p.MaxDist)
	case DamerauLevenshtein:
		return editdist.DamerauLevenshtein(pointsA, pointsB, p.Weights, p.MaxDist)
	case LCS:
		return editdist.LCS(pointsA, pointsB, p.MaxDist)
	case QGram, Cosine, Jaccard:
		profileA, okA := qgram.Extract(pointsA, p.Q)
		profileB, okB := qgram.Extract(pointsB, p.Q)
		if !okA || !okB {
			return math.Inf(1)
		}
		switch m {
		case QGram:
			return qgram.Distance(profileA, profileB)
		case Cosine:
			return qgram.Cosine(profileA, profileB)
		default:
			return qgram.Jaccard(profileA, profileB)
		}
	case JaroWinkler:
		return jaro.JaroWinkler(pointsA, pointsB, p.P)
	}
	return math.NaN()
}
