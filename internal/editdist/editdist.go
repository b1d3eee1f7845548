// Package editdist implements the edit-distance family of string metrics:
// Hamming, Levenshtein, Optimal String Alignment, full Damerau-Levenshtein,
// and longest-common-subsequence distance. All functions operate on code
// point slices, are pure, and honor an optional distance ceiling: pass
// Unbounded() for an unlimited computation. When a ceiling is set and the
// true distance exceeds it, the result is +Inf, never a partial value.
package editdist

import (
	"math"
)

// Weights holds the per-operation costs for the weighted metrics. Each
// component must be positive and at most 1; Transposition only applies to
// OSA and full Damerau-Levenshtein. The deletion weight prices removing a
// code point from the first operand, the insertion weight prices inserting
// a code point of the second, so unequal deletion/insertion weights make
// the weighted metrics asymmetric.
type Weights struct {
	Deletion      float64 `json:"deletion"`
	Insertion     float64 `json:"insertion"`
	Substitution  float64 `json:"substitution"`
	Transposition float64 `json:"transposition"`
}

// DefaultWeights returns unit costs for all four operations.
func DefaultWeights() Weights {
	return Weights{Deletion: 1, Insertion: 1, Substitution: 1, Transposition: 1}
}

// Unbounded returns the ceiling value that disables early termination.
func Unbounded() float64 {
	return math.Inf(1)
}

// capped returns d unless it exceeds maxDist, in which case +Inf.
func capped(d, maxDist float64) float64 {
	if d > maxDist {
		return math.Inf(1)
	}
	return d
}

// Hamming returns the number of positions at which a and b differ. It is
// defined only for equal-length operands; unequal lengths yield +Inf.
func Hamming(a, b []rune, maxDist float64) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	count := 0.0
	for i := range a {
		if a[i] != b[i] {
			count++
			if count > maxDist {
				return math.Inf(1)
			}
		}
	}
	return count
}

// Levenshtein returns the minimum total weighted cost of deletions,
// insertions, and substitutions turning a into b. Only two DP rows are kept,
// and a row whose minimum already exceeds maxDist terminates the computation
// early with +Inf: every completion of a partial alignment can only add
// non-negative cost.
func Levenshtein(a, b []rune, w Weights, maxDist float64) float64 {
	lenA := len(a)
	lenB := len(b)

	if lenA == 0 {
		return capped(float64(lenB)*w.Insertion, maxDist)
	}
	if lenB == 0 {
		return capped(float64(lenA)*w.Deletion, maxDist)
	}

	prevRow := make([]float64, lenB+1)
	currRow := make([]float64, lenB+1)
	for j := 1; j <= lenB; j++ {
		prevRow[j] = prevRow[j-1] + w.Insertion
	}

	for i := 1; i <= lenA; i++ {
		currRow[0] = float64(i) * w.Deletion
		minInRow := currRow[0]

		for j := 1; j <= lenB; j++ {
			cost := 0.0
			if a[i-1] != b[j-1] {
				cost = w.Substitution
			}
			currRow[j] = min(prevRow[j]+w.Deletion, currRow[j-1]+w.Insertion, prevRow[j-1]+cost)
			minInRow = min(minInRow, currRow[j])
		}

		if minInRow > maxDist {
			return math.Inf(1)
		}
		prevRow, currRow = currRow, prevRow
	}

	return capped(prevRow[lenB], maxDist)
}

// OSA returns the optimal string alignment distance: Levenshtein extended
// with a weighted swap of two adjacent code points, where no substring is
// edited more than once. Three DP rows are kept so the adjacent-swap pattern
// a[i-1]==b[j-2] && a[i-2]==b[j-1] can reach back one extra row.
func OSA(a, b []rune, w Weights, maxDist float64) float64 {
	lenA := len(a)
	lenB := len(b)

	if lenA == 0 {
		return capped(float64(lenB)*w.Insertion, maxDist)
	}
	if lenB == 0 {
		return capped(float64(lenA)*w.Deletion, maxDist)
	}

	prevPrevRow := make([]float64, lenB+1)
	prevRow := make([]float64, lenB+1)
	currRow := make([]float64, lenB+1)
	for j := 1; j <= lenB; j++ {
		prevRow[j] = prevRow[j-1] + w.Insertion
	}

	// A transposition reaches back to row i-2, so a single row over the
	// ceiling is not proof of exceedance; require two consecutive rows.
	// Row 0's minimum is its first cell, 0.
	minInPrevRow := 0.0

	for i := 1; i <= lenA; i++ {
		currRow[0] = float64(i) * w.Deletion
		minInRow := currRow[0]

		for j := 1; j <= lenB; j++ {
			cost := 0.0
			if a[i-1] != b[j-1] {
				cost = w.Substitution
			}
			d := min(prevRow[j]+w.Deletion, currRow[j-1]+w.Insertion, prevRow[j-1]+cost)
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				d = min(d, prevPrevRow[j-2]+w.Transposition)
			}
			currRow[j] = d
			minInRow = min(minInRow, d)
		}

		if minInRow > maxDist && minInPrevRow > maxDist {
			return math.Inf(1)
		}
		minInPrevRow = minInRow
		prevPrevRow, prevRow, currRow = prevRow, currRow, prevPrevRow
	}

	return capped(prevRow[lenB], maxDist)
}

// LCS returns the longest-common-subsequence distance: the number of code
// points that must be deleted from either operand (each at unit cost) so the
// remainders are equal. Equivalent to len(a)+len(b)-2*L with L the LCS
// length, computed with two rolling rows.
func LCS(a, b []rune, maxDist float64) float64 {
	lenA := len(a)
	lenB := len(b)

	if lenA == 0 {
		return capped(float64(lenB), maxDist)
	}
	if lenB == 0 {
		return capped(float64(lenA), maxDist)
	}

	prevRow := make([]float64, lenB+1)
	currRow := make([]float64, lenB+1)
	for j := 0; j <= lenB; j++ {
		prevRow[j] = float64(j)
	}

	for i := 1; i <= lenA; i++ {
		currRow[0] = float64(i)
		minInRow := currRow[0]

		for j := 1; j <= lenB; j++ {
			if a[i-1] == b[j-1] {
				currRow[j] = prevRow[j-1]
			} else {
				currRow[j] = min(prevRow[j], currRow[j-1]) + 1
			}
			minInRow = min(minInRow, currRow[j])
		}

		if minInRow > maxDist {
			return math.Inf(1)
		}
		prevRow, currRow = currRow, prevRow
	}

	return capped(prevRow[lenB], maxDist)
}
