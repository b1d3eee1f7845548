package editdist

import (
	"math"
)

// DamerauLevenshtein returns the unrestricted Damerau-Levenshtein distance:
// Levenshtein extended with a weighted transposition that may move a code
// point across any gap, paying a deletion per skipped row and an insertion
// per skipped column, and the same code point may take part in more than one
// transposition. The jump back to the last occurrence of each code point
// defeats the rolling-row optimization, so a full (lenA+2)x(lenB+2) table is
// kept, with a sentinel row and column of "infinite" cost guarding the
// transposition lookup when a code point has not been seen yet.
func DamerauLevenshtein(a, b []rune, w Weights, maxDist float64) float64 {
	lenA := len(a)
	lenB := len(b)

	if lenA == 0 {
		return capped(float64(lenB)*w.Insertion, maxDist)
	}
	if lenB == 0 {
		return capped(float64(lenA)*w.Deletion, maxDist)
	}

	// Cheap lower bound before allocating the table.
	gap := lenA - lenB
	if gap < 0 {
		gap = -gap
	}
	if float64(gap)*min(w.Deletion, w.Insertion) > maxDist {
		return math.Inf(1)
	}

	// An unreachable cost larger than any real alignment.
	inf := float64(lenA)*w.Deletion + float64(lenB)*w.Insertion + 1

	table := newDistTable(lenA, lenB)
	table.set(-1, -1, inf)
	for i := 0; i <= lenA; i++ {
		table.set(i, -1, inf)
		table.set(i, 0, float64(i)*w.Deletion)
	}
	for j := 0; j <= lenB; j++ {
		table.set(-1, j, inf)
		table.set(0, j, float64(j)*w.Insertion)
	}

	// Last row at which each code point of a was seen so far.
	lastRowOf := make(map[rune]int, lenA)

	for i := 1; i <= lenA; i++ {
		// Last column at which a[i-1] matched within b.
		lastColMatch := 0

		for j := 1; j <= lenB; j++ {
			i1 := lastRowOf[b[j-1]]
			j1 := lastColMatch

			cost := 0.0
			if a[i-1] == b[j-1] {
				lastColMatch = j
			} else {
				cost = w.Substitution
			}

			d := min(
				table.get(i-1, j-1)+cost,
				table.get(i, j-1)+w.Insertion,
				table.get(i-1, j)+w.Deletion,
			)
			// Transpose a[i1-1] (last occurrence of b[j-1] in a) with
			// a[i-1], deleting and inserting everything in between.
			trans := table.get(i1-1, j1-1) +
				float64(i-i1-1)*w.Deletion +
				w.Transposition +
				float64(j-j1-1)*w.Insertion
			table.set(i, j, min(d, trans))
		}

		lastRowOf[a[i-1]] = i
	}

	return capped(table.get(lenA, lenB), maxDist)
}

// distTable is a DP table with row and column indexes starting at -1.
type distTable struct {
	cols int
	data []float64
}

func newDistTable(rows, cols int) *distTable {
	return &distTable{cols: cols + 2, data: make([]float64, (rows+2)*(cols+2))}
}

func (t *distTable) get(i, j int) float64 {
	return t.data[(i+1)*t.cols+(j+1)]
}

func (t *distTable) set(i, j int, v float64) {
	t.data[(i+1)*t.cols+(j+1)] = v
}
