// Package jaro implements the Jaro and Jaro-Winkler string distances on
// code point sequences. Results are distances in [0, 1]: 0 for identical
// sequences, 1 for sequences with no matching code points.
package jaro

// Jaro returns the plain Jaro distance between a and b.
func Jaro(a, b []rune) float64 {
	return JaroWinkler(a, b, 0)
}

// JaroWinkler returns the Jaro distance discounted by the Winkler common
// prefix bonus: d - l*p*d, with l the length of the shared prefix capped at
// 4 and p the penalty factor in [0, 0.25]. p = 0 yields the plain Jaro
// distance unchanged.
//
// Matching follows the classic window algorithm: a[i] can match b[j] when
// the code points are equal and |i-j| is within half the longer length
// minus one, each position consumed at most once, scanning a left to right.
// Transpositions are the positional disagreements between the two ordered
// matched sequences, rounded up to whole swaps.
func JaroWinkler(a, b []rune, p float64) float64 {
	lenA := len(a)
	lenB := len(b)

	if lenA == 0 && lenB == 0 {
		return 0
	}
	if lenA == 0 || lenB == 0 {
		return 1
	}

	window := max(lenA, lenB)/2 - 1
	if window < 0 {
		window = 0
	}

	matchedA := make([]bool, lenA)
	matchedB := make([]bool, lenB)
	matches := 0
	for i := range a {
		lo := max(0, i-window)
		hi := min(lenB-1, i+window)
		for j := lo; j <= hi; j++ {
			if !matchedB[j] && b[j] == a[i] {
				matchedA[i] = true
				matchedB[j] = true
				matches++
				break
			}
		}
	}

	if matches == 0 {
		return 1
	}

	// Walk both matched sequences in order of occurrence and count the
	// positions where they disagree.
	disagreements := 0
	k := 0
	for i := range a {
		if !matchedA[i] {
			continue
		}
		for !matchedB[k] {
			k++
		}
		if a[i] != b[k] {
			disagreements++
		}
		k++
	}
	transpositions := float64((disagreements + 1) / 2)

	m := float64(matches)
	similarity := (m/float64(lenA) + m/float64(lenB) + (m-transpositions)/m) / 3
	d := 1 - similarity

	if p > 0 {
		prefix := 0
		for prefix < 4 && prefix < lenA && prefix < lenB && a[prefix] == b[prefix] {
			prefix++
		}
		d -= float64(prefix) * p * d
	}
	return d
}
