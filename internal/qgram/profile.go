// Package qgram extracts q-gram profiles from code point sequences and
// derives the q-gram, cosine, and Jaccard distances from two profiles. A
// profile is the multiset of all contiguous q-length windows of a sequence,
// keyed by the window's text so arbitrary Unicode alphabets hash without a
// fixed-size table. Extraction is O(len); every distance is linear in the
// number of distinct grams.
package qgram

import (
	"math"
)

// Profile maps each q-gram of a sequence to its occurrence count.
type Profile struct {
	q      int
	counts map[string]int
}

// Q returns the gram length the profile was built with.
func (p Profile) Q() int {
	return p.q
}

// Count returns the multiplicity of gram within the profile.
func (p Profile) Count(gram string) int {
	return p.counts[gram]
}

// Distinct returns the number of distinct grams.
func (p Profile) Distinct() int {
	return len(p.counts)
}

// Extract builds the q-gram profile of s by sliding a q-wide window one
// position at a time. ok is false when q exceeds the sequence length; the
// profile is then undefined and any distance derived from it is +Inf at the
// metric layer. q = 0 yields an empty but well-defined profile.
func Extract(s []rune, q int) (Profile, bool) {
	if q > len(s) {
		return Profile{}, false
	}
	counts := make(map[string]int)
	if q > 0 {
		for i := 0; i+q <= len(s); i++ {
			counts[string(s[i:i+q])]++
		}
	}
	return Profile{q: q, counts: counts}, true
}

// Distance returns the q-gram distance: the sum of absolute count
// differences over the union of grams seen in either profile.
func Distance(x, y Profile) float64 {
	total := 0
	for gram, cx := range x.counts {
		diff := cx - y.counts[gram]
		if diff < 0 {
			diff = -diff
		}
		total += diff
	}
	for gram, cy := range y.counts {
		if _, seen := x.counts[gram]; !seen {
			total += cy
		}
	}
	return float64(total)
}

// Cosine returns 1 minus the cosine similarity of the two count vectors.
// Two empty profiles (q = 0, or both inputs shorter than any gram) compare
// equal with distance 0; a single empty profile against a non-empty one has
// no defined angle and yields +Inf.
func Cosine(x, y Profile) float64 {
	if len(x.counts) == 0 && len(y.counts) == 0 {
		return 0
	}
	if len(x.counts) == 0 || len(y.counts) == 0 {
		return math.Inf(1)
	}

	var dot, normX, normY float64
	for gram, cx := range x.counts {
		normX += float64(cx) * float64(cx)
		if cy, seen := y.counts[gram]; seen {
			dot += float64(cx) * float64(cy)
		}
	}
	for _, cy := range y.counts {
		normY += float64(cy) * float64(cy)
	}
	return 1 - dot/(math.Sqrt(normX)*math.Sqrt(normY))
}

// Jaccard returns 1 minus the Jaccard index of the two distinct-gram sets,
// multiplicities ignored. Two empty profiles have distance 0.
func Jaccard(x, y Profile) float64 {
	if len(x.counts) == 0 && len(y.counts) == 0 {
		return 0
	}

	intersection := 0
	union := len(y.counts)
	for gram := range x.counts {
		if _, seen := y.counts[gram]; seen {
			intersection++
		} else {
			union++
		}
	}
	return 1 - float64(intersection)/float64(union)
}
