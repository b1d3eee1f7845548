package qgram

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustExtract(t *testing.T, s string, q int) Profile {
	t.Helper()
	profile, ok := Extract([]rune(s), q)
	require.True(t, ok, "profile of %q with q=%d should be defined", s, q)
	return profile
}

func TestExtract(t *testing.T) {
	profile := mustExtract(t, "banana", 2)

	assert.Equal(t, 2, profile.Q())
	assert.Equal(t, 2, profile.Count("an"))
	assert.Equal(t, 2, profile.Count("na"))
	assert.Equal(t, 1, profile.Count("ba"))
	assert.Equal(t, 0, profile.Count("ab"))
	assert.Equal(t, 3, profile.Distinct())
}

func TestExtract_QExceedsLengthUndefined(t *testing.T) {
	_, ok := Extract([]rune("ab"), 3)
	assert.False(t, ok)

	_, ok = Extract([]rune(""), 1)
	assert.False(t, ok)
}

func TestExtract_QZeroIsDefinedAndEmpty(t *testing.T) {
	profile, ok := Extract([]rune("abc"), 0)
	require.True(t, ok)
	assert.Equal(t, 0, profile.Distinct())

	empty, ok := Extract([]rune(""), 0)
	require.True(t, ok)
	assert.Equal(t, 0, empty.Distinct())
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		q    int
		want float64
	}{
		{"same unigram multiset", "abc", "cba", 1, 0},
		{"disjoint bigrams", "abc", "cba", 2, 4},
		{"identical", "banana", "banana", 2, 0},
		{"one shared gram", "abcd", "xbcy", 2, 4},
		{"multiplicity counts", "aaaa", "aa", 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := mustExtract(t, tt.a, tt.q)
			y := mustExtract(t, tt.b, tt.q)
			assert.Equal(t, tt.want, Distance(x, y))
			assert.Equal(t, tt.want, Distance(y, x), "q-gram distance must be symmetric")
		})
	}
}

func TestCosine(t *testing.T) {
	x := mustExtract(t, "abc", 1)
	y := mustExtract(t, "cba", 1)
	assert.InDelta(t, 0, Cosine(x, y), 1e-12, "same unigram multiset has zero angle")

	x = mustExtract(t, "ab", 2)
	y = mustExtract(t, "ba", 2)
	assert.InDelta(t, 1, Cosine(x, y), 1e-12, "disjoint gram sets are orthogonal")

	x = mustExtract(t, "aa", 1)
	y = mustExtract(t, "ab", 1)
	// x = (2, 0), y = (1, 1): cos = 2 / (2 * sqrt(2))
	assert.InDelta(t, 1-1/math.Sqrt2, Cosine(x, y), 1e-12)
}

func TestCosine_EmptyProfiles(t *testing.T) {
	x := mustExtract(t, "", 0)
	y := mustExtract(t, "", 0)
	assert.Equal(t, 0.0, Cosine(x, y), "two empty profiles compare equal")

	z := mustExtract(t, "ab", 1)
	assert.True(t, math.IsInf(Cosine(x, z), 1), "a lone empty profile has no defined angle")
}

func TestJaccard(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		q    int
		want float64
	}{
		{"equal sets", "abc", "cba", 1, 0},
		{"disjoint sets", "ab", "cd", 1, 1},
		{"half overlap", "ab", "bc", 1, 1 - 1.0/3},
		{"multiplicity ignored", "aab", "ab", 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := mustExtract(t, tt.a, tt.q)
			y := mustExtract(t, tt.b, tt.q)
			assert.InDelta(t, tt.want, Jaccard(x, y), 1e-12)
			assert.InDelta(t, tt.want, Jaccard(y, x), 1e-12, "Jaccard distance must be symmetric")
		})
	}
}

func TestJaccard_EmptyProfiles(t *testing.T) {
	x := mustExtract(t, "", 0)
	y := mustExtract(t, "abc", 0)
	assert.Equal(t, 0.0, Jaccard(x, y), "q=0 profiles are all empty and equal")
}
