package model

// Sequence is the canonical representation of one input string: an ordered,
// immutable list of Unicode code points. A zero-length Sequence represents
// the empty string and is distinct from the Unknown sentinel, which marks a
// missing (null) input.
type Sequence struct {
	points  []rune
	unknown bool
}

// NewSequence builds a Sequence from the code points of s. Invalid UTF-8
// bytes decode to U+FFFD, so the mapping is deterministic for any input.
func NewSequence(s string) Sequence {
	return Sequence{points: []rune(s)}
}

// UnknownSequence returns the sentinel for a missing input string.
func UnknownSequence() Sequence {
	return Sequence{unknown: true}
}

// IsUnknown reports whether the source string was missing.
func (s Sequence) IsUnknown() bool {
	return s.unknown
}

// Len returns the number of code points. An Unknown sequence has length 0.
func (s Sequence) Len() int {
	return len(s.points)
}

// Points exposes the code points. The returned slice is shared; callers must
// treat it as read-only.
func (s Sequence) Points() []rune {
	return s.points
}

// String reassembles the text the Sequence was built from. Unknown sequences
// render as the empty string.
func (s Sequence) String() string {
	return string(s.points)
}
