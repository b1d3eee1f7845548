// Package encoder is the normalization boundary between raw text and the
// canonical code point sequences the distance algorithms consume. Multi-byte
// characters always map to single code points, never bytes, so results do
// not depend on source encoding.
package encoder

import (
	"github.com/gcbaptista/go-stringdist/model"
)

// Encode converts one string into its canonical Sequence.
func Encode(s string) model.Sequence {
	return model.NewSequence(s)
}

// EncodeAll converts a vector of optional strings. A nil entry is a missing
// input and maps to the Unknown sentinel.
func EncodeAll(values []*string) []model.Sequence {
	sequences := make([]model.Sequence, 0, len(values)) // Initialize as empty slice, not nil
	for _, v := range values {
		if v == nil {
			sequences = append(sequences, model.UnknownSequence())
		} else {
			sequences = append(sequences, Encode(*v))
		}
	}
	return sequences
}

// EncodeStrings converts a vector of plain strings, none of which can be
// missing.
func EncodeStrings(values []string) []model.Sequence {
	sequences := make([]model.Sequence, 0, len(values)) // Initialize as empty slice, not nil
	for _, v := range values {
		sequences = append(sequences, Encode(v))
	}
	return sequences
}
