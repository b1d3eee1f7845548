package model

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// Value is a single distance result. Three states must survive JSON
// round-trips: a finite non-negative distance, +Inf (undefined result or
// bound exceeded), and Unknown (either operand was missing). JSON has no
// literal for infinity or NaN, so +Inf marshals as the string "Inf" and
// Unknown marshals as null.
type Value float64

// Unknown returns the Unknown-propagated result.
func Unknown() Value {
	return Value(math.NaN())
}

// Undefined returns the +Inf result.
func Undefined() Value {
	return Value(math.Inf(1))
}

// IsUnknown reports whether v carries the Unknown state.
func (v Value) IsUnknown() bool {
	return math.IsNaN(float64(v))
}

// IsUndefined reports whether v is +Inf.
func (v Value) IsUndefined() bool {
	return math.IsInf(float64(v), 1)
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	switch {
	case v.IsUnknown():
		return []byte("null"), nil
	case v.IsUndefined():
		return []byte(`"Inf"`), nil
	default:
		return []byte(strconv.FormatFloat(float64(v), 'g', -1, 64)), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = Unknown()
		return nil
	case bytes.Equal(data, []byte(`"Inf"`)):
		*v = Undefined()
		return nil
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid distance value %s: %w", data, err)
	}
	*v = Value(f)
	return nil
}

// Values converts a vector of raw distances.
func Values(distances []float64) []Value {
	values := make([]Value, len(distances))
	for i, d := range distances {
		values[i] = Value(d)
	}
	return values
}

// ValueMatrix converts a matrix of raw distances.
func ValueMatrix(distances [][]float64) [][]Value {
	matrix := make([][]Value, len(distances))
	for i, row := range distances {
		matrix[i] = Values(row)
	}
	return matrix
}
