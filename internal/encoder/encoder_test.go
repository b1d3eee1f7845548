package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_MultiByteCharactersAreSinglePoints(t *testing.T) {
	seq := Encode("héllo")
	assert.Equal(t, 5, seq.Len(), "accented character must count as one code point")

	seq = Encode("日本語")
	assert.Equal(t, 3, seq.Len())
}

func TestEncode_EmptyString(t *testing.T) {
	seq := Encode("")
	assert.Equal(t, 0, seq.Len())
	assert.False(t, seq.IsUnknown(), "empty is a defined sequence, not a missing one")
}

func TestEncodeAll(t *testing.T) {
	hello := "hello"
	sequences := EncodeAll([]*string{&hello, nil, &hello})

	require.Len(t, sequences, 3)
	assert.Equal(t, "hello", sequences[0].String())
	assert.True(t, sequences[1].IsUnknown())
	assert.False(t, sequences[2].IsUnknown())
}

func TestEncodeAll_Empty(t *testing.T) {
	sequences := EncodeAll(nil)
	assert.NotNil(t, sequences)
	assert.Empty(t, sequences)
}

func TestEncodeStrings(t *testing.T) {
	sequences := EncodeStrings([]string{"a", "bc"})
	require.Len(t, sequences, 2)
	assert.Equal(t, 1, sequences[0].Len())
	assert.Equal(t, 2, sequences[1].Len())
}
