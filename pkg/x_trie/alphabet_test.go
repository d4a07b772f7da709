package x_trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const alphabet = "$0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	require.Len(t, alphabet, AlphabetSize)

	seen := make(map[Symbol]byte, AlphabetSize)
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		s, err := Encode(c)
		require.NoError(t, err)
		assert.Less(t, int(s), AlphabetSize)

		prev, dup := seen[s]
		assert.False(t, dup, "%q and %q share symbol %d", prev, c, s)
		seen[s] = c

		back, err := Decode(s)
		require.NoError(t, err)
		assert.Equal(t, c, back)
	}
}

func TestEncodeOrderMatchesBytes(t *testing.T) {
	for i := 1; i < len(alphabet); i++ {
		a, _ := Encode(alphabet[i-1])
		b, _ := Encode(alphabet[i])
		assert.Less(t, int(a), int(b))
	}
}

func TestEncodeRejectsOutsideAlphabet(t *testing.T) {
	for _, c := range []byte{0, ' ', '\r', '\n', '#', '-', '_', '@', '[', '`', '{', 0x7f, 0xc3} {
		_, err := Encode(c)
		assert.ErrorIs(t, err, ErrInvalidSymbol, "byte %q", c)
	}
}

func TestDecodeRejectsOutOfRange(t *testing.T) {
	_, err := Decode(AlphabetSize)
	assert.ErrorIs(t, err, ErrInvalidSymbol)
	_, err = Decode(255)
	assert.ErrorIs(t, err, ErrInvalidSymbol)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		word string
		err  error
	}{
		{"car$", nil},
		{"A1z", nil},
		{"$", nil},
		{"", ErrEmptyWord},
		{"two words", ErrInvalidSymbol},
		{"tab\t", ErrInvalidSymbol},
		{"über", ErrInvalidSymbol},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			err := Validate(tt.word)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
