// file:xtrie/pkg/x_trie/alphabet.go
package x_trie

import (
	"errors"
	"fmt"
)

//---------------------
// Alphabet
//---------------------

// Symbol is the dense index of a character in the trie alphabet.
type Symbol uint8

const (
	// Terminator is the reserved end-of-word character. It owns symbol 0.
	Terminator = '$'

	// AlphabetSize is the number of symbols: terminator, 10 digits,
	// 26 uppercase and 26 lowercase letters.
	AlphabetSize = 63

	digitBase = 1
	upperBase = 11
	lowerBase = 37
)

var (
	ErrInvalidSymbol = errors.New("symbol outside alphabet")
	ErrEmptyWord     = errors.New("empty word")
)

// Encode maps c to its symbol. Characters outside the alphabet are rejected.
func Encode(c byte) (Symbol, error) {
	switch {
	case c == Terminator:
		return 0, nil
	case c >= '0' && c <= '9':
		return Symbol(c-'0') + digitBase, nil
	case c >= 'A' && c <= 'Z':
		return Symbol(c-'A') + upperBase, nil
	case c >= 'a' && c <= 'z':
		return Symbol(c-'a') + lowerBase, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, c)
}

// Decode maps s back to its character.
func Decode(s Symbol) (byte, error) {
	switch {
	case s == 0:
		return Terminator, nil
	case s < upperBase:
		return '0' + byte(s-digitBase), nil
	case s < lowerBase:
		return 'A' + byte(s-upperBase), nil
	case s < AlphabetSize:
		return 'a' + byte(s-lowerBase), nil
	}
	return 0, fmt.Errorf("%w: symbol %d", ErrInvalidSymbol, s)
}

// symbolOf is Encode for bytes already checked by Validate.
func symbolOf(c byte) Symbol {
	s, _ := Encode(c)
	return s
}

// Validate reports whether every byte of word belongs to the alphabet.
// All layouts run it before touching the tree so they agree on bad input.
func Validate(word string) error {
	if len(word) == 0 {
		return ErrEmptyWord
	}
	for i := 0; i < len(word); i++ {
		if _, err := Encode(word[i]); err != nil {
			return fmt.Errorf("word %q at %d: %w", word, i, err)
		}
	}
	return nil
}
