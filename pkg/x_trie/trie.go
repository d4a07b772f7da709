// Package x_trie implements a prefix tree over a fixed 63-symbol alphabet in
// three interchangeable child layouts: Indexed (symbol table), Hashed (map)
// and Listed (unordered edge list).
//
// All layouts give identical answers for identical operation sequences.
// None of them is safe for concurrent use; wrap a trie in Locked when it is
// shared between goroutines.
package x_trie

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var _ Trie = (*Indexed)(nil)
var _ Trie = (*Hashed)(nil)
var _ Trie = (*Listed)(nil)
var _ Trie = (*Locked)(nil)

var _ Inspector = (*Indexed)(nil)
var _ Inspector = (*Hashed)(nil)
var _ Inspector = (*Listed)(nil)
var _ Inspector = (*Locked)(nil)

var ErrUnknownVariant = errors.New("unknown trie variant")

//---------------------
// Interfaces
//---------------------

// Trie is the operation set shared by every layout.
type Trie interface {
	Insert(word string) (bool, error)
	Contains(word string) (bool, error)
	Remove(word string) (bool, error)
	Len() int
	Footprint() int
	Variant() Variant
}

// Inspector exposes read-only structural access, mostly for tests and tools.
type Inspector interface {
	Walk(f func(word string) bool)
	Verify() error
	Dump(w io.Writer)
}

//---------------------
// Variants
//---------------------

// Variant selects a child layout. The numbers match the command line
// selector of the query runner.
type Variant int

const (
	VariantListed Variant = iota + 1
	VariantIndexed
	VariantHashed
)

var variantNames = map[Variant]string{
	VariantListed:  "listed",
	VariantIndexed: "indexed",
	VariantHashed:  "hashed",
}

// selector names of the query runner and the benchmark CSVs
var variantAliasNames = map[Variant]string{
	VariantListed:  "vector",
	VariantIndexed: "array",
	VariantHashed:  "hash",
}

var variantAliases = map[string]Variant{
	"listed":  VariantListed,
	"list":    VariantListed,
	"vector":  VariantListed,
	"indexed": VariantIndexed,
	"index":   VariantIndexed,
	"array":   VariantIndexed,
	"hashed":  VariantHashed,
	"hash":    VariantHashed,
	"map":     VariantHashed,
}

// Variants returns all layouts in selector order.
func Variants() []Variant {
	return []Variant{VariantListed, VariantIndexed, VariantHashed}
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return "variant(" + strconv.Itoa(int(v)) + ")"
}

// Alias returns the selector name of v: vector, array or hash.
func (v Variant) Alias() string {
	if name, ok := variantAliasNames[v]; ok {
		return name
	}
	return v.String()
}

// ParseVariant accepts a selector number or a layout name.
func ParseVariant(s string) (Variant, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		v := Variant(n)
		if _, ok := variantNames[v]; ok {
			return v, nil
		}
		return 0, fmt.Errorf("%w: %d", ErrUnknownVariant, n)
	}
	s = strings.TrimSuffix(s, "_trie")
	if v, ok := variantAliases[s]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// New returns an empty trie of the given layout.
func New(v Variant) (Trie, error) {
	switch v {
	case VariantListed:
		return NewListed(), nil
	case VariantIndexed:
		return NewIndexed(), nil
	case VariantHashed:
		return NewHashed(), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
}

// MustNew is New for layouts known to be valid.
func MustNew(v Variant) Trie {
	t, err := New(v)
	if err != nil {
		panic(err)
	}
	return t
}

//---------------------
// Helpers
//---------------------

// Words returns the stored words of t in byte order.
func Words(t Trie) []string {
	in, ok := t.(Inspector)
	if !ok {
		return nil
	}
	words := make([]string, 0, t.Len())
	in.Walk(func(w string) bool {
		words = append(words, w)
		return true
	})
	return words
}

// Verify runs the structural check of t if its layout supports one.
func Verify(t Trie) error {
	if in, ok := t.(Inspector); ok {
		return in.Verify()
	}
	return nil
}
