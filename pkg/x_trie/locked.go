// file:xtrie/pkg/x_trie/locked.go
package x_trie

import (
	"io"
	"sync"
)

//---------------------
// Locked
//---------------------

// Locked serialises access to a trie shared between goroutines.
// Mutations take the write lock; queries share the read lock.
type Locked struct {
	mu sync.RWMutex
	t  Trie
}

// NewLocked wraps t. The caller must stop using t directly.
func NewLocked(t Trie) *Locked {
	return &Locked{t: t}
}

func (l *Locked) Insert(word string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.Insert(word)
}

func (l *Locked) Remove(word string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.t.Remove(word)
}

func (l *Locked) Contains(word string) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.t.Contains(word)
}

func (l *Locked) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.t.Len()
}

func (l *Locked) Footprint() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.t.Footprint()
}

func (l *Locked) Variant() Variant { return l.t.Variant() }

func (l *Locked) Walk(f func(word string) bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if in, ok := l.t.(Inspector); ok {
		in.Walk(f)
	}
}

func (l *Locked) Verify() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Verify(l.t)
}

func (l *Locked) Dump(w io.Writer) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if in, ok := l.t.(Inspector); ok {
		in.Dump(w)
	}
}
