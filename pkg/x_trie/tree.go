// file:xtrie/pkg/x_trie/tree.go
package x_trie

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrDanglingNode  = errors.New("non-terminal leaf left in tree")
	ErrChildCount    = errors.New("child count out of sync")
	ErrCountMismatch = errors.New("word count out of sync")
)

//---------------------
// Engine
//---------------------

// tree is the layout-independent engine. The root lives inside the
// struct, is never terminal and is never unlinked.
type tree[N any, P nodePtr[N]] struct {
	root  N
	words int
}

func (t *tree[N, P]) top() P { return P(&t.root) }

// Insert adds word. It reports false when word was already stored.
func (t *tree[N, P]) Insert(word string) (bool, error) {
	if err := Validate(word); err != nil {
		return false, err
	}
	n := t.top()
	for i := 0; i < len(word); i++ {
		n = P(n.addChild(word[i]))
	}
	if n.isTerminal() {
		return false, nil
	}
	n.setTerminal(true)
	t.words++
	return true, nil
}

// Contains reports whether word is stored. It never allocates.
func (t *tree[N, P]) Contains(word string) (bool, error) {
	if err := Validate(word); err != nil {
		return false, err
	}
	n := t.top()
	for i := 0; i < len(word); i++ {
		next := n.findChild(word[i])
		if next == nil {
			return false, nil
		}
		n = P(next)
	}
	return n.isTerminal(), nil
}

// Remove deletes word and prunes the branch it leaves behind.
// It reports false when word was not stored.
func (t *tree[N, P]) Remove(word string) (bool, error) {
	if err := Validate(word); err != nil {
		return false, err
	}
	// the root never gets unlinked, so its own prune flag is dropped
	removed, _ := removePath[N, P](t.top(), word, 0)
	if removed {
		t.words--
	}
	return removed, nil
}

// Len returns the number of stored words.
func (t *tree[N, P]) Len() int { return t.words }

// Footprint estimates the bytes held by all reachable nodes.
func (t *tree[N, P]) Footprint() int {
	var total int
	eachNode[N, P](t.top(), func(n P) { total += n.footprint() })
	return total
}

//---------------------
// Remove
//---------------------

// removePath unmarks word[d:] below n. removed says whether the word was
// present; prune says n itself became a dead leaf and the caller should
// unlink it.
func removePath[N any, P nodePtr[N]](n P, word string, d int) (removed, prune bool) {
	if d == len(word) {
		if !n.isTerminal() {
			return false, false
		}
		n.setTerminal(false)
		return true, n.numChildren() == 0
	}
	next := n.findChild(word[d])
	if next == nil {
		return false, false
	}
	removed, prune = removePath[N, P](P(next), word, d+1)
	if !removed || !prune {
		return removed, false
	}
	n.detachChild(word[d])
	return true, isDeadLeaf[N, P](n)
}

//---------------------
// Traversal
//---------------------

func eachNode[N any, P nodePtr[N]](n P, f func(P)) {
	f(n)
	n.iter(func(_ byte, cn *N) bool {
		eachNode[N, P](P(cn), f)
		return true
	})
}

// sortedKeys returns the edge labels of n in byte order.
func sortedKeys[N any, P nodePtr[N]](n P) []byte {
	keys := make([]byte, 0, n.numChildren())
	n.iter(func(c byte, _ *N) bool {
		keys = append(keys, c)
		return true
	})
	slices.Sort(keys)
	return keys
}

// Walk calls f for every stored word in byte order until f returns false.
func (t *tree[N, P]) Walk(f func(word string) bool) {
	walkWords[N, P](t.top(), make([]byte, 0, 32), f)
}

func walkWords[N any, P nodePtr[N]](n P, prefix []byte, f func(string) bool) bool {
	if n.isTerminal() && !f(string(prefix)) {
		return false
	}
	for _, c := range sortedKeys[N, P](n) {
		if !walkWords[N, P](P(n.findChild(c)), append(prefix, c), f) {
			return false
		}
	}
	return true
}

//---------------------
// Verify
//---------------------

// Verify checks the structural invariants: no reachable non-root node is a
// dead leaf, child counters match the stored edges and the word counter
// matches the terminal nodes.
func (t *tree[N, P]) Verify() error {
	root := t.top()
	if root.isTerminal() {
		return fmt.Errorf("%w: root marked terminal", ErrCountMismatch)
	}
	terminals, err := verifyNode[N, P](root, nil)
	if err != nil {
		return err
	}
	if terminals != t.words {
		return fmt.Errorf("%w: counter %d, terminal nodes %d", ErrCountMismatch, t.words, terminals)
	}
	return nil
}

func verifyNode[N any, P nodePtr[N]](n P, path []byte) (int, error) {
	if path != nil && isDeadLeaf[N, P](n) {
		return 0, fmt.Errorf("%w: %q", ErrDanglingNode, path)
	}
	var terminals, edges int
	if n.isTerminal() {
		terminals++
	}
	var err error
	n.iter(func(c byte, cn *N) bool {
		edges++
		var sub int
		sub, err = verifyNode[N, P](P(cn), append(path[:len(path):len(path)], c))
		terminals += sub
		return err == nil
	})
	if err != nil {
		return 0, err
	}
	if edges != n.numChildren() {
		return 0, fmt.Errorf("%w: %q has %d edges, counter %d", ErrChildCount, path, edges, n.numChildren())
	}
	return terminals, nil
}
