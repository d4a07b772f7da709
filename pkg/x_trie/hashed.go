// file:xtrie/pkg/x_trie/hashed.go
package x_trie

import "unsafe"

//---------------------
// Hashed layout
//---------------------

// hashedNode keys children by raw byte in a map allocated on first use.
type hashedNode struct {
	child    map[byte]*hashedNode
	terminal bool
}

const (
	mapHeaderSize   = 48
	mapLoadFactor   = 6.5
	hashedEntryCost = 1 + 3*ptrSize // key, value, bucket links
)

var hashedNodeSize = int(unsafe.Sizeof(hashedNode{}))

func (n *hashedNode) isTerminal() bool   { return n.terminal }
func (n *hashedNode) setTerminal(v bool) { n.terminal = v }
func (n *hashedNode) numChildren() int   { return len(n.child) }
func (n *hashedNode) kind() string       { return "HASHED" }

func (n *hashedNode) footprint() int {
	total := hashedNodeSize
	if n.child != nil {
		total += mapHeaderSize
		total += bucketCount(len(n.child)) * ptrSize
		total += len(n.child) * hashedEntryCost
	}
	return total
}

func (n *hashedNode) findChild(c byte) *hashedNode {
	return n.child[c]
}

func (n *hashedNode) addChild(c byte) *hashedNode {
	if cn, ok := n.child[c]; ok {
		return cn
	}
	if n.child == nil {
		n.child = make(map[byte]*hashedNode, 1)
	}
	cn := &hashedNode{}
	n.child[c] = cn
	return cn
}

func (n *hashedNode) detachChild(c byte) *hashedNode {
	old, ok := n.child[c]
	if !ok {
		return nil
	}
	delete(n.child, c)
	if len(n.child) == 0 {
		n.child = nil
	}
	return old
}

func (n *hashedNode) iter(f func(c byte, n *hashedNode) bool) {
	for c, cn := range n.child {
		if !f(c, cn) {
			return
		}
	}
}

// bucketCount estimates the bucket array a map with n entries grows to.
func bucketCount(n int) int {
	b := 1
	for float64(n) > mapLoadFactor*float64(b) {
		b <<= 1
	}
	return b
}

//---------------------
// Engine
//---------------------

// Hashed is a trie whose nodes keep children in a hash map.
type Hashed struct {
	tree[hashedNode, *hashedNode]
}

// NewHashed creates an empty Hashed trie.
func NewHashed() *Hashed { return &Hashed{} }

func (t *Hashed) Variant() Variant { return VariantHashed }
