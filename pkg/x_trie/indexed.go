// file:xtrie/pkg/x_trie/indexed.go
package x_trie

import "unsafe"

//---------------------
// Indexed layout
//---------------------

// indexedNode keeps one slot per alphabet symbol. Lookups are a single
// array access; every node pays for the whole table.
type indexedNode struct {
	child    [AlphabetSize]*indexedNode
	size     uint8
	terminal bool
}

var indexedNodeSize = int(unsafe.Sizeof(indexedNode{}))

func (n *indexedNode) isTerminal() bool   { return n.terminal }
func (n *indexedNode) setTerminal(v bool) { n.terminal = v }
func (n *indexedNode) numChildren() int   { return int(n.size) }
func (n *indexedNode) kind() string       { return "INDEXED" }

// footprint counts the full table regardless of occupancy.
func (n *indexedNode) footprint() int { return indexedNodeSize }

func (n *indexedNode) findChild(c byte) *indexedNode {
	return n.child[symbolOf(c)]
}

func (n *indexedNode) addChild(c byte) *indexedNode {
	s := symbolOf(c)
	if n.child[s] == nil {
		n.child[s] = &indexedNode{}
		n.size++
	}
	return n.child[s]
}

func (n *indexedNode) detachChild(c byte) *indexedNode {
	s := symbolOf(c)
	old := n.child[s]
	if old != nil {
		n.child[s] = nil
		n.size--
	}
	return old
}

func (n *indexedNode) iter(f func(c byte, n *indexedNode) bool) {
	for s := range n.child {
		cn := n.child[s]
		if cn == nil {
			continue
		}
		c, _ := Decode(Symbol(s))
		if !f(c, cn) {
			return
		}
	}
}

//---------------------
// Engine
//---------------------

// Indexed is a trie whose nodes address children by symbol index.
type Indexed struct {
	tree[indexedNode, *indexedNode]
}

// NewIndexed creates an empty Indexed trie.
func NewIndexed() *Indexed { return &Indexed{} }

func (t *Indexed) Variant() Variant { return VariantIndexed }
