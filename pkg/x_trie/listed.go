// file:xtrie/pkg/x_trie/listed.go
package x_trie

import "unsafe"

//---------------------
// Listed layout
//---------------------

type listedEdge struct {
	key  byte
	node *listedNode
}

// listedNode keeps an unordered edge list scanned linearly.
type listedNode struct {
	child    []listedEdge
	terminal bool
}

var (
	listedNodeSize = int(unsafe.Sizeof(listedNode{}))
	listedEdgeSize = int(unsafe.Sizeof(listedEdge{}))
)

func (n *listedNode) isTerminal() bool   { return n.terminal }
func (n *listedNode) setTerminal(v bool) { n.terminal = v }
func (n *listedNode) numChildren() int   { return len(n.child) }
func (n *listedNode) kind() string       { return "LISTED" }

// footprint counts the edge slice capacity, append slack included.
func (n *listedNode) footprint() int {
	return listedNodeSize + cap(n.child)*listedEdgeSize
}

func (n *listedNode) findChild(c byte) *listedNode {
	for i := range n.child {
		if n.child[i].key == c {
			return n.child[i].node
		}
	}
	return nil
}

func (n *listedNode) addChild(c byte) *listedNode {
	if cn := n.findChild(c); cn != nil {
		return cn
	}
	cn := &listedNode{}
	n.child = append(n.child, listedEdge{key: c, node: cn})
	return cn
}

// detachChild swaps the last edge into the freed slot.
func (n *listedNode) detachChild(c byte) *listedNode {
	for i, last := 0, len(n.child)-1; i <= last; i++ {
		if n.child[i].key != c {
			continue
		}
		old := n.child[i].node
		n.child[i] = n.child[last]
		n.child[last] = listedEdge{}
		n.child = n.child[:last]
		if last == 0 {
			n.child = nil
		}
		return old
	}
	return nil
}

func (n *listedNode) iter(f func(c byte, n *listedNode) bool) {
	for _, e := range n.child {
		if !f(e.key, e.node) {
			return
		}
	}
}

//---------------------
// Engine
//---------------------

// Listed is a trie whose nodes keep children in a short unordered list.
type Listed struct {
	tree[listedNode, *listedNode]
}

// NewListed creates an empty Listed trie.
func NewListed() *Listed { return &Listed{} }

func (t *Listed) Variant() Variant { return VariantListed }
