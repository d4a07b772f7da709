// file:xtrie/pkg/x_trie/node.go
package x_trie

import "unsafe"

//---------------------
// Node Interface
//---------------------

// nodePtr is the contract every child layout fulfils. The engine is
// instantiated once per layout, so calls through it are resolved at
// construction time instead of through an interface value per node.
type nodePtr[N any] interface {
	*N
	isTerminal() bool
	setTerminal(v bool)
	findChild(c byte) *N
	addChild(c byte) *N
	detachChild(c byte) *N
	numChildren() int
	iter(f func(c byte, n *N) bool)
	footprint() int
	kind() string
}

const ptrSize = int(unsafe.Sizeof(uintptr(0)))

// isDeadLeaf reports a node that carries no word and leads nowhere.
func isDeadLeaf[N any, P nodePtr[N]](n P) bool {
	return !n.isTerminal() && n.numChildren() == 0
}
