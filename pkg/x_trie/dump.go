// file:xtrie/pkg/x_trie/dump.go
package x_trie

import (
	"fmt"
	"io"
	"strings"
)

//---------------------
// Tree Dump (Debug)
//---------------------

// Dump writes a visual tree representation to w, children in byte order.
func (t *tree[N, P]) Dump(w io.Writer) {
	root := t.top()
	fmt.Fprintf(w, "%s %s ROOT words=%d\n", dumpPre(0), root.kind(), t.words)
	dumpNode[N, P](w, root, 1)
	fmt.Fprintln(w)
}

func dumpNode[N any, P nodePtr[N]](w io.Writer, n P, depth int) {
	for _, c := range sortedKeys[N, P](n) {
		cn := P(n.findChild(c))
		mark := ""
		if cn.isTerminal() {
			mark = " *"
		}
		fmt.Fprintf(w, "%s%q%s\n", dumpPre(depth), c, mark)
		dumpNode[N, P](w, cn, depth+1)
	}
}

//---------------------
// Indentation Helper
//---------------------

func dumpPre(depth int) string {
	if depth == 0 {
		return "--"
	}
	var b strings.Builder
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
	b.WriteString("|__ ")
	return b.String()
}
