package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps each Symbol to its Code.  A symbol that has no leaf in the
// tree keeps the zero Code, whose Size of 0 marks it invalid.
type CodeTable [NumSymbols]Code

// BuildCodeTable walks the tree depth-first and records, for every leaf,
// the path from the root as that symbol's code: left is a 0 bit, right is a
// 1 bit.  The codes are prefix-free because leaves of a full binary tree
// lie on distinct paths.
//
// A root that is itself a leaf has an empty path; its symbol is assigned
// the 1-bit code 0 instead, so the encoder always emits at least one bit
// per symbol and the decoder always consumes one.
func BuildCodeTable(root *Node) CodeTable {
	var table CodeTable
	if root.Leaf() {
		table[root.Symbol] = MakeCode(1, 0)
		return table
	}
	fillCodes(&table, root, Code{})
	return table
}

func fillCodes(table *CodeTable, n *Node, path Code) {
	if n.Leaf() {
		table[n.Symbol] = path
		return
	}
	fillCodes(table, n.Left, path.AppendBit(0))
	fillCodes(table, n.Right, path.AppendBit(1))
}

// Dump writes a programmer-readable debugging dump of the CodeTable's
// contents to the given writer.
func (table CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for sym := Symbol(0); sym < NumSymbols; sym++ {
		hc := table[sym]
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tCode(%d) = %s\n", sym, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
