package huffman

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Node is a node in the Huffman code tree.  A leaf carries a meaningful
// Symbol and has no children; an internal node carries InvalidSymbol and
// always has exactly two children.
type Node struct {
	Symbol Symbol
	Weight uint64
	Left   *Node
	Right  *Node
}

// Leaf reports whether this node has no children.
func (n *Node) Leaf() bool {
	return n.Left == nil && n.Right == nil
}

// BuildTree constructs the Huffman tree for the given frequencies and
// returns its root.  One leaf is created per nonzero slot, in ascending
// symbol order; then the two minimum-weight nodes are repeatedly merged
// (first removed becomes the left child) until a single node remains.
// Equal weights are ordered by insertion sequence, so builds are
// reproducible across runs and platforms.
//
// The EOF slot of a table produced by CountFrequencies is always nonzero,
// so the heap starts with at least one leaf; an input with an empty literal
// alphabet yields a tree that is the lone EOF leaf.
func BuildTree(freq FrequencyTable) *Node {
	var h nodeHeap
	h.list = make([]weightedNode, 0, NumSymbols)
	for sym := Symbol(0); sym < NumSymbols; sym++ {
		if c := freq[sym]; c != 0 {
			heap.Push(&h, &Node{Symbol: sym, Weight: uint64(c)})
		}
	}
	assert.Assertf(h.Len() > 0, "frequency table has no nonzero slots")

	for h.Len() > 1 {
		left := heap.Pop(&h).(*Node)
		right := heap.Pop(&h).(*Node)
		heap.Push(&h, &Node{Symbol: InvalidSymbol, Weight: left.Weight + right.Weight, Left: left, Right: right})
	}
	return heap.Pop(&h).(*Node)
}

// type weightedNode + type nodeHeap {{{

type weightedNode struct {
	node *Node
	seq  uint32 // insertion sequence number, the tie-break key
}

type nodeHeap struct {
	list []weightedNode
	seq  uint32
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Weight != b.node.Weight {
		return a.node.Weight < b.node.Weight
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, weightedNode{x.(*Node), h.seq})
	h.seq++
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x.node
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
