package huffman

import (
	"testing"
)

// sameShape reports whether two trees have the same shape with the same
// symbols at the same leaf positions.  Weights are ignored, since parsed
// trees do not carry them.
func sameShape(a, b *Node) bool {
	if a.Leaf() != b.Leaf() {
		return false
	}
	if a.Leaf() {
		return a.Symbol == b.Symbol
	}
	return sameShape(a.Left, b.Left) && sameShape(a.Right, b.Right)
}

func TestBuildTree(t *testing.T) {
	// A=3, B=1, EOF=1: the two weight-1 leaves merge first, then the
	// merged pair joins A under the root.
	root := BuildTree(countBytes(t, []byte{65, 65, 65, 66}))

	if root.Weight != 5 {
		t.Errorf("root weight:\n\texpect: 5\n\tactual: %d", root.Weight)
	}
	if root.Leaf() {
		t.Fatal("root is a leaf")
	}

	inner, leafA := root.Left, root.Right
	if leafA == nil || !leafA.Leaf() || leafA.Symbol != 65 {
		t.Fatalf("expected the symbol-65 leaf as the root's right child, got %+v", leafA)
	}
	if leafA.Weight != 3 {
		t.Errorf("leaf 65 weight:\n\texpect: 3\n\tactual: %d", leafA.Weight)
	}

	if inner == nil || inner.Leaf() || inner.Weight != 2 {
		t.Fatalf("expected a weight-2 internal node as the root's left child, got %+v", inner)
	}
	if !inner.Left.Leaf() || inner.Left.Symbol != 66 {
		t.Errorf("expected the symbol-66 leaf first under the merge, got %+v", inner.Left)
	}
	if !inner.Right.Leaf() || inner.Right.Symbol != EOF {
		t.Errorf("expected the EOF leaf second under the merge, got %+v", inner.Right)
	}
}

func TestBuildTreeEveryNodeFullOrLeaf(t *testing.T) {
	root := BuildTree(countBytes(t, []byte("the quick brown fox jumps over the lazy dog")))

	var check func(n *Node)
	check = func(n *Node) {
		if (n.Left == nil) != (n.Right == nil) {
			t.Fatalf("node with exactly one child: %+v", n)
		}
		if !n.Leaf() {
			if n.Weight != n.Left.Weight+n.Right.Weight {
				t.Errorf("internal node weight %d != %d + %d", n.Weight, n.Left.Weight, n.Right.Weight)
			}
			check(n.Left)
			check(n.Right)
		}
	}
	check(root)
}

func TestBuildTreeLoneLeaf(t *testing.T) {
	root := BuildTree(countBytes(t, nil))

	if !root.Leaf() {
		t.Fatalf("expected a lone leaf, got %+v", root)
	}
	if root.Symbol != EOF {
		t.Errorf("lone leaf symbol:\n\texpect: %d\n\tactual: %d", EOF, root.Symbol)
	}
	if root.Weight != 1 {
		t.Errorf("lone leaf weight:\n\texpect: 1\n\tactual: %d", root.Weight)
	}
}

func TestBuildTreeDeterministic(t *testing.T) {
	// All counts equal, so every merge is decided by the tie-break.
	data := []byte("abcdefgh")

	first := BuildTree(countBytes(t, data))
	second := BuildTree(countBytes(t, data))
	if !sameShape(first, second) {
		t.Error("two builds from the same frequencies produced different trees")
	}
}
