package huffman

import (
	"errors"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// WriteHeader serializes the tree rooted at n to bw in pre-order: a 0 bit
// for an internal node followed by its left then its right subtree, or a
// 1 bit followed by the leaf's symbol in 9 bits.
func WriteHeader(bw BitWriter, n *Node) error {
	if n.Leaf() {
		assert.Assertf(n.Symbol >= 0 && n.Symbol <= EOF, "leaf symbol %d out of range", n.Symbol)
		if err := bw.WriteBool(true); err != nil {
			return err
		}
		return bw.WriteBits(uint64(n.Symbol), bitsPerSymbol)
	}
	if err := bw.WriteBool(false); err != nil {
		return err
	}
	if err := WriteHeader(bw, n.Left); err != nil {
		return err
	}
	return WriteHeader(bw, n.Right)
}

// ReadHeader parses the serialization written by WriteHeader and returns an
// equivalent tree.  Leaf weights are not transmitted and come back as zero.
// If br runs out of bits mid-tree, or a leaf names a symbol outside the
// alphabet, the returned error wraps ErrCorruptHeader.
func ReadHeader(br BitReader) (*Node, error) {
	leaf, err := br.ReadBool()
	if err != nil {
		return nil, headerErr(err)
	}
	if leaf {
		sym, err := br.ReadBits(bitsPerSymbol)
		if err != nil {
			return nil, headerErr(err)
		}
		if sym > uint64(EOF) {
			return nil, fmt.Errorf("leaf symbol %d out of range: %w", sym, ErrCorruptHeader)
		}
		return &Node{Symbol: Symbol(sym)}, nil
	}

	left, err := ReadHeader(br)
	if err != nil {
		return nil, err
	}
	right, err := ReadHeader(br)
	if err != nil {
		return nil, err
	}
	return &Node{Symbol: InvalidSymbol, Left: left, Right: right}, nil
}

func headerErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrCorruptHeader
	}
	return err
}
