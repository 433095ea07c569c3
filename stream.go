package huffman

import (
	"bytes"
	"errors"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
)

// Compress reads src twice, once to count byte frequencies and once to
// encode, and writes the compressed stream to dst: the magic preamble, the
// serialized code tree, and the encoded body terminated by the
// end-of-stream code and zero-padded to a whole byte.
func Compress(dst io.Writer, src io.ReadSeeker) error {
	freq, err := CountFrequencies(bitio.NewReader(src))
	if err != nil {
		return err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return err
	}

	root := BuildTree(freq)
	table := BuildCodeTable(root)

	bw := bitio.NewWriter(dst)
	if err := bw.WriteBits(MagicTree, bitsPerMagic); err != nil {
		return err
	}
	if err := WriteHeader(bw, root); err != nil {
		return err
	}
	if err := encodeBody(bw, table, bitio.NewReader(src)); err != nil {
		return err
	}
	return bw.Close()
}

// Decompress reads a compressed stream from src and writes the original
// bytes to dst.  Malformed input fails with *FormatError, ErrCorruptHeader
// or ErrTruncatedStream; no partial output is guaranteed to be valid.
func Decompress(dst io.Writer, src io.Reader) error {
	br := bitio.NewReader(src)
	magic, err := br.ReadBits(bitsPerMagic)
	switch {
	case errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF):
		return &FormatError{}
	case err != nil:
		return err
	case magic != MagicTree:
		return &FormatError{Magic: uint32(magic)}
	}

	root, err := ReadHeader(br)
	if err != nil {
		return err
	}

	bw := bitio.NewWriter(dst)
	if err := decodeBody(bw, root, br); err != nil {
		return err
	}
	return bw.Close()
}

// CompressBytes compresses data and returns the compressed stream.
func CompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Compress(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecompressBytes decompresses a stream produced by CompressBytes (or
// Compress) and returns the original bytes.
func DecompressBytes(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Decompress(&buf, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodeBody writes the code of each 8-bit unit read from src to bw, then
// the code of the end-of-stream symbol.  Every byte value occurring in src
// must have a code; the table was built from this same source, so a miss
// is a pipeline bug rather than an input error.
func encodeBody(bw BitWriter, table CodeTable, src BitReader) error {
	for {
		v, err := src.ReadBits(bitsPerWord)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return err
		}
		if err := writeCode(bw, table, Symbol(v)); err != nil {
			return err
		}
	}
	return writeCode(bw, table, EOF)
}

func writeCode(bw BitWriter, table CodeTable, sym Symbol) error {
	hc := table[sym]
	assert.Assertf(hc.Size != 0, "symbol %d has no code", sym)
	return bw.WriteBits(hc.Bits, hc.Size)
}

// decodeBody walks the tree bit by bit, restarting from the root after each
// leaf, and writes each decoded symbol to bw as an 8-bit unit.  Decoding
// stops when the end-of-stream leaf is reached; trailing padding bits are
// never read.  A root that is itself a leaf decodes every bit to that leaf,
// mirroring the lone-leaf convention in BuildCodeTable.
func decodeBody(bw BitWriter, root *Node, src BitReader) error {
	cur := root
	for {
		bit, err := src.ReadBool()
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return ErrTruncatedStream
			}
			return err
		}

		if !root.Leaf() {
			if bit {
				cur = cur.Right
			} else {
				cur = cur.Left
			}
		}
		if !cur.Leaf() {
			continue
		}

		if cur.Symbol == EOF {
			return nil
		}
		if err := bw.WriteBits(uint64(cur.Symbol), bitsPerWord); err != nil {
			return err
		}
		cur = root
	}
}
