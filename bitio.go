package huffman

import (
	"github.com/icza/bitio"
)

// BitReader is the bit-level input collaborator.  Implementations return
// io.EOF or io.ErrUnexpectedEOF when fewer bits remain than requested; any
// other error is a genuine I/O failure.
type BitReader interface {
	ReadBool() (bool, error)
	ReadBits(n uint8) (uint64, error)
}

// BitWriter is the bit-level output collaborator.  WriteBits writes the low
// n bits of v, most significant first.  Close pads the final partial byte
// with zero bits and flushes.
type BitWriter interface {
	WriteBool(b bool) error
	WriteBits(v uint64, n uint8) error
	Close() error
}

var _ BitReader = (*bitio.Reader)(nil)
var _ BitWriter = (*bitio.Writer)(nil)
