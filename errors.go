package huffman

import (
	"errors"
	"fmt"
)

// FormatError reports that a stream does not begin with the expected magic
// preamble.  Magic holds the 32 bits actually read, or zero if the stream
// ended before a full preamble.
type FormatError struct {
	Magic uint32
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("huffman: bad magic preamble 0x%08x, want 0x%08x", e.Magic, uint32(MagicTree))
}

// ErrCorruptHeader reports that the tree header is malformed or the bit
// source ran out while parsing it.
var ErrCorruptHeader = errors.New("huffman: corrupt tree header")

// ErrTruncatedStream reports that the bit source ran out before the
// end-of-stream symbol was decoded.
var ErrTruncatedStream = errors.New("huffman: truncated stream")
