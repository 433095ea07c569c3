package huffman

// Symbol represents a symbol in the codec's alphabet: a literal byte value
// in [0, 255] or the end-of-stream marker EOF.  Negative symbols are not
// valid.
type Symbol int32

const (
	// AlphabetSize is the number of literal byte values.
	AlphabetSize = 256

	// EOF is the end-of-stream symbol, one past the largest literal.
	EOF = Symbol(AlphabetSize)

	// NumSymbols is the total number of symbol slots, literals plus EOF.
	NumSymbols = AlphabetSize + 1
)

// InvalidSymbol marks nodes that carry no symbol, such as internal tree
// nodes.
const InvalidSymbol = Symbol(-1)

const (
	bitsPerWord   = 8  // width of a literal byte on the wire
	bitsPerSymbol = 9  // width of a leaf symbol in the tree header
	bitsPerMagic  = 32 // width of the magic preamble
)

const (
	huffNumber = 0xface8200

	// MagicTree is the 32-bit preamble identifying the tree-header format.
	MagicTree = huffNumber | 1
)
