// Package huffman implements a lossless codec for single byte streams,
// based on static Huffman coding with a self-describing tree header.
//
// A compressed stream consists of a 32-bit magic preamble, a pre-order
// serialization of the code tree (one bit per internal node, ten bits per
// leaf), and the body: the code of each input byte followed by the code of
// the end-of-stream symbol, zero-padded to a whole byte.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
