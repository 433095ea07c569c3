package huffman

import (
	"errors"
	"io"
)

// FrequencyTable maps each Symbol to its occurrence count.  The EOF slot is
// always exactly 1: it is a sentinel appended by the codec, never an
// observed frequency.
type FrequencyTable [NumSymbols]uint32

// CountFrequencies scans src one 8-bit unit at a time until it is exhausted
// and returns the resulting FrequencyTable.  An empty source yields a table
// whose only nonzero slot is EOF.
func CountFrequencies(src BitReader) (FrequencyTable, error) {
	var freq FrequencyTable
	for {
		v, err := src.ReadBits(bitsPerWord)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return FrequencyTable{}, err
		}
		freq[v]++
	}
	freq[EOF] = 1
	return freq, nil
}
