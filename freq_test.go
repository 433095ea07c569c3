package huffman

import (
	"bytes"
	"testing"

	"github.com/icza/bitio"
)

func countBytes(t *testing.T, data []byte) FrequencyTable {
	t.Helper()
	freq, err := CountFrequencies(bitio.NewReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("CountFrequencies failed: %v", err)
	}
	return freq
}

func TestCountFrequencies(t *testing.T) {
	freq := countBytes(t, []byte{65, 65, 65, 66})

	if freq[65] != 3 {
		t.Errorf("count for symbol 65:\n\texpect: 3\n\tactual: %d", freq[65])
	}
	if freq[66] != 1 {
		t.Errorf("count for symbol 66:\n\texpect: 1\n\tactual: %d", freq[66])
	}
	if freq[EOF] != 1 {
		t.Errorf("count for EOF:\n\texpect: 1\n\tactual: %d", freq[EOF])
	}

	var total uint32
	for _, c := range freq {
		total += c
	}
	if total != 5 {
		t.Errorf("total count:\n\texpect: 5\n\tactual: %d", total)
	}
}

func TestCountFrequenciesEmpty(t *testing.T) {
	freq := countBytes(t, nil)

	for sym := Symbol(0); sym < NumSymbols; sym++ {
		var expect uint32
		if sym == EOF {
			expect = 1
		}
		if freq[sym] != expect {
			t.Errorf("count for symbol %d:\n\texpect: %d\n\tactual: %d", sym, expect, freq[sym])
		}
	}
}
