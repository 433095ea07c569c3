// Command huffzip compresses and decompresses files using the huffman
// package's tree-serialized format.
//
// Usage:
//
//	huffzip <input> <output>
//	huffzip -d <input> <output>
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sherryxhu/huffman"
)

func main() {
	decompress := flag.Bool("d", false, "decompress instead of compress")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [-d] <input> <output>\n", os.Args[0])
		os.Exit(2)
	}

	if err := run(*decompress, flag.Arg(0), flag.Arg(1)); err != nil {
		fmt.Fprintf(os.Stderr, "huffzip: %v\n", err)
		os.Exit(1)
	}
}

func run(decompress bool, inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}

	if decompress {
		err = huffman.Decompress(out, in)
	} else {
		err = huffman.Compress(out, in)
	}
	if err != nil {
		out.Close()
		os.Remove(outPath)
		return err
	}
	return out.Close()
}
