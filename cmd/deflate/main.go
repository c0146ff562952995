// Command deflate decompresses a raw DEFLATE stream from one file into
// another, the way cmd/blast decompresses a PKWare DCL stream: it owns
// the CLI surface (flags, file I/O, buffer-size guessing) that the
// decoder package itself deliberately stays out of.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/milesvale/deflate"
)

// minBufferSize, initialBufferFactor, and maxBufferSize bound the
// guess-and-grow loop below: the decoder package has no way to report the
// true decompressed size up front (its External Interfaces contract puts
// buffer sizing on the caller), so a caller that doesn't already know that
// size has to retry with a bigger buffer the same way any array-growing
// consumer of a fixed-capacity API does.
const (
	minBufferSize       = 64
	initialBufferFactor = 4
	maxBufferSize       = 1 << 30
)

func main() {
	inputFile := flag.String("i", "", "input file (raw DEFLATE stream)")
	outputFile := flag.String("o", "", "output file")
	verbose := flag.Bool("v", false, "print a content digest of the decoded output")
	flag.Parse()

	if *inputFile == "" || *outputFile == "" {
		flag.PrintDefaults()
		os.Exit(2)
	}

	compressed, err := os.ReadFile(*inputFile)
	if err != nil {
		log.Fatal(err)
	}

	decoded, err := decodeGrowing(compressed)
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile(*outputFile, decoded, 0o666); err != nil {
		log.Fatal(err)
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "%s: %d bytes, xxhash %016x\n", *outputFile, len(decoded), xxhash.Sum64(decoded))
	}
}

// decodeGrowing retries Decode with a doubling destination buffer when the
// previous attempt reports the buffer as too small. Every retry re-decodes
// from scratch: the decoder gives no partial-output guarantee on error, so
// there is nothing in a failed attempt worth salvaging.
func decodeGrowing(compressed []byte) ([]byte, error) {
	size := len(compressed) * initialBufferFactor
	if size < minBufferSize {
		size = minBufferSize
	}

	for {
		dest := make([]byte, size)
		out, err := deflate.Decode(dest, compressed)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, deflate.ErrShortDest) {
			return nil, err
		}
		if size >= maxBufferSize {
			return nil, deflate.ErrShortDest
		}
		size *= 2
	}
}
