package deflate

// decoderState is the per-call mutable record threaded through a single
// Decode invocation: a bitReader over the source, a write cursor into the
// caller-owned destination, and the two dynamic-block decode tables reused
// across every dynamic block in the stream. A Decoder keeps one of these
// across calls, but Decoder.Decode resets the reader, destination and
// cursor at the start of every call and each table is rebuilt before it is
// read, so nothing decoded in one call carries over into the next.
type decoderState struct {
	r    *bitReader
	dest []byte
	pos  int

	litLen huffmanTable
	dist   huffmanTable

	// codeLen and descriptor are scratch space for dynamic block headers,
	// reused by every dynamic block a single decoderState processes.
	codeLen    huffmanTable
	descriptor [maxLitLenSymbols + maxDistSymbols]byte
}

// Decode reconstructs the raw DEFLATE stream in source into dest and
// returns the prefix of dest holding the decompressed bytes. dest must be
// at least as long as the known decompressed size; Decode never grows or
// reallocates it.
//
// Decode is a thin wrapper around a throwaway Decoder; callers decoding
// many independent streams back to back should use Decoder directly to
// avoid re-allocating its tables on every call.
func Decode(dest, source []byte) ([]byte, error) {
	var d Decoder
	return d.Decode(dest, source)
}

// Decoder holds the decode tables a sequence of Decode calls would
// otherwise reallocate every time: the two 288/32-entry tables, the
// 19-entry code-length tree, and the HLIT+HDIST descriptor scratch space.
// Each call to Decode overwrites every field before reading it, so reusing
// a Decoder across unrelated streams is safe - it is simply avoiding the
// allocation, not carrying state between calls. A Decoder is not safe for
// concurrent use; distinct goroutines must use distinct Decoders, per the
// decoder's single-owner state model.
type Decoder struct {
	state decoderState
}

// Decode behaves exactly like the package-level Decode, reusing this
// Decoder's tables instead of allocating fresh ones.
func (d *Decoder) Decode(dest, source []byte) ([]byte, error) {
	d.state.r = newBitReader(source)
	d.state.dest = dest
	d.state.pos = 0
	if err := decodeStream(&d.state); err != nil {
		return nil, err
	}
	return dest[:d.state.pos], nil
}

// decodeStream drives one block at a time until a block with BFINAL set
// has been fully processed.
func decodeStream(s *decoderState) error {
	for {
		final, err := s.r.getBit()
		if err != nil {
			return err
		}
		btype, err := s.r.readBits(2, 0)
		if err != nil {
			return err
		}

		switch btype {
		case 0:
			if err := decodeStoredBlock(s); err != nil {
				return err
			}
		case 1:
			if err := expandHuffmanBlock(s, &fixedLitLen, &fixedDist); err != nil {
				return err
			}
		case 2:
			if err := decodeDynamicBlock(s); err != nil {
				return err
			}
		default:
			return ErrReservedBlockType
		}

		if final == 1 {
			return nil
		}
	}
}

// emit writes one byte to dest at the current cursor, bounds-checked
// against the caller-supplied buffer.
func (s *decoderState) emit(b byte) error {
	if s.pos >= len(s.dest) {
		return ErrShortDest
	}
	s.dest[s.pos] = b
	s.pos++
	return nil
}
