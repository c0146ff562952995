package deflate

// huffmanTable is a canonical-Huffman decode table: count[L] holds the
// number of symbols assigned a code of length L, and symbols holds every
// used symbol ordered first by code length ascending, then by symbol value
// ascending within a length. This is the same count/symbols shape blast's
// huffman type uses for its 13-bit PKWare codes, sized up here to DEFLATE's
// 15-bit codes and 288-symbol literal/length alphabet.
type huffmanTable struct {
	count   [maxBits + 1]uint16
	symbols [maxLitLenSymbols]uint16
}

// buildTree turns lengths[0:n] (one code length per symbol, 0 meaning
// "symbol unused") into the canonical decode table t. It reports
// ErrOversubscribedTree if some length has more codes than bits of that
// length can represent, and ErrIncompleteTree if the lengths don't cover
// every possible code - the two cases blast.go's construct() signals by
// returning a negative or positive count instead of zero, generalized
// here into the decoder's single error kind per §9's recommendation to
// reject rather than tolerate a malformed tree.
//
// A length set that is entirely zero (no symbol used) is accepted: a
// dynamic block may legally carry a distance tree with a single symbol of
// length zero, meaning "this block never emits a back-reference."
func buildTree(t *huffmanTable, lengths []byte, n int) error {
	for i := range t.count {
		t.count[i] = 0
	}
	for i := 0; i < n; i++ {
		t.count[lengths[i]]++
	}
	zeroLen := t.count[0]
	t.count[0] = 0
	if int(zeroLen) == n {
		return nil
	}

	left := 1
	for length := 1; length <= maxBits; length++ {
		left <<= 1
		left -= int(t.count[length])
		if left < 0 {
			return ErrOversubscribedTree
		}
	}
	if left > 0 {
		return ErrIncompleteTree
	}

	var offs [maxBits + 1]uint16
	for length := 1; length < maxBits; length++ {
		offs[length+1] = offs[length] + t.count[length]
	}
	for i := 0; i < n; i++ {
		if lengths[i] != 0 {
			t.symbols[offs[lengths[i]]] = uint16(i)
			offs[lengths[i]]++
		}
	}
	return nil
}

// decodeSymbol consumes the next variable-length code from r using table t
// and returns its symbol. This is the bit-by-bit canonical-Huffman walk
// from RFC 1951 §3.2.2 (the same algorithm blast.go's decode() implements
// for 13-bit codes): accumulate one bit at a time into code, and compare
// against the running first code of the current length and the count of
// codes at that length until the accumulated value resolves to a symbol.
func decodeSymbol(r *bitReader, t *huffmanTable) (int, error) {
	var code, first, index int32
	for length := 1; length <= maxBits; length++ {
		bit, err := r.getBit()
		if err != nil {
			return 0, err
		}
		code |= int32(bit)
		count := int32(t.count[length])
		if code-count < first {
			return int(t.symbols[index+(code-first)]), nil
		}
		index += count
		first += count
		first <<= 1
		code <<= 1
	}
	return 0, ErrInvalidSymbol
}
