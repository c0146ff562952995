package deflate

// maxBits is DEFLATE's maximum Huffman code length.
const maxBits = 15

// maxLitLenSymbols is the size of the literal/length alphabet (0-255
// literals, 256 end-of-block, 257-285 length codes, 286-287 reserved).
const maxLitLenSymbols = 288

// maxDistSymbols is the size of the distance alphabet as encoded in the
// fixed Huffman tree (only 0-29 are ever valid; 30-31 are reserved).
const maxDistSymbols = 32

// maxCodeLenSymbols is the size of the code-length alphabet used to
// describe a dynamic block's two trees.
const maxCodeLenSymbols = 19

// clcidx is the permutation RFC 1951 §3.2.7 uses when storing code-length
// alphabet lengths in a dynamic block header: the i-th 3-bit length read
// belongs to code-length symbol clcidx[i].
var clcidx = [maxCodeLenSymbols]byte{
	16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15,
}

// lengthExtraBits and lengthBase give, for literal/length symbols 257-285
// (indexed 0-28 here), the number of extra bits to read and the base
// length those extra bits are added to. Symbol 285 (index 28) is the sole
// exact length, 258, with zero extra bits.
var lengthExtraBits = [29]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2,
	3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
}

var lengthBase = [29]uint32{
	3, 4, 5, 6, 7, 8, 9, 10, 11, 13, 15, 17, 19, 23, 27, 31,
	35, 43, 51, 59, 67, 83, 99, 115, 131, 163, 195, 227, 258,
}

// distExtraBits and distBase give, for distance symbols 0-29, the number
// of extra bits to read and the base distance those extra bits are added
// to.
var distExtraBits = [30]byte{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6,
	7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

var distBase = [30]uint32{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193,
	257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

// fixedLitLen and fixedDist are the process-wide fixed Huffman trees
// RFC 1951 §3.2.6 defines for BTYPE=1 blocks. They are built once, the
// same way blast.go's construct() calls for literalCode/lengthCode/
// distanceCode are made once up front, and are read-only thereafter so
// any number of concurrent decoders may share them without locking.
var fixedLitLen huffmanTable
var fixedDist huffmanTable

func init() {
	var lengths [maxLitLenSymbols]byte
	for i := 0; i < 144; i++ {
		lengths[i] = 8
	}
	for i := 144; i < 256; i++ {
		lengths[i] = 9
	}
	for i := 256; i < 280; i++ {
		lengths[i] = 7
	}
	for i := 280; i < 288; i++ {
		lengths[i] = 8
	}
	if err := buildTree(&fixedLitLen, lengths[:], maxLitLenSymbols); err != nil {
		panic("deflate: fixed literal/length tree is malformed: " + err.Error())
	}

	var distLengths [maxDistSymbols]byte
	for i := range distLengths {
		distLengths[i] = 5
	}
	if err := buildTree(&fixedDist, distLengths[:], maxDistSymbols); err != nil {
		panic("deflate: fixed distance tree is malformed: " + err.Error())
	}
}
