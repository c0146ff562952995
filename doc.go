/*
Package deflate decodes raw DEFLATE compressed data as standardized in
RFC 1951.

The decoder works over caller-owned byte buffers: Decode takes a source
buffer of compressed bytes and a destination buffer sized to at least the
known decompressed length, and returns the prefix of dest holding the
recovered bytes.

	out := make([]byte, knownSize)
	n, err := deflate.Decode(out, compressed)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(n))

There is no zlib or gzip framing here, no checksum verification, and no
streaming API: this package reconstructs exactly one complete DEFLATE
stream per call, from a buffer already fully in memory, into a buffer
already fully allocated. Container formats, checksums, and chunked
reading are the caller's job.
*/
package deflate

/*
 * Portions of this implementation are adapted from the canonical-Huffman
 * construction and bitstream techniques used by Mark Adler's blast.c (the
 * PKWare DCL "explode" decompressor), by way of its Go port:
 *
 *   Copyright (c) 2018 Josh Varga
 *   Original C version: Copyright (C) 2003, 2012, 2013 Mark Adler
 *
 * This software is provided 'as-is', without any express or implied
 * warranty. In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 * 3. This notice may not be removed or altered from any source distribution.
 */
