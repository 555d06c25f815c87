package zb8

import "github.com/openalgz/zb8/internal/le"

// MaxCompressedLen returns the scratch capacity spec §4.7 requires: 8
// bytes of header plus twice the input length, enough to guarantee the
// emission writer never overflows the intermediate buffer before the
// fallback selector has a chance to run.
func MaxCompressedLen(n int) int {
	return headerSize + 2*n
}

// Compress encodes src into dst, growing dst if it is too small, and
// returns the slice actually used — a sub-slice of dst when dst was large
// enough, or a freshly allocated slice otherwise. It is valid to pass a
// nil dst.
//
// The returned frame is at most 8+len(src) bytes (spec §8, Expansion
// bound) and round-trips through Decompress exactly.
func Compress(dst, src []byte) ([]byte, error) {
	n := len(src)
	if uint64(n) > uint64(maxLength) {
		return nil, ErrInputTooLarge
	}

	if need := MaxCompressedLen(n); len(dst) < need {
		dst = make([]byte, need)
	} else {
		dst = dst[:need]
	}

	putHeader(dst, uint64(n), false)
	d := headerSize

	var zerosCount, uncompressedCount int
	var uPtr int

	flushZeros := func() {
		d = writeZeros(dst, d, &zerosCount)
	}
	flushUncompressed := func() {
		d = writeUncompressed(dst, d, src, &uPtr, &uncompressedCount)
	}

	it := 0
	// Strict word loop: it+8 <= n, never over-reading the tail, resolving
	// the open question in spec §9 explicitly.
	for it+8 <= n {
		word := le.Load64(src, it)
		switch {
		case word == 0:
			if uncompressedCount > 0 {
				flushUncompressed()
			}
			zerosCount += 8
			it += 8

		default:
			mask := markZeros(word)
			if mask == 0 {
				// Case C: no zero byte in this word.
				if zerosCount > 0 {
					flushZeros()
				}
				if uncompressedCount == 0 {
					uPtr = it
				}
				uncompressedCount += 8
				it += 8
				continue
			}

			// Case B: a mix of zero and nonzero bytes.
			layout := extractMSBs(mask)
			entry := runTable[layout]
			k := int(entry.nZeros)
			r := int(entry.runLength)

			if (zerosCount > 0 || k > 0) && uncompressedCount > 0 {
				flushUncompressed()
			}

			zerosCount += k
			if zerosCount > 0 {
				flushZeros()
				it += k
			}

			if uncompressedCount == 0 {
				uPtr = it
			}
			it += r
			uncompressedCount += r
		}
	}

	// Tail: process the final 0-7 bytes one at a time, per spec §4.4 and
	// the resolved Open Question in §9.
	for it < n {
		b := src[it]
		if b == 0 {
			if uncompressedCount > 0 {
				flushUncompressed()
			}
			zerosCount++
		} else {
			if zerosCount > 0 {
				flushZeros()
			}
			if uncompressedCount == 0 {
				uPtr = it
			}
			uncompressedCount++
		}
		it++
	}

	flushUncompressed()
	flushZeros()

	compressedSize := d
	if n == 0 || compressedSize-headerSize > n {
		putHeader(dst, uint64(n), true)
		copy(dst[headerSize:], src)
		return dst[:headerSize+n], nil
	}
	return dst[:compressedSize], nil
}

// writeZeros drains *count zero bytes from the encoder's pending state,
// emitting them as one or more control-byte segments starting at dst[d],
// and returns the new write cursor. See spec §4.5.
func writeZeros(dst []byte, d int, count *int) int {
	n := *count
	for n > 65535 {
		dst[d] = 0x00
		d++
		le.Store16(dst[d:], 65535)
		d += 2
		n -= 65535
	}
	if n > 2*127 {
		dst[d] = 0x00
		d++
		le.Store16(dst[d:], uint16(n))
		d += 2
		n = 0
	}
	for n > 127 {
		dst[d] = 0x7F
		d++
		n -= 127
	}
	if n > 0 {
		dst[d] = byte(n)
		d++
		n = 0
	}
	*count = n
	return d
}

// writeUncompressed drains *count literal bytes starting at src[*uPtr],
// emitting them as one or more control-byte segments starting at dst[d],
// and returns the new write cursor. See spec §4.5.
func writeUncompressed(dst []byte, d int, src []byte, uPtr *int, count *int) int {
	n := *count
	p := *uPtr
	for n > 65535 {
		dst[d] = 0x80
		d++
		le.Store16(dst[d:], 65535)
		d += 2
		copy(dst[d:], src[p:p+65535])
		d += 65535
		p += 65535
		n -= 65535
	}
	if n > 2*127 {
		dst[d] = 0x80
		d++
		le.Store16(dst[d:], uint16(n))
		d += 2
		copy(dst[d:], src[p:p+n])
		d += n
		p += n
		n = 0
	}
	for n > 127 {
		dst[d] = 0xFF
		d++
		copy(dst[d:], src[p:p+127])
		d += 127
		p += 127
		n -= 127
	}
	if n > 0 {
		dst[d] = 0x80 | byte(n)
		d++
		copy(dst[d:], src[p:p+n])
		d += n
		p += n
		n = 0
	}
	*count = n
	*uPtr = p
	return d
}
