package zb8

import "github.com/openalgz/zb8/internal/le"

// Decompress decodes src into dst, growing dst if it is too small, and
// returns the slice actually used. It is valid to pass a nil dst.
//
// Decompress trusts its input: a malformed frame may read past the end of
// src or produce a result shorter than the header's declared length
// without Decompress noticing. Callers that cannot trust their input
// should call Validate first, or use DecompressChecked.
func Decompress(dst, src []byte) ([]byte, error) {
	hdr, err := ReadHeader(src)
	if err != nil {
		return nil, err
	}
	n := int(hdr.Length)

	if cap(dst) < n {
		dst = make([]byte, n)
	} else {
		dst = dst[:n]
		for i := range dst {
			dst[i] = 0
		}
	}

	if hdr.Verbatim {
		copy(dst, src[headerSize:headerSize+n])
		return dst, nil
	}

	body := src[headerSize:]
	pos, out := 0, 0
	for pos < len(body) {
		c := body[pos]
		switch {
		case c&0x80 != 0:
			lit := int(c & 0x7F)
			pos++
			if lit == 0 {
				lit = int(le.Load16(body, pos))
				pos += 2
			}
			copy(dst[out:], body[pos:pos+lit])
			pos += lit
			out += lit
		case c == 0:
			pos++
			out += int(le.Load16(body, pos))
			pos += 2
		default:
			out += int(c)
			pos++
		}
	}
	return dst, nil
}

// DecompressChecked is Decompress with Validate run first: it returns
// ErrInvalidFrame (wrapping every problem multierror found) instead of
// decoding a malformed frame, for callers in spec §7's "trusted-input
// configuration is not assumed" case.
func DecompressChecked(dst, src []byte) ([]byte, error) {
	if err := Validate(src); err != nil {
		return nil, err
	}
	return Decompress(dst, src)
}
