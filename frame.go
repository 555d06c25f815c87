package zb8

import "github.com/openalgz/zb8/internal/le"

// headerSize is the fixed size, in bytes, of every ZB8 frame's header.
const headerSize = 8

// verbatimFlag is the MSB of the little-endian 64-bit header. When set,
// the body is the raw input instead of the control-byte grammar.
const verbatimFlag uint64 = 0x8000000000000000

// lengthMask isolates the 63-bit uncompressed length from the header.
const lengthMask uint64 = 0x7FFFFFFFFFFFFFFF

// maxLength is the largest uncompressed length a frame can describe.
const maxLength = lengthMask

// Header is the parsed form of a frame's 8-byte header.
type Header struct {
	// Length is the uncompressed size encoded in the frame, N in spec §3.
	Length uint64
	// Verbatim is true when the body is N raw bytes rather than the
	// control-byte grammar.
	Verbatim bool
}

// ReadHeader parses the 8-byte little-endian header at the start of a
// frame without decoding the body, letting a caller inspect N and the
// verbatim flag cheaply.
func ReadHeader(frame []byte) (Header, error) {
	if len(frame) < headerSize {
		return Header{}, ErrTruncated
	}
	h := le.Load64(frame, 0)
	return Header{
		Length:   h & lengthMask,
		Verbatim: h&verbatimFlag != 0,
	}, nil
}

// putHeader writes the little-endian header encoding length n with the
// verbatim flag set according to verbatim, to the first 8 bytes of dst.
func putHeader(dst []byte, n uint64, verbatim bool) {
	h := n & lengthMask
	if verbatim {
		h |= verbatimFlag
	}
	le.Store64(dst, h)
}
