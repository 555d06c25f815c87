package zb8

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/openalgz/zb8/internal/le"
)

// ErrInvalidFrame is the single discriminated failure kind spec §7
// describes for decoder-side trust-boundary errors. Every other decode
// error wraps this one so callers can test with errors.Is(err,
// ErrInvalidFrame) regardless of which specific problem was found.
var ErrInvalidFrame = errors.New("zb8: invalid frame")

// ErrTruncated means the frame ended before a control byte's declared
// payload or length field could be read in full.
var ErrTruncated = fmt.Errorf("%w: truncated", ErrInvalidFrame)

// ErrOverrun means a control byte would advance the output cursor past
// the length N recorded in the header.
var ErrOverrun = fmt.Errorf("%w: segment overruns declared length", ErrInvalidFrame)

// ErrShortOutput means the body was exhausted before the output cursor
// reached N.
var ErrShortOutput = fmt.Errorf("%w: body shorter than declared length", ErrInvalidFrame)

// ErrInputTooLarge is returned by Compress when len(src) would not fit in
// the header's 63-bit length field (spec §7: encoders MUST reject
// N > 2^63-1).
var ErrInputTooLarge = errors.New("zb8: input exceeds maximum frame length")

// Validate walks a compressed frame the same way Decompress does, but
// instead of stopping at the first problem it collects every structural
// issue it finds and returns them together, the way
// dargueta/disko's DriverError.Wrap accumulates multiple causes via
// multierror.Append. A nil return means frame decodes cleanly.
func Validate(frame []byte) error {
	hdr, err := ReadHeader(frame)
	if err != nil {
		return err
	}

	var errs *multierror.Error
	body := frame[headerSize:]

	if hdr.Verbatim {
		if uint64(len(body)) != hdr.Length {
			errs = multierror.Append(errs, fmt.Errorf("%w: verbatim body has %d bytes, header declares %d",
				ErrInvalidFrame, len(body), hdr.Length))
		}
		return errs.ErrorOrNil()
	}

	var written uint64
	pos := 0
	for pos < len(body) {
		c := body[pos]
		switch {
		case c&0x80 != 0:
			n := uint64(c & 0x7F)
			pos++
			if n == 0 {
				if pos+2 > len(body) {
					errs = multierror.Append(errs, fmt.Errorf("%w: literal-run length field truncated at byte %d", ErrTruncated, pos))
					pos = len(body)
					continue
				}
				n = uint64(le.Load16(body, pos))
				pos += 2
			}
			if pos+int(n) > len(body) {
				errs = multierror.Append(errs, fmt.Errorf("%w: literal run of %d bytes truncated at byte %d", ErrTruncated, n, pos))
				pos = len(body)
				continue
			}
			pos += int(n)
			written += n
		case c == 0:
			pos++
			if pos+2 > len(body) {
				errs = multierror.Append(errs, fmt.Errorf("%w: zero-run length field truncated at byte %d", ErrTruncated, pos))
				pos = len(body)
				continue
			}
			n := uint64(le.Load16(body, pos))
			pos += 2
			written += n
		default:
			pos++
			written += uint64(c)
		}
		if written > hdr.Length {
			errs = multierror.Append(errs, fmt.Errorf("%w: cursor at %d exceeds declared length %d", ErrOverrun, written, hdr.Length))
		}
	}
	if written != hdr.Length {
		errs = multierror.Append(errs, fmt.Errorf("%w: decoded %d bytes, header declares %d", ErrShortOutput, written, hdr.Length))
	}
	return errs.ErrorOrNil()
}
