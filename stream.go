package zb8

import (
	"bytes"
	"io"
)

// CompressStream reads all of input, compresses it, and writes the
// resulting frame to output. The returned int64 is the number of
// compressed bytes written; on error its value is undefined.
//
// ZB8 has no chunked encode mode (spec §1, Non-goals), so this is a
// whole-buffer wrapper, not a true streaming codec — the same shape as
// dargueta/disko's CompressImage wrapping a whole-buffer RLE codec behind
// io.Reader/io.Writer.
func CompressStream(input io.Reader, output io.Writer) (int64, error) {
	src, err := io.ReadAll(input)
	if err != nil {
		return 0, err
	}
	frame, err := Compress(nil, src)
	if err != nil {
		return 0, err
	}
	n, err := output.Write(frame)
	return int64(n), err
}

// DecompressStream reads an entire frame from input and writes the
// decoded bytes to output. The returned int64 is the number of
// decompressed bytes written; on error its value is undefined.
func DecompressStream(input io.Reader, output io.Writer) (int64, error) {
	src, err := io.ReadAll(input)
	if err != nil {
		return 0, err
	}
	out, err := Decompress(nil, src)
	if err != nil {
		return 0, err
	}
	n, err := output.Write(out)
	return int64(n), err
}

// CompressBytes is a convenience wrapper that returns the compressed form
// of src as a freshly allocated slice, for callers that would otherwise
// write bytes.NewReader(src) through CompressStream just to get a []byte.
func CompressBytes(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := CompressStream(bytes.NewReader(src), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
