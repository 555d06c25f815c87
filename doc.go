// Package zb8 implements ZB8, a lossless byte-stream codec tuned for
// payloads dominated by runs of zero bytes.
//
// Every frame starts with an 8-byte little-endian header: the top bit is
// a verbatim flag, the low 63 bits are the uncompressed length. When the
// compressed body would be larger than the input, Compress falls back to
// storing the input verbatim, so a frame is never more than 8 bytes
// larger than its input and can compress an all-zero input by nearly
// 22000:1.
//
// Compress and Decompress are the two operations; everything else in
// this package (stream adapters, the Prometheus-backed instrumented
// codec, the compressibility estimate, frame validation) is built on top
// of them.
package zb8
