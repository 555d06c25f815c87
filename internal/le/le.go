// Package le provides little-endian load and store helpers shared by the
// frame header, the control-byte length fields, and the word-at-a-time
// encoder loop.
//
// The frame format (spec §6) is little-endian throughout and the encoder
// reads input eight bytes at a time, so every numeric access in this module
// goes through here instead of ad hoc unsafe.Pointer casts or
// encoding/binary calls scattered across encode.go and decode.go.
package le

// Indexer is the set of integer types accepted as a byte offset.
type Indexer interface {
	int | int32 | int64 | uint | uint32 | uint64
}
