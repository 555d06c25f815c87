//go:build !(amd64 || arm64 || ppc64le || riscv64) || nounsafe || purego || appengine

package le

import "encoding/binary"

// Load16 loads a little-endian uint16 from b at index i.
func Load16[I Indexer](b []byte, i I) uint16 {
	return binary.LittleEndian.Uint16(b[i:])
}

// Load64 loads a little-endian uint64 from b at index i.
func Load64[I Indexer](b []byte, i I) uint64 {
	return binary.LittleEndian.Uint64(b[i:])
}

// Store16 stores v as a little-endian uint16 at the start of b.
func Store16(b []byte, v uint16) {
	binary.LittleEndian.PutUint16(b, v)
}

// Store64 stores v as a little-endian uint64 at the start of b.
func Store64(b []byte, v uint64) {
	binary.LittleEndian.PutUint64(b, v)
}
