//go:build (amd64 || arm64 || ppc64le || riscv64) && !nounsafe && !purego && !appengine

package le

import "unsafe"

// Load16 loads a little-endian uint16 from b at index i.
func Load16[I Indexer](b []byte, i I) uint16 {
	return *(*uint16)(unsafe.Pointer(uintptr(unsafe.Pointer(&b[0])) + uintptr(i)*unsafe.Sizeof(b[0])))
}

// Load64 loads a little-endian uint64 from b at index i.
// The caller must guarantee that b[i:i+8] is in range.
func Load64[I Indexer](b []byte, i I) uint64 {
	return *(*uint64)(unsafe.Pointer(uintptr(unsafe.Pointer(&b[0])) + uintptr(i)*unsafe.Sizeof(b[0])))
}

// Store16 stores v as a little-endian uint16 at the start of b.
func Store16(b []byte, v uint16) {
	*(*uint16)(unsafe.Pointer(&b[0])) = v
}

// Store64 stores v as a little-endian uint64 at the start of b.
func Store64(b []byte, v uint64) {
	*(*uint64)(unsafe.Pointer(&b[0])) = v
}
