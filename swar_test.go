package zb8

import (
	"math/rand"
	"testing"
)

// referenceMarkZeros is the subtract-based variant, which is not mixed with
// the mask-add-or form used by the encoder; used here only to cross-check,
// never in production code. It flags every zero byte and, through the
// borrow, also any 0x01 byte sitting above a zero byte.
func referenceMarkZeros(word uint64) uint64 {
	return ((word - 0x0101010101010101) &^ word) & 0x8080808080808080
}

func TestMarkZerosAgreesWithReferenceVariant(t *testing.T) {
	words := []uint64{
		0,
		0xFFFFFFFFFFFFFFFF,
		0x0000000000000001,
		0x8000000000000000,
		0x0102030405060708,
		0x0000000100000000,
		0x7F7F7F7F7F7F7F7F,
		0x8080808080808080,
	}
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		words = append(words, rnd.Uint64())
	}

	for _, w := range words {
		got := markZeros(w)
		want := referenceMarkZeros(w)
		if got&^want != 0 {
			t.Errorf("markZeros(%016x) = %016x flags bytes the reference %016x does not", w, got, want)
		}
		if got&-got != want&-want {
			t.Errorf("markZeros(%016x) = %016x, reference = %016x: lowest zero byte differs", w, got, want)
		}
		for j := 0; j < 8; j++ {
			if (want&^got)>>(8*j)&0x80 != 0 && byte(w>>(8*j)) != 0x01 {
				t.Errorf("markZeros(%016x) = %016x misses byte %d flagged by reference %016x", w, got, j, want)
			}
		}
	}
}

func TestMarkZerosPerByte(t *testing.T) {
	for i := 0; i < 2000; i++ {
		var bs [8]byte
		for j := range bs {
			if rand.Intn(3) == 0 {
				bs[j] = 0
			} else {
				bs[j] = byte(1 + rand.Intn(255))
			}
		}
		word := uint64(0)
		for j := 7; j >= 0; j-- {
			word = word<<8 | uint64(bs[j])
		}
		mask := markZeros(word)
		for j := 0; j < 8; j++ {
			byteMask := byte(mask >> (8 * j))
			wantSet := bs[j] == 0
			gotSet := byteMask&0x80 != 0
			if gotSet != wantSet {
				t.Fatalf("byte %d = %#x, markZeros MSB set = %v, want %v", j, bs[j], gotSet, wantSet)
			}
			if byteMask&0x7F != 0 {
				t.Fatalf("markZeros byte %d has non-MSB bits set: %#x", j, byteMask)
			}
		}
	}
}

func TestExtractMSBs(t *testing.T) {
	for i := 0; i < 256; i++ {
		var mask uint64
		for j := 0; j < 8; j++ {
			if (i>>j)&1 == 1 {
				mask |= uint64(0x80) << (8 * j)
			}
		}
		got := extractMSBs(mask)
		if int(got) != i {
			t.Errorf("extractMSBs(%016x) = %08b, want %08b", mask, got, i)
		}
	}
}
