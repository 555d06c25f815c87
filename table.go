package zb8

import "math/bits"

// runEntry is one row of the run classifier: how many zero bytes begin the
// word, and the length of the first uncompressed run that follows them.
type runEntry struct {
	nZeros    uint8
	runLength uint8
}

// runTable maps every possible 8-bit layout byte (bit i set iff byte i of
// the word was zero, per extractMSBs) to the (nZeros, runLength) pair the
// encoder's state machine needs. Built once at package init, the way
// original_source builds detail::run_table at compile time — see
// buildRunTable for the derivation.
var runTable = buildRunTable()

func buildRunTable() [256]runEntry {
	var t [256]runEntry
	for i := 0; i < 256; i++ {
		l := uint8(i)
		// TrailingZeros8(^l) counts trailing 1-bits of l: bits.TrailingZeros8
		// returns 8 when its argument is 0, so l == 0xFF yields nZeros == 8
		// with no special case needed.
		nZeros := uint8(bits.TrailingZeros8(^l))
		t[i] = runEntry{nZeros: nZeros, runLength: uncompressedRun(nZeros, ^l)}
	}
	return t
}

// uncompressedRun counts the run of consecutive 1-bits in complement
// starting at bit index start, stopping at the first 0-bit or bit 8.
// complement has a 1 bit wherever the corresponding source byte was
// nonzero (it is the bitwise complement of the layout byte, whose 1 bits
// mark zero bytes). This mirrors original_source's uncompressed_run,
// which walks ~layout starting from the count of leading zero bytes.
func uncompressedRun(start uint8, complement uint8) uint8 {
	if start >= 8 {
		return 0
	}
	var run uint8
	for i := start; i < 8; i++ {
		if (complement>>i)&1 == 0 {
			break
		}
		run++
	}
	return run
}
