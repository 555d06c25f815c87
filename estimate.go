package zb8

// ZeroDensity returns the fraction of b's bytes that are zero, in
// [0, 1]. Values near 1 are where ZB8 does its best work; values near 0
// mean Compress is likely to fall back to the verbatim frame.
//
// This mirrors the role klauspost/compress's own Estimate plays for its
// entropy-coded formats, but the heuristic itself is specific to ZB8's
// cost model (runs of zero bytes, not general byte-distribution entropy)
// since ZB8 does no entropy coding of nonzero content.
func ZeroDensity(b []byte) float64 {
	if len(b) == 0 {
		return 0
	}
	var zeros int
	for _, c := range b {
		if c == 0 {
			zeros++
		}
	}
	return float64(zeros) / float64(len(b))
}

// EstimateCompressedSize projects the compressed frame size for b without
// running the encoder, by counting zero/nonzero runs and pricing each the
// way writeZeros/writeUncompressed would. It is advisory: Compress never
// consults it, and the real encoder's fallback selector is authoritative.
func EstimateCompressedSize(b []byte) int {
	if len(b) == 0 {
		return headerSize
	}

	size := headerSize
	runLen := 0
	isZero := b[0] == 0

	flush := func(n int, zero bool) {
		if n == 0 {
			return
		}
		size += segmentCost(n, zero)
	}

	for _, c := range b {
		z := c == 0
		if z == isZero {
			runLen++
			continue
		}
		flush(runLen, isZero)
		isZero = z
		runLen = 1
	}
	flush(runLen, isZero)

	if size-headerSize > len(b) {
		return headerSize + len(b)
	}
	return size
}

// segmentCost is the number of output bytes writeZeros/writeUncompressed
// would spend on a single run of n same-kind bytes, including literal
// payload bytes for uncompressed runs.
func segmentCost(n int, zero bool) int {
	payload := 0
	if !zero {
		payload = n
	}

	cost := 0
	for n > 65535 {
		cost += 3
		n -= 65535
	}
	if n > 2*127 {
		cost += 3
		n = 0
	}
	for n > 127 {
		cost++
		n -= 127
	}
	if n > 0 {
		cost++
	}
	return cost + payload
}
