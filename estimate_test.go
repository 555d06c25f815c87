package zb8

import (
	"math/rand"
	"testing"
)

func TestZeroDensity(t *testing.T) {
	cases := []struct {
		name string
		b    []byte
		want float64
	}{
		{"empty", nil, 0},
		{"all zero", make([]byte, 10), 1},
		{"all nonzero", []byte{1, 2, 3, 4}, 0},
		{"half", []byte{0, 1, 0, 1}, 0.5},
	}
	for _, c := range cases {
		if got := ZeroDensity(c.b); got != c.want {
			t.Errorf("%s: ZeroDensity = %v, want %v", c.name, got, c.want)
		}
	}
}

// TestEstimateCompressedSizeTracksActual checks that the heuristic stays
// within the same expansion bound Compress itself guarantees, and that it
// agrees with the real encoder's fallback decision.
func TestEstimateCompressedSizeTracksActual(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))
	gens := []func(n int) []byte{
		func(n int) []byte { return make([]byte, n) },
		func(n int) []byte {
			b := make([]byte, n)
			rnd.Read(b)
			for i := range b {
				if b[i] == 0 {
					b[i] = 1
				}
			}
			return b
		},
		func(n int) []byte {
			b := make([]byte, n)
			for i := range b {
				if rnd.Intn(10) != 0 {
					b[i] = byte(1 + rnd.Intn(255))
				}
			}
			return b
		},
	}

	for _, gen := range gens {
		for _, n := range []int{0, 1, 5, 64, 200, 1000, 70000} {
			b := gen(n)
			est := EstimateCompressedSize(b)
			if est > n+headerSize {
				t.Errorf("n=%d: estimate %d exceeds expansion bound %d", n, est, n+headerSize)
			}
			actual, err := Compress(nil, b)
			if err != nil {
				t.Fatal(err)
			}
			// The estimate should be exact whenever it didn't need to
			// fall back to the len(b)+headerSize bound itself.
			if est != len(actual) && est != n+headerSize {
				t.Errorf("n=%d: estimate %d disagrees with actual %d", n, est, len(actual))
			}
		}
	}
}
