package trig

import "github.com/cwbudde/algo-qsine/fixed"

// Isqrt returns floor(sqrt(x)) for x in [0, 0x4000). It is implemented as a
// table lookup against squareLUT (k*k for k=0..127) rather than a general
// integer sqrt algorithm. The only caller (the oscillator's postprocessor)
// clamps its argument into that range first: sampl, the interval length it
// sizes, sums two plateau counters each < 0x4000 and can exceed 0x3FFF.
func Isqrt(x int) int {
	if x < 0 || x >= 0x4000 {
		panic(&fixed.DomainError{Op: "trig.Isqrt", Msg: "argument out of range [0, 0x4000)"})
	}

	for key, sq := range squareLUT {
		if sq > x {
			return key - 1
		}
	}

	return len(squareLUT) - 1
}
