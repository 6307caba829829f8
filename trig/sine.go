package trig

import "github.com/cwbudde/algo-qsine/fixed"

// Sin returns sin(phi) as a UQ0.16 magnitude for phi restricted to the
// first quadrant: phi's logical value must lie in [0, 1/4) i.e. phi in
// [0x0000, 0x3FFF], corresponding to the radian range [0, pi/2).
//
// The 14 significant bits of phi decompose as an 8-bit LUT index (key0)
// times 2^6 plus a 6-bit sub-step; the result linearly interpolates between
// sineLUT[key0] and sineLUT[key0+1] using a UQ0.16 coefficient derived from
// the sub-step. The UQ0.16 value 1.0 is represented modulo
// 1.0 as the container code 0, so "1 - coef" is plain unsigned subtraction
// that wraps correctly.
func Sin(phi fixed.UQ16) fixed.UQ16 {
	if phi > 0x3FFF {
		panic(&fixed.DomainError{Op: "trig.Sin", Msg: "phi outside first-quadrant domain [0, 0x3FFF]"})
	}

	const coefBits = 6 // log2(0x4000 / 256): sub-steps between adjacent LUT entries

	key0 := uint8(phi >> coefBits)
	coef := fixed.UQ16(phi&(1<<coefBits-1)) << (16 - coefBits)

	if coef == 0 {
		return sineLUT[key0]
	}

	var val1 fixed.UQ16
	if key0 == 255 {
		// sineLUT[256] would be 1.0, unrepresentable and stored as 0 mod 1;
		// its weighted contribution reduces to the coefficient itself.
		val1 = coef
	} else {
		val1 = fixed.Mul16(sineLUT[key0+1], coef)
	}

	val0 := fixed.Mul16(sineLUT[key0], -coef)

	return val0 + val1
}
