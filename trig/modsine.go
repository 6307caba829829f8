package trig

import "github.com/cwbudde/algo-qsine/fixed"

// UQ0.16 phase codes for the quadrant boundaries: a full circle is 0x10000.
const (
	piHalf      fixed.UQ16 = 0x4000 // pi/2
	piFull      fixed.UQ16 = 0x8000 // pi
	piThreeHalf fixed.UQ16 = 0xC000 // 3*pi/2

	maxPositive fixed.SQ15 = 0x7FFF
	maxNegative fixed.SQ15 = -0x8000
)

// ModSine evaluates u = sin(phi) * (1 - att) as an SQ0.15 code, where phi is
// a UQ0.16 phase ([0, 2*pi)) and att is a UQ0.16 attenuation ([0, 1-2^-16]).
// It applies, in order: quadrant-boundary saturation, quadrant folding,
// table lookup via Sin, attenuation, and round-to-SQ0.15 with saturation at
// the positive maximum - the round-half-up rule that recovers mean-square
// accuracy lost to plain truncation at low amplitude.
func ModSine(phi, att fixed.UQ16) fixed.SQ15 {
	switch phi {
	case piHalf:
		if att == 0 {
			return maxPositive
		}
		return +fixed.SQ15FromUQ16(-att)
	case piThreeHalf:
		if att == 0 {
			return maxNegative
		}
		return -fixed.SQ15FromUQ16(-att)
	}

	phi1 := phi
	neg := false

	if phi >= piFull {
		phi1 -= piFull
		neg = true
	}
	if phi1 > piHalf {
		phi1 = piFull - phi1
	}

	usin := Sin(phi1)

	if att > 0 {
		usin = fixed.Mul16(usin, -att)
	}

	lsb := usin & 1
	ssin := fixed.SQ15FromUQ16(usin)
	if lsb == 1 && ssin < maxPositive {
		ssin++
	}

	if neg {
		return -ssin
	}
	return ssin
}
