package fixed

// This file implements two families of conversion between the Q-format
// containers: width changes at constant signedness (widening fills with
// zero, narrowing truncates toward -Inf for signed and toward 0 for
// unsigned via arithmetic/logical shifts respectively) and signedness
// changes at constant total container width (a single-bit shift moving
// one bit between the sign and fractional roles). Every conversion panics
// with a *DomainError if its input violates its own container invariant,
// or if a negative value is asked to become unsigned.

// SQ21FromSQ15 widens a Q0.15 value to Q0.21 (shift left by 6, zero-filled).
func SQ21FromSQ15(x SQ15) SQ21 {
	return SQ21(int32(x) << (fracSQ21 - fracSQ15))
}

// SQ15FromSQ21 narrows a Q0.21 value to Q0.15 by arithmetic right shift,
// truncating toward -Inf.
func SQ15FromSQ21(x SQ21) SQ15 {
	if !x.Valid() {
		fail("SQ15FromSQ21", "SQ21 container invariant violated")
	}
	return SQ15(int32(x) >> (fracSQ21 - fracSQ15))
}

// UQ22FromUQ16 widens a Q0.16 value to Q0.22 (shift left by 6, zero-filled).
func UQ22FromUQ16(x UQ16) UQ22 {
	return UQ22(uint32(x) << (fracUQ22 - fracUQ16))
}

// UQ16FromUQ22 narrows a Q0.22 value to Q0.16 by logical right shift,
// truncating toward 0.
func UQ16FromUQ22(x UQ22) UQ16 {
	if !x.Valid() {
		fail("UQ16FromUQ22", "UQ22 container invariant violated")
	}
	return UQ16(uint32(x) >> (fracUQ22 - fracUQ16))
}

// UQ121FromUQ16 widens a Q0.16 value to Q1.21 (shift left by 5, zero-filled).
func UQ121FromUQ16(x UQ16) UQ121 {
	return UQ121(uint32(x) << (fracUQ121 - fracUQ16))
}

// UQ16FromUQ121 narrows a Q1.21 value to Q0.16 by logical right shift,
// truncating toward 0.
func UQ16FromUQ121(x UQ121) UQ16 {
	if !x.Valid() {
		fail("UQ16FromUQ121", "UQ121 container invariant violated")
	}
	return UQ16(uint32(x) >> (fracUQ121 - fracUQ16))
}

// UQ16FromSQ15 converts a non-negative SQ0.15 value to UQ0.16, preserving
// total container width: shift left by 1, dropping the (zero) sign bit and
// growing the fraction by one bit. Panics if x is negative.
func UQ16FromSQ15(x SQ15) UQ16 {
	if x < 0 {
		fail("UQ16FromSQ15", "negative SQ15 value cannot become unsigned")
	}
	return UQ16(uint16(x) << 1)
}

// SQ15FromUQ16 converts a UQ0.16 value to SQ0.15, preserving total
// container width: logical shift right by 1, rejecting the least
// significant numeric bit and introducing a zero sign bit (the result is
// always non-negative).
func SQ15FromUQ16(x UQ16) SQ15 {
	return SQ15(x >> 1)
}

// UQ22FromSQ21 converts a non-negative SQ0.21 value to UQ0.22, preserving
// total container width. Panics if x is negative.
func UQ22FromSQ21(x SQ21) UQ22 {
	if !x.Valid() {
		fail("UQ22FromSQ21", "SQ21 container invariant violated")
	}
	if x < 0 {
		fail("UQ22FromSQ21", "negative SQ21 value cannot become unsigned")
	}
	return UQ22(uint32(x) << 1)
}

// SQ21FromUQ22 converts a UQ0.22 value to SQ0.21, preserving total
// container width: logical shift right by 1, introducing a zero sign bit.
func SQ21FromUQ22(x UQ22) SQ21 {
	if !x.Valid() {
		fail("SQ21FromUQ22", "UQ22 container invariant violated")
	}
	return SQ21(x >> 1)
}
