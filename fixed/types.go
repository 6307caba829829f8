package fixed

// Effective and container widths, in bits, of every Q-format this module
// uses. "Effective" is the number of bits actually carrying information
// (including the sign bit, if any); "container" is the width of the Go
// integer type used to hold the value. Where container > effective the
// extra high bits must mirror the invariant described in the package doc.
const (
	widthSQ15 = 16 // SQ0.15: container == effective, no invariant to check
	fracSQ15  = 15

	widthUQ16 = 16 // UQ0.16: container == effective, no invariant to check
	fracUQ16  = 16

	effSQ21  = 22 // 1 sign bit + 21 fractional bits
	fracSQ21 = 21

	effUQ22  = 22
	fracUQ22 = 22

	effUQ121  = 22 // 1 integer bit + 21 fractional bits
	fracUQ121 = 21
)

// SQ15 is a signed Q0.15 value: range [-1, +1-2^-15], resolution 2^-15.
// The container is the full 16-bit effective width, so every int16 bit
// pattern is a valid SQ15 - there is no invariant to violate.
type SQ15 int16

// UQ16 is an unsigned Q0.16 value: range [0, 1-2^-16], resolution 2^-16.
// The container is the full 16-bit effective width, so every uint16 bit
// pattern is a valid UQ16.
type UQ16 uint16

// SQ21 is a signed Q0.21 value stored in a 32-bit container: range
// [-1, +1-2^-21], resolution 2^-21. Bits 31..22 of the container must equal
// the sign extension of bit 21 (the SQ21 sign bit).
type SQ21 int32

// UQ22 is an unsigned Q0.22 value stored in a 32-bit container: range
// [0, 1-2^-22], resolution 2^-22. Bits 31..22 of the container must be zero.
type UQ22 uint32

// UQ121 is an unsigned Q1.21 value stored in a 32-bit container: range
// [0, 2-2^-21], resolution 2^-21. Bits 31..22 of the container must be zero.
// It is declared for completeness with the Q-format table this package
// implements; no package outside fixed uses it.
type UQ121 uint32

// Valid reports whether x satisfies the SQ21 container invariant: its
// unused high bits (31..22) mirror the sign of bit 21.
func (x SQ21) Valid() bool {
	const shift = 32 - effSQ21
	return SQ21(int32(x)<<shift>>shift) == x
}

// Valid reports whether x satisfies the UQ22 container invariant: its
// unused high bits (31..22) are zero.
func (x UQ22) Valid() bool {
	const mask = uint32(1)<<effUQ22 - 1
	return uint32(x)&^mask == 0
}

// Valid reports whether x satisfies the UQ121 container invariant: its
// unused high bits (31..22) are zero.
func (x UQ121) Valid() bool {
	const mask = uint32(1)<<effUQ121 - 1
	return uint32(x)&^mask == 0
}
