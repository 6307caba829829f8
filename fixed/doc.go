// Package fixed implements the Q-format fixed-point containers used by the
// rest of this module: SQ0.15, UQ0.16, SQ0.21, UQ1.21 and UQ0.22.
//
// Qm.n denotes a fixed-point format with m integer bits and n fractional
// bits, plus a sign bit if signed. A container of width W storing a logical
// Q-value of effective width w<=W keeps its unused high bits as the sign
// extension of the value (signed formats) or as zero (unsigned formats).
// Every conversion in this package preserves that invariant; a value that
// doesn't already satisfy it is a caller bug and triggers a panic carrying a
// *DomainError, mirroring the assert() contract of the reference
// implementation this module is modeled on.
package fixed
