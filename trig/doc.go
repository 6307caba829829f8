// Package trig implements the fixed-point sine primitives this module
// builds on: a 256-entry lookup table with linear interpolation over the
// first quadrant (Sin), the modulated, quadrant-folded and rounded full
// sine (ModSine), and a small table-based integer square root (Isqrt) used
// by the oscillator's postprocessor for interval sizing.
package trig
