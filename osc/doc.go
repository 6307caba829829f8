// Package osc implements a stateful sinusoid oscillator: a fixed-point
// phase accumulator driving trig.ModSine, with a postprocessor that
// replaces low-amplitude code-collapse intervals with a dithered pulse
// pattern whose duty cycle tracks the underlying sine shape.
//
// An Oscillator is a flat value type with no internal goroutines or
// allocations after construction; a caller must serialize its own access
// the same way the reference design assumes a single cooperative thread of
// control per descriptor.
package osc
