// Package capture bridges an osc.Oscillator's SQ0.15 output stream to the
// float64 buffers measure/window and measure/thd operate on.
package capture

import "github.com/cwbudde/algo-qsine/osc"

// Samples runs o for n sample periods, returning each SQ0.15 output
// normalized to [-1, 1) as a float64.
func Samples(o *osc.Oscillator, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(o.Output()) / 32768
		o.Step()
	}
	return out
}
