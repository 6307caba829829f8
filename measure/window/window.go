// Package window generates analysis windows for measure/thd and applies
// them to a capture buffer, restricted to the single Hann window this
// module's spectral-purity analysis needs.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Hann returns periodic Hann coefficients of the given length, suitable
// for windowing a capture buffer before an FFT. It returns nil for
// length <= 0.
func Hann(length int) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(length))
	}
	return out
}

// Apply multiplies buf in place by a periodic Hann window of len(buf).
func Apply(buf []float64) {
	if len(buf) == 0 {
		return
	}
	vecmath.MulBlockInPlace(buf, Hann(len(buf)))
}
