// Package thd measures total harmonic distortion of a captured oscillator
// signal, windowing and transforming it with algo-fft. It is simplified
// relative to a general-purpose analyzer because a synthetic capture
// already carries an exactly known fundamental bin rather than one that
// has to be searched for.
package thd

import (
	"errors"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-qsine/measure/window"
)

var errFundamentalBinOutOfRange = errors.New("thd: fundamental bin outside the analyzable spectrum")

// Config selects the FFT size and identifies which bin carries the
// oscillator's fundamental.
type Config struct {
	FFTSize        int
	FundamentalBin int
	MaxHarmonics   int // 0 means every harmonic bin available within FFTSize
}

// Result holds the measured harmonic-distortion metrics.
type Result struct {
	FundamentalLevel float64
	THD              float64
	THDdB            float64
	Harmonics        []float64 // magnitude ratio to the fundamental, one per harmonic order starting at 2
}

// Analyze windows signal with a Hann window, computes its spectrum, and
// derives THD relative to cfg.FundamentalBin.
func Analyze(signal []float64, cfg Config) (Result, error) {
	if cfg.FundamentalBin < 1 {
		return Result{}, errFundamentalBinOutOfRange
	}

	fftSize := cfg.FFTSize
	if fftSize <= 0 {
		fftSize = len(signal)
	}
	if fftSize < 2 || cfg.FundamentalBin*2 > fftSize {
		return Result{}, errFundamentalBinOutOfRange
	}

	buf := make([]float64, fftSize)
	copy(buf, signal)
	window.Apply(buf)

	in := make([]complex128, fftSize)
	for i, v := range buf {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Result{}, err
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, err
	}

	mag := func(bin int) float64 {
		c := out[bin]
		return math.Hypot(real(c), imag(c))
	}

	fundamental := mag(cfg.FundamentalBin)
	if fundamental <= 0 {
		return Result{FundamentalLevel: 0}, nil
	}

	nyquistBin := fftSize / 2
	var harmonics []float64
	sumSquares := 0.0
	for order := 2; ; order++ {
		if cfg.MaxHarmonics > 0 && order-1 > cfg.MaxHarmonics {
			break
		}
		bin := order * cfg.FundamentalBin
		if bin > nyquistBin {
			break
		}
		ratio := mag(bin) / fundamental
		harmonics = append(harmonics, ratio)
		sumSquares += ratio * ratio
	}

	thd := math.Sqrt(sumSquares)
	return Result{
		FundamentalLevel: fundamental,
		THD:              thd,
		THDdB:            ratioToDB(thd),
		Harmonics:        harmonics,
	}, nil
}

func ratioToDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v)
}
