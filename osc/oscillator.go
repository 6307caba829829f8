package osc

import (
	"github.com/cwbudde/algo-qsine/fixed"
	"github.com/cwbudde/algo-qsine/trig"
)

// MaxFreq is the largest admissible phase increment per sample: one
// quarter-cycle (pi/2) per sample.
const MaxFreq fixed.UQ16 = 0x4000

// Oscillator is a fixed-point phase accumulator with an optional
// duty-cycle-dithering postprocessor. The zero value is a valid, idle
// oscillator (freq 0, phi 0, att 0, postprocessing disabled); New is a
// convenience constructor for the functional-options style used elsewhere
// in this module.
type Oscillator struct {
	freq fixed.UQ16
	phi  fixed.UQ16
	att  fixed.UQ16

	ppEnabled bool // postprocessing requested via SetPP
	pp        bool // postprocessing interval currently active

	phi0, phi1 fixed.UQ16
	val0, val1 fixed.SQ15

	sampl int // interval length in samples
	steps int // floor(sqrt(sampl))
	msize int // main step size
	asize int // additional-step count
	sidx  int // sample index within the interval, [0, sampl)
	ridx  int // boundary index where the asize correction ends
	aidx  int // boundary index where the additional step begins
}

// Option configures an Oscillator at construction time.
type Option func(*Oscillator) error

// New builds an Oscillator from a sequence of options, applied in order.
// Every option is equivalent to calling the matching setter after
// construction; New exists so that a fully-configured oscillator can be
// produced in one expression.
func New(opts ...Option) (*Oscillator, error) {
	o := &Oscillator{}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithFreq sets the initial phase increment per sample.
func WithFreq(freq fixed.UQ16) Option {
	return func(o *Oscillator) error {
		o.SetFreq(freq)
		return nil
	}
}

// WithPhi sets the initial phase.
func WithPhi(phi fixed.UQ16) Option {
	return func(o *Oscillator) error {
		o.SetPhi(phi)
		return nil
	}
}

// WithAtt sets the initial attenuation.
func WithAtt(att fixed.UQ16) Option {
	return func(o *Oscillator) error {
		o.SetAtt(att)
		return nil
	}
}

// WithPostprocessing enables or disables duty-cycle dithering.
func WithPostprocessing(enable bool) Option {
	return func(o *Oscillator) error {
		o.SetPP(enable)
		return nil
	}
}

// Freq returns the current phase increment per sample.
func (o *Oscillator) Freq() fixed.UQ16 { return o.freq }

// Phi returns the current phase.
func (o *Oscillator) Phi() fixed.UQ16 { return o.phi }

// Att returns the current attenuation.
func (o *Oscillator) Att() fixed.UQ16 { return o.att }

// PostprocessingEnabled reports whether duty-cycle dithering is requested,
// independent of whether an interval is currently active.
func (o *Oscillator) PostprocessingEnabled() bool { return o.ppEnabled }

// SetFreq sets the phase increment applied by every Step. freq must not
// exceed MaxFreq (one quarter-cycle per sample); violating this is a caller
// bug and panics with a *ConfigError, matching the DomainError convention
// used throughout this module.
func (o *Oscillator) SetFreq(freq fixed.UQ16) {
	if freq > MaxFreq {
		fail("SetFreq", "freq exceeds the limit of one quarter-cycle per sample")
	}
	o.freq = freq
	o.restart()
}

// SetPhi sets the current phase directly.
func (o *Oscillator) SetPhi(phi fixed.UQ16) {
	o.phi = phi
	o.restart()
}

// SetAtt sets the attenuation applied to every output sample.
func (o *Oscillator) SetAtt(att fixed.UQ16) {
	o.att = att
	o.restart()
}

// SetPP enables or disables duty-cycle dithering.
func (o *Oscillator) SetPP(enable bool) {
	o.ppEnabled = enable
	o.restart()
}

// restart re-seeds the postprocessor's reference point at the current
// phase and, if postprocessing is requested and the oscillator is
// running, attempts to find the next active interval. Every setter calls
// this: any configuration change restarts the postprocessor.
func (o *Oscillator) restart() {
	o.pp = false
	o.phi0 = o.phi
	o.val0 = trig.ModSine(o.phi, o.att)
	if o.freq > 0 && o.ppEnabled {
		o.lookahead()
	}
}
