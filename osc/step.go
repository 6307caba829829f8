package osc

import (
	"github.com/cwbudde/algo-qsine/fixed"
	"github.com/cwbudde/algo-qsine/trig"
)

// Output returns the current sample without advancing the phase. Outside
// an active postprocessing interval this is exactly trig.ModSine(phi,
// att); inside one, it is the duty-cycle pattern selected by sidx.
func (o *Oscillator) Output() fixed.SQ15 {
	if o.ppEnabled && o.pp {
		return o.pattern()
	}
	return trig.ModSine(o.phi, o.att)
}

// pattern implements the output-selection rule for an active interval.
// The interval is split into steps main segments of length msize, with a
// single additional segment of asize = sampl mod steps samples (the
// val0/val1 alternation between aidx and ridx) inserted after the first
// steps - steps/2 main segments, so the remainder sits in the middle of
// the interval rather than at one edge.
func (o *Oscillator) pattern() fixed.SQ15 {
	s := o.sidx

	if s >= o.aidx && s < o.ridx {
		if (s-o.aidx)%2 == 1 {
			return o.val1
		}
		return o.val0
	}

	m := s
	if s >= o.ridx {
		m = s - o.asize
	}
	istep := m / o.msize
	iidx := m % o.msize
	pidx := iidx % o.steps
	if pidx >= istep {
		return o.val0
	}
	return o.val1
}

// Step advances the phase by one sample. If postprocessing is active and
// the current interval has been fully emitted, it rolls the reference
// point over to the second plateau and immediately re-runs lookahead to
// prepare the next interval.
func (o *Oscillator) Step() {
	if o.freq == 0 {
		return
	}
	o.phi += o.freq

	if o.ppEnabled && o.pp {
		o.sidx++
		if o.sidx >= o.sampl {
			o.phi0 = o.phi1
			o.val0 = o.val1
			o.pp = false
			o.lookahead()
		}
	}
}
