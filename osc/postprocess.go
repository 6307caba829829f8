package osc

import (
	"github.com/cwbudde/algo-qsine/fixed"
	"github.com/cwbudde/algo-qsine/trig"
)

// lookaheadBound caps how many freq-sized steps the plateau scan in
// lookahead and activate will take before giving up. It mirrors the
// UQ0.16 phase range scanned per quadrant: a plateau that survives this
// many samples without a code change is treated as "no usable interval"
// rather than scanned indefinitely.
const lookaheadBound = 0x4000

// isqrtDomainMax is the largest value trig.Isqrt accepts. A plateau pair
// found by activate can in principle sum past this - each half is bounded
// independently by lookaheadBound - which only happens at attenuations so
// deep the output is already pinned near a single code for most of a
// quadrant. Clamping here trades a slightly coarser duty-cycle step count
// for never panicking out of a runtime-dependent condition: the
// DomainError convention is for programming mistakes, not this.
const isqrtDomainMax = 0x3FFF

// lookahead scans ahead from the current phase for a constant-output
// plateau, then (via activate) a second plateau one code step away, and if
// the combined interval is long enough to dither, activates the
// postprocessor over it. On any disqualifying condition it leaves pp
// false, i.e. the oscillator keeps reporting plain trig.ModSine output
// (the DIRECT state).
func (o *Oscillator) lookahead() {
	phi0 := o.phi0
	val0 := o.val0

	phi1 := phi0
	cnt1 := 0
	for {
		next := phi1 + o.freq
		if uint16(next-phi0) >= lookaheadBound || cnt1 >= lookaheadBound {
			return
		}
		val1 := trig.ModSine(next, o.att)
		phi1 = next
		cnt1++ // samples in [phi0, phi1)
		if val1 != val0 {
			o.activate(phi0, val0, phi1, val1, cnt1)
			return
		}
	}
}

// activate scans the second plateau starting at (phi1, val1) and, if the
// combined interval admits at least two dither steps, installs it as the
// active postprocessing interval.
func (o *Oscillator) activate(phi0 fixed.UQ16, val0 fixed.SQ15, phi1 fixed.UQ16, val1 fixed.SQ15, cnt1 int) {
	if absDiffSQ15(val1, val0) > 1 {
		return
	}

	phi2 := phi1
	cnt2 := 0
	for {
		next := phi2 + o.freq
		if uint16(next-phi1) >= lookaheadBound || cnt2 >= lookaheadBound {
			break
		}
		if trig.ModSine(next, o.att) != val1 {
			break
		}
		phi2 = next
		cnt2++
	}

	sampl := cnt1 + cnt2/2
	phi1 += fixed.UQ16(cnt2/2) * o.freq

	s := sampl
	if s > isqrtDomainMax {
		s = isqrtDomainMax
	}
	steps := trig.Isqrt(s)
	if steps < 2 {
		return
	}

	msize := sampl / steps
	asize := sampl % steps
	ridx := sampl - (steps/2)*msize
	aidx := ridx - asize

	o.phi0, o.val0 = phi0, val0
	o.phi1, o.val1 = phi1, val1
	o.sampl = sampl
	o.steps = steps
	o.msize = msize
	o.asize = asize
	o.ridx = ridx
	o.aidx = aidx
	o.sidx = 0
	o.pp = true
}

func absDiffSQ15(a, b fixed.SQ15) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}
