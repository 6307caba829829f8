package osc

// State identifies the oscillator's current output regime. It is
// observable (State method) but never set directly - it is a consequence
// of the Oscillator's configuration and lookahead outcome.
type State int

const (
	// StateIdle is the frequency-zero regime: phi is frozen and Output
	// always returns the same code, trig.ModSine(phi, att).
	StateIdle State = iota
	// StateDirect is the running regime with postprocessing either
	// disabled or currently unable to find an active interval; Output
	// calls trig.ModSine every sample.
	StateDirect
	// StatePPActive is the running regime with an active dithered
	// interval; Output consults the duty-cycle pattern instead.
	StatePPActive
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDirect:
		return "direct"
	case StatePPActive:
		return "pp-active"
	default:
		return "invalid"
	}
}

// State reports which regime the oscillator currently occupies.
func (o *Oscillator) State() State {
	switch {
	case o.freq == 0:
		return StateIdle
	case o.ppEnabled && o.pp:
		return StatePPActive
	default:
		return StateDirect
	}
}
