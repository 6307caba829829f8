package osc

import "fmt"

// ConfigError reports a violated precondition on an Oscillator setter, the
// oscillator analogue of fixed.DomainError: a caller bug, not a runtime
// condition a program can recover from, so it is carried by panic rather
// than a returned error.
type ConfigError struct {
	Op  string
	Msg string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("osc: %s: %s", e.Op, e.Msg)
}

func fail(op, msg string) {
	panic(&ConfigError{Op: op, Msg: msg})
}
