// Package driver writes a CSV reference-driver format: one line per sample,
// phase and one or two SQ0.15 amplitude codes, flushed after every
// fundamental period.
package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/cwbudde/algo-qsine/osc"
)

var errNoCycles = errors.New("driver: cycles must be positive")

// Flusher is satisfied by *bufio.Writer and anything else that can flush
// buffered output; Run calls it once per fundamental period, matching the
// reference driver's fflush(fo) call after every phase wraparound.
type Flusher interface {
	Flush() error
}

// Config selects which oscillators to dump and for how long.
type Config struct {
	// Primary is required; Secondary, if non-nil, produces a second sample
	// column for A/B comparison (the dual-generator CSV format).
	Primary, Secondary *osc.Oscillator
	Cycles             int
}

// Run drains cfg.Primary (and cfg.Secondary, if set) for cfg.Cycles
// fundamental periods of Primary, writing one CSV line per sample to w.
// A period ends when Primary's phase wraps past zero, matching the
// reference driver's "phi decreased" cycle-boundary test.
func Run(w io.Writer, cfg Config) error {
	if cfg.Cycles <= 0 {
		return errNoCycles
	}
	if cfg.Primary == nil {
		return errors.New("driver: Primary oscillator is required")
	}

	bw := bufio.NewWriter(w)

	cycles := 0
	prevPhi := cfg.Primary.Phi()
	for cycles < cfg.Cycles {
		phi := cfg.Primary.Phi()

		var err error
		if cfg.Secondary != nil {
			_, err = fmt.Fprintf(bw, "%d; %d; %d\n", phi, cfg.Primary.Output(), cfg.Secondary.Output())
		} else {
			_, err = fmt.Fprintf(bw, "%d; %d\n", phi, cfg.Primary.Output())
		}
		if err != nil {
			return err
		}

		cfg.Primary.Step()
		if cfg.Secondary != nil {
			cfg.Secondary.Step()
		}

		if cfg.Primary.Phi() < prevPhi {
			cycles++
			if err := bw.Flush(); err != nil {
				return err
			}
			if f, ok := w.(Flusher); ok {
				if err := f.Flush(); err != nil {
					return err
				}
			}
		}
		prevPhi = cfg.Primary.Phi()
	}

	return bw.Flush()
}
