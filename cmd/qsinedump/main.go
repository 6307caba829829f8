// Command qsinedump reproduces the reference CSV driver: it runs a
// postprocessed and an unpostprocessed oscillator side by side at the same
// frequency, phase and attenuation, and writes one line per sample of the
// form "phi; sample_direct; sample_dithered".
//
// Usage:
//
//	qsinedump [flags]
//
// Examples:
//
//	qsinedump -out sine.csv
//	qsinedump -out sine.csv -cycles 4 -freq 1 -att 65528
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-qsine/driver"
	"github.com/cwbudde/algo-qsine/fixed"
	"github.com/cwbudde/algo-qsine/osc"
)

func main() {
	out := flag.String("out", "sine.csv", "output CSV file path")
	cycles := flag.Uint("cycles", 1, "number of fundamental periods to produce")
	freq := flag.Uint("freq", 4, "phase increment per sample, UQ0.16 in [0, 0x4000]")
	phi := flag.Uint("phi", 0, "initial phase, UQ0.16")
	att := flag.Uint("att", 65528, "attenuation, UQ0.16 in [0, 0xFFFF]")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: qsinedump [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Writes the reference CSV driver format (phi; sample_direct; sample_dithered).\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*out, int(*cycles), fixed.UQ16(*freq), fixed.UQ16(*phi), fixed.UQ16(*att)); err != nil {
		fmt.Fprintf(os.Stderr, "qsinedump: %v\n", err)
		os.Exit(1)
	}
}

func run(outPath string, cycles int, freq, phi, att fixed.UQ16) error {
	direct, err := osc.New(osc.WithFreq(freq), osc.WithPhi(phi), osc.WithAtt(att))
	if err != nil {
		return err
	}
	dithered, err := osc.New(osc.WithFreq(freq), osc.WithPhi(phi), osc.WithAtt(att), osc.WithPostprocessing(true))
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	return driver.Run(f, driver.Config{
		Primary:   direct,
		Secondary: dithered,
		Cycles:    cycles,
	})
}
