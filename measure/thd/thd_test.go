package thd

import (
	"math"
	"testing"
)

func pureTone(n, cyclesPerBuffer int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * float64(cyclesPerBuffer) * float64(i) / float64(n))
	}
	return out
}

func TestAnalyzePureToneHasNearZeroTHD(t *testing.T) {
	signal := pureTone(2048, 16)
	res, err := Analyze(signal, Config{FFTSize: 2048, FundamentalBin: 16})
	if err != nil {
		t.Fatal(err)
	}
	if res.FundamentalLevel <= 0 {
		t.Fatal("expected nonzero fundamental level")
	}
	if res.THD > 0.05 {
		t.Fatalf("THD of a pure tone = %v, want near 0", res.THD)
	}
}

func TestAnalyzeDistortedToneHasHigherTHD(t *testing.T) {
	const n, k = 2048, 16
	signal := make([]float64, n)
	for i := range signal {
		phase := 2 * math.Pi * float64(k) * float64(i) / float64(n)
		signal[i] = math.Sin(phase) + 0.3*math.Sin(3*phase)
	}
	res, err := Analyze(signal, Config{FFTSize: n, FundamentalBin: k})
	if err != nil {
		t.Fatal(err)
	}
	if res.THD < 0.1 {
		t.Fatalf("THD of a distorted tone = %v, want clearly above the pure-tone floor", res.THD)
	}
}

func TestAnalyzeRejectsInvalidFundamentalBin(t *testing.T) {
	if _, err := Analyze(pureTone(64, 4), Config{FFTSize: 64, FundamentalBin: 0}); err == nil {
		t.Fatal("expected error for fundamental bin 0")
	}
	if _, err := Analyze(pureTone(64, 4), Config{FFTSize: 64, FundamentalBin: 40}); err == nil {
		t.Fatal("expected error for fundamental bin beyond Nyquist")
	}
}
