package trig

import "testing"

// Literal isqrt values at small arguments and near the table's top edge.
func TestIsqrtLiterals(t *testing.T) {
	tests := []struct {
		x, want int
	}{
		{0, 0},
		{1, 1},
		{3, 1},
		{4, 2},
		{16128, 126},
		{16129, 127},
	}

	for _, tt := range tests {
		if got := Isqrt(tt.x); got != tt.want {
			t.Fatalf("Isqrt(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestIsqrtMonotonic(t *testing.T) {
	prev := Isqrt(0)
	for x := 1; x < 0x4000; x++ {
		cur := Isqrt(x)
		if cur < prev {
			t.Fatalf("Isqrt not monotonic at x=%d: prev=%d cur=%d", x, prev, cur)
		}
		prev = cur
	}
}

func TestIsqrtExactSquares(t *testing.T) {
	for k := 0; k*k < 0x4000; k++ {
		if got := Isqrt(k * k); got != k {
			t.Fatalf("Isqrt(%d) = %d, want %d", k*k, got, k)
		}
	}
}

func TestIsqrtOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range Isqrt argument")
		}
	}()
	Isqrt(0x4000)
}
