package fixed

import "testing"

func TestWideningRoundTrip(t *testing.T) {
	for x := SQ15(-0x8000); x < 0x7FFF; x += 131 {
		if got := SQ15FromSQ21(SQ21FromSQ15(x)); got != x {
			t.Fatalf("SQ15FromSQ21(SQ21FromSQ15(%#x)) = %#x, want %#x", x, got, x)
		}
	}
	for x := UQ16(0); x < 0xFFFF; x += 131 {
		if got := UQ16FromUQ22(UQ22FromUQ16(x)); got != x {
			t.Fatalf("UQ16FromUQ22(UQ22FromUQ16(%#x)) = %#x, want %#x", x, got, x)
		}
	}
	for x := UQ16(0); x < 0xFFFF; x += 131 {
		if got := UQ16FromUQ121(UQ121FromUQ16(x)); got != x {
			t.Fatalf("UQ16FromUQ121(UQ121FromUQ16(%#x)) = %#x, want %#x", x, got, x)
		}
	}
}

func TestNarrowingTruncates(t *testing.T) {
	// SQ21 value with low 6 bits set must truncate toward -Inf on narrowing.
	x := SQ21FromSQ15(5) | 0x3F // 5 scaled plus fractional remainder
	if got := SQ15FromSQ21(x); got != 5 {
		t.Fatalf("SQ15FromSQ21(%#x) = %#x, want 5", x, got)
	}

	neg := SQ21FromSQ15(-5) - 1 // one ULP below -5.0 in SQ21 terms
	if got := SQ15FromSQ21(neg); got >= -5 {
		t.Fatalf("SQ15FromSQ21(%#x) = %d, want < -5 (truncation toward -Inf)", neg, got)
	}
}

func TestSignUnsignedRoundTrip(t *testing.T) {
	for i := 0; i < 0x7FFF; i += 97 {
		x := SQ15(i)
		if got := SQ15FromUQ16(UQ16FromSQ15(x)); got != x {
			t.Fatalf("SQ15FromUQ16(UQ16FromSQ15(%#x)) = %#x, want %#x", x, got, x)
		}
	}
}

func TestSignUnsignedRejectsNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic converting negative SQ15 to UQ16")
		}
	}()
	UQ16FromSQ15(-1)
}

func TestUQ22FromSQ21RejectsNegativeSource(t *testing.T) {
	// A valid SQ21 that is negative must be rejected on the way to UQ22.
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic converting negative SQ21 to UQ22")
		}
	}()
	UQ22FromSQ21(-1)
}

func TestInvariantViolationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on invalid SQ21 container invariant")
		}
	}()
	// Top bits don't match sign extension of bit 21: invalid container.
	bad := SQ21(1 << 25)
	SQ15FromSQ21(bad)
}

func TestValid(t *testing.T) {
	if !SQ21(0).Valid() || !SQ21(-1).Valid() {
		t.Fatal("0 and -1 must be valid SQ21 containers")
	}
	if SQ21(1 << 25).Valid() {
		t.Fatal("expected invalid SQ21 container")
	}
	if !UQ22(0).Valid() || UQ22(1<<25).Valid() {
		t.Fatal("UQ22 invariant check is wrong")
	}
	if !UQ121(0).Valid() || UQ121(1<<25).Valid() {
		t.Fatal("UQ121 invariant check is wrong")
	}
}
