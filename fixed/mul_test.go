package fixed

import "testing"

func TestMul16(t *testing.T) {
	tests := []struct {
		name string
		a, b UQ16
		want UQ16
	}{
		{"zero", 0x8000, 0, 0},
		{"identity-ish", 0x1234, 0xFFFF, 0x1233}, // truncates, never rounds up
		{"half-of-half", 0x8000, 0x8000, 0x4000},
		{"small", 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mul16(tt.a, tt.b); got != tt.want {
				t.Fatalf("Mul16(%#x, %#x) = %#x, want %#x", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMul16Commutative(t *testing.T) {
	for a := UQ16(0); a < 0xFFFF; a += 997 {
		for b := UQ16(0); b < 0xFFFF; b += 1009 {
			if Mul16(a, b) != Mul16(b, a) {
				t.Fatalf("Mul16(%#x, %#x) != Mul16(%#x, %#x)", a, b, b, a)
			}
		}
	}
}

func TestMul16Monotonic(t *testing.T) {
	const b = UQ16(0x6000)
	prev := Mul16(0, b)
	for i := 1; i <= 0xFFFF; i += 251 {
		a := UQ16(i)
		cur := Mul16(a, b)
		if cur < prev {
			t.Fatalf("Mul16 not monotonic at a=%#x: prev=%#x cur=%#x", a, prev, cur)
		}
		prev = cur
	}
}

func TestMul16UpperBound(t *testing.T) {
	for a := UQ16(0); a < 0xFFFF; a += 503 {
		if got := Mul16(a, 0xFFFF); got > a {
			t.Fatalf("Mul16(%#x, 0xFFFF) = %#x, want <= %#x", a, got, a)
		}
	}
}
