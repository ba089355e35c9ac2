package common

import "testing"

func TestRangeHelpers(t *testing.T) {
	r := NewRand(3)
	for range 1000 {
		if v := RangeInt(r, -80, 80); v < -80 || v > 80 {
			t.Fatalf("RangeInt out of bounds: %d", v)
		}
		if v := RangeFloat(r, 4, 8); v < 4 || v >= 8 {
			t.Fatalf("RangeFloat out of bounds: %v", v)
		}
		if v := Pick(r, 3); v < 0 || v > 2 {
			t.Fatalf("Pick out of bounds: %d", v)
		}
	}
	if RangeInt(r, 5, 5) != 5 || RangeFloat(r, 2, 1) != 2 || Pick(r, 0) != 0 {
		t.Fatalf("degenerate ranges should return the low end")
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ v, want float64 }{{-1, 0}, {0.5, 0.5}, {2, 1}}
	for _, c := range cases {
		if got := Clamp(c.v, 0, 1); got != c.want {
			t.Fatalf("Clamp(%v) = %v, want %v", c.v, got, c.want)
		}
	}
	if ClampInt(300, 1, 255) != 255 || ClampInt(-3, 1, 255) != 1 {
		t.Fatalf("ClampInt misbehaved")
	}
	if Lerp(0, 10, 0.25) != 2.5 {
		t.Fatalf("Lerp misbehaved")
	}
}
