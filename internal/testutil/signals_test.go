package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	// First sample of a sine at phase 0 should be 0.
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestBinFrequency(t *testing.T) {
	if got := BinFrequency(32, 512, 16000); got != 1000 {
		t.Fatalf("BinFrequency(32, 512, 16000) = %v, want 1000", got)
	}
}

func TestComplex(t *testing.T) {
	c := Complex([]float64{1, -2})
	if len(c) != 2 || c[0] != 1 || c[1] != -2 {
		t.Fatalf("unexpected Complex output: %v", c)
	}
}
