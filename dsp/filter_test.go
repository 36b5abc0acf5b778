package dsp

import (
	"math"
	"testing"
)

// TestLowPassConverges verifies unity DC gain
func TestLowPassConverges(t *testing.T) {
	var f OnePole
	var y float64
	for i := 0; i < 48000; i++ {
		y = f.LowPass(1, 1000)
	}
	if math.Abs(y-1) > 1e-6 {
		t.Errorf("Expected DC output near 1, got %g", y)
	}
}

// TestHighPassBlocksDC verifies a constant input decays to zero
func TestHighPassBlocksDC(t *testing.T) {
	var f OnePole
	first := f.HighPass(1, 400)
	if first <= 0 {
		t.Fatalf("Expected positive step response, got %g", first)
	}
	var y float64
	for i := 0; i < 48000; i++ {
		y = f.HighPass(1, 400)
	}
	if math.Abs(y) > 1e-6 {
		t.Errorf("Expected DC to be blocked, got %g", y)
	}
}

// TestOnePoleReset verifies memory is cleared
func TestOnePoleReset(t *testing.T) {
	var f OnePole
	f.LowPass(1, 100)
	f.Reset()
	if y := f.LowPass(0, 100); y != 0 {
		t.Errorf("Expected 0 after reset, got %g", y)
	}
}
