package dsp

import "testing"

// TestNoiseRange verifies samples stay in [-1, 1] and are not constant
func TestNoiseRange(t *testing.T) {
	n := NewNoise(42)
	minV, maxV := 1.0, -1.0
	for i := 0; i < 10000; i++ {
		v := n.Next()
		if v < -1 || v > 1 {
			t.Fatalf("Sample %d out of range: %g", i, v)
		}
		minV = min(minV, v)
		maxV = max(maxV, v)
	}
	if minV > -0.9 || maxV < 0.9 {
		t.Errorf("Expected near full-scale spread, got [%g, %g]", minV, maxV)
	}
}

// TestNoiseReset verifies the sequence repeats after Reset
func TestNoiseReset(t *testing.T) {
	n := NewNoise(7)
	first := make([]float64, 64)
	for i := range first {
		first[i] = n.Next()
	}
	n.Reset()
	for i := range first {
		if v := n.Next(); v != first[i] {
			t.Fatalf("Sample %d differs after reset: %g vs %g", i, v, first[i])
		}
	}
}
