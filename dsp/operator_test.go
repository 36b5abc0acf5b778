package dsp

import (
	"math"
	"testing"

	"github.com/lixenwraith/fm-drums/constant"
)

// TestFMPairFirstSample verifies the phase-modulation formula on one sample
func TestFMPairFirstSample(t *testing.T) {
	var p FMPair
	p.Reset(math.Pi/2, 0)

	got := p.Next(50, 180, 0.5, 20)

	mod := math.Sin(constant.TwoPi * 180 * constant.Dt)
	want := math.Sin(math.Pi/2 + constant.TwoPi*50*constant.Dt + 20*mod)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %g, got %g", want, got)
	}
	if math.Abs(p.PrevMod()-mod) > 1e-12 {
		t.Errorf("Expected feedback history %g, got %g", mod, p.PrevMod())
	}
}

// TestFMPairZeroDepthIsSine verifies no modulation leaves a plain sine
func TestFMPairZeroDepthIsSine(t *testing.T) {
	var p FMPair
	var ref Phasor
	p.Reset(0, 0)

	for i := 0; i < 1000; i++ {
		got := p.Next(440, 1000, 0.9, 0)
		want := ref.Sin(440, 0)
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("Sample %d: expected %g, got %g", i, want, got)
		}
	}
}
