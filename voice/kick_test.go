package voice

import (
	"math"
	"testing"

	"github.com/lixenwraith/fm-drums/constant"
)

func scenarioKick() *Kick {
	k := NewKick()
	k.FB, k.FM, k.I = 50, 180, 20
	k.DB, k.DM, k.BM = 0.5, 0.15, 0.5
	return k
}

// TestKickFirstSample verifies sin(π/2 + increment + modulation)·exp(0)
func TestKickFirstSample(t *testing.T) {
	k := scenarioKick()
	k.Trigger()
	got := k.Process()

	mod := math.Sin(constant.TwoPi * k.FM * constant.Dt)
	want := math.Sin(math.Pi/2 + constant.TwoPi*(k.FB+k.AF)*constant.Dt + k.I*mod)
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("Expected first sample %g, got %g", want, got)
	}
}

// TestKickDecay verifies the tail falls below 1% of the peak by 2.5s
func TestKickDecay(t *testing.T) {
	k := scenarioKick()
	out := render(k, 3*constant.AudioSampleRate)

	var peak float64
	for _, s := range out[:constant.AudioSampleRate/10] {
		peak = max(peak, math.Abs(s))
	}
	if peak < 0.5 {
		t.Fatalf("Expected a strong attack, peak %g", peak)
	}

	var tail float64
	for _, s := range out[5*constant.AudioSampleRate/2:] {
		tail = max(tail, math.Abs(s))
	}
	if tail >= 0.01*peak {
		t.Errorf("Tail %g not below 1%% of peak %g", tail, peak)
	}
}

// TestKickBounded verifies the plain FM kick never exceeds unity
func TestKickBounded(t *testing.T) {
	for i, s := range render(NewKick(), constant.AudioSampleRate) {
		if math.Abs(s) > 1 {
			t.Fatalf("Sample %d out of range: %g", i, s)
		}
	}
}
