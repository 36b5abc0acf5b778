package voice

import (
	"math"
	"testing"

	"github.com/lixenwraith/fm-drums/constant"
)

// TestHiHatGapFade verifies the voice is cut after gap plus the fade window
func TestHiHatGapFade(t *testing.T) {
	h := NewTRXHiHat()
	h.Gap = 0.1
	h.Decay = 1

	h.Trigger()
	end := int((h.Gap + hihatFadeTime) * constant.AudioSampleRate)
	var last float64
	for i := 0; i < end-2; i++ {
		last = h.Process()
	}
	if math.IsNaN(last) {
		t.Fatal("Non-finite sample before the fade end")
	}
	if !h.Active() {
		t.Fatal("Expected hi-hat to sound until the fade completes")
	}

	for i := 0; i < 10; i++ {
		h.Process()
	}
	if h.Active() {
		t.Error("Expected hi-hat to be idle after the fade window")
	}
	for i := 0; i < 100; i++ {
		if s := h.Process(); s != 0 {
			t.Fatalf("Sample %d after fade = %g", i, s)
		}
	}
}

// TestHiHatZeroPeakIsSilent verifies peak scales the output
func TestHiHatZeroPeakIsSilent(t *testing.T) {
	h := NewTRXHiHat()
	h.Peak = 0
	for i, s := range render(h, 1000) {
		if s != 0 {
			t.Fatalf("Sample %d = %g with zero peak", i, s)
		}
	}
}
