package audio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/fm-drums/voice"
)

// TestRenderWAV verifies an offline render decodes back with the expected shape
func TestRenderWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kick.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := RenderWAV(f, voice.NewKick(), 100*time.Millisecond); err != nil {
		t.Fatalf("RenderWAV failed: %v", err)
	}
	f.Close()

	in, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()

	s, format, err := wav.Decode(in)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	defer s.Close()

	if format.SampleRate != sampleRate || format.NumChannels != 2 || format.Precision != 2 {
		t.Errorf("Unexpected format %+v", format)
	}
	if s.Len() != sampleRate.N(100*time.Millisecond) {
		t.Errorf("Expected %d frames, got %d", sampleRate.N(100*time.Millisecond), s.Len())
	}

	buf := make([][2]float64, 512)
	n, _ := s.Stream(buf)
	var peak float64
	for _, f := range buf[:n] {
		peak = max(peak, f[0])
	}
	if peak < 0.5 {
		t.Errorf("Expected an audible attack, peak %g", peak)
	}
}
