package audio

import (
	"io"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/fm-drums/engine"
	"github.com/lixenwraith/fm-drums/voice"
)

// RenderWAV triggers v once and writes dur of its output as 16-bit stereo WAV
func RenderWAV(w io.WriteSeeker, v voice.Voice, dur time.Duration) error {
	e := engine.New(v)
	e.RequestTrigger()

	format := beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   2,
	}
	return wav.Encode(w, beep.Take(sampleRate.N(dur), e), format)
}
