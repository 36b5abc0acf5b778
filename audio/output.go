// Package audio sends the engine's render callback to a sound device.
//
// The oto backend writes interleaved float32 stereo at 48 kHz directly; the
// beep backend goes through the beep speaker; the null backend pulls buffers at
// the real-time pace and discards them. When the requested device cannot be
// opened the output falls back to null, so triggers and the visualization
// tap keep working without sound.
package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/fm-drums/constant"
)

// Output owns one running backend
type Output struct {
	mu        sync.Mutex // Protects sink, vol, and backend
	requested BackendType
	backend   BackendType
	frames    int
	sink      sink
	vol       *effects.Volume
	volume    float64

	running    atomic.Bool
	silentMode atomic.Bool

	// open builds sinks; replaced in tests
	open func(BackendType, int) (sink, error)
}

// NewOutput prepares an output for backend b with frames per buffer
func NewOutput(b BackendType, frames int, volume float64) *Output {
	if frames <= 0 {
		frames = constant.AudioBufferFrames
	}
	return &Output{
		requested: b,
		backend:   b,
		frames:    frames,
		volume:    clampVolume(volume),
		open:      openSink,
	}
}

// Start plays src on the requested backend, degrading to null on failure
// The returned error describes the fallback; the output is running either way.
func (o *Output) Start(src beep.Streamer) error {
	if !o.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.vol = newVolume(src, o.volume)

	s, err := o.open(o.requested, o.frames)
	if err == nil {
		err = s.start(o.vol)
	}
	if err == nil {
		o.sink = s
		o.backend = o.requested
		o.silentMode.Store(o.requested == BackendNull)
		return nil
	}

	fallback := newNullSink(o.frames)
	_ = fallback.start(o.vol)
	o.sink = fallback
	o.backend = BackendNull
	o.silentMode.Store(true)
	return fmt.Errorf("%w: %s unavailable, using null: %v", ErrNoAudioBackend, o.requested, err)
}

// Stop halts the backend; safe to call when not running
func (o *Output) Stop() {
	if !o.running.CompareAndSwap(true, false) {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.sink != nil {
		o.sink.stop()
		o.sink = nil
	}
}

// SetVolume changes master gain, clamped to [0,1]
func (o *Output) SetVolume(v float64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.volume = clampVolume(v)
	if o.vol == nil || o.sink == nil {
		return
	}
	o.sink.lock()
	setVolume(o.vol, o.volume)
	o.sink.unlock()
}

func (o *Output) Volume() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.volume
}

// Backend reports the backend actually in use
func (o *Output) Backend() BackendType {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.backend
}

func (o *Output) IsRunning() bool {
	return o.running.Load()
}

// IsSilent reports whether no device is producing sound
func (o *Output) IsSilent() bool {
	return o.silentMode.Load()
}

func clampVolume(v float64) float64 {
	return min(max(v, 0), 1)
}
