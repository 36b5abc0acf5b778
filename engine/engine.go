// Package engine owns the voice bank and bridges the control loop to the
// real-time render callback.
//
// Control commands (selection, parameter edits, decay mode changes) take the
// engine mutex. Trigger requests set an atomic flag that the render callback
// test-and-clears once per buffer, so a request made before a callback starts
// is acted on within that callback. The render callback takes the mutex once
// per buffer rather than once per sample; with a 256-frame buffer the control
// side can stall rendering for at most one edit, which is negligible for an
// uncontended lock but is not a hard real-time guarantee.
package engine

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/fm-drums/dsp"
	"github.com/lixenwraith/fm-drums/voice"
)

var ErrNoSuchVoice = errors.New("no such voice")

var _ beep.Streamer = (*Engine)(nil)

// Engine is the voice registry plus the trigger/parameter bridge
type Engine struct {
	mu       sync.Mutex // Protects voices and selected
	voices   []voice.Voice
	selected int

	trigger atomic.Bool
	tap     *Tap
}

// New builds an engine over voices in registry order and resets each one
func New(voices ...voice.Voice) *Engine {
	e := &Engine{
		voices: voices,
		tap:    NewTap(DefaultTapSize),
	}
	for _, v := range e.voices {
		v.Reset()
	}
	return e
}

// NewDefault builds the engine over the full drum bank
func NewDefault() *Engine {
	return New(voice.DefaultBank()...)
}

// Len returns the number of voices
func (e *Engine) Len() int {
	return len(e.voices)
}

// Names returns display names in registry order
func (e *Engine) Names() []string {
	names := make([]string, len(e.voices))
	for i, v := range e.voices {
		names[i] = v.Kind().Name()
	}
	return names
}

// Select changes the rendered voice
// The previous voice keeps its state; it only stops being rendered.
func (e *Engine) Select(i int) error {
	if i < 0 || i >= len(e.voices) {
		return fmt.Errorf("%w: index %d", ErrNoSuchVoice, i)
	}
	e.mu.Lock()
	e.selected = i
	e.mu.Unlock()
	return nil
}

// SelectKey selects a voice by its key
func (e *Engine) SelectKey(key string) error {
	for i, v := range e.voices {
		if v.Kind().Key() == key {
			return e.Select(i)
		}
	}
	return fmt.Errorf("%w: %q", ErrNoSuchVoice, key)
}

func (e *Engine) Selected() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selected
}

// RequestTrigger arms the selected voice at the start of the next buffer
// Multiple requests before that buffer collapse into one.
func (e *Engine) RequestTrigger() {
	e.trigger.Store(true)
}

// Do runs fn on the selected voice under the engine lock
func (e *Engine) Do(fn func(v voice.Voice)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.voices[e.selected])
}

// WithVoices runs fn on the whole bank under the engine lock
func (e *Engine) WithVoices(fn func(voices []voice.Voice)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.voices)
}

// SetDecayMode changes the envelope contract of the voice with the given key
// It applies from that voice's next trigger.
func (e *Engine) SetDecayMode(key string, mode dsp.DecayMode) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, v := range e.voices {
		if v.Kind().Key() == key {
			v.SetDecayMode(mode)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrNoSuchVoice, key)
}

// Tap returns the visualization feed
func (e *Engine) Tap() *Tap {
	return e.tap
}

// Stream renders the selected voice into samples, duplicated to both channels
// It never blocks on I/O and never ends.
func (e *Engine) Stream(samples [][2]float64) (int, bool) {
	e.mu.Lock()
	v := e.voices[e.selected]
	if e.trigger.Swap(false) {
		v.Trigger()
	}
	for i := range samples {
		s := v.Process()
		if math.IsNaN(s) || math.IsInf(s, 0) {
			s = 0
		}
		samples[i][0] = s
		samples[i][1] = s
	}
	e.mu.Unlock()

	e.tap.Write(samples)
	return len(samples), true
}

// Err always returns nil; the render path has no failure mode
func (e *Engine) Err() error {
	return nil
}
