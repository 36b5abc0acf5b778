package constant

import (
	"math"
	"time"
)

// Audio Hardware Settings
const (
	AudioSampleRate = 48000
	AudioChannels   = 2
	AudioBitDepth   = 32 // float32 device samples
)

// Audio Engine Timing
const (
	// AudioBufferFrames is the default render callback size, ~5.3ms at 48kHz
	AudioBufferFrames = 256

	// AudioBufferDuration is the real-time deadline of one buffer
	AudioBufferDuration = time.Duration(AudioBufferFrames) * time.Second / AudioSampleRate
)

// Synthesis
const (
	// Dt is one sample period in seconds
	Dt = 1.0 / float64(AudioSampleRate)

	TwoPi = 2 * math.Pi

	// SilenceThreshold is the amplitude envelope level below which a voice goes idle
	SilenceThreshold = 1e-4

	// MinDecay floors every decay time fed to an envelope
	MinDecay = 1e-6
)

// Persistence
const (
	DefaultParamFile = "drum_params.txt"
)
