package dsp

import (
	"math"

	"github.com/lixenwraith/fm-drums/constant"
)

// WrapPhase maps p into [0, 2π), regardless of how many periods it is away
// Non-finite input resets to 0 so a runaway modulator cannot poison the voice
func WrapPhase(p float64) float64 {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	if p >= 0 && p < constant.TwoPi {
		return p
	}
	p = math.Mod(p, constant.TwoPi)
	if p < 0 {
		p += constant.TwoPi
	}
	// Mod of a tiny negative value can round up to exactly 2π
	if p >= constant.TwoPi {
		p = 0
	}
	return p
}

// Phasor is a phase accumulator in radians
type Phasor struct {
	phase float64
}

// Advance moves the phase by one sample at freq Hz plus extra radians
func (p *Phasor) Advance(freq, extra float64) float64 {
	p.phase = WrapPhase(p.phase + constant.TwoPi*freq*constant.Dt + extra)
	return p.phase
}

// Set places the phase, wrapped
func (p *Phasor) Set(phase float64) {
	p.phase = WrapPhase(phase)
}

func (p *Phasor) Value() float64 {
	return p.phase
}

// Sin advances and returns the sine of the new phase
func (p *Phasor) Sin(freq, extra float64) float64 {
	return math.Sin(p.Advance(freq, extra))
}

// Square advances and returns a ±1 square of the new phase
func (p *Phasor) Square(freq float64) float64 {
	if p.Advance(freq, 0) < math.Pi {
		return 1
	}
	return -1
}
