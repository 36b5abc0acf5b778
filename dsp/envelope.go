package dsp

import (
	"fmt"
	"math"

	"github.com/lixenwraith/fm-drums/constant"
)

// DecayMode selects the numeric contract of an exponential decay
type DecayMode int

const (
	// DecayExp evaluates exp(-t/d) directly from elapsed time
	DecayExp DecayMode = iota
	// DecayIterative multiplies by k = clamp(1-dt/d, 0, 1) every sample
	DecayIterative
)

func (m DecayMode) String() string {
	switch m {
	case DecayExp:
		return "exp"
	case DecayIterative:
		return "iterative"
	default:
		return fmt.Sprintf("DecayMode(%d)", int(m))
	}
}

// ParseDecayMode accepts the names produced by String
func ParseDecayMode(s string) (DecayMode, error) {
	switch s {
	case "exp":
		return DecayExp, nil
	case "iterative":
		return DecayIterative, nil
	default:
		return 0, fmt.Errorf("unknown decay mode %q", s)
	}
}

// Envelope is a one-shot exponential decay from 1.0 towards 0
type Envelope struct {
	Mode DecayMode

	decay float64
	t     float64 // DecayExp elapsed time
	k     float64 // DecayIterative multiplier
	level float64
}

// Start arms the envelope at 1.0 with decay time d seconds
func (e *Envelope) Start(d float64) {
	if !(d >= constant.MinDecay) { // also catches NaN
		d = constant.MinDecay
	}
	e.decay = d
	e.t = 0
	e.level = 1
	e.k = 1 - constant.Dt/d
	if e.k < 0 {
		e.k = 0
	} else if e.k > 1 {
		e.k = 1
	}
}

// Reset silences the envelope
func (e *Envelope) Reset() {
	e.decay = constant.MinDecay
	e.t = 0
	e.k = 0
	e.level = 0
}

// Next returns the level for the current sample and advances one sample
func (e *Envelope) Next() float64 {
	v := e.level
	if v == 0 {
		return 0
	}
	switch e.Mode {
	case DecayIterative:
		e.level *= e.k
	default:
		e.t += constant.Dt
		e.level = math.Exp(-e.t / e.decay)
	}
	return v
}

// Level returns the level Next will return, without advancing
func (e *Envelope) Level() float64 {
	return e.level
}
