package voice

import (
	"math"

	"github.com/lixenwraith/fm-drums/dsp"
)

// tomFeedback is the fixed modulator self-feedback of the tom
const tomFeedback = 1.0

// Tom is the kick topology tuned higher, with an adjustable start phase
type Tom struct {
	base

	FB         float64
	DB         float64
	FM         float64
	I          float64
	DM         float64
	AF         float64
	DF         float64
	StartPhase float64 // not part of the saved record

	op   dsp.FMPair
	amp  dsp.Envelope
	mod  dsp.Envelope
	freq dsp.Envelope
}

func NewTom() *Tom {
	return &Tom{
		base: base{mode: dsp.DecayExp},
		FB:   150, DB: 0.7, FM: 300, I: 15, DM: 0.2,
		AF: 30, DF: 0.1, StartPhase: math.Pi / 2,
	}
}

func (t *Tom) Kind() Kind { return KindTom }

func (t *Tom) Reset() {
	t.op.Reset(t.StartPhase, t.StartPhase)
	t.amp.Reset()
	t.mod.Reset()
	t.freq.Reset()
	t.active = false
}

func (t *Tom) Trigger() {
	t.Reset()
	t.envs(&t.amp, &t.mod, &t.freq)
	t.amp.Start(t.DB)
	t.mod.Start(t.DM)
	t.freq.Start(t.DF)
	t.active = true
}

func (t *Tom) Process() float64 {
	if !t.active {
		return 0
	}
	a := t.amp.Next()
	m := t.mod.Next()
	sweep := t.AF * t.freq.Next()

	out := t.op.Next(t.FB+sweep, t.FM, tomFeedback, t.I*m) * a
	if silent(t.amp.Level()) {
		t.active = false
	}
	return out
}

func (t *Tom) Params() []Param {
	phase := floatParam("start_phase", "Start Phase", &t.StartPhase, 0, math.Pi)
	phase.Persist = false
	return []Param{
		floatParam("f_b", "Base Frequency", &t.FB, 80, 400),
		floatParam("d_b", "Amp Decay", &t.DB, 0.01, 2),
		floatParam("f_m", "Modulator Freq", &t.FM, 100, 2000),
		floatParam("I", "Mod Index", &t.I, 0, 50),
		floatParam("d_m", "Mod Decay", &t.DM, 0.01, 1),
		floatParam("A_f", "Freq Sweep Amt", &t.AF, 0, 100),
		floatParam("d_f", "Freq Sweep Decay", &t.DF, 0.01, 1),
		phase,
	}
}
