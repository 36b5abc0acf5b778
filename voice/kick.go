package voice

import (
	"math"

	"github.com/lixenwraith/fm-drums/dsp"
)

// Kick is a two-operator FM kick with a decaying pitch sweep on the carrier
type Kick struct {
	base

	FB float64 // carrier frequency, Hz
	DB float64 // amplitude decay, s
	FM float64 // modulator frequency, Hz
	I  float64 // modulation index
	DM float64 // modulation decay, s
	BM float64 // modulator feedback
	AF float64 // pitch sweep amount, Hz
	DF float64 // pitch sweep decay, s

	op   dsp.FMPair
	amp  dsp.Envelope
	mod  dsp.Envelope
	freq dsp.Envelope
}

func NewKick() *Kick {
	return &Kick{
		base: base{mode: dsp.DecayExp},
		FB:   50, DB: 0.5, FM: 180, I: 20,
		DM: 0.15, BM: 0.5, AF: 60, DF: 0.1,
	}
}

func (k *Kick) Kind() Kind { return KindKick }

func (k *Kick) Reset() {
	k.op.Reset(math.Pi/2, 0)
	k.amp.Reset()
	k.mod.Reset()
	k.freq.Reset()
	k.active = false
}

func (k *Kick) Trigger() {
	k.Reset()
	k.envs(&k.amp, &k.mod, &k.freq)
	k.amp.Start(k.DB)
	k.mod.Start(k.DM)
	k.freq.Start(k.DF)
	k.active = true
}

func (k *Kick) Process() float64 {
	if !k.active {
		return 0
	}
	a := k.amp.Next()
	m := k.mod.Next()
	sweep := k.AF * k.freq.Next()

	out := k.op.Next(k.FB+sweep, k.FM, k.BM, k.I*m) * a
	if silent(k.amp.Level()) {
		k.active = false
	}
	return out
}

func (k *Kick) Params() []Param {
	return []Param{
		floatParam("f_b", "Base Frequency", &k.FB, 20, 100),
		floatParam("d_b", "Amp Decay", &k.DB, 0.01, 2),
		floatParam("f_m", "Modulator Freq", &k.FM, 50, 1000),
		floatParam("I", "Mod Index", &k.I, 0, 50),
		floatParam("d_m", "Mod Decay", &k.DM, 0.01, 2),
		floatParam("b_m", "Mod Feedback", &k.BM, 0, 1),
		floatParam("A_f", "Freq Sweep Amt", &k.AF, 0, 200),
		floatParam("d_f", "Freq Sweep Decay", &k.DF, 0.01, 2),
	}
}
