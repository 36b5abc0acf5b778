package voice

import (
	"math"

	"github.com/lixenwraith/fm-drums/constant"
	"github.com/lixenwraith/fm-drums/dsp"
)

// TRXBassDrum is a sine kick with a pitch ramp, attack noise, harmonics and soft clip
type TRXBassDrum struct {
	base

	Pitch     float64
	Decay     float64
	Ramp      float64
	RampDecay float64
	Start     float64 // output level
	Noise     float64 // attack noise level
	Harmonics float64
	Clip      float64

	osc     dsp.Phasor
	env     dsp.Envelope
	rampEnv dsp.Envelope
	noise   dsp.Noise
	elapsed int
}

func NewTRXBassDrum() *TRXBassDrum {
	return &TRXBassDrum{
		base:  base{mode: dsp.DecayIterative},
		Pitch: 50, Decay: 0.4, Ramp: 0.3, RampDecay: 0.1, Start: 1,
		noise: dsp.NewNoise(0xbd),
	}
}

func (d *TRXBassDrum) Kind() Kind { return KindTRXBassDrum }

func (d *TRXBassDrum) Reset() {
	d.osc.Set(0)
	d.env.Reset()
	d.rampEnv.Reset()
	d.noise.Reset()
	d.elapsed = 0
	d.active = false
}

func (d *TRXBassDrum) Trigger() {
	d.Reset()
	d.envs(&d.env, &d.rampEnv)
	d.env.Start(d.Decay)
	d.rampEnv.Start(d.RampDecay)
	d.active = true
}

func (d *TRXBassDrum) Process() float64 {
	if !d.active {
		return 0
	}
	d.elapsed++
	e := d.env.Next()
	r := d.rampEnv.Next()

	s := d.osc.Sin(d.Pitch+d.Ramp*r*trxRampHz, 0)
	v := s * e * d.Start

	if d.Harmonics > 0 {
		v += d.Harmonics * math.Tanh(s*3) * e
	}
	if d.Noise > 0 && float64(d.elapsed)*constant.Dt < trxBurstTime {
		v += d.Noise * d.noise.Next() * e
	}
	v = softClip(v, d.Clip)

	if silent(d.env.Level()) {
		d.active = false
	}
	return v
}

func (d *TRXBassDrum) Params() []Param {
	return []Param{
		floatParam("pitch", "Pitch", &d.Pitch, 20, 120),
		floatParam("decay", "Decay", &d.Decay, 0.01, 2),
		floatParam("ramp", "Ramp", &d.Ramp, 0, 1),
		floatParam("ramp_decay", "Ramp Decay", &d.RampDecay, 0.01, 1),
		floatParam("start", "Start", &d.Start, 0, 2),
		floatParam("noise", "Noise", &d.Noise, 0, 1),
		floatParam("harmonics", "Harmonics", &d.Harmonics, 0, 1),
		floatParam("clip", "Clip", &d.Clip, 0, 1),
	}
}
