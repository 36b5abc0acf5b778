package voice

import (
	"github.com/lixenwraith/fm-drums/dsp"
)

// Snare is an FM body plus decaying noise, high-passed
type Snare struct {
	base

	FB    float64 // tone frequency
	DB    float64 // tone decay
	FM    float64
	I     float64
	DM    float64
	Abrus float64 // noise level
	Dbrus float64 // noise decay
	FHP   float64 // high-pass cutoff

	op       dsp.FMPair
	amp      dsp.Envelope
	mod      dsp.Envelope
	noiseEnv dsp.Envelope
	noise    dsp.Noise
	hp       dsp.OnePole
}

func NewSnare() *Snare {
	return &Snare{
		base: base{mode: dsp.DecayIterative},
		FB:   200, DB: 0.4, FM: 1500, I: 15, DM: 0.1,
		Abrus: 0.5, Dbrus: 0.2, FHP: 400,
		noise: dsp.NewNoise(0x5e4e),
	}
}

func (s *Snare) Kind() Kind { return KindSnare }

func (s *Snare) Reset() {
	s.op.Reset(0, 0)
	s.amp.Reset()
	s.mod.Reset()
	s.noiseEnv.Reset()
	s.noise.Reset()
	s.hp.Reset()
	s.active = false
}

func (s *Snare) Trigger() {
	s.Reset()
	s.envs(&s.amp, &s.mod, &s.noiseEnv)
	s.amp.Start(s.DB)
	s.mod.Start(s.DM)
	s.noiseEnv.Start(s.Dbrus)
	s.active = true
}

func (s *Snare) Process() float64 {
	if !s.active {
		return 0
	}
	a := s.amp.Next()
	m := s.mod.Next()
	n := s.noiseEnv.Next()

	tone := s.op.Next(s.FB, s.FM, 0, s.I*m)
	brush := s.Abrus * n * s.noise.Next()
	x := (tone + brush) / (1 + s.Abrus)

	out := s.hp.HighPass(x, s.FHP) * a
	if silent(s.amp.Level()) {
		s.active = false
	}
	return out
}

func (s *Snare) Params() []Param {
	return []Param{
		floatParam("f_b", "Tone Freq", &s.FB, 100, 400),
		floatParam("d_b", "Tone Decay", &s.DB, 0.01, 1),
		floatParam("f_m", "Mod Freq", &s.FM, 500, 3000),
		floatParam("I", "Mod Index", &s.I, 0, 50),
		floatParam("d_m", "Mod Decay", &s.DM, 0.01, 1),
		floatParam("Abrus", "Noise Level", &s.Abrus, 0, 1),
		floatParam("dbrus", "Noise Decay", &s.Dbrus, 0.01, 1),
		floatParam("fhp", "HPF Cutoff", &s.FHP, 20, 2000),
	}
}
