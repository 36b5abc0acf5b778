package voice

import "github.com/lixenwraith/fm-drums/dsp"

// TRXSnareDrum is two tuned sines with a snap burst and high-passed body noise
type TRXSnareDrum struct {
	base

	Pitch float64
	Decay float64
	Snap  float64
	Noise float64
	Tone  float64 // balance of the two oscillators
	Tune  float64 // interval of the second oscillator, Hz
	Bump  float64 // pitch kick of the first oscillator at the attack
	Clip  float64

	osc1    dsp.Phasor
	osc2    dsp.Phasor
	amp     dsp.Envelope
	snapEnv dsp.Envelope
	noise   dsp.Noise
	hp      dsp.OnePole
}

func NewTRXSnareDrum() *TRXSnareDrum {
	return &TRXSnareDrum{
		base:  base{mode: dsp.DecayIterative},
		Pitch: 180, Decay: 0.4, Snap: 0.6, Noise: 0.5,
		Tone: 0.5, Tune: 100, Bump: 0.1, Clip: 0.2,
		noise: dsp.NewNoise(0x5d),
	}
}

func (s *TRXSnareDrum) Kind() Kind { return KindTRXSnareDrum }

func (s *TRXSnareDrum) Reset() {
	s.osc1.Set(0)
	s.osc2.Set(0)
	s.amp.Reset()
	s.snapEnv.Reset()
	s.noise.Reset()
	s.hp.Reset()
	s.active = false
}

func (s *TRXSnareDrum) Trigger() {
	s.Reset()
	s.envs(&s.amp, &s.snapEnv)
	s.amp.Start(s.Decay)
	s.snapEnv.Start(trxSnapDecay)
	s.active = true
}

func (s *TRXSnareDrum) Process() float64 {
	if !s.active {
		return 0
	}
	a := s.amp.Next()
	sn := s.snapEnv.Next()

	o1 := s.osc1.Sin(s.Pitch+s.Bump*trxBumpHz*sn, 0)
	o2 := s.osc2.Sin(s.Pitch+s.Tune, 0)
	tone := (s.Tone*o1 + (1-s.Tone)*o2) * a

	snap := s.noise.Next() * s.Snap * sn
	body := s.hp.HighPass(s.noise.Next(), trxNoiseHP) * s.Noise * a

	out := softClip(tone+snap+body, s.Clip)
	if silent(s.amp.Level()) {
		s.active = false
	}
	return out
}

func (s *TRXSnareDrum) Params() []Param {
	return []Param{
		floatParam("pitch", "Pitch", &s.Pitch, 60, 400),
		floatParam("decay", "Decay", &s.Decay, 0.05, 1),
		floatParam("snap", "Snap", &s.Snap, 0, 1),
		floatParam("noise", "Noise", &s.Noise, 0, 1),
		floatParam("tone", "Tone Balance", &s.Tone, 0, 1),
		floatParam("tune", "Tune Interval", &s.Tune, 0, 400),
		floatParam("bump", "Bump", &s.Bump, 0, 1),
		floatParam("clip", "Clip", &s.Clip, 0, 1),
	}
}
