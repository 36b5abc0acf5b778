package voice

import (
	"math"

	"github.com/lixenwraith/fm-drums/dsp"
)

// cymbalRatios are the frequency multiples of the four operator pairs
var cymbalRatios = [4]float64{1, 1.411, 1.8, 2.7}

// cymbalTail stretches the sustain envelope relative to the main decay
const cymbalTail = 4.0

// Cymbal sums four FM pairs at inharmonic multiples of one base pair
type Cymbal struct {
	base

	FB      float64
	FM      float64
	DB      float64
	I       float64
	DM      float64
	BB      float64 // modulator feedback
	Sustain float64 // share of the slow tail
	FHP     float64

	mod    [4]dsp.Phasor
	car    [4]dsp.Phasor
	amp    dsp.Envelope
	tail   dsp.Envelope
	modEnv dsp.Envelope
	hp     dsp.OnePole
}

func NewCymbal() *Cymbal {
	return &Cymbal{
		base: base{mode: dsp.DecayExp},
		FB:   400, FM: 800, DB: 1, I: 10,
		DM: 0.2, BB: 0.5, Sustain: 0.3, FHP: 300,
	}
}

func (c *Cymbal) Kind() Kind { return KindCymbal }

func (c *Cymbal) Reset() {
	for i := range c.mod {
		c.mod[i].Set(math.Pi / 2)
		c.car[i].Set(math.Pi / 2)
	}
	c.amp.Reset()
	c.tail.Reset()
	c.modEnv.Reset()
	c.hp.Reset()
	c.active = false
}

func (c *Cymbal) Trigger() {
	c.Reset()
	c.envs(&c.amp, &c.tail, &c.modEnv)
	c.amp.Start(c.DB)
	c.tail.Start(c.DB * cymbalTail)
	c.modEnv.Start(c.DM)
	c.active = true
}

func (c *Cymbal) level(main, tail float64) float64 {
	return (1-c.Sustain)*main + c.Sustain*tail
}

func (c *Cymbal) Process() float64 {
	if !c.active {
		return 0
	}
	amp := c.level(c.amp.Next(), c.tail.Next())
	depth := c.I * c.modEnv.Next()

	var sum float64
	for i, r := range cymbalRatios {
		m := math.Sin(c.mod[i].Value())
		c.mod[i].Advance(c.FM*r, c.BB*m)

		sum += math.Sin(c.car[i].Value() + depth*m)
		c.car[i].Advance(c.FB*r, 0)
	}

	out := c.hp.HighPass(0.25*sum*amp, c.FHP)
	if silent(c.level(c.amp.Level(), c.tail.Level())) {
		c.active = false
	}
	return out
}

func (c *Cymbal) Params() []Param {
	return []Param{
		floatParam("f_b", "Base Carrier", &c.FB, 200, 800),
		floatParam("f_m", "Base Modulator", &c.FM, 200, 2000),
		floatParam("d_b", "Amp Decay", &c.DB, 0.05, 4),
		floatParam("I", "Mod Index", &c.I, 0, 30),
		floatParam("d_m", "Mod Decay", &c.DM, 0.05, 2),
		floatParam("b_b", "Mod Feedback", &c.BB, 0, 1),
		floatParam("sustain", "Sustain", &c.Sustain, 0, 1),
		floatParam("f_hp", "HPF Cutoff", &c.FHP, 100, 4000),
	}
}
