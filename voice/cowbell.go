package voice

import (
	"math"

	"github.com/lixenwraith/fm-drums/dsp"
)

// cowbellRatio places the second carrier at an inharmonic interval above the first
const cowbellRatio = 1.48

// Cowbell drives two inharmonic carriers from one feedback modulator
type Cowbell struct {
	base

	FA float64 // first carrier frequency
	D1 float64 // attack decay
	D2 float64 // body decay
	FM float64
	I  float64
	DM float64
	BM float64
	A1 float64 // attack share of the amplitude envelope

	mod     dsp.Phasor
	carA    dsp.Phasor
	carB    dsp.Phasor
	prevMod float64
	env1    dsp.Envelope
	env2    dsp.Envelope
	modEnv  dsp.Envelope
}

func NewCowbell() *Cowbell {
	return &Cowbell{
		base: base{mode: dsp.DecayExp},
		FA:   540, D1: 0.015, D2: 0.1, FM: 2000,
		I: 15, DM: 0.1, BM: 0.3, A1: 0.7,
	}
}

func (c *Cowbell) Kind() Kind { return KindCowbell }

func (c *Cowbell) Reset() {
	c.mod.Set(0)
	c.carA.Set(math.Pi / 2)
	c.carB.Set(math.Pi / 2)
	c.prevMod = 0
	c.env1.Reset()
	c.env2.Reset()
	c.modEnv.Reset()
	c.active = false
}

func (c *Cowbell) Trigger() {
	c.Reset()
	c.envs(&c.env1, &c.env2, &c.modEnv)
	c.env1.Start(c.D1)
	c.env2.Start(c.D2)
	c.modEnv.Start(c.DM)
	c.active = true
}

func (c *Cowbell) level(e1, e2 float64) float64 {
	return c.A1*e1 + (1-c.A1)*e2
}

func (c *Cowbell) Process() float64 {
	if !c.active {
		return 0
	}
	amp := c.level(c.env1.Next(), c.env2.Next())
	me := c.modEnv.Next()

	m := c.mod.Sin(c.FM, c.BM*c.prevMod)
	c.prevMod = m
	depth := c.I * me * m

	a := c.carA.Sin(c.FA, depth)
	b := c.carB.Sin(c.FA*cowbellRatio, depth)

	out := (a + b) * 0.5 * amp
	if silent(c.level(c.env1.Level(), c.env2.Level())) {
		c.active = false
	}
	return out
}

func (c *Cowbell) Params() []Param {
	return []Param{
		floatParam("f_a", "Carrier Freq", &c.FA, 200, 1000),
		floatParam("d_1", "Attack Decay", &c.D1, 0.005, 0.2),
		floatParam("d_2", "Body Decay", &c.D2, 0.01, 1),
		floatParam("f_m", "Mod Freq", &c.FM, 500, 3000),
		floatParam("I", "Mod Index", &c.I, 0, 100),
		floatParam("d_m", "Mod Decay", &c.DM, 0.01, 1),
		floatParam("b_m", "Mod Feedback", &c.BM, 0, 1),
		floatParam("A_1", "Attack Level", &c.A1, 0, 1),
	}
}
