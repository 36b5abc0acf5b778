package voice

import "github.com/lixenwraith/fm-drums/dsp"

// TRXClaves is a pair of short detuned sines
type TRXClaves struct {
	base

	Pitch    float64
	Interval float64
	Decay    float64
	Balance  float64
	Clip     float64

	osc1 dsp.Phasor
	osc2 dsp.Phasor
	env  dsp.Envelope
}

func NewTRXClaves() *TRXClaves {
	return &TRXClaves{
		base:  base{mode: dsp.DecayIterative},
		Pitch: 600, Interval: 200, Decay: 0.1, Balance: 0.5, Clip: 0.2,
	}
}

func (c *TRXClaves) Kind() Kind { return KindTRXClaves }

func (c *TRXClaves) Reset() {
	c.osc1.Set(0)
	c.osc2.Set(0)
	c.env.Reset()
	c.active = false
}

func (c *TRXClaves) Trigger() {
	c.Reset()
	c.envs(&c.env)
	c.env.Start(c.Decay)
	c.active = true
}

func (c *TRXClaves) Process() float64 {
	if !c.active {
		return 0
	}
	e := c.env.Next()
	o1 := c.osc1.Sin(c.Pitch, 0)
	o2 := c.osc2.Sin(c.Pitch+c.Interval, 0)

	out := softClip((c.Balance*o1+(1-c.Balance)*o2)*e, c.Clip)
	if silent(c.env.Level()) {
		c.active = false
	}
	return out
}

func (c *TRXClaves) Params() []Param {
	return []Param{
		floatParam("pitch", "Pitch", &c.Pitch, 200, 4000),
		floatParam("interval", "Interval", &c.Interval, 0, 400),
		floatParam("decay", "Decay", &c.Decay, 0.01, 0.5),
		floatParam("balance", "Balance", &c.Balance, 0, 1),
		floatParam("clip", "Clip", &c.Clip, 0, 1),
	}
}
