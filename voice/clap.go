package voice

import (
	"math"

	"github.com/lixenwraith/fm-drums/constant"
	"github.com/lixenwraith/fm-drums/dsp"
)

// Clap repeats a short FM burst Count times, then rings out once with a longer decay
type Clap struct {
	base

	FB       float64
	FM       float64
	I        float64
	DM       float64
	D1       float64 // pre-clap decay
	D2       float64 // final clap decay
	Count    int     // number of pre-claps
	Interval float64 // pre-clap spacing, s
	FHP      float64
	BM       float64

	op  dsp.FMPair
	amp dsp.Envelope
	mod dsp.Envelope
	hp  dsp.OnePole

	stage    int // 0..Count-1 pre-claps, Count is the final decay
	elapsed  int // samples into the current stage
	stageLen int
}

func NewClap() *Clap {
	return &Clap{
		base: base{mode: dsp.DecayExp},
		FB:   800, FM: 800, I: 40, DM: 0.05,
		D1: 0.02, D2: 0.3, Count: 3, Interval: 0.012,
		FHP: 400, BM: 0.9,
	}
}

func (c *Clap) Kind() Kind { return KindClap }

func (c *Clap) Reset() {
	c.op.Reset(math.Pi/2, math.Pi/2)
	c.amp.Reset()
	c.mod.Reset()
	c.hp.Reset()
	c.stage = 0
	c.elapsed = 0
	c.active = false
}

func (c *Clap) Trigger() {
	c.Reset()
	c.envs(&c.amp, &c.mod)
	c.startStage()
	c.active = true
}

// startStage restarts both envelopes for the current stage
func (c *Clap) startStage() {
	decay := c.D2
	if c.stage < c.Count {
		decay = c.D1
	}
	c.amp.Start(decay)
	c.mod.Start(c.DM)
	c.elapsed = 0
	c.stageLen = max(1, int(math.Round(c.Interval*constant.AudioSampleRate)))
}

func (c *Clap) Process() float64 {
	if !c.active {
		return 0
	}
	a := c.amp.Next()
	m := c.mod.Next()

	tone := c.op.Next(c.FB, c.FM, c.BM, c.I*m)
	out := c.hp.HighPass(tone*a, c.FHP)

	c.elapsed++
	if c.stage < c.Count {
		if c.elapsed >= c.stageLen {
			c.stage++
			c.startStage()
		}
	} else if silent(c.amp.Level()) {
		c.active = false
	}
	return out
}

// Stage reports the current stage, Count meaning the final decay
func (c *Clap) Stage() int {
	return c.stage
}

func (c *Clap) Params() []Param {
	return []Param{
		floatParam("f_b", "Base Freq", &c.FB, 400, 1200),
		floatParam("f_m", "Mod Freq", &c.FM, 100, 3000),
		floatParam("I", "Mod Index", &c.I, 0, 100),
		floatParam("d_m", "Mod Decay", &c.DM, 0.01, 1),
		floatParam("d1", "Pre-Clap Decay", &c.D1, 0.005, 0.2),
		floatParam("d2", "Final Clap Decay", &c.D2, 0.01, 0.6),
		intParam("clap_count", "Clap Count", &c.Count, 1, 6),
		floatParam("clap_interval", "Clap Interval", &c.Interval, 0.005, 0.05),
		floatParam("fhp", "High-Pass Cutoff", &c.FHP, 20, 2000),
		floatParam("bm", "Mod Feedback", &c.BM, 0, 1),
	}
}
