package voice

import (
	"math"

	"github.com/lixenwraith/fm-drums/dsp"
)

// Modulator ratios and feedback of the two rimshot operator pairs
const (
	rimModRatio  = 2.37
	bodyModRatio = 1.53
	rimFeedback  = 0.5
)

// Rimshot mixes a bright rim FM pair with a lower body FM pair, high-passed
type Rimshot struct {
	base

	FRim  float64
	DRim  float64
	IRim  float64
	FBody float64
	DBody float64
	IBody float64
	Mix   float64 // body share of the mix
	DM    float64
	FHP   float64

	rim     dsp.FMPair
	body    dsp.FMPair
	envRim  dsp.Envelope
	envBody dsp.Envelope
	mod     dsp.Envelope
	hp      dsp.OnePole
}

func NewRimshot() *Rimshot {
	return &Rimshot{
		base: base{mode: dsp.DecayExp},
		FRim: 600, DRim: 0.05, IRim: 15,
		FBody: 200, DBody: 0.25, IBody: 10,
		Mix: 0.4, DM: 0.05, FHP: 400,
	}
}

func (r *Rimshot) Kind() Kind { return KindRimshot }

func (r *Rimshot) Reset() {
	r.rim.Reset(math.Pi/2, math.Pi/2)
	r.body.Reset(math.Pi/2, math.Pi/2)
	r.envRim.Reset()
	r.envBody.Reset()
	r.mod.Reset()
	r.hp.Reset()
	r.active = false
}

func (r *Rimshot) Trigger() {
	r.Reset()
	r.envs(&r.envRim, &r.envBody, &r.mod)
	r.envRim.Start(r.DRim)
	r.envBody.Start(r.DBody)
	r.mod.Start(r.DM)
	r.active = true
}

func (r *Rimshot) Process() float64 {
	if !r.active {
		return 0
	}
	er := r.envRim.Next()
	eb := r.envBody.Next()
	m := r.mod.Next()

	rim := r.rim.Next(r.FRim, r.FRim*rimModRatio, rimFeedback, r.IRim*m) * er
	body := r.body.Next(r.FBody, r.FBody*bodyModRatio, rimFeedback, r.IBody*m) * eb
	mixed := (1-r.Mix)*rim + r.Mix*body

	out := r.hp.HighPass(mixed, r.FHP)
	if silent(max(r.envRim.Level(), r.envBody.Level())) {
		r.active = false
	}
	return out
}

func (r *Rimshot) Params() []Param {
	return []Param{
		floatParam("f_rim", "Rim Freq", &r.FRim, 200, 1000),
		floatParam("d_rim", "Rim Decay", &r.DRim, 0.01, 0.5),
		floatParam("I_rim", "Rim Mod Index", &r.IRim, 0, 50),
		floatParam("f_body", "Body Freq", &r.FBody, 80, 400),
		floatParam("d_body", "Body Decay", &r.DBody, 0.01, 1),
		floatParam("I_body", "Body Mod Index", &r.IBody, 0, 50),
		floatParam("mix", "Body Mix", &r.Mix, 0, 1),
		floatParam("d_m", "Mod Env Decay", &r.DM, 0.01, 0.5),
		floatParam("f_hp", "HPF Cutoff", &r.FHP, 100, 2000),
	}
}
