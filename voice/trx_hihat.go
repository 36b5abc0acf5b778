package voice

import (
	"github.com/lixenwraith/fm-drums/constant"
	"github.com/lixenwraith/fm-drums/dsp"
)

// hihatPartials are the square-wave frequencies of the metallic source
var hihatPartials = [6]float64{306, 512, 551, 743, 826, 900}

// TRXHiHat filters metallic noise and cuts it with a gap-then-fade window
type TRXHiHat struct {
	base

	Gap   float64 // time before the fade starts, s
	Decay float64
	LPF   float64
	HPF   float64
	Peak  float64 // output level
	Metal float64 // square mix against white noise

	osc     [6]dsp.Phasor
	env     dsp.Envelope
	noise   dsp.Noise
	lp      dsp.OnePole
	hp      dsp.OnePole
	elapsed int
}

func NewTRXHiHat() *TRXHiHat {
	return &TRXHiHat{
		base: base{mode: dsp.DecayIterative},
		Gap:  0.5, Decay: 0.2, LPF: 8000, HPF: 4000, Peak: 0.5, Metal: 0.7,
		noise: dsp.NewNoise(0x4a),
	}
}

func (h *TRXHiHat) Kind() Kind { return KindTRXHiHat }

func (h *TRXHiHat) Reset() {
	for i := range h.osc {
		h.osc[i].Set(0)
	}
	h.env.Reset()
	h.noise.Reset()
	h.lp.Reset()
	h.hp.Reset()
	h.elapsed = 0
	h.active = false
}

func (h *TRXHiHat) Trigger() {
	h.Reset()
	h.envs(&h.env)
	h.env.Start(h.Decay)
	h.active = true
}

func (h *TRXHiHat) metallic() float64 {
	var sq float64
	for i, f := range hihatPartials {
		sq += h.osc[i].Square(f)
	}
	return h.Metal*(sq/6) + (1-h.Metal)*h.noise.Next()
}

func (h *TRXHiHat) Process() float64 {
	if !h.active {
		return 0
	}
	h.elapsed++
	t := float64(h.elapsed) * constant.Dt
	e := h.env.Next()

	x := h.lp.LowPass(h.metallic(), h.LPF)
	y := h.hp.HighPass(x, h.HPF)

	if t > h.Gap {
		excess := t - h.Gap
		if excess >= hihatFadeTime {
			h.active = false
			return 0
		}
		e *= 1 - excess/hihatFadeTime
	}
	if silent(h.env.Level()) {
		h.active = false
	}
	return y * e * 2 * h.Peak
}

func (h *TRXHiHat) Params() []Param {
	return []Param{
		floatParam("gap", "Gap", &h.Gap, 0, 1),
		floatParam("decay", "Decay", &h.Decay, 0.01, 1),
		floatParam("lpf", "LPF Freq", &h.LPF, 1000, 12000),
		floatParam("hpf", "HPF Freq", &h.HPF, 100, 10000),
		floatParam("peak", "Peak", &h.Peak, 0, 1),
		floatParam("metal", "Metal", &h.Metal, 0, 1),
	}
}
