package dsp

import (
	"math"

	"github.com/lixenwraith/fm-drums/constant"
)

// OnePole is a single-memory recursive filter usable as low-pass or high-pass
// One instance must be used in one mode only; the memory is shared
type OnePole struct {
	cutoff float64
	alpha  float64
	xPrev  float64
	yPrev  float64
}

func (f *OnePole) coeff(cutoff float64) float64 {
	if cutoff != f.cutoff || f.alpha == 0 {
		f.cutoff = cutoff
		f.alpha = math.Exp(-constant.TwoPi * cutoff * constant.Dt)
	}
	return f.alpha
}

// LowPass computes y[n] = (1-α)x[n] + αy[n-1]
func (f *OnePole) LowPass(x, cutoff float64) float64 {
	a := f.coeff(cutoff)
	y := (1-a)*x + a*f.yPrev
	f.xPrev = x
	f.yPrev = y
	return y
}

// HighPass computes y[n] = α(y[n-1] + x[n] - x[n-1])
func (f *OnePole) HighPass(x, cutoff float64) float64 {
	a := f.coeff(cutoff)
	y := a * (f.yPrev + x - f.xPrev)
	f.xPrev = x
	f.yPrev = y
	return y
}

// Reset clears filter memory, keeping the cached coefficient
func (f *OnePole) Reset() {
	f.xPrev = 0
	f.yPrev = 0
}
