package dsp

// FMPair is a modulator/carrier operator pair with modulator self-feedback
type FMPair struct {
	Mod     Phasor
	Car     Phasor
	prevMod float64
}

// Reset places both phases and clears the feedback history
func (p *FMPair) Reset(carPhase, modPhase float64) {
	p.Car.Set(carPhase)
	p.Mod.Set(modPhase)
	p.prevMod = 0
}

// Next renders one sample of the carrier
// depth is the instantaneous modulation index, typically I·mod_env
func (p *FMPair) Next(carFreq, modFreq, feedback, depth float64) float64 {
	mod := p.Mod.Sin(modFreq, feedback*p.prevMod)
	p.prevMod = mod
	return p.Car.Sin(carFreq, depth*mod)
}

// PrevMod is the modulator output of the last sample
func (p *FMPair) PrevMod() float64 {
	return p.prevMod
}
