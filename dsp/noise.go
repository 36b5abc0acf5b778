package dsp

import "math/rand/v2"

const noiseStream = 0x9e3779b97f4a7c15

// Noise is a uniform [-1,1] source, reproducible from its seed
// It is a plain value so copying a voice snapshots its noise position too
type Noise struct {
	seed uint64
	src  rand.PCG
}

func NewNoise(seed uint64) Noise {
	n := Noise{seed: seed}
	n.Reset()
	return n
}

// Reset rewinds the sequence to its seed
func (n *Noise) Reset() {
	n.src.Seed(n.seed, n.seed^noiseStream)
}

// Next returns the next sample in [-1, 1]
func (n *Noise) Next() float64 {
	// 53 random bits mapped onto [0,1]
	u := float64(n.src.Uint64()>>11) / float64(1<<53-1)
	return 2*u - 1
}
