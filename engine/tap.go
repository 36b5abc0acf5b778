package engine

import (
	"math"
	"sync/atomic"
)

const DefaultTapSize = 4096

// Tap is a single-producer ring of recent output samples plus a peak meter
// The render callback writes; any number of readers take snapshots without locking.
type Tap struct {
	buf  []atomic.Uint32 // float32 bits
	mask uint64
	head atomic.Uint64 // total samples written
	peak atomic.Uint64 // float64 bits of the last buffer's peak
}

// NewTap allocates a ring, rounding size up to a power of two
func NewTap(size int) *Tap {
	n := 1
	for n < size {
		n <<= 1
	}
	return &Tap{
		buf:  make([]atomic.Uint32, n),
		mask: uint64(n - 1),
	}
}

// Write appends the left channel of samples and updates the peak
func (t *Tap) Write(samples [][2]float64) {
	head := t.head.Load()
	var peak float64
	for i, s := range samples {
		t.buf[(head+uint64(i))&t.mask].Store(math.Float32bits(float32(s[0])))
		peak = max(peak, math.Abs(s[0]))
	}
	t.head.Store(head + uint64(len(samples)))
	t.peak.Store(math.Float64bits(peak))
}

// Snapshot copies the most recent samples into dst, oldest first, and returns the count
func (t *Tap) Snapshot(dst []float32) int {
	head := t.head.Load()
	n := min(uint64(len(dst)), head, uint64(len(t.buf)))
	start := head - n
	for i := uint64(0); i < n; i++ {
		dst[i] = math.Float32frombits(t.buf[(start+i)&t.mask].Load())
	}
	return int(n)
}

// Peak returns the absolute peak of the most recent buffer
func (t *Tap) Peak() float64 {
	return math.Float64frombits(t.peak.Load())
}

// Written returns the total number of samples fed so far
func (t *Tap) Written() uint64 {
	return t.head.Load()
}
