package engine

import (
	"sync"
	"testing"

	"github.com/lixenwraith/fm-drums/voice"
)

// TestConcurrentControlAndRender exercises the bridge from both contexts
// Run with -race to verify lock and atomic coverage.
func TestConcurrentControlAndRender(t *testing.T) {
	e := NewDefault()

	var wg sync.WaitGroup
	stop := make(chan struct{})
	iterations := 200

	// Render context
	wg.Add(1)
	go func() {
		defer wg.Done()
		buf := make([][2]float64, 256)
		for {
			select {
			case <-stop:
				return
			default:
				e.Stream(buf)
			}
		}
	}()

	// Visualization reader
	wg.Add(1)
	go func() {
		defer wg.Done()
		dst := make([]float32, 512)
		for {
			select {
			case <-stop:
				return
			default:
				e.Tap().Snapshot(dst)
				_ = e.Tap().Peak()
			}
		}
	}()

	// Control context
	for i := 0; i < iterations; i++ {
		_ = e.Select(i % e.Len())
		e.RequestTrigger()
		e.Do(func(v voice.Voice) {
			for _, p := range v.Params() {
				p.Nudge(1, i%2 == 0)
			}
		})
		_ = e.Selected()
	}

	close(stop)
	wg.Wait()

	e.WithVoices(func(vs []voice.Voice) {
		for _, v := range vs {
			for _, p := range v.Params() {
				if val := p.Value(); val < p.Min || val > p.Max {
					t.Errorf("%v: %s = %g out of range", v.Kind(), p.Name, val)
				}
			}
		}
	})
}
