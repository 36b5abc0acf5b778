package voice

import (
	"testing"

	"github.com/lixenwraith/fm-drums/constant"
)

// TestClapStages verifies N short hits, one terminal decay, then silence
func TestClapStages(t *testing.T) {
	c := NewClap()
	c.Count = 3
	c.Interval = 0.012
	c.D1 = 0.02
	c.D2 = 0.3

	stageLen := int(0.012 * constant.AudioSampleRate)
	perStage := map[int]int{}
	restarts := 0

	c.Trigger()
	prev := c.amp.Level()
	n := 0
	for c.Active() && n < 10*constant.AudioSampleRate {
		perStage[c.Stage()]++
		c.Process()
		if c.amp.Level() > prev {
			restarts++
		}
		prev = c.amp.Level()
		n++
	}

	if c.Active() {
		t.Fatal("Clap never went silent")
	}
	if restarts != 3 {
		t.Errorf("Expected 3 envelope restarts, got %d", restarts)
	}
	for s := 0; s < 3; s++ {
		if perStage[s] != stageLen {
			t.Errorf("Stage %d lasted %d samples, want %d", s, perStage[s], stageLen)
		}
	}
	if perStage[3] < 10*stageLen {
		t.Errorf("Terminal stage too short: %d samples", perStage[3])
	}
	if len(perStage) != 4 {
		t.Errorf("Expected 4 stages, saw %v", perStage)
	}

	for i := 0; i < 1000; i++ {
		if s := c.Process(); s != 0 {
			t.Fatalf("Sample %d after end = %g", i, s)
		}
	}

	// Retrigger starts over from stage 0
	c.Trigger()
	if c.Stage() != 0 || !c.Active() {
		t.Errorf("Expected stage 0 and active after retrigger, got stage %d", c.Stage())
	}
}
