package voice

import (
	"math"
	"testing"

	"github.com/lixenwraith/fm-drums/constant"
	"github.com/lixenwraith/fm-drums/dsp"
)

// render triggers v and collects n samples
func render(v Voice, n int) []float64 {
	v.Trigger()
	out := make([]float64, n)
	for i := range out {
		out[i] = v.Process()
	}
	return out
}

// ampEnvelope exposes the main amplitude envelope of a voice for inspection
func ampEnvelope(v Voice) *dsp.Envelope {
	switch x := v.(type) {
	case *Kick:
		return &x.amp
	case *Snare:
		return &x.amp
	case *Tom:
		return &x.amp
	case *Clap:
		return &x.amp
	case *Rimshot:
		return &x.envRim
	case *Cowbell:
		return &x.env1
	case *Cymbal:
		return &x.amp
	case *TRXBassDrum:
		return &x.env
	case *TRXSnareDrum:
		return &x.amp
	case *TRXClaves:
		return &x.env
	case *TRXHiHat:
		return &x.env
	}
	return nil
}

// TestDefaultBankOrder verifies registry order and kinds
func TestDefaultBankOrder(t *testing.T) {
	bank := DefaultBank()
	if len(bank) != 11 {
		t.Fatalf("Expected 11 voices, got %d", len(bank))
	}
	for i, v := range bank {
		if v.Kind() != Kind(i) {
			t.Errorf("Voice %d has kind %v", i, v.Kind())
		}
	}
}

// TestKindKeys verifies every key resolves back to its kind
func TestKindKeys(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := KindFromKey(k.Key())
		if !ok || got != k {
			t.Errorf("KindFromKey(%q) = %v, %v", k.Key(), got, ok)
		}
	}
	if _, ok := KindFromKey("gong"); ok {
		t.Error("Expected unknown key to fail")
	}
	if _, err := New(kindCount); err == nil {
		t.Error("Expected error for unknown kind")
	}
}

// TestPersistedFieldCounts verifies the saved record width of each voice
func TestPersistedFieldCounts(t *testing.T) {
	want := []int{8, 8, 7, 10, 9, 8, 8, 8, 8, 5, 6}
	for i, v := range DefaultBank() {
		if got := len(Persisted(v.Params())); got != want[i] {
			t.Errorf("%v: expected %d persisted fields, got %d", v.Kind(), want[i], got)
		}
	}
}

// TestResetIsSilent verifies every voice is quiet right after Reset
func TestResetIsSilent(t *testing.T) {
	for _, v := range DefaultBank() {
		v.Trigger()
		for i := 0; i < 100; i++ {
			v.Process()
		}
		v.Reset()
		for i := 0; i < 10; i++ {
			if s := v.Process(); math.Abs(s) > 1e-12 {
				t.Errorf("%v: sample %d after reset = %g", v.Kind(), i, s)
				break
			}
		}
		if v.Active() {
			t.Errorf("%v: active after reset", v.Kind())
		}
	}
}

// TestFiniteOutput verifies no NaN or Inf at range extremes and across retriggers
func TestFiniteOutput(t *testing.T) {
	assignments := map[string]func(p Param) float64{
		"min":     func(p Param) float64 { return p.Min },
		"max":     func(p Param) float64 { return p.Max },
		"default": func(p Param) float64 { return p.Value() },
	}

	for name, pick := range assignments {
		for _, v := range DefaultBank() {
			for _, mode := range []dsp.DecayMode{dsp.DecayExp, dsp.DecayIterative} {
				v.SetDecayMode(mode)
				for _, p := range v.Params() {
					p.Set(pick(p))
				}
				for trig := 0; trig < 3; trig++ {
					for i, s := range render(v, constant.AudioSampleRate/4) {
						if math.IsNaN(s) || math.IsInf(s, 0) {
							t.Fatalf("%s/%v/%v: non-finite sample %d on trigger %d", name, v.Kind(), mode, i, trig)
						}
					}
				}
			}
		}
	}
}

// TestEnvelopeNeverRises verifies the amplitude envelope of single-stage voices in iterative mode
func TestEnvelopeNeverRises(t *testing.T) {
	for _, v := range DefaultBank() {
		if v.Kind() == KindClap {
			continue // restarts per stage by design
		}
		v.SetDecayMode(dsp.DecayIterative)
		for _, p := range v.Params() {
			if p.Name == "decay" || p.Name == "d_b" || p.Name == "d_rim" || p.Name == "d_1" {
				p.Set(p.Min)
			}
		}

		env := ampEnvelope(v)
		v.Trigger()
		prev := env.Level()
		for i := 0; i < constant.AudioSampleRate; i++ {
			v.Process()
			if env.Level() > prev {
				t.Fatalf("%v: envelope rose at sample %d", v.Kind(), i)
			}
			prev = env.Level()
		}
	}
}

// TestTriggerKeepsParams verifies parameter edits survive retriggering
func TestTriggerKeepsParams(t *testing.T) {
	for _, v := range DefaultBank() {
		p := v.Params()[0]
		want := p.Set((p.Min + p.Max) / 3)
		v.Trigger()
		v.Process()
		v.Trigger()
		if got := v.Params()[0].Value(); got != want {
			t.Errorf("%v: %s = %g after trigger, want %g", v.Kind(), p.Name, got, want)
		}
	}
}

// TestTriggerDeterministic verifies two hits with equal params render identically
func TestTriggerDeterministic(t *testing.T) {
	for _, v := range DefaultBank() {
		a := render(v, 2048)
		b := render(v, 2048)
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("%v: sample %d differs between hits (%g vs %g)", v.Kind(), i, a[i], b[i])
				break
			}
		}
	}
}

// TestVoicesReturnToIdle verifies every voice ends its event on its own
func TestVoicesReturnToIdle(t *testing.T) {
	limit := 60 * constant.AudioSampleRate

	for _, v := range DefaultBank() {
		v.Trigger()
		if !v.Active() {
			t.Fatalf("%v: inactive right after trigger", v.Kind())
		}
		n := 0
		for v.Active() && n < limit {
			v.Process()
			n++
		}
		if v.Active() {
			t.Errorf("%v: still active after %d samples", v.Kind(), limit)
			continue
		}
		if s := v.Process(); s != 0 {
			t.Errorf("%v: idle voice produced %g", v.Kind(), s)
		}
	}
}

// TestDecayModeApplied verifies the configured contract reaches the envelopes on trigger
func TestDecayModeApplied(t *testing.T) {
	k := NewKick()
	if k.DecayMode() != dsp.DecayExp {
		t.Fatalf("Expected kick to default to exp, got %v", k.DecayMode())
	}
	k.SetDecayMode(dsp.DecayIterative)
	k.Trigger()
	for _, e := range []*dsp.Envelope{&k.amp, &k.mod, &k.freq} {
		if e.Mode != dsp.DecayIterative {
			t.Errorf("Expected iterative envelope, got %v", e.Mode)
		}
	}
}

// TestSnapshotIsIndependent verifies a copied voice renders on without touching its source
func TestSnapshotIsIndependent(t *testing.T) {
	s := NewSnare()
	s.Trigger()
	for i := 0; i < 100; i++ {
		s.Process()
	}
	snap := *s
	a := s.Process()
	b := snap.Process()
	if a != b {
		t.Errorf("Snapshot diverged: %g vs %g", a, b)
	}
}
