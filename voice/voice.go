// Package voice implements the drum voices: small synthesis programs that render
// one percussive event per trigger, sample by sample.
package voice

import (
	"fmt"

	"github.com/lixenwraith/fm-drums/constant"
	"github.com/lixenwraith/fm-drums/dsp"
)

// Kind tags the closed set of voice variants
type Kind int

const (
	KindKick Kind = iota
	KindSnare
	KindTom
	KindClap
	KindRimshot
	KindCowbell
	KindCymbal
	KindTRXBassDrum
	KindTRXSnareDrum
	KindTRXClaves
	KindTRXHiHat
	kindCount
)

var kindInfo = [kindCount]struct {
	key  string
	name string
}{
	KindKick:         {"kick", "Kick"},
	KindSnare:        {"snare", "Snare"},
	KindTom:          {"tom", "Tom"},
	KindClap:         {"clap", "Clap"},
	KindRimshot:      {"rimshot", "Rimshot"},
	KindCowbell:      {"cowbell", "Cowbell"},
	KindCymbal:       {"cymbal", "Cymbal"},
	KindTRXBassDrum:  {"trx-bd", "TRX Bass Drum"},
	KindTRXSnareDrum: {"trx-sd", "TRX Snare Drum"},
	KindTRXClaves:    {"trx-claves", "TRX Claves"},
	KindTRXHiHat:     {"trx-hihat", "TRX HiHat"},
}

// Key is the stable identifier used by config and the CLI
func (k Kind) Key() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("kind-%d", int(k))
	}
	return kindInfo[k].key
}

// Name is the display name
func (k Kind) Name() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindInfo[k].name
}

func (k Kind) String() string { return k.Name() }

// Kinds lists every variant in registry order
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// KindFromKey resolves a key produced by Kind.Key
func KindFromKey(key string) (Kind, bool) {
	for i, info := range kindInfo {
		if info.key == key {
			return Kind(i), true
		}
	}
	return 0, false
}

// Voice is the closed set of drum voices; only this package implements it
//
// Parameter values are owned by the control side, run-time state by the render
// side. Trigger restarts the event from rest without touching parameters.
type Voice interface {
	Kind() Kind
	// Reset returns run-time state to silence
	Reset()
	// Trigger starts exactly one new percussive event
	Trigger()
	// Process advances one sample period and returns one sample
	Process() float64
	// Active reports whether the current event is still sounding
	Active() bool
	// Params returns descriptors in persisted field order
	Params() []Param

	DecayMode() dsp.DecayMode
	SetDecayMode(dsp.DecayMode)

	sealed()
}

// New constructs a voice with default parameters, reset to silence
func New(k Kind) (Voice, error) {
	var v Voice
	switch k {
	case KindKick:
		v = NewKick()
	case KindSnare:
		v = NewSnare()
	case KindTom:
		v = NewTom()
	case KindClap:
		v = NewClap()
	case KindRimshot:
		v = NewRimshot()
	case KindCowbell:
		v = NewCowbell()
	case KindCymbal:
		v = NewCymbal()
	case KindTRXBassDrum:
		v = NewTRXBassDrum()
	case KindTRXSnareDrum:
		v = NewTRXSnareDrum()
	case KindTRXClaves:
		v = NewTRXClaves()
	case KindTRXHiHat:
		v = NewTRXHiHat()
	default:
		return nil, fmt.Errorf("unknown voice kind %d", int(k))
	}
	v.Reset()
	return v, nil
}

// DefaultBank builds one voice of every kind in registry order
func DefaultBank() []Voice {
	bank := make([]Voice, 0, kindCount)
	for _, k := range Kinds() {
		v, _ := New(k)
		bank = append(bank, v)
	}
	return bank
}

// base carries the state every variant shares
type base struct {
	mode   dsp.DecayMode
	active bool
}

func (b *base) Active() bool                 { return b.active }
func (b *base) DecayMode() dsp.DecayMode     { return b.mode }
func (b *base) SetDecayMode(m dsp.DecayMode) { b.mode = m }
func (b *base) sealed()                      {}

// envs applies the voice's decay contract to each envelope
func (b *base) envs(envs ...*dsp.Envelope) {
	for _, e := range envs {
		e.Mode = b.mode
	}
}

// silent reports an amplitude envelope level that ends the event
func silent(level float64) bool {
	return level < constant.SilenceThreshold
}
