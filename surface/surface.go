// Package surface keeps the editable parameter list of the selected voice and
// its sticky focus across frames.
//
// The list is rebuilt every frame from the voice's descriptors. Descriptors
// point at live voice fields, so every call that reads or writes values must run
// under the engine lock (engine.Do).
//
// The focus index survives voice switches untouched. Rebuild clamps it to the
// new descriptor count, or to -1 when the voice has no parameters.
package surface

import (
	"github.com/lixenwraith/fm-drums/voice"
)

// Row is a drawable snapshot of one descriptor
type Row struct {
	Index    int
	Name     string
	Label    string
	Kind     voice.ParamKind
	Value    float64
	Min      float64
	Max      float64
	Fraction float64
	Focused  bool
}

// Surface is the per-frame descriptor list with one sticky focus index
type Surface struct {
	params []voice.Param
	focus  int
}

func New() *Surface {
	return &Surface{focus: -1}
}

// Rebuild replaces the descriptor list with v's and revalidates focus
func (s *Surface) Rebuild(v voice.Voice) {
	s.params = v.Params()
	switch {
	case len(s.params) == 0:
		s.focus = -1
	case s.focus >= len(s.params):
		s.focus = len(s.params) - 1
	}
}

func (s *Surface) Len() int {
	return len(s.params)
}

// Focused returns the focused index, -1 if none
func (s *Surface) Focused() int {
	return s.focus
}

// Next moves focus down one row, starting at 0 when unset
func (s *Surface) Next() {
	if len(s.params) == 0 {
		return
	}
	if s.focus < 0 {
		s.focus = 0
		return
	}
	s.focus = min(s.focus+1, len(s.params)-1)
}

// Prev moves focus up one row, starting at 0 when unset
func (s *Surface) Prev() {
	if len(s.params) == 0 {
		return
	}
	if s.focus < 0 {
		s.focus = 0
		return
	}
	s.focus = max(s.focus-1, 0)
}

// Focus sets focus directly, as a click on a row does
func (s *Surface) Focus(i int) bool {
	if i < 0 || i >= len(s.params) {
		return false
	}
	s.focus = i
	return true
}

// Clear drops focus
func (s *Surface) Clear() {
	s.focus = -1
}

// Param returns descriptor i
func (s *Surface) Param(i int) (voice.Param, bool) {
	if i < 0 || i >= len(s.params) {
		return voice.Param{}, false
	}
	return s.params[i], true
}

// Nudge steps the focused parameter and returns its new value
func (s *Surface) Nudge(dir int, fast bool) (float64, bool) {
	p, ok := s.Param(s.focus)
	if !ok {
		return 0, false
	}
	return p.Nudge(dir, fast), true
}

// Set assigns parameter i, clamped, and focuses it
func (s *Surface) Set(i int, value float64) (float64, bool) {
	if !s.Focus(i) {
		return 0, false
	}
	return s.params[i].Set(value), true
}

// SetFraction assigns parameter i from a slider position in [0,1]
func (s *Surface) SetFraction(i int, f float64) (float64, bool) {
	p, ok := s.Param(i)
	if !ok {
		return 0, false
	}
	f = min(max(f, 0), 1)
	return s.Set(i, p.Min+f*(p.Max-p.Min))
}

// Rows snapshots the list for drawing
func (s *Surface) Rows() []Row {
	rows := make([]Row, len(s.params))
	for i, p := range s.params {
		rows[i] = Row{
			Index:    i,
			Name:     p.Name,
			Label:    p.Label,
			Kind:     p.Kind,
			Value:    p.Value(),
			Min:      p.Min,
			Max:      p.Max,
			Fraction: p.Fraction(),
			Focused:  i == s.focus,
		}
	}
	return rows
}
