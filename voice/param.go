package voice

import "math"

// ParamKind distinguishes continuous from integer parameters
type ParamKind int

const (
	ParamFloat ParamKind = iota
	ParamInt
)

// Param describes one tunable value of a voice and points at its storage
// Descriptors are cheap and rebuilt on demand; they never outlive a frame
type Param struct {
	Name     string
	Label    string
	Kind     ParamKind
	Min, Max float64
	Step     float64
	FastStep float64
	// Persist is false for values that are editable but not part of the saved record
	Persist bool

	f *float64
	i *int
}

// floatParam declares a persisted continuous parameter with range-derived steps
func floatParam(name, label string, v *float64, lo, hi float64) Param {
	return Param{
		Name:     name,
		Label:    label,
		Kind:     ParamFloat,
		Min:      lo,
		Max:      hi,
		Step:     (hi - lo) / 200,
		FastStep: (hi - lo) / 20,
		Persist:  true,
		f:        v,
	}
}

func intParam(name, label string, v *int, lo, hi int) Param {
	return Param{
		Name:     name,
		Label:    label,
		Kind:     ParamInt,
		Min:      float64(lo),
		Max:      float64(hi),
		Step:     1,
		FastStep: 1,
		Persist:  true,
		i:        v,
	}
}

// Value reads the current value
func (p Param) Value() float64 {
	switch {
	case p.f != nil:
		return *p.f
	case p.i != nil:
		return float64(*p.i)
	default:
		return 0
	}
}

// Set clamps v into [Min, Max], rounds integers, stores and returns the stored value
func (p Param) Set(v float64) float64 {
	if math.IsNaN(v) {
		v = p.Min
	}
	v = math.Max(p.Min, math.Min(p.Max, v))
	switch {
	case p.f != nil:
		*p.f = v
	case p.i != nil:
		n := int(math.Round(v))
		*p.i = n
		v = float64(n)
	}
	return v
}

// Nudge moves the value by one normal or fast step in direction dir, clamped
func (p Param) Nudge(dir int, fast bool) float64 {
	step := p.Step
	if fast {
		step = p.FastStep
	}
	return p.Set(p.Value() + float64(dir)*step)
}

// Fraction is the value's position within the range, for drawing sliders
func (p Param) Fraction() float64 {
	if p.Max <= p.Min {
		return 0
	}
	return (p.Value() - p.Min) / (p.Max - p.Min)
}

// Persisted filters params down to the saved record, keeping order
func Persisted(params []Param) []Param {
	out := params[:0:0]
	for _, p := range params {
		if p.Persist {
			out = append(out, p)
		}
	}
	return out
}

// Lookup finds the descriptor of v named name
func Lookup(v Voice, name string) (Param, bool) {
	for _, p := range v.Params() {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}
