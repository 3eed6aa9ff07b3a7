// Package easing implements the curve catalog used by camera path
// segments. Every curve maps a normalized input t in [0,1] to an output
// that is usually in [0,1] but may overshoot (back, elastic); callers
// clamp the input themselves, the curves never panic on out-of-range t.
package easing

import "math"

// Direction selects which end of a transition is slow.
type Direction string

const (
	EaseIn   Direction = "easein"
	EaseOut  Direction = "easeout"
	EaseBoth Direction = "easeboth"
)

// Directions lists the valid values for validation and CLI help text.
var Directions = []Direction{EaseIn, EaseOut, EaseBoth}

// IsValidDirection checks if the given direction is a known value.
func IsValidDirection(d Direction) bool {
	for _, v := range Directions {
		if d == v {
			return true
		}
	}
	return false
}

// Params carries the two drift axis strengths, each expected in [0,10].
type Params struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Curve is one immutable catalog entry. The base function fn is the
// ease-in shape; Calculate derives the other directions from it.
type Curve struct {
	ID   string
	Name string

	// HostCompatible reports whether the host tool's naming scheme can
	// express this curve; HostName is its short display name there
	// (e.g. "Quad", "Expo"). Parametric marks the drift family, which
	// formats as ease_<x>_<y> instead of a named token.
	HostCompatible bool
	HostName       string
	Parametric     bool

	fn func(t float64) float64
}

// Calculate maps t through the curve under the given direction. The
// drift family ignores the direction: its piecewise shape already bakes
// in the ease-both split, an exemption preserved from the host tool.
func (c Curve) Calculate(t float64, dir Direction, params *Params) float64 {
	if c.Parametric {
		return driftCalc(t, params)
	}
	if c.fn == nil {
		return t
	}
	switch dir {
	case EaseOut:
		return 1 - c.fn(1-t)
	case EaseBoth:
		if t < 0.5 {
			return c.fn(2*t) / 2
		}
		return 1 - c.fn(2*(1-t))/2
	default:
		return c.fn(t)
	}
}

// driftCalc is the parametric two-axis curve: the rise half steepens
// with X, the fall half with Y. Axis values outside [0,10] are clamped.
func driftCalc(t float64, params *Params) float64 {
	x, y := 1.0, 1.0
	if params != nil {
		x = clamp(params.X, 0, 10)
		y = clamp(params.Y, 0, 10)
	}
	rise := 1 + x/2
	fall := 1 + y/2
	if t < 0.5 {
		return math.Pow(2*t, rise) / 2
	}
	return 1 - math.Pow(2*(1-t), fall)/2
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Registry is an immutable string-keyed curve catalog. It is passed
// explicitly into the parser, formatter and interpolator so tests can
// swap the curve set.
type Registry struct {
	curves []Curve
	byID   map[string]Curve
	byHost map[string]Curve
}

// NewRegistry builds a registry from the given curves. Later duplicates
// of an ID win, matching map assignment order.
func NewRegistry(curves ...Curve) *Registry {
	r := &Registry{
		curves: append([]Curve(nil), curves...),
		byID:   make(map[string]Curve, len(curves)),
		byHost: make(map[string]Curve, len(curves)),
	}
	for _, c := range curves {
		r.byID[c.ID] = c
		if c.HostCompatible && c.HostName != "" {
			r.byHost[c.HostName] = c
		}
	}
	return r
}

// Lookup finds a curve by identifier. Unknown identifiers are a
// recoverable condition, never a panic.
func (r *Registry) Lookup(id string) (Curve, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// LookupHost finds a curve by its host tool short name ("Quad").
func (r *Registry) LookupHost(name string) (Curve, bool) {
	c, ok := r.byHost[name]
	return c, ok
}

// Curves returns the catalog in registration order.
func (r *Registry) Curves() []Curve {
	return append([]Curve(nil), r.curves...)
}
