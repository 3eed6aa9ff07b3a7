package easing

import "math"

// Curve identifiers for the built-in catalog.
const (
	Linear        = "linear"
	Sine          = "sine"
	Quadratic     = "quadratic"
	Cubic         = "cubic"
	Quartic       = "quartic"
	Quintic       = "quintic"
	Exponential   = "exponential"
	Circular      = "circular"
	SquareRoot    = "squareroot"
	Back          = "back"
	Elastic       = "elastic"
	Bounce        = "bounce"
	Hermite       = "hermite"
	Bezier        = "bezier"
	Parabolic     = "parabolic"
	Trigonometric = "trigonometric"
	Drift         = "drift"
)

// Default returns the fixed built-in catalog. Formulas follow the
// easings.net forms for the host-compatible families.
func Default() *Registry {
	return NewRegistry(
		Curve{ID: Linear, Name: "Linear", fn: func(t float64) float64 { return t }},
		Curve{ID: Sine, Name: "Sine", HostCompatible: true, HostName: "Sine",
			fn: func(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) }},
		Curve{ID: Quadratic, Name: "Quadratic", HostCompatible: true, HostName: "Quad",
			fn: func(t float64) float64 { return t * t }},
		Curve{ID: Cubic, Name: "Cubic", HostCompatible: true, HostName: "Cubic",
			fn: func(t float64) float64 { return t * t * t }},
		Curve{ID: Quartic, Name: "Quartic", HostCompatible: true, HostName: "Quart",
			fn: func(t float64) float64 { return t * t * t * t }},
		Curve{ID: Quintic, Name: "Quintic", HostCompatible: true, HostName: "Quint",
			fn: func(t float64) float64 { return t * t * t * t * t }},
		Curve{ID: Exponential, Name: "Exponential", HostCompatible: true, HostName: "Expo",
			fn: expoIn},
		Curve{ID: Circular, Name: "Circular", HostCompatible: true, HostName: "Circ",
			fn: func(t float64) float64 { return 1 - math.Sqrt(1-t*t) }},
		Curve{ID: SquareRoot, Name: "Square Root",
			fn: func(t float64) float64 { return 1 - math.Sqrt(1-t) }},
		Curve{ID: Back, Name: "Back", HostCompatible: true, HostName: "Back",
			fn: backIn},
		Curve{ID: Elastic, Name: "Elastic", HostCompatible: true, HostName: "Elastic",
			fn: elasticIn},
		Curve{ID: Bounce, Name: "Bounce", HostCompatible: true, HostName: "Bounce",
			fn: func(t float64) float64 { return 1 - bounceOut(1-t) }},
		Curve{ID: Hermite, Name: "Hermite",
			fn: func(t float64) float64 { return t * t * (3 - 2*t) }},
		Curve{ID: Bezier, Name: "Bezier",
			fn: func(t float64) float64 { return t * t / (t*t + (1-t)*(1-t)) }},
		Curve{ID: Parabolic, Name: "Parabolic",
			fn: func(t float64) float64 { return t * t * (2 - t) }},
		Curve{ID: Trigonometric, Name: "Trigonometric",
			fn: func(t float64) float64 { return (1 - math.Cos(math.Pi*t)) / 2 }},
		Curve{ID: Drift, Name: "Drift", HostCompatible: true, Parametric: true},
	)
}

func expoIn(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return math.Pow(2, 10*t-10)
}

func backIn(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	return c3*t*t*t - c1*t*t
}

func elasticIn(t float64) float64 {
	const c4 = 2 * math.Pi / 3
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return -math.Pow(2, 10*t-10) * math.Sin((t*10-10.75)*c4)
}

func bounceOut(t float64) float64 {
	const n1 = 7.5625
	const d1 = 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}
