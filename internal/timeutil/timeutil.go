// Package timeutil provides the epsilon-tolerant time comparisons used
// throughout the bookmark compiler. Host-tool interoperability requires
// stable, reproducible timestamps despite floating-point drift, so every
// comparison goes through these helpers and every exported value is
// rounded first.
package timeutil

import "math"

// Epsilon is the tolerance applied to all time comparisons.
const Epsilon = 1e-6

// Equal reports |a-b| < Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Less reports a < b with at least Epsilon separation.
func Less(a, b float64) bool {
	return a < b-Epsilon
}

// LessOrEqual reports a < b or Equal(a, b).
func LessOrEqual(a, b float64) bool {
	return a < b+Epsilon
}

// Round rounds t to 6 decimal places, the precision written to the wire
// format.
func Round(t float64) float64 {
	return math.Round(t*1e6) / 1e6
}
