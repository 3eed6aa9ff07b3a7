// Package interp walks a camera path at a global time and produces
// interpolated positions. It is called once per rendered frame by the
// preview layer, so the segment lookup and position math avoid
// allocating.
package interp

import (
	"gonum.org/v1/gonum/floats"

	"github.com/ivlev/campath/internal/easing"
	"github.com/ivlev/campath/internal/mathutil"
	"github.com/ivlev/campath/internal/path"
)

// DefaultPosition is returned for paths with no waypoints. It matches
// the command grammar's fixed look-at target so both fallbacks agree.
var DefaultPosition = mathutil.Vec3{X: 0, Y: 1.7, Z: 0}

// Result is one interpolation sample. LocalTime is the pre-easing local
// time within the active segment; GlobalTime is the clamped input.
type Result struct {
	Position     mathutil.Vec3
	Segment      *path.Segment
	SegmentIndex int
	LocalTime    float64
	GlobalTime   float64
}

// FindSegmentAtTime clamps t to [0,1] and locates the active segment,
// returning its index and the local time remapped into [0,1]. A t
// exactly at a shared boundary resolves to the earlier segment at local
// time 1, not the later segment at local time 0. Paths without segments
// return index -1.
func FindSegmentAtTime(p *path.CameraPath, t float64) (int, float64) {
	if len(p.Segments) == 0 || len(p.Waypoints) < 2 {
		return -1, 0
	}
	if t <= 0 {
		return 0, 0
	}
	if t >= 1 {
		return len(p.Segments) - 1, 1
	}
	for i := range p.Segments {
		from := p.Waypoints[i].Time
		to := p.Waypoints[i+1].Time
		if t > to {
			continue
		}
		span := to - from
		if span <= 0 {
			return i, 1
		}
		return i, (t - from) / span
	}
	return len(p.Segments) - 1, 1
}

// Interpolate samples the path at global time t. Degenerate paths fall
// back without easing: zero waypoints yield DefaultPosition, a single
// waypoint yields its position for any time. Unknown curve identifiers
// degrade to a linear transition.
func Interpolate(p *path.CameraPath, reg *easing.Registry, t float64) Result {
	clamped := clamp01(t)
	switch len(p.Waypoints) {
	case 0:
		return Result{Position: DefaultPosition, SegmentIndex: -1, GlobalTime: clamped}
	case 1:
		return Result{Position: p.Waypoints[0].Position, SegmentIndex: -1, GlobalTime: clamped}
	}

	idx, local := FindSegmentAtTime(p, clamped)
	if idx < 0 {
		return Result{Position: p.Waypoints[0].Position, SegmentIndex: -1, GlobalTime: clamped}
	}
	seg := &p.Segments[idx]

	eased := local
	if seg.EasingEnabled {
		if curve, ok := reg.Lookup(seg.CurveID); ok {
			eased = curve.Calculate(local, seg.Direction, seg.DriftParams)
		}
	}

	from := p.Waypoints[idx].Position
	to := p.Waypoints[idx+1].Position
	return Result{
		Position:     mathutil.Lerp(from, to, eased),
		Segment:      seg,
		SegmentIndex: idx,
		LocalTime:    local,
		GlobalTime:   clamped,
	}
}

// PreviewPoints samples steps+1 evenly spaced global times and returns
// their positions for path visualization.
func PreviewPoints(p *path.CameraPath, reg *easing.Registry, steps int) []mathutil.Vec3 {
	if steps < 1 {
		steps = 1
	}
	times := floats.Span(make([]float64, steps+1), 0, 1)
	points := make([]mathutil.Vec3, len(times))
	for i, t := range times {
		points[i] = Interpolate(p, reg, t).Position
	}
	return points
}

// GraphPoint is one sample of a segment's easing curve: X in the global
// time domain, Y in the eased output domain.
type GraphPoint struct {
	X float64
	Y float64
}

// GraphPoints returns, per segment, pointsPerSegment+1 samples so a 2D
// graph can render every segment's easing curve stacked along the
// timeline. Overshooting curves produce Y values outside [0,1]; they are
// preserved, not clamped.
func GraphPoints(p *path.CameraPath, reg *easing.Registry, pointsPerSegment int) [][]GraphPoint {
	if pointsPerSegment < 1 {
		pointsPerSegment = 1
	}
	out := make([][]GraphPoint, len(p.Segments))
	for i := range p.Segments {
		seg := &p.Segments[i]
		from := p.Waypoints[i].Time
		to := p.Waypoints[i+1].Time

		var curve easing.Curve
		haveCurve := false
		if seg.EasingEnabled {
			curve, haveCurve = reg.Lookup(seg.CurveID)
		}

		samples := make([]GraphPoint, pointsPerSegment+1)
		for j := range samples {
			local := float64(j) / float64(pointsPerSegment)
			y := local
			if haveCurve {
				y = curve.Calculate(local, seg.Direction, seg.DriftParams)
			}
			samples[j] = GraphPoint{X: from + (to-from)*local, Y: y}
		}
		out[i] = samples
	}
	return out
}

// SegmentBoundaries returns the waypoint times.
func SegmentBoundaries(p *path.CameraPath) []float64 {
	times := make([]float64, len(p.Waypoints))
	for i := range p.Waypoints {
		times[i] = p.Waypoints[i].Time
	}
	return times
}

// PathLength sums the Euclidean distances between consecutive waypoints.
// This is the straight-line approximation, not the eased arc length.
func PathLength(p *path.CameraPath) float64 {
	if len(p.Waypoints) < 2 {
		return 0
	}
	dists := make([]float64, len(p.Waypoints)-1)
	for i := range dists {
		dists[i] = p.Waypoints[i].Position.Dist(p.Waypoints[i+1].Position)
	}
	return floats.Sum(dists)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
