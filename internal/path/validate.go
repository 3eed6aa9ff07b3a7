package path

import (
	"fmt"

	"github.com/ivlev/campath/internal/timeutil"
)

// Validate checks the structural invariants of a path and returns a list
// of human-readable errors. It never panics; an empty list means the
// path is well-formed. Construction does not enforce these invariants,
// so callers invoke validation as a separate, explicit step.
func Validate(p *CameraPath) []string {
	var errs []string
	if p == nil {
		return []string{"path is nil"}
	}
	n := len(p.Waypoints)
	if n == 0 {
		return []string{"path has no waypoints"}
	}

	if !timeutil.Equal(p.Waypoints[0].Time, 0) {
		errs = append(errs, fmt.Sprintf("First waypoint must be at time 0, got %g", p.Waypoints[0].Time))
	}
	if n >= 2 && !timeutil.Equal(p.Waypoints[n-1].Time, 1) {
		errs = append(errs, fmt.Sprintf("Last waypoint must be at time 1, got %g", p.Waypoints[n-1].Time))
	}
	for i := 1; i < n; i++ {
		if !timeutil.Less(p.Waypoints[i-1].Time, p.Waypoints[i].Time) {
			errs = append(errs, fmt.Sprintf("Waypoint times must be strictly increasing: waypoint %d at %g, waypoint %d at %g",
				i-1, p.Waypoints[i-1].Time, i, p.Waypoints[i].Time))
		}
	}

	if len(p.Segments) != n-1 {
		errs = append(errs, fmt.Sprintf("Expected %d segments for %d waypoints, got %d", n-1, n, len(p.Segments)))
		return errs
	}
	for i := range p.Segments {
		seg := &p.Segments[i]
		if seg.FromID != p.Waypoints[i].ID || seg.ToID != p.Waypoints[i+1].ID {
			errs = append(errs, fmt.Sprintf("Segment %d must reference waypoints %d and %d", i, i, i+1))
		}
	}
	return errs
}
