package bookmark

import (
	"sort"

	"github.com/ivlev/campath/internal/command"
	"github.com/ivlev/campath/internal/easing"
	"github.com/ivlev/campath/internal/mathutil"
	"github.com/ivlev/campath/internal/path"
	"github.com/ivlev/campath/internal/timeutil"
)

// Import compiles a wire document into a path. Malformed or unparseable
// structures return nil rather than panicking; use ValidateFile to learn
// why a document was rejected.
//
// The first point definition supplies the waypoints. Total duration is
// the last point's timestamp and every point time is renormalized to
// [0,1]. Segments are auto-generated with a default easing, then each
// AssignPathAnimation event is matched to the segment whose start and
// end locate consecutive waypoints, and that segment's easing is
// overwritten from the event. An easeLinear/linear token disables easing
// and stops further parsing for that segment.
func Import(f *File, reg *easing.Registry) *path.CameraPath {
	if f == nil || f.CustomData == nil || len(f.CustomData.PointDefinitions) == 0 {
		return nil
	}
	pd := f.CustomData.PointDefinitions[0]
	if len(pd.Points) < 2 {
		return nil
	}
	for _, pt := range pd.Points {
		if len(pt) < 4 {
			return nil
		}
	}

	totalSec := pd.Points[len(pd.Points)-1][3]
	if totalSec <= 0 {
		return nil
	}

	waypoints := make([]path.Waypoint, len(pd.Points))
	for i, pt := range pd.Points {
		waypoints[i] = path.Waypoint{
			ID:       path.NewID(),
			Position: mathutil.Vec3{X: pt[0], Y: pt[1], Z: pt[2]},
			Time:     pt[3] / totalSec,
		}
	}

	// Bookmark markers carry the verbatim command text for the waypoint
	// at their timestamp.
	for _, bm := range f.CustomData.Bookmarks {
		if i := findWaypointAtTime(waypoints, bm.Time/totalSec); i >= 0 {
			waypoints[i].RawCommand = bm.Name
			if waypoints[i].Name == "" {
				waypoints[i].Name = bm.Name
			}
		}
	}

	segments := path.ComputeSegments(reg, waypoints)

	for _, ev := range f.CustomData.CustomEvents {
		if ev.Type != EventTypeAssignPath {
			continue
		}
		duration := 0.0
		if ev.Data.Duration != nil {
			duration = *ev.Data.Duration
		}
		from := findWaypointAtTime(waypoints, ev.Time/totalSec)
		to := findWaypointAtTime(waypoints, (ev.Time+duration)/totalSec)
		if from < 0 || to != from+1 {
			continue
		}
		applyEventEasing(reg, &segments[from], ev.Data.Easing)
	}

	return &path.CameraPath{
		ID:               path.NewID(),
		Name:             pd.Name,
		Waypoints:        waypoints,
		Segments:         segments,
		DurationMS:       totalSec * 1000,
		CoordinateSystem: path.LeftHanded,
	}
}

// applyEventEasing overwrites a segment's easing from an event token.
// The raw token is preserved either way so re-export reproduces it
// verbatim, even when the curve is unknown to this catalog.
func applyEventEasing(reg *easing.Registry, seg *path.Segment, token string) {
	if token == "" {
		return
	}
	seg.RawCommand = token
	if token == "easeLinear" || token == "linear" {
		seg.EasingEnabled = false
		seg.CurveID = easing.Linear
		seg.Direction = easing.EaseIn
		seg.DriftParams = nil
		return
	}
	e, ok := command.ParseEasingToken(reg, token)
	if !ok {
		// Unknown curve, likely from a newer host-tool version: fall
		// back to a linear transition but keep the token.
		seg.EasingEnabled = false
		seg.CurveID = easing.Linear
		seg.Direction = easing.EaseIn
		seg.DriftParams = nil
		return
	}
	seg.EasingEnabled = true
	seg.CurveID = e.CurveID
	seg.Direction = e.Direction
	seg.DriftParams = e.Params
}

// findWaypointAtTime locates the waypoint whose normalized time equals t
// within the epsilon tolerance, by binary search. Returns -1 when no
// waypoint matches.
func findWaypointAtTime(waypoints []path.Waypoint, t float64) int {
	i := sort.Search(len(waypoints), func(i int) bool {
		return waypoints[i].Time >= t-timeutil.Epsilon
	})
	if i < len(waypoints) && timeutil.Equal(waypoints[i].Time, t) {
		return i
	}
	return -1
}
