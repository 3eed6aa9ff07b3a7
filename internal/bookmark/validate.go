package bookmark

import (
	"fmt"

	"github.com/ivlev/campath/internal/timeutil"
)

// ValidateFile checks a wire document's structure and returns a list of
// human-readable errors without panicking. Path-side invariants are
// covered separately by path.Validate.
func ValidateFile(f *File) []string {
	var errs []string
	if f == nil {
		return []string{"document is empty"}
	}
	if f.Version == "" {
		errs = append(errs, "missing _version")
	}
	if f.CustomData == nil {
		errs = append(errs, "missing _customData")
		return errs
	}
	cd := f.CustomData
	if len(cd.PointDefinitions) == 0 {
		errs = append(errs, "missing _pointDefinitions")
		return errs
	}

	pd := cd.PointDefinitions[0]
	if len(pd.Points) == 0 {
		errs = append(errs, fmt.Sprintf("point definition %q has no points", pd.Name))
		return errs
	}
	if len(pd.Points) < 2 {
		errs = append(errs, fmt.Sprintf("point definition %q needs at least 2 points, got %d", pd.Name, len(pd.Points)))
	}
	for i, pt := range pd.Points {
		if len(pt) < 4 {
			errs = append(errs, fmt.Sprintf("point %d must have 4 components [x y z time], got %d", i, len(pt)))
		}
	}
	if len(errs) > 0 {
		return errs
	}

	times := make([]float64, len(pd.Points))
	for i, pt := range pd.Points {
		times[i] = pt[3]
	}
	for i := 1; i < len(times); i++ {
		if !timeutil.Less(times[i-1], times[i]) {
			errs = append(errs, fmt.Sprintf("point times must be strictly increasing: point %d at %g, point %d at %g",
				i-1, times[i-1], i, times[i]))
		}
	}

	errs = append(errs, validateEvents(cd, times)...)
	return errs
}

// validateEvents checks the AssignPathAnimation event chain: events must
// tile the timeline without gaps or overlaps, and each event must span
// exactly two consecutive points.
func validateEvents(cd *CustomData, pointTimes []float64) []string {
	var errs []string
	prevEnd := -1.0
	havePrev := false
	for i, ev := range cd.CustomEvents {
		if ev.Type != EventTypeAssignPath {
			continue
		}
		duration := 0.0
		if ev.Data.Duration != nil {
			duration = *ev.Data.Duration
		}
		if havePrev && !timeutil.Equal(prevEnd, ev.Time) {
			if timeutil.Less(ev.Time, prevEnd) {
				errs = append(errs, fmt.Sprintf("event %d at %g overlaps previous event ending at %g", i, ev.Time, prevEnd))
			} else {
				errs = append(errs, fmt.Sprintf("gap before event %d: previous event ends at %g, next starts at %g", i, prevEnd, ev.Time))
			}
		}
		from := findTimeIndex(pointTimes, ev.Time)
		to := findTimeIndex(pointTimes, ev.Time+duration)
		if from < 0 || to != from+1 {
			errs = append(errs, fmt.Sprintf("event %d (%g..%g) does not span two consecutive points", i, ev.Time, ev.Time+duration))
		}
		prevEnd = ev.Time + duration
		havePrev = true
	}
	return errs
}

func findTimeIndex(times []float64, t float64) int {
	for i, v := range times {
		if timeutil.Equal(v, t) {
			return i
		}
	}
	return -1
}
