package bookmark

import (
	"encoding/json"
	"fmt"

	"github.com/ivlev/campath/internal/command"
	"github.com/ivlev/campath/internal/easing"
	"github.com/ivlev/campath/internal/path"
	"github.com/ivlev/campath/internal/timeutil"
)

// ExportOptions control the optional parts of an exported document.
type ExportOptions struct {
	// Track names the animation track on each event; empty means the
	// path name.
	Track string
	// Bookmarks adds one visual marker per waypoint.
	Bookmarks bool
}

// Export compiles a path into a wire document. Waypoint times are
// converted from normalized [0,1] to absolute seconds and rounded to 6
// decimal places before being written. Each segment becomes one
// AssignPathAnimation event whose easing field is, in order of
// preference: the raw command preserved on import, a freshly formatted
// short-form token, or the literal easeLinear when easing is disabled.
func Export(p *path.CameraPath, reg *easing.Registry, opts ExportOptions) *File {
	if p == nil {
		return nil
	}
	durSec := p.DurationMS / 1000

	track := opts.Track
	if track == "" {
		track = p.Name
	}

	points := make([][]float64, len(p.Waypoints))
	for i := range p.Waypoints {
		wp := &p.Waypoints[i]
		points[i] = []float64{
			wp.Position.X,
			wp.Position.Y,
			wp.Position.Z,
			timeutil.Round(wp.Time * durSec),
		}
	}

	events := make([]CustomEvent, len(p.Segments))
	for i := range p.Segments {
		seg := &p.Segments[i]
		start := timeutil.Round(p.Waypoints[i].Time * durSec)
		duration := timeutil.Round((p.Waypoints[i+1].Time - p.Waypoints[i].Time) * durSec)
		d := duration
		events[i] = CustomEvent{
			Time: start,
			Type: EventTypeAssignPath,
			Data: EventData{
				Track:    track,
				Duration: &d,
				Easing:   easingField(reg, seg),
			},
		}
	}

	cd := &CustomData{
		PointDefinitions: []PointDefinition{{Name: p.Name, Points: points}},
		CustomEvents:     events,
		Environment:      []json.RawMessage{},
	}

	if opts.Bookmarks {
		cd.Bookmarks = make([]Bookmark, len(p.Waypoints))
		for i := range p.Waypoints {
			wp := &p.Waypoints[i]
			name := wp.RawCommand
			if name == "" {
				name = wp.Name
			}
			if name == "" {
				name = fmt.Sprintf("waypoint %d", i+1)
			}
			cd.Bookmarks[i] = Bookmark{
				Time: timeutil.Round(wp.Time * durSec),
				Name: name,
			}
		}
	}

	return &File{Version: FileVersion, CustomData: cd}
}

// easingField resolves a segment to its wire easing token. A preserved
// raw command always wins so imports re-export byte-for-byte.
func easingField(reg *easing.Registry, seg *path.Segment) string {
	if seg.RawCommand != "" {
		return seg.RawCommand
	}
	if seg.EasingEnabled {
		if tok, ok := command.FormatCommand(reg, seg.CurveID, seg.Direction, seg.DriftParams); ok {
			return tok
		}
	}
	return "easeLinear"
}
