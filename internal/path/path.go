// Package path defines the camera path data model: timed waypoints, the
// segments derived from them, and the path aggregate. Paths are treated
// as immutable snapshots once produced; editing means rebuilding the
// whole value.
package path

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ivlev/campath/internal/command"
	"github.com/ivlev/campath/internal/easing"
	"github.com/ivlev/campath/internal/mathutil"
)

// CoordinateSystem tags which handedness the positions were authored in.
type CoordinateSystem string

const (
	LeftHanded  CoordinateSystem = "left-handed"
	RightHanded CoordinateSystem = "right-handed"
)

// Waypoint is a single timed 3D position. Time is normalized to [0,1]
// over the whole path. RawCommand preserves the verbatim grammar text
// the waypoint was parsed from so re-export reproduces it unchanged.
type Waypoint struct {
	ID         string        `yaml:"id,omitempty"`
	Position   mathutil.Vec3 `yaml:"position"`
	Time       float64       `yaml:"time"`
	Name       string        `yaml:"name,omitempty"`
	Beat       float64       `yaml:"beat,omitempty"`
	RawCommand string        `yaml:"command,omitempty"`
}

// Segment is the transition between two consecutive waypoints. It
// references its endpoints by identifier; segment i must reference
// waypoint i and waypoint i+1 positionally.
type Segment struct {
	ID            string           `yaml:"id,omitempty"`
	FromID        string           `yaml:"from"`
	ToID          string           `yaml:"to"`
	EasingEnabled bool             `yaml:"easingEnabled"`
	CurveID       string           `yaml:"curve,omitempty"`
	Direction     easing.Direction `yaml:"direction,omitempty"`
	Weight        float64          `yaml:"weight,omitempty"`
	DriftParams   *easing.Params   `yaml:"driftParams,omitempty"`
	RawCommand    string           `yaml:"command,omitempty"`
}

// CameraPath is the path aggregate. Segments are always derived from
// Waypoints via ComputeSegments, never hand-edited independently.
type CameraPath struct {
	ID               string           `yaml:"id,omitempty"`
	Name             string           `yaml:"name"`
	Waypoints        []Waypoint       `yaml:"waypoints"`
	Segments         []Segment        `yaml:"segments,omitempty"`
	DurationMS       float64          `yaml:"durationMs"`
	CoordinateSystem CoordinateSystem `yaml:"coordinateSystem,omitempty"`
	BPM              float64          `yaml:"bpm,omitempty"`
}

// NewID returns a fresh identifier for waypoints, segments and paths.
func NewID() string {
	return uuid.NewString()
}

// WaypointIndex returns the position of the waypoint with the given
// identifier, or -1 when absent.
func (p *CameraPath) WaypointIndex(id string) int {
	for i := range p.Waypoints {
		if p.Waypoints[i].ID == id {
			return i
		}
	}
	return -1
}

// SegmentEndpoints resolves segment i to its from/to waypoints using the
// positional invariant.
func (p *CameraPath) SegmentEndpoints(i int) (from, to *Waypoint, ok bool) {
	if i < 0 || i >= len(p.Segments) || i+1 >= len(p.Waypoints) {
		return nil, nil, false
	}
	return &p.Waypoints[i], &p.Waypoints[i+1], true
}

// ComputeSegments derives the N-1 segments for N waypoints. Each
// segment's easing is lifted from its originating (from) waypoint's raw
// command when one is present: a parsed easing token enables easing with
// that curve, the easeLinear/linear literal disables it, and the token
// text is preserved for exact re-export. Segments default to a disabled
// linear transition.
func ComputeSegments(reg *easing.Registry, waypoints []Waypoint) []Segment {
	if len(waypoints) < 2 {
		return nil
	}
	segments := make([]Segment, len(waypoints)-1)
	for i := range segments {
		from, to := &waypoints[i], &waypoints[i+1]
		seg := Segment{
			ID:        NewID(),
			FromID:    from.ID,
			ToID:      to.ID,
			CurveID:   easing.Linear,
			Direction: easing.EaseIn,
			Weight:    to.Time - from.Time,
		}
		if from.RawCommand != "" {
			applyEasingFromCommand(reg, &seg, from.RawCommand)
		}
		segments[i] = seg
	}
	return segments
}

func applyEasingFromCommand(reg *easing.Registry, seg *Segment, cmd string) {
	if e, raw, ok := command.ExtractEasingToken(reg, cmd); ok {
		seg.EasingEnabled = true
		seg.CurveID = e.CurveID
		seg.Direction = e.Direction
		seg.DriftParams = e.Params
		seg.RawCommand = raw
		return
	}
	if raw, ok := findLinearLiteral(cmd); ok {
		seg.EasingEnabled = false
		seg.CurveID = easing.Linear
		seg.RawCommand = raw
	}
}

// findLinearLiteral locates an explicit easeLinear/linear sub-token,
// which is not an easing token grammatically but still must survive a
// round trip verbatim.
func findLinearLiteral(cmd string) (string, bool) {
	parts := splitCommand(cmd)
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] == "easeLinear" || parts[i] == "linear" {
			return parts[i], true
		}
	}
	return "", false
}

func splitCommand(cmd string) []string {
	parts := strings.Split(cmd, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
