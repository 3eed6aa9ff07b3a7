package path

import (
	"fmt"
	"math"

	"github.com/ivlev/campath/internal/command"
	"github.com/ivlev/campath/internal/easing"
	"github.com/ivlev/campath/internal/mathutil"
)

// Built-in preset names accepted by the CLI.
const (
	PresetDefault = "default"
	PresetFlyover = "flyover"
	PresetOrbit   = "orbit"
)

// PresetNames lists the built-in presets in display order.
var PresetNames = []string{PresetDefault, PresetFlyover, PresetOrbit}

// NewPreset constructs one of the built-in paths programmatically.
// Unknown names report an error rather than a fallback so the CLI can
// print the valid set.
func NewPreset(reg *easing.Registry, name string, durationMS float64) (*CameraPath, error) {
	switch name {
	case PresetDefault, "":
		return defaultPreset(reg, durationMS), nil
	case PresetFlyover:
		return flyoverPreset(reg, durationMS), nil
	case PresetOrbit:
		return orbitPreset(reg, durationMS, 8), nil
	default:
		return nil, fmt.Errorf("unknown preset %q (valid: %v)", name, PresetNames)
	}
}

// defaultPreset is the simple 2-point dolly: behind the head, then past
// it, easing both ends.
func defaultPreset(reg *easing.Registry, durationMS float64) *CameraPath {
	waypoints := []Waypoint{
		{ID: NewID(), Position: mathutil.Vec3{X: 0, Y: 1.7, Z: -3}, Time: 0,
			Name: "start", RawCommand: "dpos_0_1.7_-3_60,IOSine"},
		{ID: NewID(), Position: mathutil.Vec3{X: 0, Y: 2, Z: 3}, Time: 1,
			Name: "end", RawCommand: "dpos_0_2_3_60"},
	}
	return assemble(reg, "default", waypoints, durationMS)
}

// flyoverPreset rises over the head and settles in front of it.
func flyoverPreset(reg *easing.Registry, durationMS float64) *CameraPath {
	waypoints := []Waypoint{
		{ID: NewID(), Position: mathutil.Vec3{X: -2, Y: 1.2, Z: -4}, Time: 0,
			Name: "approach", RawCommand: "dpos_-2_1.2_-4_60,OQuad"},
		{ID: NewID(), Position: mathutil.Vec3{X: 0, Y: 4, Z: 0}, Time: 0.55,
			Name: "overhead", RawCommand: "dpos_0_4_0_70,IOCubic"},
		{ID: NewID(), Position: mathutil.Vec3{X: 2, Y: 1.7, Z: 4}, Time: 1,
			Name: "settle", RawCommand: "dpos_2_1.7_4_60"},
	}
	return assemble(reg, "flyover", waypoints, durationMS)
}

// orbitPreset walks a circle around the head at constant height, each
// waypoint carrying an explicit q_ command with a derived look-at
// rotation.
func orbitPreset(reg *easing.Registry, durationMS float64, points int) *CameraPath {
	if points < 2 {
		points = 2
	}
	const radius = 3.5
	const height = 2.0
	waypoints := make([]Waypoint, points)
	for i := range waypoints {
		frac := float64(i) / float64(points-1)
		angle := frac * 2 * math.Pi
		pos := mathutil.Vec3{
			X: radius * math.Sin(angle),
			Y: height,
			Z: -radius * math.Cos(angle),
		}
		rot := command.CalculateLookAt(pos, command.DefaultHeadPosition)
		cmd := fmt.Sprintf("q_%.2f_%.2f_%.2f_%.2f_%.2f_%.2f_60", pos.X, pos.Y, pos.Z, rot.Pitch, rot.Yaw, rot.Roll)
		if i < points-1 {
			cmd += ",IOSine"
		}
		waypoints[i] = Waypoint{
			ID:         NewID(),
			Position:   pos,
			Time:       frac,
			Name:       fmt.Sprintf("orbit %d", i+1),
			RawCommand: cmd,
		}
	}
	return assemble(reg, "orbit", waypoints, durationMS)
}

func assemble(reg *easing.Registry, name string, waypoints []Waypoint, durationMS float64) *CameraPath {
	if durationMS <= 0 {
		durationMS = 10000
	}
	return &CameraPath{
		ID:               NewID(),
		Name:             name,
		Waypoints:        waypoints,
		Segments:         ComputeSegments(reg, waypoints),
		DurationMS:       durationMS,
		CoordinateSystem: LeftHanded,
	}
}
