package bookmark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/campath/internal/easing"
	"github.com/ivlev/campath/internal/mathutil"
)

func ptr(v float64) *float64 { return &v }

func importTestFile() *File {
	return &File{
		Version: FileVersion,
		CustomData: &CustomData{
			PointDefinitions: []PointDefinition{{
				Name: "dolly",
				Points: [][]float64{
					{0, 1.7, -3, 0},
					{0, 2, 0, 2},
					{0, 1.7, 3, 6},
				},
			}},
			CustomEvents: []CustomEvent{
				{Time: 0, Type: EventTypeAssignPath, Data: EventData{Track: "dolly", Duration: ptr(2), Easing: "IOQuad"}},
				{Time: 2, Type: EventTypeAssignPath, Data: EventData{Track: "dolly", Duration: ptr(4), Easing: "easeLinear"}},
			},
			Bookmarks: []Bookmark{
				{Time: 0, Name: "q_0_1.7_-3_70"},
			},
		},
	}
}

func TestImportBasic(t *testing.T) {
	reg := easing.Default()
	p := Import(importTestFile(), reg)
	require.NotNil(t, p)

	assert.Equal(t, "dolly", p.Name)
	assert.Equal(t, 6000.0, p.DurationMS)
	require.Len(t, p.Waypoints, 3)
	require.Len(t, p.Segments, 2)

	// Point times renormalized to [0,1].
	assert.Equal(t, 0.0, p.Waypoints[0].Time)
	assert.InDelta(t, 1.0/3.0, p.Waypoints[1].Time, 1e-12)
	assert.Equal(t, 1.0, p.Waypoints[2].Time)
	assert.Equal(t, mathutil.Vec3{X: 0, Y: 2, Z: 0}, p.Waypoints[1].Position)

	// First event overrides the first segment's easing.
	s0 := p.Segments[0]
	assert.True(t, s0.EasingEnabled)
	assert.Equal(t, easing.Quadratic, s0.CurveID)
	assert.Equal(t, easing.EaseBoth, s0.Direction)
	assert.Equal(t, "IOQuad", s0.RawCommand)

	// easeLinear disables easing but keeps the token.
	s1 := p.Segments[1]
	assert.False(t, s1.EasingEnabled)
	assert.Equal(t, easing.Linear, s1.CurveID)
	assert.Equal(t, "easeLinear", s1.RawCommand)

	// Bookmark text lands on the waypoint at its timestamp.
	assert.Equal(t, "q_0_1.7_-3_70", p.Waypoints[0].RawCommand)
	assert.Equal(t, "q_0_1.7_-3_70", p.Waypoints[0].Name)
}

func TestImportUnknownEasingKeepsToken(t *testing.T) {
	reg := easing.Default()
	f := importTestFile()
	f.CustomData.CustomEvents[0].Data.Easing = "easeOutWobble"
	p := Import(f, reg)
	require.NotNil(t, p)

	s0 := p.Segments[0]
	assert.False(t, s0.EasingEnabled)
	assert.Equal(t, easing.Linear, s0.CurveID)
	assert.Equal(t, "easeOutWobble", s0.RawCommand)
}

func TestImportLenientEasePrefix(t *testing.T) {
	reg := easing.Default()
	f := importTestFile()
	f.CustomData.CustomEvents[0].Data.Easing = "easeOutBounce"
	p := Import(f, reg)
	require.NotNil(t, p)

	s0 := p.Segments[0]
	assert.True(t, s0.EasingEnabled)
	assert.Equal(t, easing.Bounce, s0.CurveID)
	assert.Equal(t, easing.EaseOut, s0.Direction)
	assert.Equal(t, "easeOutBounce", s0.RawCommand)
}

func TestImportSkipsNonSpanningEvent(t *testing.T) {
	reg := easing.Default()
	f := importTestFile()
	// Covers the whole timeline instead of one segment.
	f.CustomData.CustomEvents[0].Data.Duration = ptr(6)
	p := Import(f, reg)
	require.NotNil(t, p)

	// Segment keeps the auto-generated default easing.
	assert.Empty(t, p.Segments[0].RawCommand)
}

func TestImportMalformed(t *testing.T) {
	reg := easing.Default()

	assert.Nil(t, Import(nil, reg))
	assert.Nil(t, Import(&File{Version: FileVersion}, reg))
	assert.Nil(t, Import(&File{CustomData: &CustomData{}}, reg))

	one := &File{CustomData: &CustomData{
		PointDefinitions: []PointDefinition{{Points: [][]float64{{0, 0, 0, 0}}}},
	}}
	assert.Nil(t, Import(one, reg))

	short := &File{CustomData: &CustomData{
		PointDefinitions: []PointDefinition{{Points: [][]float64{{0, 0, 0, 0}, {1, 1, 1}}}},
	}}
	assert.Nil(t, Import(short, reg))

	zero := &File{CustomData: &CustomData{
		PointDefinitions: []PointDefinition{{Points: [][]float64{{0, 0, 0, 0}, {1, 1, 1, 0}}}},
	}}
	assert.Nil(t, Import(zero, reg))
}
