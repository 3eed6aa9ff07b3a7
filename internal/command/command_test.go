package command

import (
	"math"
	"testing"

	"github.com/ivlev/campath/internal/easing"
	"github.com/ivlev/campath/internal/mathutil"
)

func TestFormatParseRoundTrip(t *testing.T) {
	reg := easing.Default()
	for _, c := range reg.Curves() {
		if !c.HostCompatible || c.Parametric {
			continue
		}
		for _, dir := range easing.Directions {
			token, ok := FormatCommand(reg, c.ID, dir, nil)
			if !ok {
				t.Fatalf("FormatCommand(%s, %s) failed", c.ID, dir)
			}
			parsed, ok := ParseCommand(reg, token)
			if !ok {
				t.Fatalf("ParseCommand(%q) failed", token)
			}
			if parsed.CurveID != c.ID || parsed.Direction != dir {
				t.Errorf("round trip %q: got (%s, %s), want (%s, %s)",
					token, parsed.CurveID, parsed.Direction, c.ID, dir)
			}
		}
	}
}

func TestDriftRoundTrip(t *testing.T) {
	reg := easing.Default()
	params := &easing.Params{X: 3, Y: 7}
	token, ok := FormatCommand(reg, easing.Drift, easing.EaseIn, params)
	if !ok {
		t.Fatal("FormatCommand for drift failed")
	}
	if token != "ease_3_7" {
		t.Fatalf("drift token = %q, want ease_3_7", token)
	}
	parsed, ok := ParseCommand(reg, token)
	if !ok {
		t.Fatalf("ParseCommand(%q) failed", token)
	}
	if parsed.CurveID != easing.Drift || parsed.Params == nil ||
		parsed.Params.X != 3 || parsed.Params.Y != 7 {
		t.Errorf("drift round trip: got %+v", parsed)
	}
}

func TestFormatCommandFailures(t *testing.T) {
	reg := easing.Default()
	// Not host-compatible.
	if _, ok := FormatCommand(reg, easing.Hermite, easing.EaseIn, nil); ok {
		t.Error("hermite should not format")
	}
	// Linear has no directional host token; export writes easeLinear.
	if _, ok := FormatCommand(reg, easing.Linear, easing.EaseIn, nil); ok {
		t.Error("linear should not format")
	}
	// Drift requires parameters.
	if _, ok := FormatCommand(reg, easing.Drift, easing.EaseIn, nil); ok {
		t.Error("drift without params should not format")
	}
	if _, ok := FormatCommand(reg, "wobble", easing.EaseIn, nil); ok {
		t.Error("unknown curve should not format")
	}
}

func TestParsePrefixPriority(t *testing.T) {
	reg := easing.Default()
	cases := []struct {
		token string
		curve string
		dir   easing.Direction
	}{
		{"InOutQuad", easing.Quadratic, easing.EaseBoth},
		{"IOCubic", easing.Cubic, easing.EaseBoth},
		{"InSine", easing.Sine, easing.EaseIn},
		{"ISine", easing.Sine, easing.EaseIn},
		{"OutBounce", easing.Bounce, easing.EaseOut},
		{"OQuad", easing.Quadratic, easing.EaseOut},
		{"InOutElastic", easing.Elastic, easing.EaseBoth},
	}
	for _, tc := range cases {
		parsed, ok := ParseCommand(reg, tc.token)
		if !ok {
			t.Errorf("ParseCommand(%q) failed", tc.token)
			continue
		}
		if parsed.CurveID != tc.curve || parsed.Direction != tc.dir {
			t.Errorf("ParseCommand(%q) = (%s, %s), want (%s, %s)",
				tc.token, parsed.CurveID, parsed.Direction, tc.curve, tc.dir)
		}
	}
}

func TestParseCommandRejects(t *testing.T) {
	reg := easing.Default()
	for _, token := range []string{
		"", "In", "IO", "Cubic", "InFoo", "easeInOutQuad",
		"ease_1", "ease_1_2_3", "ease_a_b", "spin90", "stop",
		"q_1_2_3", "dpos_1_2_3_60",
	} {
		if _, ok := ParseCommand(reg, token); ok {
			t.Errorf("ParseCommand(%q) should fail", token)
		}
	}
}

func TestParseEasingTokenLenient(t *testing.T) {
	reg := easing.Default()
	parsed, ok := ParseEasingToken(reg, "easeInOutQuad")
	if !ok || parsed.CurveID != easing.Quadratic || parsed.Direction != easing.EaseBoth {
		t.Errorf("easeInOutQuad: got %+v, ok=%v", parsed, ok)
	}
	parsed, ok = ParseEasingToken(reg, "easeOutBounce")
	if !ok || parsed.CurveID != easing.Bounce || parsed.Direction != easing.EaseOut {
		t.Errorf("easeOutBounce: got %+v, ok=%v", parsed, ok)
	}
	// The bare linear literal is not an easing token; the importer
	// handles it as "disable easing".
	if _, ok := ParseEasingToken(reg, "easeLinear"); ok {
		t.Error("easeLinear should not parse as an easing token")
	}
}

func TestExtractEasingToken(t *testing.T) {
	reg := easing.Default()

	e, raw, ok := ExtractEasingToken(reg, "q_0_1.7_0_0_0_0_60,OQuad")
	if !ok || raw != "OQuad" || e.CurveID != easing.Quadratic {
		t.Errorf("extract: got (%+v, %q, %v)", e, raw, ok)
	}

	// Scans from the end: the last easing token wins.
	_, raw, ok = ExtractEasingToken(reg, "OQuad,ISine")
	if !ok || raw != "ISine" {
		t.Errorf("extract from end: got %q, want ISine", raw)
	}

	_, raw, ok = ExtractEasingToken(reg, "spin90,stop,ease_2_4")
	if !ok || raw != "ease_2_4" {
		t.Errorf("extract drift: got %q ok=%v", raw, ok)
	}

	if _, _, ok := ExtractEasingToken(reg, "dpos_1_2_3_60"); ok {
		t.Error("position-only command should have no easing token")
	}
	if _, _, ok := ExtractEasingToken(reg, ""); ok {
		t.Error("empty command should have no easing token")
	}
}

func TestParsePositionQ(t *testing.T) {
	pos, ok := ParsePositionCommand("q_1_2_3")
	if !ok {
		t.Fatal("q_1_2_3 should parse")
	}
	if pos.Pos != (mathutil.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("position = %+v", pos.Pos)
	}
	if pos.Rotation != nil {
		t.Error("rotation group absent, expected nil rotation")
	}

	pos, ok = ParsePositionCommand("q_1_2_3_10_20_0_60")
	if !ok {
		t.Fatal("q with rotation should parse")
	}
	if pos.Rotation == nil || pos.Rotation.Pitch != 10 || pos.Rotation.Yaw != 20 || pos.Rotation.Roll != 0 {
		t.Errorf("rotation = %+v", pos.Rotation)
	}
	if pos.FOV != 60 {
		t.Errorf("fov = %g, want 60", pos.FOV)
	}
}

func TestParsePositionDpos(t *testing.T) {
	pos, ok := ParsePositionCommand("dpos_0_1.7_-3_60")
	if !ok {
		t.Fatal("dpos should parse")
	}
	if pos.Pos != (mathutil.Vec3{X: 0, Y: 1.7, Z: -3}) {
		t.Errorf("position = %+v", pos.Pos)
	}
	if pos.FOV != 60 {
		t.Errorf("fov = %g", pos.FOV)
	}
	// Directly behind the default head position: camera looks straight
	// ahead.
	if pos.Rotation == nil {
		t.Fatal("dpos rotation should be derived")
	}
	if math.Abs(pos.Rotation.Yaw) > 1e-9 || math.Abs(pos.Rotation.Pitch) > 1e-9 {
		t.Errorf("rotation = %+v, want level, centered", pos.Rotation)
	}
}

func TestParsePositionRejects(t *testing.T) {
	for _, token := range []string{"spin90", "stop", "next", "-> intro", "OQuad", "ease_1_2", "q_1_2", "dpos_1_2_3", "q_a_b_c"} {
		if _, ok := ParsePositionCommand(token); ok {
			t.Errorf("ParsePositionCommand(%q) should fail", token)
		}
	}
}

func TestCalculateLookAt(t *testing.T) {
	// Camera to the right of the head, looking back at it.
	rot := CalculateLookAt(mathutil.Vec3{X: 3, Y: 1.7, Z: 0}, DefaultHeadPosition)
	if math.Abs(rot.Yaw-(-90)) > 1e-9 {
		t.Errorf("yaw = %g, want -90", rot.Yaw)
	}
	if math.Abs(rot.Pitch) > 1e-9 {
		t.Errorf("pitch = %g, want 0", rot.Pitch)
	}

	// Camera above the head, looking down.
	rot = CalculateLookAt(mathutil.Vec3{X: 0, Y: 4, Z: 0}, DefaultHeadPosition)
	if math.Abs(rot.Pitch-90) > 1e-9 {
		t.Errorf("pitch = %g, want 90", rot.Pitch)
	}
	if rot.Roll != 0 {
		t.Errorf("roll = %g, want 0", rot.Roll)
	}
}

func TestParseTokenKinds(t *testing.T) {
	reg := easing.Default()
	cases := []struct {
		token string
		kind  Kind
	}{
		{"q_1_2_3", KindPosition},
		{"dpos_0_1_2_60", KindPosition},
		{"spin90", KindControl},
		{"stop", KindControl},
		{"next", KindControl},
		{"-> verse", KindControl},
		{"IOCubic", KindEasing},
		{"ease_1_2", KindEasing},
		{"garbage", KindUnrecognized},
		{"spinfast", KindUnrecognized},
	}
	for _, tc := range cases {
		if got := ParseToken(reg, tc.token); got.Kind != tc.kind {
			t.Errorf("ParseToken(%q).Kind = %v, want %v", tc.token, got.Kind, tc.kind)
		}
	}
}
