package path

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ivlev/campath/internal/easing"
)

func TestWriteReadPathFile(t *testing.T) {
	reg := easing.Default()
	original, err := NewPreset(reg, PresetFlyover, 8000)
	if err != nil {
		t.Fatalf("NewPreset failed: %v", err)
	}

	file := filepath.Join(t.TempDir(), "flyover.yaml")
	if err := WritePathFile(original, file); err != nil {
		t.Fatalf("WritePathFile failed: %v", err)
	}

	loaded, err := ReadPathFile(reg, file)
	if err != nil {
		t.Fatalf("ReadPathFile failed: %v", err)
	}

	if loaded.Name != original.Name {
		t.Errorf("name = %q, want %q", loaded.Name, original.Name)
	}
	if loaded.DurationMS != original.DurationMS {
		t.Errorf("duration = %g, want %g", loaded.DurationMS, original.DurationMS)
	}
	if len(loaded.Waypoints) != len(original.Waypoints) {
		t.Fatalf("waypoint count = %d, want %d", len(loaded.Waypoints), len(original.Waypoints))
	}
	for i := range loaded.Waypoints {
		if loaded.Waypoints[i].Position != original.Waypoints[i].Position {
			t.Errorf("waypoint %d position = %+v", i, loaded.Waypoints[i].Position)
		}
		if loaded.Waypoints[i].RawCommand != original.Waypoints[i].RawCommand {
			t.Errorf("waypoint %d command = %q", i, loaded.Waypoints[i].RawCommand)
		}
	}

	// Segments are rederived on read but carry the same easing.
	if len(loaded.Segments) != len(original.Segments) {
		t.Fatalf("segment count = %d, want %d", len(loaded.Segments), len(original.Segments))
	}
	for i := range loaded.Segments {
		if loaded.Segments[i].CurveID != original.Segments[i].CurveID ||
			loaded.Segments[i].EasingEnabled != original.Segments[i].EasingEnabled {
			t.Errorf("segment %d easing differs: %+v vs %+v", i, loaded.Segments[i], original.Segments[i])
		}
	}

	if errs := Validate(loaded); len(errs) != 0 {
		t.Errorf("loaded path is not valid: %v", errs)
	}
}

func TestReadPathFileFillsDefaults(t *testing.T) {
	reg := easing.Default()
	file := filepath.Join(t.TempDir(), "minimal.yaml")
	doc := `version: "1.0"
path:
  name: minimal
  waypoints:
    - position: {x: 0, y: 1.7, z: -3}
      time: 0
    - position: {x: 0, y: 1.7, z: 3}
      time: 1
`
	if err := os.WriteFile(file, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := ReadPathFile(reg, file)
	if err != nil {
		t.Fatalf("ReadPathFile failed: %v", err)
	}
	if p.ID == "" {
		t.Error("path should be assigned an id")
	}
	for i, wp := range p.Waypoints {
		if wp.ID == "" {
			t.Errorf("waypoint %d should be assigned an id", i)
		}
	}
	if len(p.Segments) != 1 {
		t.Errorf("segments = %d, want 1", len(p.Segments))
	}
	if p.DurationMS != 10000 {
		t.Errorf("default duration = %g, want 10000", p.DurationMS)
	}
	if p.CoordinateSystem != LeftHanded {
		t.Errorf("coordinate system = %q", p.CoordinateSystem)
	}
}

func TestReadPathFileErrors(t *testing.T) {
	reg := easing.Default()
	if _, err := ReadPathFile(reg, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should error")
	}

	file := filepath.Join(t.TempDir(), "broken.yaml")
	os.WriteFile(file, []byte("{not yaml"), 0644)
	if _, err := ReadPathFile(reg, file); err == nil {
		t.Error("malformed yaml should error")
	}
}
