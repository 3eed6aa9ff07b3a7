package path

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/campath/internal/easing"
)

// Document is the YAML authoring format for a path. Segments may be
// omitted in hand-written files; they are recomputed from the waypoints
// on read.
type Document struct {
	Version string     `yaml:"version"`
	Path    CameraPath `yaml:"path"`
}

// DocumentVersion is written to new documents.
const DocumentVersion = "1.0"

// WritePathFile writes a path document to a YAML file.
func WritePathFile(p *CameraPath, file string) error {
	doc := Document{Version: DocumentVersion, Path: *p}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return err
	}
	return os.WriteFile(file, data, 0644)
}

// ReadPathFile reads a path document from a YAML file. Waypoints without
// identifiers are assigned fresh ones, and segments are rederived so the
// positional invariant holds regardless of what the file contained.
func ReadPathFile(reg *easing.Registry, file string) (*CameraPath, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse path document: %w", err)
	}

	p := doc.Path
	if p.ID == "" {
		p.ID = NewID()
	}
	for i := range p.Waypoints {
		if p.Waypoints[i].ID == "" {
			p.Waypoints[i].ID = NewID()
		}
	}
	p.Segments = ComputeSegments(reg, p.Waypoints)
	if p.DurationMS <= 0 {
		p.DurationMS = 10000
	}
	if p.CoordinateSystem == "" {
		p.CoordinateSystem = LeftHanded
	}
	return &p, nil
}
