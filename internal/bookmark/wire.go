// Package bookmark compiles camera paths to and from the host tool's
// JSON bookmark document. The wire format is bit-exact: underscore-
// prefixed keys, times in seconds rounded to 6 decimal places, and
// easing tokens reproduced verbatim when they were present on import.
package bookmark

import "encoding/json"

// FileVersion is written to freshly exported documents.
const FileVersion = "3.0.0"

// EventTypeAssignPath is the custom event type carrying segment easing.
const EventTypeAssignPath = "AssignPathAnimation"

// File is the top-level wire document.
type File struct {
	Version    string      `json:"_version"`
	CustomData *CustomData `json:"_customData"`
}

// CustomData carries the point definitions, the timed events and the
// optional visual bookmark markers. Environment entries are opaque to
// this compiler and pass through untouched.
type CustomData struct {
	PointDefinitions []PointDefinition `json:"_pointDefinitions"`
	CustomEvents     []CustomEvent     `json:"_customEvents"`
	Bookmarks        []Bookmark        `json:"_bookmarks,omitempty"`
	Environment      []json.RawMessage `json:"_environment"`
}

// PointDefinition is one named group of [x, y, z, time] points, times in
// seconds.
type PointDefinition struct {
	Name   string      `json:"_name"`
	Points [][]float64 `json:"_points"`
}

// CustomEvent is one timed event; for AssignPathAnimation its data spans
// the transition between two consecutive points.
type CustomEvent struct {
	Time float64   `json:"_time"`
	Type string    `json:"_type"`
	Data EventData `json:"_data"`
}

// EventData is the payload of an AssignPathAnimation event.
type EventData struct {
	Track    string   `json:"_track,omitempty"`
	Duration *float64 `json:"_duration,omitempty"`
	Easing   string   `json:"_easing,omitempty"`
}

// Bookmark is the host tool's named marker record. Its name field holds
// the comma-separated command text.
type Bookmark struct {
	Time  float64   `json:"_time"`
	Name  string    `json:"_name"`
	Color []float64 `json:"_color,omitempty"`
}

// Parse decodes a wire document. Malformed JSON reports an error; shape
// problems beyond JSON syntax are left to ValidateFile and Import.
func Parse(data []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Encode serializes a wire document with stable two-space indentation.
func Encode(f *File) ([]byte, error) {
	return json.MarshalIndent(f, "", "  ")
}
