package config

// Config carries the flag-populated settings of the campath CLI.
type Config struct {
	Input       string
	Output      string
	Preset      string
	DurationSec float64
	Track       string
	Bookmarks   bool
	Validate    bool
	Preview     int
	Graph       string
	GraphPoints int
}

// CompareConfig carries the settings of the ease-compare tool.
type CompareConfig struct {
	Curves    string
	Direction string
	Samples   int
	Formats   string
	OutDir    string
}
