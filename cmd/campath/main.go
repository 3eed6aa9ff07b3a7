package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ivlev/campath/internal/bookmark"
	"github.com/ivlev/campath/internal/chart"
	"github.com/ivlev/campath/internal/config"
	"github.com/ivlev/campath/internal/easing"
	"github.com/ivlev/campath/internal/interp"
	"github.com/ivlev/campath/internal/path"
)

func main() {
	inputPtr := flag.String("in", "", "Input file: bookmark JSON or path document YAML")
	outputPtr := flag.String("out", "", "Output file: .json exports a bookmark document, .yaml a path document")
	presetPtr := flag.String("preset", "", "Build a built-in preset instead of reading a file: "+strings.Join(path.PresetNames, ", "))
	durationPtr := flag.Float64("duration", 0, "Override total duration in seconds")
	trackPtr := flag.String("track", "", "Track name for exported events (default: path name)")
	bookmarksPtr := flag.Bool("bookmarks", true, "Include visual bookmark markers on export")
	validatePtr := flag.Bool("validate", false, "Validate the path and report structural errors")
	previewPtr := flag.Int("preview", 0, "Print N+1 interpolated preview positions")
	graphPtr := flag.String("graph", "", "Write the per-segment easing graph (.html or .png)")
	graphPointsPtr := flag.Int("graph-points", 64, "Samples per segment in the easing graph")
	listCurvesPtr := flag.Bool("list-curves", false, "List the curve catalog and exit")
	flag.Parse()

	cfg := &config.Config{
		Input:       *inputPtr,
		Output:      *outputPtr,
		Preset:      *presetPtr,
		DurationSec: *durationPtr,
		Track:       *trackPtr,
		Bookmarks:   *bookmarksPtr,
		Validate:    *validatePtr,
		Preview:     *previewPtr,
		Graph:       *graphPtr,
		GraphPoints: *graphPointsPtr,
	}

	reg := easing.Default()

	if *listCurvesPtr {
		listCurves(reg)
		return
	}

	cp := loadPath(cfg, reg)
	fmt.Printf("[*] Path %q: %d waypoints, %d segments, %.2fs, length %.2fm\n",
		cp.Name, len(cp.Waypoints), len(cp.Segments), cp.DurationMS/1000, interp.PathLength(cp))

	if cfg.Validate {
		if errs := path.Validate(cp); len(errs) > 0 {
			for _, e := range errs {
				fmt.Printf("[!] %s\n", e)
			}
			os.Exit(1)
		}
		fmt.Println("[*] Path is structurally valid")
	}

	if cfg.Preview > 0 {
		for i, pos := range interp.PreviewPoints(cp, reg, cfg.Preview) {
			t := float64(i) / float64(cfg.Preview)
			fmt.Printf("[>] t=%.3f  (%.3f, %.3f, %.3f)\n", t, pos.X, pos.Y, pos.Z)
		}
	}

	if cfg.Graph != "" {
		writeGraph(cfg, reg, cp)
	}

	if cfg.Output != "" {
		writeOutput(cfg, reg, cp)
	}
}

// loadPath resolves the path source: an input file by extension, or a
// built-in preset.
func loadPath(cfg *config.Config, reg *easing.Registry) *path.CameraPath {
	var cp *path.CameraPath

	switch {
	case cfg.Input != "":
		switch strings.ToLower(filepath.Ext(cfg.Input)) {
		case ".json":
			data, err := os.ReadFile(cfg.Input)
			if err != nil {
				log.Fatalf("[-] Failed to read %s: %v", cfg.Input, err)
			}
			doc, err := bookmark.Parse(data)
			if err != nil {
				log.Fatalf("[-] Failed to parse bookmark document: %v", err)
			}
			if errs := bookmark.ValidateFile(doc); len(errs) > 0 {
				for _, e := range errs {
					fmt.Printf("[!] %s\n", e)
				}
				log.Fatalf("[-] Bookmark document is not importable")
			}
			cp = bookmark.Import(doc, reg)
			if cp == nil {
				log.Fatalf("[-] Bookmark document could not be imported")
			}
		case ".yaml", ".yml":
			var err error
			cp, err = path.ReadPathFile(reg, cfg.Input)
			if err != nil {
				log.Fatalf("[-] Failed to read path document: %v", err)
			}
		default:
			log.Fatalf("[-] Unsupported input format: %s", cfg.Input)
		}
	default:
		var err error
		cp, err = path.NewPreset(reg, cfg.Preset, cfg.DurationSec*1000)
		if err != nil {
			log.Fatalf("[-] %v", err)
		}
	}

	if cfg.DurationSec > 0 {
		cp.DurationMS = cfg.DurationSec * 1000
	}
	return cp
}

func writeGraph(cfg *config.Config, reg *easing.Registry, cp *path.CameraPath) {
	switch strings.ToLower(filepath.Ext(cfg.Graph)) {
	case ".html":
		f, err := os.Create(cfg.Graph)
		if err != nil {
			log.Fatalf("[-] Failed to create %s: %v", cfg.Graph, err)
		}
		defer f.Close()
		if err := chart.PathGraphHTML(cp, reg, cfg.GraphPoints, f); err != nil {
			log.Fatalf("[-] Failed to render graph: %v", err)
		}
	case ".png":
		if err := chart.PathGraphPNG(cp, reg, cfg.GraphPoints, cfg.Graph); err != nil {
			log.Fatalf("[-] Failed to render graph: %v", err)
		}
	default:
		log.Fatalf("[-] Unsupported graph format: %s", cfg.Graph)
	}
	fmt.Printf("[+] Graph written to %s\n", cfg.Graph)
}

func writeOutput(cfg *config.Config, reg *easing.Registry, cp *path.CameraPath) {
	switch strings.ToLower(filepath.Ext(cfg.Output)) {
	case ".json":
		doc := bookmark.Export(cp, reg, bookmark.ExportOptions{
			Track:     cfg.Track,
			Bookmarks: cfg.Bookmarks,
		})
		data, err := bookmark.Encode(doc)
		if err != nil {
			log.Fatalf("[-] Failed to encode bookmark document: %v", err)
		}
		if err := os.WriteFile(cfg.Output, data, 0644); err != nil {
			log.Fatalf("[-] Failed to write %s: %v", cfg.Output, err)
		}
	case ".yaml", ".yml":
		if err := path.WritePathFile(cp, cfg.Output); err != nil {
			log.Fatalf("[-] Failed to write path document: %v", err)
		}
	default:
		log.Fatalf("[-] Unsupported output format: %s", cfg.Output)
	}
	fmt.Printf("[+] Written: %s\n", cfg.Output)
}

func listCurves(reg *easing.Registry) {
	fmt.Printf("%-14s %-14s %-6s %s\n", "ID", "NAME", "HOST", "TOKEN")
	for _, c := range reg.Curves() {
		host := "-"
		token := "-"
		if c.HostCompatible {
			if c.Parametric {
				host = "yes"
				token = "ease_<x>_<y>"
			} else {
				host = "yes"
				token = "I|O|IO" + c.HostName
			}
		}
		fmt.Printf("%-14s %-14s %-6s %s\n", c.ID, c.Name, host, token)
	}
}
