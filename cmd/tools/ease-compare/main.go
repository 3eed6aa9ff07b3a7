// ease-compare renders side-by-side easing curve charts so the catalog
// can be inspected without the interactive UI.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/campath/internal/chart"
	"github.com/ivlev/campath/internal/config"
	"github.com/ivlev/campath/internal/easing"
)

func main() {
	curvesPtr := flag.String("curves", "all", "Comma-separated curve IDs, or \"all\"")
	directionPtr := flag.String("direction", string(easing.EaseIn), "Easing direction: easein, easeout, easeboth")
	samplesPtr := flag.Int("samples", 200, "Samples per curve")
	formatsPtr := flag.String("formats", "html,png", "Comma-separated output formats")
	outPtr := flag.String("out", "charts", "Output directory")
	flag.Parse()

	cfg := &config.CompareConfig{
		Curves:    *curvesPtr,
		Direction: *directionPtr,
		Samples:   *samplesPtr,
		Formats:   *formatsPtr,
		OutDir:    *outPtr,
	}

	reg := easing.Default()

	dir := easing.Direction(cfg.Direction)
	if !easing.IsValidDirection(dir) {
		log.Fatalf("[-] Unknown direction %q (valid: %v)", cfg.Direction, easing.Directions)
	}

	var ids []string
	if cfg.Curves == "all" {
		for _, c := range reg.Curves() {
			ids = append(ids, c.ID)
		}
	} else {
		for _, id := range strings.Split(cfg.Curves, ",") {
			ids = append(ids, strings.TrimSpace(id))
		}
	}

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		log.Fatalf("[-] Failed to create %s: %v", cfg.OutDir, err)
	}

	var g errgroup.Group
	for _, format := range strings.Split(cfg.Formats, ",") {
		format := strings.TrimSpace(format)
		out := filepath.Join(cfg.OutDir, fmt.Sprintf("easing_%s.%s", dir, format))
		g.Go(func() error {
			switch format {
			case "html":
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				return chart.CurveComparisonHTML(reg, ids, dir, cfg.Samples, f)
			case "png":
				return chart.CurveComparisonPNG(reg, ids, dir, cfg.Samples, out)
			default:
				return fmt.Errorf("unsupported format %q", format)
			}
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("[-] %v", err)
	}
	fmt.Printf("[+] Charts written to %s (%d curves, direction %s)\n", cfg.OutDir, len(ids), dir)
}
