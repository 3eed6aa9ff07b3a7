// Package chart renders easing curve comparisons and per-segment path
// graphs to HTML (go-echarts) and PNG (gonum/plot) so curves can be
// inspected side by side without the interactive panel.
package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/ivlev/campath/internal/easing"
	"github.com/ivlev/campath/internal/interp"
	"github.com/ivlev/campath/internal/path"
)

// curveSamples evaluates each requested curve at samples+1 points.
// Unknown identifiers report an error listing the offender.
func curveSamples(reg *easing.Registry, curveIDs []string, dir easing.Direction, samples int) (xs []float64, series map[string][]float64, order []string, err error) {
	if samples < 2 {
		samples = 2
	}
	xs = make([]float64, samples+1)
	for i := range xs {
		xs[i] = float64(i) / float64(samples)
	}
	series = make(map[string][]float64, len(curveIDs))
	for _, id := range curveIDs {
		curve, ok := reg.Lookup(id)
		if !ok {
			return nil, nil, nil, fmt.Errorf("unknown curve %q", id)
		}
		ys := make([]float64, len(xs))
		for i, t := range xs {
			ys[i] = curve.Calculate(t, dir, &easing.Params{X: 2, Y: 2})
		}
		series[curve.Name] = ys
		order = append(order, curve.Name)
	}
	return xs, series, order, nil
}

// CurveComparisonHTML renders the requested curves as an interactive
// line chart.
func CurveComparisonHTML(reg *easing.Registry, curveIDs []string, dir easing.Direction, samples int, w io.Writer) error {
	xs, series, order, err := curveSamples(reg, curveIDs, dir, samples)
	if err != nil {
		return err
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Easing curves", Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Easing curves", Subtitle: fmt.Sprintf("direction=%s", dir)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "t"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "eased"}),
	)

	labels := make([]string, len(xs))
	for i, x := range xs {
		labels[i] = fmt.Sprintf("%.3f", x)
	}
	line.SetXAxis(labels)
	for _, name := range order {
		data := make([]opts.LineData, len(xs))
		for i, y := range series[name] {
			data[i] = opts.LineData{Value: y}
		}
		line.AddSeries(name, data)
	}
	return line.Render(w)
}

// CurveComparisonPNG renders the requested curves to a PNG file.
func CurveComparisonPNG(reg *easing.Registry, curveIDs []string, dir easing.Direction, samples int, file string) error {
	xs, series, order, err := curveSamples(reg, curveIDs, dir, samples)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Easing curves (%s)", dir)
	p.X.Label.Text = "t"
	p.Y.Label.Text = "eased"

	for idx, name := range order {
		pts := make(plotter.XYs, len(xs))
		for i, x := range xs {
			pts[i] = plotter.XY{X: x, Y: series[name][i]}
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("failed to build line for %s: %w", name, err)
		}
		l.Width = vg.Points(1)
		l.Color = plotutil.Color(idx)
		p.Add(l)
		p.Legend.Add(name, l)
	}
	return p.Save(8*vg.Inch, 6*vg.Inch, file)
}

// PathGraphHTML renders every segment's easing curve stacked along the
// path timeline, one series per segment.
func PathGraphHTML(cp *path.CameraPath, reg *easing.Registry, pointsPerSegment int, w io.Writer) error {
	segments := interp.GraphPoints(cp, reg, pointsPerSegment)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: cp.Name, Width: "900px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Path %q easing graph", cp.Name)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "time"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "eased"}),
	)

	if len(segments) == 0 {
		return line.Render(w)
	}
	labels := make([]string, 0, len(segments)*len(segments[0]))
	for _, seg := range segments {
		for _, gp := range seg {
			labels = append(labels, fmt.Sprintf("%.3f", gp.X))
		}
	}
	line.SetXAxis(labels)

	offset := 0
	for i, seg := range segments {
		data := make([]opts.LineData, len(labels))
		for j := range data {
			data[j] = opts.LineData{Value: nil}
		}
		for j, gp := range seg {
			data[offset+j] = opts.LineData{Value: gp.Y}
		}
		offset += len(seg)
		line.AddSeries(fmt.Sprintf("segment %d", i+1), data)
	}
	return line.Render(w)
}

// PathGraphPNG renders the stacked per-segment easing graph to a PNG
// file.
func PathGraphPNG(cp *path.CameraPath, reg *easing.Registry, pointsPerSegment int, file string) error {
	segments := interp.GraphPoints(cp, reg, pointsPerSegment)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Path %q easing graph", cp.Name)
	p.X.Label.Text = "time"
	p.Y.Label.Text = "eased"

	for i, seg := range segments {
		pts := make(plotter.XYs, len(seg))
		for j, gp := range seg {
			pts[j] = plotter.XY{X: gp.X, Y: gp.Y}
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("failed to build line for segment %d: %w", i, err)
		}
		l.Width = vg.Points(1)
		l.Color = plotutil.Color(i)
		p.Add(l)
		p.Legend.Add(fmt.Sprintf("segment %d", i+1), l)
	}
	return p.Save(8*vg.Inch, 6*vg.Inch, file)
}
