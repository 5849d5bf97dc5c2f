package figure

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ScaleBar is one horizontal range on the length-scale chart, in meters.
type ScaleBar struct {
	Label string
	Lo    float64
	Hi    float64
}

// PhenomenaScales are the condensed-matter length scales the probe must
// resolve: superconducting vortex scales (coherence length through
// London penetration depth), electron transport, magnetic domains and
// magnon wavelengths.
func PhenomenaScales() []ScaleBar {
	return []ScaleBar{
		{Label: "AFM/FM Magnons", Lo: 1e-9, Hi: 1e-3},
		{Label: "e- Transport", Lo: 80e-9, Hi: 10e-6},
		{Label: "Magnetic Domains", Lo: 15e-9, Hi: 1e-3},
		{Label: "SC Vortices", Lo: 1e-9, Hi: 500e-9},
	}
}

// MeasurableScales are the length scales each NV sensing modality can
// access.
func MeasurableScales() []ScaleBar {
	return []ScaleBar{
		{Label: "Single NV Scanning Probe", Lo: 40e-9, Hi: 1e-3},
		{Label: "d-Doped Ensemble", Lo: 6e-9, Hi: 1e-3},
		{Label: "Single NV", Lo: 6e-9, Hi: 1e-3},
	}
}

// Scales renders one group of horizontal bars on a logarithmic length
// axis spanning 1 nm to 1 mm.
func Scales(title string, bars []ScaleBar, path string) error {
	if len(bars) == 0 {
		return fmt.Errorf("scales figure: no bars")
	}

	p := newPlot(title, "Length (m)", "")
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.X.Min, p.X.Max = 1e-9, 1e-3

	names := make([]string, len(bars))
	for i, bar := range bars {
		names[i] = bar.Label

		y := float64(i)
		rect := plotter.XYs{
			{X: bar.Lo, Y: y - 0.3},
			{X: bar.Hi, Y: y - 0.3},
			{X: bar.Hi, Y: y + 0.3},
			{X: bar.Lo, Y: y + 0.3},
		}
		poly, err := plotter.NewPolygon(rect)
		if err != nil {
			return err
		}
		poly.Color = barColor
		poly.LineStyle.Color = barEdge
		poly.LineStyle.Width = vg.Points(1.5)
		p.Add(poly)
	}
	p.NominalY(names...)

	return p.Save(canvasWidth, 5*vg.Inch, path)
}
