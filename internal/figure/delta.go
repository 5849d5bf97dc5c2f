package figure

import (
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"nvfig/internal/physics"
)

const deltaCurveSamples = 1000

// Delta renders the temporal-frequency filter function: a Gaussian
// delta-function approximation with a marker across its full width at
// half maximum (the 1/T2* linewidth).
func Delta(peak *physics.DeltaPeak, xLo, xHi float64, path string) error {
	curve := make(plotter.XYs, deltaCurveSamples)
	for i, x := range physics.Linspace(xLo, xHi, deltaCurveSamples) {
		curve[i].X = x
		curve[i].Y = peak.Eval(x)
	}

	p := newPlot("", "w / w0", "Temporal-Frequency Filter Function")

	line, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = dataColor

	// Width marker at half maximum.
	half := peak.Amplitude / 2
	marker, err := plotter.NewLine(plotter.XYs{
		{X: peak.Center - peak.Width/2, Y: half},
		{X: peak.Center + peak.Width/2, Y: half},
	})
	if err != nil {
		return err
	}
	marker.LineStyle.Width = vg.Points(2)
	marker.LineStyle.Color = barEdge

	p.Add(line, marker)
	p.X.Min, p.X.Max = xLo, xHi
	p.Y.Min, p.Y.Max = 0, peak.Amplitude*1.1

	return p.Save(9*vg.Inch, 7*vg.Inch, path)
}
