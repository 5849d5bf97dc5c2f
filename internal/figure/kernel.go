package figure

import (
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"nvfig/internal/analysis"
	"nvfig/internal/physics"
)

// kernelGrid adapts a dense kernel evaluation to the heat map's grid
// interface. Values are indexed [row=d][col=q].
type kernelGrid struct {
	qs, ds []float64
	z      [][]float64
}

func (g kernelGrid) Dims() (c, r int)   { return len(g.qs), len(g.ds) }
func (g kernelGrid) Z(c, r int) float64 { return g.z[r][c] }
func (g kernelGrid) X(c int) float64    { return g.qs[c] }
func (g kernelGrid) Y(r int) float64    { return g.ds[r] }

// Kernel renders the momentum-space filter function: a heat map of
// q^3 e^{-2qd} over the (q, d) grid with the ridge of per-distance
// maxima overlaid.
func Kernel(qLo, qHi, dLo, dHi float64, gridN int, path string) error {
	qs := physics.Linspace(qLo, qHi, gridN)
	ds := physics.Linspace(dLo, dHi, gridN)

	z, err := physics.KernelGrid(qs, ds)
	if err != nil {
		return err
	}

	ridge, err := analysis.KernelRidge(ds, qLo, qHi)
	if err != nil {
		return err
	}

	p := newPlot("Momentum Filter Function", "Momentum Coordinate: q", "Qubit Distance: d")

	heat := plotter.NewHeatMap(kernelGrid{qs: qs, ds: ds, z: z}, palette.Heat(30, 1))
	p.Add(heat)

	ridgeLine := make(plotter.XYs, len(ridge))
	for i, pt := range ridge {
		ridgeLine[i].X = pt.Q
		ridgeLine[i].Y = pt.D
	}
	line, err := plotter.NewLine(ridgeLine)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2.5)
	line.LineStyle.Color = ridgeColor
	line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}

	p.Add(line)
	p.Legend.Add("Maximum (Slope = -1)", line)
	p.Legend.Top = true

	return p.Save(canvasWidth, canvasHeight, path)
}
