// Package figure renders the publication figures. Each renderer takes
// validated physics inputs and writes a PNG; the sombrero renderer
// produces in-memory frames for the animation encoder instead.
//
// All numeric work happens in the physics, analysis and fit packages;
// nothing here computes anything beyond axis bookkeeping.
package figure

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Standard canvas size for the static figures, matching the 10x7 inch
// layout of the published versions.
const (
	canvasWidth  = 10 * vg.Inch
	canvasHeight = 7 * vg.Inch
)

var (
	dataColor  = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	fitColor   = color.RGBA{R: 220, G: 20, B: 60, A: 255}
	ridgeColor = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	barColor   = color.RGBA{R: 211, G: 211, B: 211, A: 255}
	barEdge    = color.RGBA{A: 255}
)

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(20)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.X.Label.TextStyle.Font.Size = vg.Points(16)
	p.Y.Label.TextStyle.Font.Size = vg.Points(16)
	return p
}
