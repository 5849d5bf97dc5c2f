package figure

import (
	"fmt"
	"image"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"nvfig/internal/physics"
)

// sombreroGrid exposes a dense potential evaluation to the heat map.
type sombreroGrid struct {
	xs, ys []float64
	z      [][]float64
}

func (g sombreroGrid) Dims() (c, r int)   { return len(g.xs), len(g.ys) }
func (g sombreroGrid) Z(c, r int) float64 { return g.z[r][c] }
func (g sombreroGrid) X(c int) float64    { return g.xs[c] }
func (g sombreroGrid) Y(r int) float64    { return g.ys[r] }

// SombreroFrame renders one heat-map frame of the potential over
// [-extent, extent]^2. zMin and zMax pin the color scale so frames of
// an animation share it; the values are clamped into that range.
func SombreroFrame(s *physics.Sombrero, extent float64, gridN int, zMin, zMax float64) (image.Image, error) {
	if extent <= 0 || gridN < 2 {
		return nil, fmt.Errorf("sombrero frame: bad grid (extent=%v, n=%d)", extent, gridN)
	}
	if zMax <= zMin {
		return nil, fmt.Errorf("sombrero frame: bad color range [%v, %v]", zMin, zMax)
	}

	xs := physics.Linspace(-extent, extent, gridN)
	ys := physics.Linspace(-extent, extent, gridN)
	z := make([][]float64, len(ys))
	for yi, y := range ys {
		row := make([]float64, len(xs))
		for xi, x := range xs {
			v := s.Eval(x, y)
			if v < zMin {
				v = zMin
			}
			if v > zMax {
				v = zMax
			}
			row[xi] = v
		}
		z[yi] = row
	}

	p := newPlot(fmt.Sprintf("Sombrero Potential (mu=%.2f)", s.Mu), "x", "y")

	heat := plotter.NewHeatMap(sombreroGrid{xs: xs, ys: ys, z: z}, palette.Heat(48, 1))
	heat.Min, heat.Max = zMin, zMax
	p.Add(heat)

	canvas := vgimg.New(6*vg.Inch, 5*vg.Inch)
	p.Draw(draw.New(canvas))
	return canvas.Image(), nil
}

// SombreroFrames renders the symmetry-breaking sweep: mu interpolated
// linearly from muStart to muEnd at fixed lambda, one frame per step.
func SombreroFrames(muStart, muEnd, lambda float64, frames int, extent float64, gridN int, zMin, zMax float64) ([]image.Image, error) {
	if frames < 2 {
		return nil, fmt.Errorf("sombrero animation: need at least 2 frames, got %d", frames)
	}

	out := make([]image.Image, 0, frames)
	for _, mu := range physics.Linspace(muStart, muEnd, frames) {
		s, err := physics.NewSombrero(mu, lambda)
		if err != nil {
			return nil, err
		}
		img, err := SombreroFrame(s, extent, gridN, zMin, zMax)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, nil
}
