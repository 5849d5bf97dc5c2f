package figure

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"nvfig/internal/physics"
)

const readoutCurveSamples = 100

// Readout renders total averaging time against evolution time for one
// or more acquisition configurations, all targeting the same SNR.
// Evolution times are plotted in milliseconds, totals in minutes.
func Readout(configs []physics.AcquisitionParams, targetSNR, evoLo, evoHi float64, path string) error {
	if len(configs) == 0 {
		return fmt.Errorf("readout figure: no acquisition configurations")
	}

	p := newPlot(
		fmt.Sprintf("Total Averaging Time to Achieve SNR = %g", targetSNR),
		"Evolution Time (ms)", "Total Averaging Time (min)")

	evos := physics.Linspace(evoLo, evoHi, readoutCurveSamples)
	for ci, cfg := range configs {
		if err := cfg.Validate(); err != nil {
			return err
		}

		curve := make(plotter.XYs, len(evos))
		for i, evo := range evos {
			total, err := cfg.TimeToTargetSNR(evo, targetSNR)
			if err != nil {
				return err
			}
			curve[i].X = evo * 1e3
			curve[i].Y = total / 60
		}

		line, err := plotter.NewLine(curve)
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = plotutil.Color(ci)

		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%.0f kcps, C=%.2f", cfg.PhotonCountRate/1e3, cfg.Contrast), line)
	}
	p.Legend.Top = true

	return p.Save(canvasWidth, 6*vg.Inch, path)
}
