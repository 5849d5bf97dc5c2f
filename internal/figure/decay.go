package figure

import (
	"fmt"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"nvfig/internal/dataset"
	"nvfig/internal/fit"
	"nvfig/internal/physics"
)

// decayCurveSamples is the resolution of the drawn fit curve.
const decayCurveSamples = 200

type valuesWithErrors struct {
	plotter.XYs
	plotter.YErrors
}

// Decay renders the longitudinal relaxation figure: measured points
// with error bars and the fitted stretched-exponential curve. timeScale
// converts the stored time unit to the plotted one (1000 for ms to us).
func Decay(series *dataset.Series, timeScale float64, res *fit.Result, path string) error {
	if len(series.Samples) == 0 {
		return fmt.Errorf("decay figure: empty series")
	}

	times := series.Times(timeScale)
	signals := series.Signals()
	errors := series.Errors()

	data := valuesWithErrors{
		XYs:     make(plotter.XYs, len(times)),
		YErrors: make(plotter.YErrors, len(times)),
	}
	for i := range times {
		data.XYs[i].X = times[i]
		data.XYs[i].Y = signals[i]
		data.YErrors[i].Low = errors[i]
		data.YErrors[i].High = errors[i]
	}

	p := newPlot("Longitudinal Decay (T1)", "tau (us)", "Polarization")

	scatter, err := plotter.NewScatter(data.XYs)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = dataColor
	scatter.GlyphStyle.Radius = vg.Points(4)

	bars, err := plotter.NewYErrorBars(data)
	if err != nil {
		return err
	}

	lo, hi := series.TimeSpan(timeScale)
	curve := make(plotter.XYs, decayCurveSamples)
	for i, t := range physics.Linspace(lo, hi, decayCurveSamples) {
		curve[i].X = t
		curve[i].Y = res.Model.Eval(t)
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2.5)
	line.LineStyle.Color = fitColor

	p.Add(bars, scatter, line)
	p.Legend.Add("Data", scatter)
	p.Legend.Add(fmt.Sprintf("A e^-(tau/T1)^g, T1=%.3g", res.DecayTime.Value), line)
	p.Legend.Top = true

	return p.Save(canvasWidth, canvasHeight, path)
}
