// Package viz draws quick terminal previews of the figure curves and
// hosts the interactive sombrero explorer. Nothing here is publication
// output; it exists to sanity-check parameters before rendering PNGs.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"nvfig/internal/analysis"
	"nvfig/internal/fit"
	"nvfig/internal/physics"
)

const (
	previewWidth  = 80
	previewHeight = 12
)

func graph(data []float64, caption string) string {
	return asciigraph.Plot(data,
		asciigraph.Height(previewHeight),
		asciigraph.Width(previewWidth),
		asciigraph.Caption(caption),
	)
}

// DeltaPreview plots the delta-function approximation over [xLo, xHi].
func DeltaPreview(peak *physics.DeltaPeak, xLo, xHi float64) string {
	xs := physics.Linspace(xLo, xHi, previewWidth)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = peak.Eval(x)
	}
	return graph(ys, fmt.Sprintf("delta approx (center=%g, fwhm=%g)", peak.Center, peak.Width))
}

// ReadoutPreview plots total averaging time (minutes) against evolution
// time for one configuration.
func ReadoutPreview(p physics.AcquisitionParams, targetSNR, evoLo, evoHi float64) (string, error) {
	evos := physics.Linspace(evoLo, evoHi, previewWidth)
	ys := make([]float64, len(evos))
	for i, evo := range evos {
		total, err := p.TimeToTargetSNR(evo, targetSNR)
		if err != nil {
			return "", err
		}
		ys[i] = total / 60
	}
	caption := fmt.Sprintf("averaging time to snr=%g (min) vs evolution time", targetSNR)
	return graph(ys, caption), nil
}

// RidgePreview plots the kernel maximum q* against standoff distance.
func RidgePreview(dLo, dHi float64, n int) (string, error) {
	ridge, err := analysis.KernelRidge(physics.Linspace(dLo, dHi, n), 0.1, 10)
	if err != nil {
		return "", err
	}
	ys := make([]float64, len(ridge))
	for i, p := range ridge {
		ys[i] = p.Q
	}
	return graph(ys, "kernel ridge q*(d)"), nil
}

// DecayPreview plots a fitted stretched-exponential model over [0, span]
// together with a one-line parameter report.
func DecayPreview(res *fit.Result, span float64) string {
	ts := physics.Linspace(0, span, previewWidth)
	ys := make([]float64, len(ts))
	for i, t := range ts {
		ys[i] = res.Model.Eval(t)
	}

	var sb strings.Builder
	sb.WriteString(graph(ys, "stretched-exponential fit"))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("A = %.4g +/- %.2g   T1 = %.4g +/- %.2g   gamma = %.4g +/- %.2g\n",
		res.Amplitude.Value, res.Amplitude.Stderr,
		res.DecayTime.Value, res.DecayTime.Stderr,
		res.Stretch.Value, res.Stretch.Stderr))
	return sb.String()
}
