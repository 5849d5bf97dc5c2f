package physics

import (
	"fmt"
	"math"
)

// fwhmToSigma converts a full-width-half-maximum to a Gaussian standard
// deviation: sigma = w / (2*sqrt(2*ln 2)).
var fwhmToSigma = 1 / (2 * math.Sqrt(2*math.Ln2))

// DeltaPeak approximates a delta function with a Gaussian specified by
// its FWHM rather than its standard deviation, so the peak value equals
// Amplitude exactly and the half-maximum crossings sit at
// Center +/- Width/2.
type DeltaPeak struct {
	Center    float64
	Width     float64
	Amplitude float64
}

// NewDeltaPeak builds a peak with FWHM width > 0.
func NewDeltaPeak(center, width, amplitude float64) (*DeltaPeak, error) {
	if width <= 0 || math.IsNaN(width) || math.IsInf(width, 0) {
		return nil, fmt.Errorf("%w: peak width must be positive, got %v", ErrInvalidParameter, width)
	}
	return &DeltaPeak{Center: center, Width: width, Amplitude: amplitude}, nil
}

// Sigma returns the Gaussian standard deviation equivalent to the FWHM.
func (p *DeltaPeak) Sigma() float64 {
	return p.Width * fwhmToSigma
}

// Eval returns the peak value at x.
func (p *DeltaPeak) Eval(x float64) float64 {
	sigma := p.Sigma()
	dx := x - p.Center
	return p.Amplitude * math.Exp(-dx*dx/(2*sigma*sigma))
}
