package physics

import (
	"fmt"
	"math"
)

// AcquisitionParams describes one optical readout configuration.
type AcquisitionParams struct {
	PhotonCountRate float64 // photons per second
	ReadoutTime     float64 // seconds
	Contrast        float64 // signal visibility in [0,1]
}

// Validate rejects configurations whose SNR per readout would be zero or
// undefined. Contrast of exactly zero is rejected because the time-to-SNR
// formula divides by it.
func (p AcquisitionParams) Validate() error {
	if p.PhotonCountRate <= 0 || math.IsNaN(p.PhotonCountRate) || math.IsInf(p.PhotonCountRate, 0) {
		return fmt.Errorf("%w: photon count rate must be positive, got %v", ErrInvalidParameter, p.PhotonCountRate)
	}
	if p.ReadoutTime <= 0 || math.IsNaN(p.ReadoutTime) || math.IsInf(p.ReadoutTime, 0) {
		return fmt.Errorf("%w: readout time must be positive, got %v", ErrInvalidParameter, p.ReadoutTime)
	}
	if p.Contrast <= 0 || p.Contrast > 1 || math.IsNaN(p.Contrast) {
		return fmt.Errorf("%w: contrast must be in (0,1], got %v", ErrInvalidParameter, p.Contrast)
	}
	return nil
}

// PhotonsPerReadout returns the expected photon count collected in one
// readout window.
func (p AcquisitionParams) PhotonsPerReadout() float64 {
	return p.PhotonCountRate * p.ReadoutTime
}

// SNRPerReadout returns the shot-noise-limited SNR of a single readout.
// The 1/sqrt(2) is the fixed penalty of a differential (background
// subtracted) measurement; a different readout scheme needs a different
// factor.
func (p AcquisitionParams) SNRPerReadout() float64 {
	return p.Contrast * math.Sqrt(p.PhotonsPerReadout()) / math.Sqrt2
}

// TimeToTargetSNR returns the total averaging time needed to reach
// targetSNR when each shot spends evolutionTime evolving before a
// readout window. Averaging n shots improves SNR by sqrt(n), so
// n = (target/snrPerReadout)^2.
func (p AcquisitionParams) TimeToTargetSNR(evolutionTime, targetSNR float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if evolutionTime < 0 || math.IsNaN(evolutionTime) {
		return 0, fmt.Errorf("%w: evolution time must be non-negative, got %v", ErrInvalidParameter, evolutionTime)
	}
	if targetSNR <= 0 || math.IsNaN(targetSNR) || math.IsInf(targetSNR, 0) {
		return 0, fmt.Errorf("%w: target SNR must be positive, got %v", ErrInvalidParameter, targetSNR)
	}

	perReadout := p.SNRPerReadout()
	readouts := (targetSNR / perReadout) * (targetSNR / perReadout)
	return readouts * (evolutionTime + p.ReadoutTime), nil
}
