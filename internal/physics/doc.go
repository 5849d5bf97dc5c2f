// Package physics provides the closed-form expressions behind the
// publication figures.
//
// Every type is a small immutable parameter struct with pure evaluation
// methods:
//
//   - [Kernel]: NV momentum-space filter kernel q^3 e^{-2qd}
//   - [Sombrero]: symmetry-breaking potential mu*r^2 + lambda*r^4
//   - [DeltaPeak]: Gaussian delta-function approximation with FWHM semantics
//   - [AcquisitionParams]: photon-shot-noise readout SNR model
//
// Constructors validate physical parameters up front and return
// [ErrInvalidParameter] instead of letting NaN propagate into a figure.
// Evaluation methods hold no hidden state; calling them twice with the
// same inputs yields bit-identical results.
package physics
