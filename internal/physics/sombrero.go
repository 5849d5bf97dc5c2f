package physics

import (
	"fmt"
	"math"
)

// Sombrero is the quartic symmetry-breaking potential
//
//	V(x, y) = mu*r^2 + lambda*r^4,  r^2 = x^2 + y^2
//
// For mu >= 0 the origin is the unique minimum (the "hump" regime once mu
// crosses zero from above turns into the "valley" regime); for mu < 0 the
// minima form a degenerate ring at r^2 = -mu/(2*lambda). Both signs of mu
// are valid: the animation interpolates mu across zero.
type Sombrero struct {
	Mu     float64
	Lambda float64
}

// NewSombrero builds a potential with quartic coefficient lambda > 0.
func NewSombrero(mu, lambda float64) (*Sombrero, error) {
	if lambda <= 0 || math.IsNaN(lambda) || math.IsInf(lambda, 0) {
		return nil, fmt.Errorf("%w: quartic coefficient must be positive, got %v", ErrInvalidParameter, lambda)
	}
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return nil, fmt.Errorf("%w: quadratic coefficient must be finite, got %v", ErrInvalidParameter, mu)
	}
	return &Sombrero{Mu: mu, Lambda: lambda}, nil
}

// Eval returns V(x, y).
func (s *Sombrero) Eval(x, y float64) float64 {
	return s.EvalR2(x*x + y*y)
}

// EvalR2 returns the potential as a function of r^2, the form the radial
// cross-section and ring-minimum algebra work in.
func (s *Sombrero) EvalR2(r2 float64) float64 {
	return s.Mu*r2 + s.Lambda*r2*r2
}

// MinimumRadius returns the radius of the potential minimum: 0 in the
// symmetric regime (mu >= 0), sqrt(-mu/(2*lambda)) on the degenerate ring
// in the broken regime.
func (s *Sombrero) MinimumRadius() float64 {
	if s.Mu >= 0 {
		return 0
	}
	return math.Sqrt(-s.Mu / (2 * s.Lambda))
}
