// Package optim provides bounded one-dimensional optimization for
// locating extrema of the closed-form physics functions, such as the
// momentum-kernel ridge.
package optim

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoConvergence reports that the bracket did not shrink below the
// tolerance within the iteration budget.
var ErrNoConvergence = errors.New("bounded search did not converge")

const (
	defaultTol = 1e-8
	maxIter    = 200
)

// invphi is 1/phi, the golden-section bracket reduction ratio.
var invphi = (math.Sqrt(5) - 1) / 2

// Result holds the located extremum.
type Result struct {
	X          float64
	F          float64
	Iterations int
}

// Minimize locates the minimum of f on [lo, hi] by golden-section
// search. f must be unimodal on the interval; tol <= 0 selects the
// default tolerance.
func Minimize(f func(float64) float64, lo, hi, tol float64) (Result, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo >= hi {
		return Result{}, fmt.Errorf("invalid bracket [%v, %v]", lo, hi)
	}
	if tol <= 0 {
		tol = defaultTol
	}

	a, b := lo, hi
	c := b - (b-a)*invphi
	d := a + (b-a)*invphi
	fc, fd := f(c), f(d)

	iter := 0
	for ; iter < maxIter; iter++ {
		if b-a <= tol {
			x := (a + b) / 2
			return Result{X: x, F: f(x), Iterations: iter}, nil
		}
		if fc < fd {
			b, d, fd = d, c, fc
			c = b - (b-a)*invphi
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			d = a + (b-a)*invphi
			fd = f(d)
		}
	}

	return Result{X: (a + b) / 2, F: f((a + b) / 2), Iterations: iter}, ErrNoConvergence
}

// Maximize locates the maximum of f on [lo, hi].
func Maximize(f func(float64) float64, lo, hi, tol float64) (Result, error) {
	res, err := Minimize(func(x float64) float64 { return -f(x) }, lo, hi, tol)
	res.F = -res.F
	return res, err
}
