// Package fit estimates stretched-exponential decay parameters from
// measured relaxation data by weighted nonlinear least squares.
package fit

import (
	"errors"
	"fmt"
	"math"

	"github.com/maorshutman/lm"
	"gonum.org/v1/gonum/mat"
)

// Fit failure conditions. A failed fit never reports parameters with
// zero uncertainty.
var (
	ErrInsufficientData = errors.New("not enough samples for a 3-parameter fit")
	ErrMismatchedInput  = errors.New("time, signal and error slices must have equal length")
	ErrBadSigma         = errors.New("per-point errors must be positive")
	ErrNotConverged     = errors.New("fit did not converge")
	ErrBadCovariance    = errors.New("covariance estimate is not positive definite")
)

const (
	// minSamples leaves one degree of freedom beyond the three free
	// parameters.
	minSamples = 4

	maxIterations = 1000
	objectiveTol  = 1e-16
	jacStep       = 1e-6
)

// StretchedExp is the decay model S(t) = A * exp(-(t/tau)^gamma).
// Gamma = 1 recovers simple exponential decay.
type StretchedExp struct {
	Amplitude float64 // A
	DecayTime float64 // tau
	Stretch   float64 // gamma
}

// Eval returns S(t).
func (m StretchedExp) Eval(t float64) float64 {
	return m.Amplitude * math.Exp(-math.Pow(t/m.DecayTime, m.Stretch))
}

// Param pairs a point estimate with its standard error.
type Param struct {
	Value  float64
	Stderr float64
}

// Result holds the fitted model and per-parameter uncertainties derived
// from the diagonal of the parameter covariance matrix.
type Result struct {
	Model     StretchedExp
	Amplitude Param
	DecayTime Param
	Stretch   Param
	Residual  float64 // weighted sum of squared residuals at the solution
}

// DefaultGuess seeds the optimizer the way the decay analysis always
// has: amplitude at the signal maximum, decay time at half the observed
// span, exponent 1 (plain exponential).
func DefaultGuess(t, s []float64) StretchedExp {
	if len(s) == 0 {
		return StretchedExp{Amplitude: 1, DecayTime: 1, Stretch: 1}
	}
	maxS := s[0]
	minT, maxT := t[0], t[0]
	for i := range s {
		if s[i] > maxS {
			maxS = s[i]
		}
		if t[i] < minT {
			minT = t[i]
		}
		if t[i] > maxT {
			maxT = t[i]
		}
	}
	tau := (maxT - minT) / 2
	if tau <= 0 {
		tau = 1
	}
	if maxS == 0 {
		maxS = 1
	}
	return StretchedExp{Amplitude: maxS, DecayTime: tau, Stretch: 1}
}

// StretchedExpFit fits S(t) = A*exp(-(t/tau)^gamma) to (t, s) weighted
// by the per-point errors sigma (inverse-variance weighting, absolute
// sigma semantics). The iteration budget is fixed; non-convergence and
// a singular covariance are distinct failures.
func StretchedExpFit(t, s, sigma []float64, guess StretchedExp) (*Result, error) {
	if len(t) != len(s) || len(t) != len(sigma) {
		return nil, fmt.Errorf("%w: %d, %d, %d", ErrMismatchedInput, len(t), len(s), len(sigma))
	}
	if len(t) < minSamples {
		return nil, fmt.Errorf("%w: got %d, need %d", ErrInsufficientData, len(t), minSamples)
	}
	for i, sg := range sigma {
		if sg <= 0 || math.IsNaN(sg) {
			return nil, fmt.Errorf("%w: sigma[%d] = %v", ErrBadSigma, i, sg)
		}
	}
	if guess.DecayTime <= 0 || math.IsNaN(guess.DecayTime) {
		return nil, fmt.Errorf("initial decay time must be positive, got %v", guess.DecayTime)
	}

	// Weighted residuals: r_i = (model(t_i) - s_i) / sigma_i.
	residuals := func(dst, p []float64) {
		m := StretchedExp{Amplitude: p[0], DecayTime: p[1], Stretch: p[2]}
		for i := range t {
			dst[i] = (m.Eval(t[i]) - s[i]) / sigma[i]
		}
	}

	jacobian := lm.NumJac{Func: residuals}
	problem := lm.LMProblem{
		Dim:        3,
		Size:       len(t),
		Func:       residuals,
		Jac:        jacobian.Jac,
		InitParams: []float64{guess.Amplitude, guess.DecayTime, guess.Stretch},
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}

	results, err := lm.LM(problem, &lm.Settings{Iterations: maxIterations, ObjectiveTol: objectiveTol})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotConverged, err)
	}

	model := StretchedExp{
		Amplitude: results.X[0],
		DecayTime: results.X[1],
		Stretch:   results.X[2],
	}

	res := make([]float64, len(t))
	residuals(res, results.X)
	wss := 0.0
	for _, r := range res {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return nil, fmt.Errorf("%w: non-finite residual at solution", ErrNotConverged)
		}
		wss += r * r
	}

	stderr, err := standardErrors(residuals, results.X, len(t))
	if err != nil {
		return nil, err
	}

	return &Result{
		Model:     model,
		Amplitude: Param{Value: model.Amplitude, Stderr: stderr[0]},
		DecayTime: Param{Value: model.DecayTime, Stderr: stderr[1]},
		Stretch:   Param{Value: model.Stretch, Stderr: stderr[2]},
		Residual:  wss,
	}, nil
}

// standardErrors derives parameter uncertainties from the weighted
// Jacobian at the solution: cov = (J^T J)^-1, stderr_k = sqrt(cov_kk).
// Because the residuals already carry the 1/sigma weights, this matches
// absolute-sigma covariance.
func standardErrors(residuals func(dst, p []float64), p []float64, n int) ([3]float64, error) {
	var errs [3]float64

	jac := mat.NewDense(n, 3, nil)
	lo := make([]float64, n)
	hi := make([]float64, n)
	pp := make([]float64, 3)

	for k := 0; k < 3; k++ {
		h := jacStep * math.Max(math.Abs(p[k]), 1)

		copy(pp, p)
		pp[k] = p[k] + h
		residuals(hi, pp)

		copy(pp, p)
		pp[k] = p[k] - h
		residuals(lo, pp)

		for i := 0; i < n; i++ {
			jac.Set(i, k, (hi[i]-lo[i])/(2*h))
		}
	}

	var jtj mat.Dense
	jtj.Mul(jac.T(), jac)

	var cov mat.Dense
	if err := cov.Inverse(&jtj); err != nil {
		return errs, fmt.Errorf("%w: %v", ErrBadCovariance, err)
	}

	for k := 0; k < 3; k++ {
		v := cov.At(k, k)
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return errs, fmt.Errorf("%w: diagonal entry %d is %v", ErrBadCovariance, k, v)
		}
		errs[k] = math.Sqrt(v)
	}
	return errs, nil
}
