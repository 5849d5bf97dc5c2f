package analysis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"nvfig/internal/optim"
	"nvfig/internal/physics"
)

// RidgePoint is one point on the kernel maximum curve: the momentum Q
// that maximizes the kernel at standoff distance D.
type RidgePoint struct {
	D float64
	Q float64
}

// KernelRidge traces the kernel maximum over the given distances by
// bounded maximization on [qLo, qHi]. The located maxima track the
// analytic peak q* = 3/(2d) wherever it lies inside the bracket.
func KernelRidge(ds []float64, qLo, qHi float64) ([]RidgePoint, error) {
	if len(ds) == 0 {
		return nil, fmt.Errorf("no distances to trace")
	}

	ridge := make([]RidgePoint, 0, len(ds))
	for _, d := range ds {
		k, err := physics.NewKernel(d)
		if err != nil {
			return nil, err
		}
		res, err := optim.Maximize(k.Eval, qLo, qHi, 0)
		if err != nil {
			return nil, fmt.Errorf("ridge at d=%v: %w", d, err)
		}
		ridge = append(ridge, RidgePoint{D: d, Q: res.X})
	}
	return ridge, nil
}

// RidgeSlope returns the slope of the ridge in log-log space, fitted by
// unweighted linear regression of log10(d) against log10(q). For the
// q^3 e^{-2qd} kernel the slope is -1.
func RidgeSlope(ridge []RidgePoint) (float64, error) {
	if len(ridge) < 2 {
		return 0, fmt.Errorf("need at least 2 ridge points, got %d", len(ridge))
	}

	logQ := make([]float64, len(ridge))
	logD := make([]float64, len(ridge))
	for i, p := range ridge {
		if p.Q <= 0 || p.D <= 0 {
			return 0, fmt.Errorf("ridge point %d not positive: %+v", i, p)
		}
		logQ[i] = math.Log10(p.Q)
		logD[i] = math.Log10(p.D)
	}

	_, slope := stat.LinearRegression(logQ, logD, nil, false)
	return slope, nil
}
