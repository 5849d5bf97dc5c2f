package physics

import (
	"fmt"
	"math"
)

// Kernel is the momentum-space filter kernel for an NV qubit held at a
// fixed standoff distance above the sample:
//
//	F(q) = q^3 * exp(-2*q*d)
//
// The q^3 factor comes from the dipolar coupling, the exponential from
// evanescent decay over the standoff distance d.
type Kernel struct {
	Distance float64
}

// NewKernel builds a kernel for standoff distance d > 0.
func NewKernel(d float64) (*Kernel, error) {
	if d <= 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return nil, fmt.Errorf("%w: standoff distance must be positive, got %v", ErrInvalidParameter, d)
	}
	return &Kernel{Distance: d}, nil
}

// Eval returns F(q) for momentum coordinate q. Negative q is outside the
// kernel's physical domain and evaluates to 0.
func (k *Kernel) Eval(q float64) float64 {
	if q <= 0 {
		return 0
	}
	return q * q * q * math.Exp(-2*q*k.Distance)
}

// KernelGrid evaluates the kernel over the outer product of qs and ds.
// The result is indexed [di][qi]. All distances must be positive.
func KernelGrid(qs, ds []float64) ([][]float64, error) {
	grid := make([][]float64, len(ds))
	for di, d := range ds {
		k, err := NewKernel(d)
		if err != nil {
			return nil, err
		}
		row := make([]float64, len(qs))
		for qi, q := range qs {
			row[qi] = k.Eval(q)
		}
		grid[di] = row
	}
	return grid, nil
}

// Linspace returns n evenly spaced values over [lo, hi], endpoints
// included. It is the grid builder shared by the figure code.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	out[n-1] = hi
	return out
}
