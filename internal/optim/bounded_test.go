package optim

import (
	"math"
	"testing"
)

func TestMinimizeQuadratic(t *testing.T) {
	f := func(x float64) float64 { return (x - 1.3) * (x - 1.3) }

	res, err := Minimize(f, -5, 5, 1e-10)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.X-1.3) > 1e-6 {
		t.Errorf("expected minimum at 1.3, got %v", res.X)
	}
	if res.Iterations == 0 {
		t.Error("expected at least one iteration")
	}
}

func TestMaximizeKernelPeak(t *testing.T) {
	// q^3 e^{-2qd} peaks at q = 3/(2d).
	for _, d := range []float64{0.5, 1.0, 1.5} {
		f := func(q float64) float64 { return q * q * q * math.Exp(-2*q*d) }

		res, err := Maximize(f, 0.1, 10, 1e-10)
		if err != nil {
			t.Fatal(err)
		}
		expected := 3 / (2 * d)
		if math.Abs(res.X-expected) > 1e-5 {
			t.Errorf("d=%v: expected peak at %v, got %v", d, expected, res.X)
		}
		if res.F < f(expected)-1e-9 {
			t.Errorf("d=%v: maximum value %v below value at analytic peak %v", d, res.F, f(expected))
		}
	}
}

func TestMinimizeRejectsBadBracket(t *testing.T) {
	f := func(x float64) float64 { return x * x }
	if _, err := Minimize(f, 2, 1, 0); err == nil {
		t.Error("expected error for inverted bracket")
	}
	if _, err := Minimize(f, math.NaN(), 1, 0); err == nil {
		t.Error("expected error for NaN bound")
	}
}

func TestMinimizeDefaultTolerance(t *testing.T) {
	f := func(x float64) float64 { return math.Cosh(x - 0.25) }
	res, err := Minimize(f, -2, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(res.X-0.25) > 1e-6 {
		t.Errorf("expected minimum at 0.25, got %v", res.X)
	}
}
