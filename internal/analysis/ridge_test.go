package analysis

import (
	"math"
	"testing"

	"nvfig/internal/physics"
)

func TestKernelRidgeTracksAnalyticPeak(t *testing.T) {
	ds := []float64{0.5, 0.75, 1.0, 1.25, 1.5}

	ridge, err := KernelRidge(ds, 0.1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(ridge) != len(ds) {
		t.Fatalf("expected %d points, got %d", len(ds), len(ridge))
	}

	for _, p := range ridge {
		expected := 3 / (2 * p.D)
		if math.Abs(p.Q-expected) > 1e-4 {
			t.Errorf("d=%v: expected q*=%v, got %v", p.D, expected, p.Q)
		}
	}
}

func TestKernelRidgeUnitDistance(t *testing.T) {
	ridge, err := KernelRidge([]float64{1.0}, 0.5, 8)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(ridge[0].Q-1.5) > 1e-4 {
		t.Errorf("expected q*=1.5 at d=1, got %v", ridge[0].Q)
	}
}

func TestRidgeSlope(t *testing.T) {
	ridge, err := KernelRidge(physics.Linspace(0.5, 1.5, 50), 0.1, 10)
	if err != nil {
		t.Fatal(err)
	}

	slope, err := RidgeSlope(ridge)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(slope-(-1)) > 1e-3 {
		t.Errorf("expected log-log slope -1, got %v", slope)
	}
}

func TestRidgeErrors(t *testing.T) {
	if _, err := KernelRidge(nil, 0.1, 10); err == nil {
		t.Error("expected error for empty distances")
	}
	if _, err := KernelRidge([]float64{-1}, 0.1, 10); err == nil {
		t.Error("expected error for non-positive distance")
	}
	if _, err := RidgeSlope([]RidgePoint{{D: 1, Q: 1.5}}); err == nil {
		t.Error("expected error for single ridge point")
	}
}
