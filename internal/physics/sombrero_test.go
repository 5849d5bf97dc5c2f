package physics

import (
	"math"
	"testing"
)

func TestSombreroOrigin(t *testing.T) {
	for _, mu := range []float64{2.0, 0.0, -0.5} {
		s, err := NewSombrero(mu, 1.0)
		if err != nil {
			t.Fatal(err)
		}
		if v := s.Eval(0, 0); v != 0 {
			t.Errorf("mu=%v: expected V(0,0)=0, got %v", mu, v)
		}
	}
}

func TestSombreroNonNegativeSymmetricRegime(t *testing.T) {
	s, _ := NewSombrero(1.5, 0.5)
	for _, x := range Linspace(-3, 3, 25) {
		for _, y := range Linspace(-3, 3, 25) {
			if v := s.Eval(x, y); v < 0 {
				t.Fatalf("V(%v,%v)=%v negative with mu>=0", x, y, v)
			}
		}
	}
}

func TestSombreroRingMinimum(t *testing.T) {
	s, _ := NewSombrero(-2.0, 0.5)

	r := s.MinimumRadius()
	expected := math.Sqrt(2.0 / (2 * 0.5))
	if math.Abs(r-expected) > 1e-12 {
		t.Fatalf("expected ring radius %v, got %v", expected, r)
	}

	// Radial gradient dV/dr should vanish on the ring.
	h := 1e-6
	grad := (s.Eval(r+h, 0) - s.Eval(r-h, 0)) / (2 * h)
	if math.Abs(grad) > 1e-5 {
		t.Errorf("expected vanishing gradient at ring, got %v", grad)
	}

	// Ring value sits below the origin.
	if s.Eval(r, 0) >= s.Eval(0, 0) {
		t.Error("ring minimum should be below the central hump")
	}
}

func TestSombreroMinimumRadiusSymmetric(t *testing.T) {
	s, _ := NewSombrero(0.3, 1.0)
	if r := s.MinimumRadius(); r != 0 {
		t.Errorf("expected origin minimum for mu>0, got r=%v", r)
	}
}

func TestNewSombreroRejectsBadLambda(t *testing.T) {
	for _, lambda := range []float64{0, -1, math.NaN()} {
		if _, err := NewSombrero(1, lambda); err == nil {
			t.Errorf("expected error for lambda %v", lambda)
		}
	}
	if _, err := NewSombrero(math.NaN(), 1); err == nil {
		t.Error("expected error for NaN mu")
	}
}
