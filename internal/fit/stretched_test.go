package fit

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func syntheticDecay(n int, noise float64, seed int64) (t, s, sigma []float64) {
	truth := StretchedExp{Amplitude: 2.0, DecayTime: 50, Stretch: 0.8}
	rng := rand.New(rand.NewSource(seed))

	t = make([]float64, n)
	s = make([]float64, n)
	sigma = make([]float64, n)
	for i := 0; i < n; i++ {
		t[i] = 1 + 199*float64(i)/float64(n-1)
		s[i] = truth.Eval(t[i]) + noise*rng.NormFloat64()
		sigma[i] = noise
	}
	return t, s, sigma
}

func TestStretchedExpFitRecoversTruth(t *testing.T) {
	times, signal, sigma := syntheticDecay(60, 0.02, 42)

	res, err := StretchedExpFit(times, signal, sigma, DefaultGuess(times, signal))
	if err != nil {
		t.Fatal(err)
	}

	checks := []struct {
		name  string
		param Param
		truth float64
	}{
		{"amplitude", res.Amplitude, 2.0},
		{"decay time", res.DecayTime, 50},
		{"stretch", res.Stretch, 0.8},
	}
	for _, c := range checks {
		if c.param.Stderr <= 0 {
			t.Errorf("%s: non-positive standard error %v", c.name, c.param.Stderr)
			continue
		}
		if math.Abs(c.param.Value-c.truth) > 4*c.param.Stderr {
			t.Errorf("%s: got %v +/- %v, truth %v outside 4 sigma",
				c.name, c.param.Value, c.param.Stderr, c.truth)
		}
	}

	if res.Residual <= 0 || math.IsNaN(res.Residual) {
		t.Errorf("expected positive weighted residual, got %v", res.Residual)
	}
}

func TestStretchedExpFitStderrShrinksWithSamples(t *testing.T) {
	tSmall, sSmall, sigSmall := syntheticDecay(25, 0.02, 7)
	tLarge, sLarge, sigLarge := syntheticDecay(400, 0.02, 7)

	small, err := StretchedExpFit(tSmall, sSmall, sigSmall, DefaultGuess(tSmall, sSmall))
	if err != nil {
		t.Fatal(err)
	}
	large, err := StretchedExpFit(tLarge, sLarge, sigLarge, DefaultGuess(tLarge, sLarge))
	if err != nil {
		t.Fatal(err)
	}

	if large.DecayTime.Stderr >= small.DecayTime.Stderr {
		t.Errorf("decay time stderr should shrink with more samples: %v (n=25) vs %v (n=400)",
			small.DecayTime.Stderr, large.DecayTime.Stderr)
	}
	if large.Amplitude.Stderr >= small.Amplitude.Stderr {
		t.Errorf("amplitude stderr should shrink with more samples: %v vs %v",
			small.Amplitude.Stderr, large.Amplitude.Stderr)
	}
}

func TestStretchedExpFitInputValidation(t *testing.T) {
	times, signal, sigma := syntheticDecay(10, 0.02, 1)

	_, err := StretchedExpFit(times[:3], signal[:3], sigma[:3], DefaultGuess(times[:3], signal[:3]))
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("expected ErrInsufficientData, got %v", err)
	}

	_, err = StretchedExpFit(times, signal[:5], sigma, DefaultGuess(times, signal))
	if !errors.Is(err, ErrMismatchedInput) {
		t.Errorf("expected ErrMismatchedInput, got %v", err)
	}

	bad := make([]float64, len(sigma))
	copy(bad, sigma)
	bad[2] = 0
	_, err = StretchedExpFit(times, signal, bad, DefaultGuess(times, signal))
	if !errors.Is(err, ErrBadSigma) {
		t.Errorf("expected ErrBadSigma, got %v", err)
	}
}

func TestDefaultGuess(t *testing.T) {
	times := []float64{0, 10, 20, 30}
	signal := []float64{1.8, 1.2, 0.9, 2.1}

	g := DefaultGuess(times, signal)
	if g.Amplitude != 2.1 {
		t.Errorf("expected amplitude 2.1, got %v", g.Amplitude)
	}
	if g.DecayTime != 15 {
		t.Errorf("expected decay time 15, got %v", g.DecayTime)
	}
	if g.Stretch != 1 {
		t.Errorf("expected stretch 1, got %v", g.Stretch)
	}
}

func TestStretchedExpEval(t *testing.T) {
	m := StretchedExp{Amplitude: 2, DecayTime: 50, Stretch: 1}
	if got := m.Eval(0); got != 2 {
		t.Errorf("expected amplitude at t=0, got %v", got)
	}
	if got := m.Eval(50); math.Abs(got-2*math.Exp(-1)) > 1e-12 {
		t.Errorf("expected A/e at t=tau, got %v", got)
	}
}
