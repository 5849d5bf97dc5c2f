package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"nvfig/internal/fit"
	"nvfig/internal/physics"
)

func TestDeltaPreview(t *testing.T) {
	peak, err := physics.NewDeltaPeak(1.0, 0.1, 1.0)
	if err != nil {
		t.Fatal(err)
	}
	out := DeltaPreview(peak, 0, 2)
	if !strings.Contains(out, "delta approx") {
		t.Errorf("missing caption in preview:\n%s", out)
	}
}

func TestReadoutPreview(t *testing.T) {
	p := physics.AcquisitionParams{PhotonCountRate: 50e3, ReadoutTime: 1e-6, Contrast: 0.3}
	out, err := ReadoutPreview(p, 5, 0, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) == 0 {
		t.Error("empty preview")
	}

	bad := physics.AcquisitionParams{PhotonCountRate: 0, ReadoutTime: 1e-6, Contrast: 0.3}
	if _, err := ReadoutPreview(bad, 5, 0, 0.1); err == nil {
		t.Error("expected error for invalid params")
	}
}

func TestRidgePreview(t *testing.T) {
	out, err := RidgePreview(0.5, 1.5, 40)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "kernel ridge") {
		t.Error("missing caption")
	}
}

func TestDecayPreview(t *testing.T) {
	res := &fit.Result{
		Model:     fit.StretchedExp{Amplitude: 2, DecayTime: 50, Stretch: 0.8},
		Amplitude: fit.Param{Value: 2, Stderr: 0.1},
		DecayTime: fit.Param{Value: 50, Stderr: 2},
		Stretch:   fit.Param{Value: 0.8, Stderr: 0.05},
	}
	out := DecayPreview(res, 200)
	if !strings.Contains(out, "gamma") {
		t.Errorf("missing parameter report:\n%s", out)
	}
}

func key(s string) tea.KeyMsg {
	if s == "tab" {
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestExploreAdjust(t *testing.T) {
	m := NewExploreModel(2.0, 1.0)

	next, _ := m.Update(key("]"))
	m = next.(ExploreModel)
	if m.mu <= 2.0 {
		t.Errorf("expected mu to increase, got %v", m.mu)
	}

	next, _ = m.Update(key("tab"))
	m = next.(ExploreModel)
	for i := 0; i < 30; i++ {
		next, _ = m.Update(key("["))
		m = next.(ExploreModel)
	}
	if m.lambda <= 0 {
		t.Errorf("lambda must stay positive, got %v", m.lambda)
	}

	next, _ = m.Update(key("r"))
	m = next.(ExploreModel)
	if m.mu != 2.0 || m.lambda != 1.0 {
		t.Errorf("reset failed: mu=%v lambda=%v", m.mu, m.lambda)
	}
}

func TestExploreViewRegimes(t *testing.T) {
	symmetric := NewExploreModel(2.0, 1.0).View()
	if !strings.Contains(symmetric, "symmetric") {
		t.Error("expected symmetric regime label")
	}

	broken := NewExploreModel(-1.0, 1.0).View()
	if !strings.Contains(broken, "broken") {
		t.Error("expected broken regime label")
	}
}
