package figure

import (
	"os"
	"path/filepath"
	"testing"

	"nvfig/internal/dataset"
	"nvfig/internal/fit"
	"nvfig/internal/physics"
)

func outPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

func assertWritten(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("figure not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("figure file is empty")
	}
}

func TestDecayFigure(t *testing.T) {
	series := &dataset.Series{Samples: []dataset.Sample{
		{Time: 0.01, Signal: 1.9, Error: 0.05},
		{Time: 0.05, Signal: 1.4, Error: 0.05},
		{Time: 0.10, Signal: 1.0, Error: 0.06},
		{Time: 0.20, Signal: 0.5, Error: 0.04},
	}}
	res := &fit.Result{
		Model:     fit.StretchedExp{Amplitude: 2, DecayTime: 100, Stretch: 0.8},
		Amplitude: fit.Param{Value: 2, Stderr: 0.05},
		DecayTime: fit.Param{Value: 100, Stderr: 4},
		Stretch:   fit.Param{Value: 0.8, Stderr: 0.03},
	}

	path := outPath(t, "decay.png")
	if err := Decay(series, 1000, res, path); err != nil {
		t.Fatal(err)
	}
	assertWritten(t, path)

	if err := Decay(&dataset.Series{}, 1000, res, path); err == nil {
		t.Error("expected error for empty series")
	}
}

func TestKernelFigure(t *testing.T) {
	path := outPath(t, "kernel.png")
	if err := Kernel(0.5, 8, 0.5, 1.5, 40, path); err != nil {
		t.Fatal(err)
	}
	assertWritten(t, path)
}

func TestDeltaFigure(t *testing.T) {
	peak, err := physics.NewDeltaPeak(1.0, 0.1, 1.0)
	if err != nil {
		t.Fatal(err)
	}

	path := outPath(t, "delta.png")
	if err := Delta(peak, 0, 2, path); err != nil {
		t.Fatal(err)
	}
	assertWritten(t, path)
}

func TestReadoutFigure(t *testing.T) {
	configs := []physics.AcquisitionParams{
		{PhotonCountRate: 50e3, ReadoutTime: 1e-6, Contrast: 0.30},
		{PhotonCountRate: 200e3, ReadoutTime: 1e-6, Contrast: 0.30},
		{PhotonCountRate: 1500e3, ReadoutTime: 1e-6, Contrast: 0.08},
	}

	path := outPath(t, "readout.png")
	if err := Readout(configs, 5, 0, 0.1, path); err != nil {
		t.Fatal(err)
	}
	assertWritten(t, path)

	bad := []physics.AcquisitionParams{{PhotonCountRate: 0, ReadoutTime: 1e-6, Contrast: 0.3}}
	if err := Readout(bad, 5, 0, 0.1, path); err == nil {
		t.Error("expected error for invalid acquisition params")
	}
}

func TestScalesFigure(t *testing.T) {
	path := outPath(t, "scales.png")
	if err := Scales("Phenomena Length Scales", PhenomenaScales(), path); err != nil {
		t.Fatal(err)
	}
	assertWritten(t, path)

	if err := Scales("empty", nil, path); err == nil {
		t.Error("expected error for empty bars")
	}
}

func TestSombreroFrames(t *testing.T) {
	frames, err := SombreroFrames(2.0, -0.5, 1.0, 3, 3, 24, -5, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(frames))
	}
	for i, f := range frames {
		if f.Bounds().Dx() == 0 || f.Bounds().Dy() == 0 {
			t.Errorf("frame %d has empty bounds", i)
		}
	}

	if _, err := SombreroFrames(2, -0.5, 1, 1, 3, 24, -5, 20); err == nil {
		t.Error("expected error for single-frame animation")
	}
	if _, err := SombreroFrames(2, -0.5, 0, 3, 3, 24, -5, 20); err == nil {
		t.Error("expected error for non-positive lambda")
	}
}
