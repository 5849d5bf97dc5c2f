// Package dataset loads measured relaxation data from tabular files.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Sample is one measured point: time, signal, and the per-point
// measurement error used to weight the fit.
type Sample struct {
	Time   float64
	Signal float64
	Error  float64
}

// Series is an ordered, immutable sequence of samples.
type Series struct {
	Samples []Sample
}

// Load reads a three-column CSV (time, signal, error) with a single
// header row, the layout the acquisition software exports.
func Load(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}

	samples := make([]Sample, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != 3 {
			return nil, fmt.Errorf("%s row %d: expected 3 columns, got %d", path, i+2, len(row))
		}
		var vals [3]float64
		for j, field := range row {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s row %d col %d: %w", path, i+2, j+1, err)
			}
			vals[j] = v
		}
		samples = append(samples, Sample{Time: vals[0], Signal: vals[1], Error: vals[2]})
	}

	return &Series{Samples: samples}, nil
}

// Times returns the time column, optionally rescaled (the decay data is
// stored in milliseconds but fitted in microseconds).
func (s *Series) Times(scale float64) []float64 {
	out := make([]float64, len(s.Samples))
	for i, smp := range s.Samples {
		out[i] = smp.Time * scale
	}
	return out
}

// Signals returns the signal column.
func (s *Series) Signals() []float64 {
	out := make([]float64, len(s.Samples))
	for i, smp := range s.Samples {
		out[i] = smp.Signal
	}
	return out
}

// Errors returns the per-point error column.
func (s *Series) Errors() []float64 {
	out := make([]float64, len(s.Samples))
	for i, smp := range s.Samples {
		out[i] = smp.Error
	}
	return out
}

// TimeSpan returns the minimum and maximum time after rescaling.
func (s *Series) TimeSpan(scale float64) (lo, hi float64) {
	if len(s.Samples) == 0 {
		return 0, 0
	}
	lo, hi = s.Samples[0].Time, s.Samples[0].Time
	for _, smp := range s.Samples[1:] {
		if smp.Time < lo {
			lo = smp.Time
		}
		if smp.Time > hi {
			hi = smp.Time
		}
	}
	return lo * scale, hi * scale
}
