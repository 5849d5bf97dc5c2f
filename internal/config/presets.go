package config

// Presets maps figure name to named parameter variants.
var Presets = map[string]map[string]*Config{
	"sombrero": {
		// Hump collapsing into the degenerate valley, the published
		// symmetry-breaking animation.
		"hump_to_valley": func() *Config {
			cfg := DefaultConfig()
			cfg.Sombrero.MuStart, cfg.Sombrero.MuEnd = 2.0, -0.5
			return cfg
		}(),
		// Reverse sweep restoring the symmetric phase.
		"restore": func() *Config {
			cfg := DefaultConfig()
			cfg.Sombrero.MuStart, cfg.Sombrero.MuEnd = -0.5, 2.0
			return cfg
		}(),
	},
	"readout": {
		// Single confocal configuration, no comparison curves.
		"confocal": func() *Config {
			cfg := DefaultConfig()
			cfg.Readout.Systems = []AcquisitionConfig{
				{PhotonCountRate: 50e3, ReadoutTime: 1e-6, Contrast: 0.30},
			}
			return cfg
		}(),
		// Wide-field ensemble: bright but low contrast.
		"wide_field": func() *Config {
			cfg := DefaultConfig()
			cfg.Readout.Systems = []AcquisitionConfig{
				{PhotonCountRate: 1500e3, ReadoutTime: 1e-6, Contrast: 0.08},
			}
			return cfg
		}(),
	},
	"delta": {
		// Narrower linewidth variant for the long-T2* sample.
		"narrow": func() *Config {
			cfg := DefaultConfig()
			cfg.Delta.Width = 0.05
			return cfg
		}(),
	},
}

// GetPreset returns the named preset or nil.
func GetPreset(figure, name string) *Config {
	variants, ok := Presets[figure]
	if !ok {
		return nil
	}
	return variants[name]
}

// ListPresets returns the preset names for a figure, or nil.
func ListPresets(figure string) []string {
	variants, ok := Presets[figure]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	return names
}
