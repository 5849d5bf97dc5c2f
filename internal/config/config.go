package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultGridN        = 200
	DefaultTargetSNR    = 5.0
	DefaultFrames       = 60
	DefaultFrameDelayCS = 3 // hundredths of a second, ~30 fps
)

type Config struct {
	OutDir   string         `yaml:"out_dir"`
	Kernel   KernelConfig   `yaml:"kernel"`
	Delta    DeltaConfig    `yaml:"delta"`
	Readout  ReadoutConfig  `yaml:"readout"`
	Decay    DecayConfig    `yaml:"decay"`
	Sombrero SombreroConfig `yaml:"sombrero"`
}

type KernelConfig struct {
	QMin  float64 `yaml:"q_min"`
	QMax  float64 `yaml:"q_max"`
	DMin  float64 `yaml:"d_min"`
	DMax  float64 `yaml:"d_max"`
	GridN int     `yaml:"grid_n"`
}

type DeltaConfig struct {
	Center    float64 `yaml:"center"`
	Width     float64 `yaml:"width"`
	Amplitude float64 `yaml:"amplitude"`
	XMin      float64 `yaml:"x_min"`
	XMax      float64 `yaml:"x_max"`
}

type AcquisitionConfig struct {
	PhotonCountRate float64 `yaml:"photon_count_rate"`
	ReadoutTime     float64 `yaml:"readout_time"`
	Contrast        float64 `yaml:"contrast"`
}

type ReadoutConfig struct {
	TargetSNR    float64             `yaml:"target_snr"`
	EvolutionMax float64             `yaml:"evolution_max"`
	Systems      []AcquisitionConfig `yaml:"systems"`
}

type DecayConfig struct {
	DataPath  string  `yaml:"data_path"`
	TimeScale float64 `yaml:"time_scale"` // stored unit -> plotted unit
}

type SombreroConfig struct {
	MuStart      float64 `yaml:"mu_start"`
	MuEnd        float64 `yaml:"mu_end"`
	Lambda       float64 `yaml:"lambda"`
	Frames       int     `yaml:"frames"`
	Extent       float64 `yaml:"extent"`
	GridN        int     `yaml:"grid_n"`
	ZMin         float64 `yaml:"z_min"`
	ZMax         float64 `yaml:"z_max"`
	FrameDelayCS int     `yaml:"frame_delay_cs"`
}

func DefaultConfig() *Config {
	return &Config{
		OutDir: "img",
		Kernel: KernelConfig{
			QMin: 0.5, QMax: 8, DMin: 0.5, DMax: 1.5, GridN: DefaultGridN,
		},
		Delta: DeltaConfig{
			Center: 1.0, Width: 0.10, Amplitude: 1.0, XMin: 0, XMax: 2,
		},
		Readout: ReadoutConfig{
			TargetSNR:    DefaultTargetSNR,
			EvolutionMax: 0.1,
			Systems: []AcquisitionConfig{
				{PhotonCountRate: 50e3, ReadoutTime: 1e-6, Contrast: 0.30},
				{PhotonCountRate: 200e3, ReadoutTime: 1e-6, Contrast: 0.30},
				{PhotonCountRate: 1500e3, ReadoutTime: 1e-6, Contrast: 0.08},
			},
		},
		Decay: DecayConfig{
			DataPath:  "data/T1_decay.csv",
			TimeScale: 1000, // ms -> us
		},
		Sombrero: SombreroConfig{
			MuStart: 2.0, MuEnd: -0.5, Lambda: 1.0,
			Frames: DefaultFrames, Extent: 3.0, GridN: 100,
			ZMin: -5, ZMax: 20,
			FrameDelayCS: DefaultFrameDelayCS,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
