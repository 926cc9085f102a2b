package core

// Full-scale output codes of the host's CV outputs.
const (
	FullScale3V = 4608
	FullScale5V = 7680
)

// DefaultTickRate is the host's control-rate in Hz.
const DefaultTickRate = 16666.667

// ControlConfig defines common control-rate settings.
type ControlConfig struct {
	TickRate  float64
	FullScale int
}

// ControlOption mutates a ControlConfig.
type ControlOption func(*ControlConfig)

// DefaultControlConfig returns the settings of the reference hardware.
func DefaultControlConfig() ControlConfig {
	return ControlConfig{
		TickRate:  DefaultTickRate,
		FullScale: FullScale5V,
	}
}

// WithTickRate sets the control tick rate in Hz.
func WithTickRate(tickRate float64) ControlOption {
	return func(cfg *ControlConfig) {
		if tickRate > 0 {
			cfg.TickRate = tickRate
		}
	}
}

// WithFullScale sets the output code that represents full scale.
func WithFullScale(fullScale int) ControlOption {
	return func(cfg *ControlConfig) {
		if fullScale > 0 {
			cfg.FullScale = fullScale
		}
	}
}

// ApplyControlOptions applies zero or more options to the default config.
func ApplyControlOptions(opts ...ControlOption) ControlConfig {
	cfg := DefaultControlConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
