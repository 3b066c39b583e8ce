package terrain

import (
	"strconv"

	"volcano/internal/noise"
)

// Params holds the generation tunables. Durations are in seconds of
// simulated time.
type Params struct {
	MoundCount int

	FlatDuration     float64
	MountainDuration float64
	CraterDuration   float64
	LavaDuration     float64

	// InterpRate is the number of seconds over which a displayed height
	// closes its full gap to the target; each update moves it dt/InterpRate.
	InterpRate float64

	CraterLavaThreshold float64
	AshHeight           float64

	NoiseAmplitude float64
	NoiseOctaves   int

	FlowHalfWidth int
	FlowDepth     float64
	FlowCurve     float64

	EdgeDrop          float64
	NormalNoiseFactor float64
}

// Config controls the terrain generator.
type Config struct {
	GridSize int

	Seed      int64
	Noise     string
	NoiseSeed int64

	FireCount  int
	SmokeCount int

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		GridSize:   500,
		Seed:       1337,
		Noise:      noise.DefaultSource,
		NoiseSeed:  42,
		FireCount:  15,
		SmokeCount: 5,
		Params: Params{
			MoundCount:          30,
			FlatDuration:        5,
			MountainDuration:    15,
			CraterDuration:      5,
			LavaDuration:        10,
			InterpRate:          10,
			CraterLavaThreshold: 625,
			AshHeight:           150,
			NoiseAmplitude:      35,
			NoiseOctaves:        10,
			FlowHalfWidth:       10,
			FlowDepth:           15,
			FlowCurve:           25,
			EdgeDrop:            -100,
			NormalNoiseFactor:   0.2,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["grid"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 2 && parsed <= MaxGridSize {
			c.GridSize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["noise"]; ok {
		if _, known := noise.Lookup(v); known {
			c.Noise = v
		}
	}
	if v, ok := cfg["noise_seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.NoiseSeed = parsed
		}
	}
	if v, ok := cfg["fire_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.FireCount = parsed
		}
	}
	if v, ok := cfg["smoke_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SmokeCount = parsed
		}
	}
	if v, ok := cfg["mound_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.MoundCount = parsed
		}
	}
	setDuration := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}
	setDuration("flat_duration", &c.Params.FlatDuration)
	setDuration("mountain_duration", &c.Params.MountainDuration)
	setDuration("crater_duration", &c.Params.CraterDuration)
	setDuration("lava_duration", &c.Params.LavaDuration)
	if v, ok := cfg["interp_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.InterpRate = parsed
		}
	}
	if v, ok := cfg["crater_lava_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.CraterLavaThreshold = parsed
		}
	}
	if v, ok := cfg["ash_height"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.AshHeight = parsed
		}
	}
	if v, ok := cfg["noise_amplitude"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.NoiseAmplitude = parsed
		}
	}
	if v, ok := cfg["noise_octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.NoiseOctaves = parsed
		}
	}
	if v, ok := cfg["flow_half_width"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.FlowHalfWidth = parsed
		}
	}
	if v, ok := cfg["flow_depth"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.FlowDepth = parsed
		}
	}
	if v, ok := cfg["flow_curve"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.FlowCurve = parsed
		}
	}
	if v, ok := cfg["edge_drop"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.EdgeDrop = parsed
		}
	}
	if v, ok := cfg["normal_noise"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.NormalNoiseFactor = parsed
		}
	}
	return c
}
