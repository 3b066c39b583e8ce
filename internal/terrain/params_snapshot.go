package terrain

import (
	"strconv"

	"volcano/internal/core"
)

func (g *Generator) Parameters() core.ParameterSnapshot {
	cfg := g.cfg
	params := cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("grid", "Grid size", cfg.GridSize),
				int64Param("seed", "Seed", cfg.Seed),
				stringParam("noise", "Noise", cfg.Noise),
				int64Param("noise_seed", "Noise seed", cfg.NoiseSeed),
			},
		},
		{
			Name: "Timeline",
			Params: []core.Parameter{
				floatParam("flat_duration", "Flat duration", params.FlatDuration),
				floatParam("mountain_duration", "Mountain duration", params.MountainDuration),
				floatParam("crater_duration", "Crater duration", params.CraterDuration),
				floatParam("lava_duration", "Lava duration", params.LavaDuration),
				floatParam("interp_rate", "Interpolation rate", params.InterpRate),
			},
		},
		{
			Name: "Shape",
			Params: []core.Parameter{
				intParam("mound_count", "Mound count", params.MoundCount),
				floatParam("crater_lava_threshold", "Crater lava threshold", params.CraterLavaThreshold),
				floatParam("noise_amplitude", "Noise amplitude", params.NoiseAmplitude),
				intParam("noise_octaves", "Noise octaves", params.NoiseOctaves),
				floatParam("edge_drop", "Edge drop", params.EdgeDrop),
			},
		},
		{
			Name: "Lava",
			Params: []core.Parameter{
				intParam("flow_half_width", "Flow half width", params.FlowHalfWidth),
				floatParam("flow_depth", "Flow depth", params.FlowDepth),
				floatParam("flow_curve", "Flow curve", params.FlowCurve),
				intParam("fire_count", "Fire emitters", cfg.FireCount),
				intParam("smoke_count", "Smoke emitters", cfg.SmokeCount),
			},
		},
		{
			Name: "Lighting",
			Params: []core.Parameter{
				floatParam("normal_noise", "Normal noise", params.NormalNoiseFactor),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables the HUD may adjust. Changes take
// effect from the next generation step that reads them.
func (g *Generator) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "mound_count", Label: "Mound count", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 200, HasMin: true, HasMax: true},
		{Key: "interp_rate", Label: "Interpolation rate", Type: core.ParamTypeFloat, Step: 1, Min: 0.5, Max: 60, HasMin: true, HasMax: true},
		{Key: "noise_amplitude", Label: "Noise amplitude", Type: core.ParamTypeFloat, Step: 5, Min: 0, Max: 200, HasMin: true, HasMax: true},
		{Key: "flow_depth", Label: "Flow depth", Type: core.ParamTypeFloat, Step: 1, Min: 0, Max: 60, HasMin: true, HasMax: true},
		{Key: "flow_curve", Label: "Flow curve", Type: core.ParamTypeFloat, Step: 5, Min: 1, Max: 200, HasMin: true, HasMax: true},
		{Key: "fire_count", Label: "Fire emitters", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 256, HasMin: true, HasMax: true},
		{Key: "smoke_count", Label: "Smoke emitters", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 256, HasMin: true, HasMax: true},
		{Key: "normal_noise", Label: "Normal noise", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 2, HasMin: true, HasMax: true},
	}
}

func (g *Generator) control(key string) (core.ParameterControl, bool) {
	for _, c := range g.ParameterControls() {
		if c.Key == key {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

// SetIntParameter updates an integer tunable, clamped to its control bounds.
func (g *Generator) SetIntParameter(key string, value int) bool {
	c, ok := g.control(key)
	if !ok || c.Type != core.ParamTypeInt {
		return false
	}
	v := int(c.Clamp(float64(value)))
	switch key {
	case "mound_count":
		g.cfg.Params.MoundCount = v
	case "fire_count":
		g.cfg.FireCount = v
	case "smoke_count":
		g.cfg.SmokeCount = v
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a float tunable, clamped to its control bounds.
func (g *Generator) SetFloatParameter(key string, value float64) bool {
	c, ok := g.control(key)
	if !ok || c.Type != core.ParamTypeFloat {
		return false
	}
	v := c.Clamp(value)
	switch key {
	case "interp_rate":
		g.cfg.Params.InterpRate = v
	case "noise_amplitude":
		g.cfg.Params.NoiseAmplitude = v
	case "flow_depth":
		g.cfg.Params.FlowDepth = v
	case "flow_curve":
		g.cfg.Params.FlowCurve = v
	case "normal_noise":
		g.cfg.Params.NormalNoiseFactor = v
		g.touch()
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
