package ui

import (
	"math"
	"strconv"

	"volcano/internal/core"
)

const defaultFloatStep = 0.05

// nudge returns the value one step away from current in direction dir,
// clamped to the control's bounds. ok is false when the clamp leaves the value
// unchanged.
func nudge(ctrl core.ParameterControl, current float64, dir int) (float64, bool) {
	if dir == 0 {
		return current, false
	}
	step := ctrl.Step
	switch ctrl.Type {
	case core.ParamTypeInt:
		step = math.Round(step)
		if step <= 0 {
			step = 1
		}
	case core.ParamTypeFloat:
		if step <= 0 {
			step = defaultFloatStep
		}
	default:
		return current, false
	}
	target := ctrl.Clamp(current + float64(dir)*step)
	if ctrl.Type == core.ParamTypeInt {
		target = math.Round(target)
	}
	if math.Abs(target-current) < 1e-9 {
		return current, false
	}
	return target, true
}

// formatValue renders v with a precision matching the control's step.
func formatValue(ctrl core.ParameterControl, v float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// parseValue reads a snapshot value for a numeric control.
func parseValue(ctrl core.ParameterControl, raw string) (float64, bool) {
	switch ctrl.Type {
	case core.ParamTypeInt:
		v, err := strconv.Atoi(raw)
		return float64(v), err == nil
	case core.ParamTypeFloat:
		v, err := strconv.ParseFloat(raw, 64)
		return v, err == nil
	}
	return 0, false
}

// applyControl pushes value to whichever setter sim implements for the
// control's type.
func applyControl(sim core.Sim, ctrl core.ParameterControl, value float64) bool {
	switch ctrl.Type {
	case core.ParamTypeInt:
		if s, ok := sim.(core.IntParameterSetter); ok {
			return s.SetIntParameter(ctrl.Key, int(math.Round(value)))
		}
	case core.ParamTypeFloat:
		if s, ok := sim.(core.FloatParameterSetter); ok {
			return s.SetFloatParameter(ctrl.Key, value)
		}
	}
	return false
}

// KeyHelp lists the viewer's keyboard bindings.
var KeyHelp = []string{
	"space/p pause  n step",
	"r reset  s reseed",
	"c complete  q quit",
	"1 lava  2 emitters",
}
