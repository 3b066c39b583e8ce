package ui

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volcano/internal/core"
	"volcano/internal/terrain"
)

func TestNudgeClampsToBounds(t *testing.T) {
	ctrl := core.ParameterControl{Type: core.ParamTypeInt, Step: 2, Min: 0, Max: 5, HasMin: true, HasMax: true}

	v, ok := nudge(ctrl, 4, 1)
	assert.True(t, ok)
	assert.Equal(t, 5.0, v)

	_, ok = nudge(ctrl, 5, 1)
	assert.False(t, ok, "already at max")

	v, ok = nudge(ctrl, 1, -1)
	assert.True(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestNudgeDefaultsStep(t *testing.T) {
	v, ok := nudge(core.ParameterControl{Type: core.ParamTypeFloat}, 1, -1)
	assert.True(t, ok)
	assert.InDelta(t, 0.95, v, 1e-9)

	v, ok = nudge(core.ParameterControl{Type: core.ParamTypeInt}, 3, 1)
	assert.True(t, ok)
	assert.Equal(t, 4.0, v)

	_, ok = nudge(core.ParameterControl{Type: core.ParamTypeString}, 3, 1)
	assert.False(t, ok)
}

func TestFormatValuePrecision(t *testing.T) {
	assert.Equal(t, "12", formatValue(core.ParameterControl{Type: core.ParamTypeInt}, 12.4))
	assert.Equal(t, "0.35", formatValue(core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.05}, 0.35))
	assert.Equal(t, "7.5", formatValue(core.ParameterControl{Type: core.ParamTypeFloat, Step: 5}, 7.5))
	assert.Equal(t, "0.125", formatValue(core.ParameterControl{Type: core.ParamTypeFloat, Step: 0.005}, 0.125))
}

func TestControlsDriveGenerator(t *testing.T) {
	cfg := terrain.DefaultConfig()
	cfg.GridSize = 16
	g, err := terrain.NewWithConfig(cfg)
	require.NoError(t, err)

	snap := g.Parameters()
	for _, ctrl := range g.ParameterControls() {
		p, ok := snap.Lookup(ctrl.Key)
		require.True(t, ok, "control %s missing from snapshot", ctrl.Key)
		cur, ok := parseValue(ctrl, p.Value)
		require.True(t, ok, "control %s value %q", ctrl.Key, p.Value)
		if target, ok := nudge(ctrl, cur, 1); ok {
			assert.True(t, applyControl(g, ctrl, target), "control %s rejected", ctrl.Key)
		}
	}
	assert.Equal(t, cfg.Params.MoundCount+1, g.Config().Params.MoundCount)
	assert.Equal(t, cfg.FireCount+1, g.Config().FireCount)
}

func TestGridPointInvertsWorld(t *testing.T) {
	world := mgl32.Translate3D(10, 0, -5).Mul4(mgl32.Scale3D(2, 2, 2))
	p := mgl32.TransformCoordinate(mgl32.Vec3{3, 7, 4}, world)

	col, row := gridPoint(world, p)
	assert.InDelta(t, 3, col, 1e-4)
	assert.InDelta(t, 4, row, 1e-4)
}
