package server

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"volcano/internal/terrain"
)

func TestParseInput(t *testing.T) {
	cases := []struct {
		in   string
		want []Action
	}{
		{"r", []Action{ActionReset}},
		{"C", []Action{ActionComplete}},
		{"p ", []Action{ActionPause, ActionPause}},
		{"nS", []Action{ActionStep, ActionReseed}},
		{"\x1b[Aq", []Action{ActionQuit}},
		{"\x1b", []Action{ActionQuit}},
		{"\x03", []Action{ActionQuit}},
		{"xyz", nil},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseInput([]byte(tc.in)), "input %q", tc.in)
	}
}

func newGenerator(t *testing.T) *terrain.Generator {
	t.Helper()
	cfg := terrain.DefaultConfig()
	cfg.GridSize = 32
	g, err := terrain.NewWithConfig(cfg)
	require.NoError(t, err)
	return g
}

func TestSessionActions(t *testing.T) {
	g := newGenerator(t)
	s := newSession(g, 7)

	s.apply(ActionPause)
	s.tick(10)
	assert.Equal(t, terrain.StageFlat, g.Stage(), "paused session advanced")

	s.apply(ActionStep)
	s.tick(10)
	assert.Equal(t, terrain.StageMountain, g.Stage())
	s.tick(10)
	assert.Equal(t, terrain.StageMountain, g.Stage(), "single step ran twice")

	s.apply(ActionComplete)
	assert.True(t, g.IsComplete())

	s.apply(ActionReset)
	assert.Equal(t, terrain.StageFlat, g.Stage())

	s.apply(ActionReseed)
	assert.NotEqual(t, int64(7), s.seed)
}

func TestFrameLayout(t *testing.T) {
	g := newGenerator(t)
	g.AutoComplete()

	out := Frame(g, 20, 6)
	assert.Equal(t, 20*5, strings.Count(out, upperHalf))
	assert.Contains(t, out, "complete")
	assert.Empty(t, Frame(g, 0, 10))
	assert.Empty(t, Frame(g, 10, 1))
}
