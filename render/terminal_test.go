package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-shooter/asset"
	"github.com/lixenwraith/vi-shooter/component"
	"github.com/lixenwraith/vi-shooter/engine"
	"github.com/lixenwraith/vi-shooter/status"
	"github.com/lixenwraith/vi-shooter/system"
	"github.com/lixenwraith/vi-shooter/vmath"
)

func newSimScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)
	return screen
}

func cellRune(screen tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func statusLine(screen tcell.SimulationScreen) string {
	width, height := screen.Size()
	runes := make([]rune, width)
	for x := range width {
		runes[x] = cellRune(screen, x, height-1)
	}
	return string(runes)
}

func TestWorldToCell(t *testing.T) {
	screen := newSimScreen(t, 80, 25)
	term := NewTerminal(screen, asset.NewServer(zerolog.Nop()))

	col, row := term.WorldToCell(vmath.V2(0, 0))
	assert.Equal(t, 40, col)
	assert.Equal(t, 12, row)

	// +Y is up on screen
	_, upper := term.WorldToCell(vmath.V2(0, 64))
	assert.Equal(t, 10, upper)

	right, _ := term.WorldToCell(vmath.V2(32, 0))
	assert.Equal(t, 42, right)
}

func TestDrawSpritesAndStatus(t *testing.T) {
	screen := newSimScreen(t, 80, 25)
	assets, err := asset.NewDefaultServer(zerolog.Nop())
	require.NoError(t, err)
	laser, err := assets.Load("laser_blue")
	require.NoError(t, err)

	w := engine.NewTestWorld()
	engine.SpawnNow(w,
		engine.With(component.Transform{Position: vmath.V2(0, 0)}),
		engine.With(component.Sprite{Handle: laser}),
	)
	// No sprite component: never drawn
	engine.SpawnNow(w, engine.With(component.Transform{Position: vmath.V2(320, 0)}))

	metrics := status.NewRegistry()
	metrics.Counter("waves").Store(2)

	term := NewTerminal(screen, assets)
	term.Title = "test"
	term.Metrics = metrics
	term.Draw(w)

	assert.Equal(t, '|', cellRune(screen, 40, 12))
	assert.Equal(t, ' ', cellRune(screen, 60, 12))

	_, height := screen.Size()
	assert.Equal(t, 't', cellRune(screen, 1, height-1))
	assert.Contains(t, statusLine(screen), "waves:2")
}

func TestDrawBorderClipsToScreen(t *testing.T) {
	screen := newSimScreen(t, 40, 12)
	w := engine.NewTestWorld()
	engine.AddResource(w.Resources, &system.BoundingBox{Width: 320, Height: 160})

	term := NewTerminal(screen, asset.NewServer(zerolog.Nop()))
	require.NotPanics(t, func() { term.Draw(w) })

	// 320 wide at 16 units per cell spans columns 10..30
	assert.Equal(t, '│', cellRune(screen, 10, 5))
	assert.Equal(t, '│', cellRune(screen, 30, 5))
}
