package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-shooter/asset"
	"github.com/lixenwraith/vi-shooter/component"
	"github.com/lixenwraith/vi-shooter/engine"
	"github.com/lixenwraith/vi-shooter/parameter"
	"github.com/lixenwraith/vi-shooter/status"
	"github.com/lixenwraith/vi-shooter/system"
	"github.com/lixenwraith/vi-shooter/vmath"
)

// Terminal draws the world into a tcell screen
// World origin maps to the screen centre; one cell spans UnitsX by UnitsY world units
// It only reads the world and must run on the goroutine that ticks it
type Terminal struct {
	screen tcell.Screen
	assets *asset.Server

	UnitsX float64
	UnitsY float64
	Title  string

	// Metrics adds wave and kill counts to the status bar when set
	Metrics *status.Registry
}

// NewTerminal creates a renderer over an initialized screen
func NewTerminal(screen tcell.Screen, assets *asset.Server) *Terminal {
	return &Terminal{
		screen: screen,
		assets: assets,
		UnitsX: parameter.WorldUnitsPerCellX,
		UnitsY: parameter.WorldUnitsPerCellY,
	}
}

// WorldToCell maps a world position to a screen cell
// The status bar occupies the last row, so the play area centre is one row up
func (r *Terminal) WorldToCell(p vmath.Vec2) (col, row int) {
	width, height := r.screen.Size()
	cx := float64(width) / 2
	cy := float64(height-1) / 2
	return int(math.Floor(cx + p.X/r.UnitsX)), int(math.Floor(cy - p.Y/r.UnitsY))
}

// Draw renders one frame
func (r *Terminal) Draw(w *engine.World) {
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.Fill(' ', bg)

	if bounds, ok := engine.GetResource[*system.BoundingBox](w.Resources); ok {
		r.drawBorder(bounds, bg.Foreground(RgbBorder))
	}

	for _, row := range engine.Query2[component.Transform, component.Sprite](w) {
		sprite, ok := r.assets.Get(row.B.Handle)
		if !ok {
			continue
		}
		r.drawSprite(row.A.Position, sprite, bg)
	}

	r.drawStatusBar(w, bg.Foreground(RgbStatusBar))
	r.screen.Show()
}

func (r *Terminal) drawSprite(pos vmath.Vec2, sprite asset.Sprite, bg tcell.Style) {
	glyph := '#'
	for _, g := range sprite.Glyph {
		glyph = g
		break
	}
	style := bg.Foreground(spriteColor(sprite.Color)).Bold(true)

	cols := max(1, int(math.Round(sprite.Width/r.UnitsX)))
	rows := max(1, int(math.Round(sprite.Height/r.UnitsY)))
	col, row := r.WorldToCell(pos)
	col -= cols / 2
	row -= rows / 2

	width, height := r.screen.Size()
	for y := row; y < row+rows; y++ {
		if y < 0 || y >= height-1 {
			continue
		}
		for x := col; x < col+cols; x++ {
			if x < 0 || x >= width {
				continue
			}
			r.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

func (r *Terminal) drawBorder(bounds *system.BoundingBox, style tcell.Style) {
	left, top := r.WorldToCell(vmath.V2(-bounds.Width/2, bounds.Height/2))
	right, bottom := r.WorldToCell(vmath.V2(bounds.Width/2, -bounds.Height/2))
	width, height := r.screen.Size()

	for x := max(left, 0); x <= min(right, width-1); x++ {
		if top >= 0 && top < height-1 {
			r.screen.SetContent(x, top, '─', nil, style)
		}
		if bottom >= 0 && bottom < height-1 {
			r.screen.SetContent(x, bottom, '─', nil, style)
		}
	}
	for y := max(top, 0); y <= min(bottom, height-2); y++ {
		if left >= 0 && left < width {
			r.screen.SetContent(left, y, '│', nil, style)
		}
		if right >= 0 && right < width {
			r.screen.SetContent(right, y, '│', nil, style)
		}
	}
}

func (r *Terminal) drawStatusBar(w *engine.World, style tcell.Style) {
	width, height := r.screen.Size()
	if height < 1 {
		return
	}

	health := "-"
	for e := range engine.Query1[component.Player](w) {
		if hp, ok := engine.Get[component.Health](w, e); ok {
			health = fmt.Sprint(hp.Value)
		}
		break
	}
	frame := int64(0)
	if tr, ok := engine.GetResource[*engine.TimeResource](w.Resources); ok {
		frame = tr.Frame
	}

	line := fmt.Sprintf(" %s  hp:%s  entities:%d  frame:%d", r.Title, health, w.EntityCount(), frame)
	if r.Metrics != nil {
		line += fmt.Sprintf("  waves:%d  killed:%d", r.Metrics.Counter("waves").Load(), r.Metrics.Counter("killed").Load())
	}
	line += "  [a/d move, space fire, q quit]"

	x := 0
	for _, ch := range line {
		if x >= width {
			break
		}
		r.screen.SetContent(x, height-1, ch, nil, style)
		x++
	}
}
