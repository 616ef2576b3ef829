package tui

import (
	"github.com/vovakirdan/treasure-hunt/internal/core"
)

// Glyphs used for images and shapes.
const (
	GlyphPlayer   = '@'
	GlyphEnemy    = '▓'
	GlyphItem     = '◆'
	GlyphChest    = '▣'
	GlyphSolid    = '█'
	GlyphParticle = '·'
)

// imageGlyphs maps image names to a glyph and color.
var imageGlyphs = map[string]core.Cell{
	"player": {Rune: GlyphPlayer, Color: core.ColorSkyBlue},
	"enemy":  {Rune: GlyphEnemy, Color: core.ColorRed},
	"item":   {Rune: GlyphItem, Color: core.ColorYellow},
	"chest":  {Rune: GlyphChest, Color: core.ColorOrange},
}

// Canvas is a core.Renderer that rasterizes logical draw calls onto a cell
// Screen, scaling the logical playfield to the screen size.
type Canvas struct {
	screen             *core.Screen
	logicalW, logicalH int
}

// NewCanvas creates a canvas for a logical playfield of w x h units.
func NewCanvas(screen *core.Screen, w, h int) *Canvas {
	return &Canvas{screen: screen, logicalW: max(1, w), logicalH: max(1, h)}
}

// Screen returns the target buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// col maps a logical x to a column.
func (c *Canvas) col(x int) int {
	return x * c.screen.Width() / c.logicalW
}

// row maps a logical y to a row.
func (c *Canvas) row(y int) int {
	return y * c.screen.Height() / c.logicalH
}

// cells maps a logical rect to cell space, covering at least one cell.
// The bool reports whether the rect was smaller than a cell.
func (c *Canvas) cells(r core.Rect) (core.Rect, bool) {
	x0, y0 := c.col(r.X), c.row(r.Y)
	x1, y1 := c.col(r.Right()), c.row(r.Bottom())
	tiny := x1 <= x0 || y1 <= y0
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0)), tiny
}

// ToLogical maps a cell position to the logical point at the cell center.
func (c *Canvas) ToLogical(col, row int) (int, int) {
	w, h := max(1, c.screen.Width()), max(1, c.screen.Height())
	return (col*c.logicalW + c.logicalW/2) / w, (row*c.logicalH + c.logicalH/2) / h
}

// Clear blanks the screen.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// DrawImage fills the image footprint with the glyph for its name.
// Unknown names, such as the background, draw nothing.
func (c *Canvas) DrawImage(img core.Image, x, y int) {
	cell, ok := imageGlyphs[img.Name]
	if !ok {
		return
	}
	r, _ := c.cells(core.NewRect(x, y, img.W, img.H))
	c.screen.DrawRect(r, cell.Rune, cell.Color)
}

// DrawRect draws a filled or outlined rectangle.
// Translucent black fills act as backdrops and blank the cells beneath.
func (c *Canvas) DrawRect(r core.Rect, clr core.Color, filled bool) {
	cr, tiny := c.cells(r)
	if !filled {
		if cr.W < 2 || cr.H < 2 {
			return
		}
		c.screen.DrawBox(cr, clr)
		return
	}

	switch {
	case clr.A < 255 && clr.R == 0 && clr.G == 0 && clr.B == 0:
		c.screen.DrawRect(cr, ' ', core.Color{})
	case tiny:
		c.screen.SetCell(cr.X, cr.Y, GlyphParticle, clr.WithAlpha(255))
	default:
		c.screen.DrawRect(cr, GlyphSolid, clr.WithAlpha(255))
	}
}

// DrawText writes text starting at the cell under (x, y). Size is ignored.
func (c *Canvas) DrawText(text string, x, y int, clr core.Color, _ int) {
	c.screen.DrawTextColor(c.col(x), c.row(y), text, clr)
}

// Present is a no-op; the model converts the screen during View.
func (c *Canvas) Present() {}
