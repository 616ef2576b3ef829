package window

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/treasure-hunt/internal/core"
)

// Colors for the procedural sprites.
var (
	colorSand     = core.RGB(46, 83, 57)
	colorSandDark = core.RGB(38, 70, 48)
	colorWood     = core.RGB(120, 72, 30)
	colorGold     = core.RGB(240, 200, 40)
	colorEyes     = core.RGB(20, 20, 40)
)

// toNRGBA converts a core color to the form ebiten expects.
func toNRGBA(c core.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Renderer draws semantic calls onto an ebiten image.
// Images are drawn procedurally from their name; there are no asset files.
type Renderer struct {
	dst    *ebiten.Image
	source *text.GoTextFaceSource
	faces  map[int]*text.GoTextFace
}

// NewRenderer loads the UI font.
func NewRenderer() (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &Renderer{source: src, faces: make(map[int]*text.GoTextFace)}, nil
}

// SetTarget sets the image drawn on by subsequent calls.
func (r *Renderer) SetTarget(dst *ebiten.Image) {
	r.dst = dst
}

func (r *Renderer) face(size int) *text.GoTextFace {
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: r.source, Size: float64(size)}
	r.faces[size] = f
	return f
}

func (r *Renderer) fill(x, y, w, h float32, c core.Color) {
	vector.DrawFilledRect(r.dst, x, y, w, h, toNRGBA(c), true)
}

// Clear fills the target with black.
func (r *Renderer) Clear() {
	r.dst.Fill(color.Black)
}

// DrawImage paints the named sprite at (x, y).
func (r *Renderer) DrawImage(img core.Image, x, y int) {
	fx, fy := float32(x), float32(y)
	w, h := float32(img.W), float32(img.H)

	switch img.Name {
	case "background":
		r.fill(fx, fy, w, h, colorSand)
		for row := float32(0); row < h; row += 80 {
			for col := float32(0); col < w; col += 80 {
				if int(row/80+col/80)%2 == 0 {
					r.fill(fx+col, fy+row, 40, 40, colorSandDark)
				}
			}
		}
	case "chest":
		r.fill(fx, fy, w, h, colorWood)
		r.fill(fx, fy+h*0.4, w, h*0.15, colorGold)
		r.fill(fx+w*0.4, fy+h*0.35, w*0.2, h*0.25, colorGold)
	case "player":
		r.fill(fx, fy, w, h, core.ColorSkyBlue)
		r.fill(fx+w*0.2, fy+h*0.25, w*0.15, h*0.15, colorEyes)
		r.fill(fx+w*0.65, fy+h*0.25, w*0.15, h*0.15, colorEyes)
	case "enemy":
		r.fill(fx, fy, w, h, core.ColorRed)
		r.fill(fx+w*0.15, fy+h*0.3, w*0.25, h*0.1, core.ColorBlack)
		r.fill(fx+w*0.6, fy+h*0.3, w*0.25, h*0.1, core.ColorBlack)
	case "item":
		r.fill(fx, fy, w, h, colorGold)
	default:
		r.fill(fx, fy, w, h, core.ColorPink)
	}
}

// DrawRect draws a filled or 2px outlined rectangle.
func (r *Renderer) DrawRect(rect core.Rect, c core.Color, filled bool) {
	x, y := float32(rect.X), float32(rect.Y)
	w, h := float32(rect.W), float32(rect.H)
	if filled {
		r.fill(x, y, w, h, c)
		return
	}
	vector.StrokeRect(r.dst, x, y, w, h, 2, toNRGBA(c), true)
}

// DrawText draws text with its top-left corner at (x, y).
func (r *Renderer) DrawText(s string, x, y int, c core.Color, size int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(toNRGBA(c))
	text.Draw(r.dst, s, r.face(size), op)
}

// Present is a no-op; ebiten shows the frame after Draw returns.
func (r *Renderer) Present() {}
