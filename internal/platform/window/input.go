package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/treasure-hunt/internal/core"
)

// inputSource is the slice of ebiten's input API the window reads.
type inputSource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	Cursor() (x, y int)
	Clicked() bool
}

// ebitenInput reads the live ebiten input state.
type ebitenInput struct{}

func (ebitenInput) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenInput) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }
func (ebitenInput) Cursor() (int, int)            { return ebiten.CursorPosition() }
func (ebitenInput) Clicked() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// heldKeys are sampled every frame while down.
var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionUp:    {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:  {ebiten.KeyArrowDown, ebiten.KeyS},
}

// edgeKeys fire once per press.
var edgeKeys = map[core.Action][]ebiten.Key{
	core.ActionPause:   {ebiten.KeyP, ebiten.KeyEscape},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionQuit:    {ebiten.KeyQ},
}

// readInput builds the frame for one tick. Cursor coordinates are already
// in layout space, which equals the logical playfield.
func readInput(src inputSource) core.InputFrame {
	frame := core.NewInputFrame()
	for action, keys := range heldKeys {
		for _, k := range keys {
			if src.Pressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	for action, keys := range edgeKeys {
		for _, k := range keys {
			if src.JustPressed(k) {
				frame.Set(action)
				break
			}
		}
	}

	x, y := src.Cursor()
	frame.Pointer = core.Pointer{X: x, Y: y, Valid: true, Down: src.Clicked()}
	return frame
}
