package core

// Image identifies a renderable asset. The core never looks inside it;
// backends decide how a name is drawn at the given size.
type Image struct {
	Name string
	W, H int
}

// Renderer receives semantic draw calls for one frame.
// Coordinates are logical playfield units.
type Renderer interface {
	Clear()
	DrawImage(img Image, x, y int)
	DrawRect(r Rect, c Color, filled bool)
	DrawText(text string, x, y int, c Color, size int)
	Present()
}

// Cue names a sound effect or music track.
type Cue string

const (
	CuePop        Cue = "pop"
	CueCorrect    Cue = "correct"
	CueWrong      Cue = "wrong"
	CueClick      Cue = "click"
	CueLevelUp    Cue = "levelup"
	CueGameOver   Cue = "gameover"
	CueBackground Cue = "background"
)

// Cues lists every cue the game may request.
var Cues = []Cue{CuePop, CueCorrect, CueWrong, CueClick, CueLevelUp, CueGameOver, CueBackground}

// AudioPort plays named cues. Calls are fire-and-forget.
type AudioPort interface {
	PlayCue(c Cue)
	StopCue(c Cue)
}

// NopAudio is an AudioPort that discards every cue.
type NopAudio struct{}

// PlayCue does nothing.
func (NopAudio) PlayCue(Cue) {}

// StopCue does nothing.
func (NopAudio) StopCue(Cue) {}
