package match

import (
	"image/color"
	"strconv"
)

// DrawKind selects how a DrawCommand is interpreted by the renderer.
type DrawKind int

const (
	DrawClear DrawKind = iota
	DrawSprite
	DrawText
)

// Sprite names the gameplay textures.
type Sprite int

const (
	SpriteBackground Sprite = iota
	SpriteLeftPaddle
	SpriteRightPaddle
	SpriteBall
	spriteCount
)

var spriteNames = [spriteCount]string{
	SpriteBackground:  "background",
	SpriteLeftPaddle:  "playerLeft",
	SpriteRightPaddle: "playerRight",
	SpriteBall:        "ball",
}

func (s Sprite) String() string {
	if s < 0 || s >= spriteCount {
		return "unknown"
	}
	return spriteNames[s]
}

// Sprites lists every sprite the renderer must resolve.
func Sprites() []Sprite {
	return []Sprite{SpriteBackground, SpriteLeftPaddle, SpriteRightPaddle, SpriteBall}
}

// DrawCommand is one positioned draw request. For sprites X,Y is the
// top-left corner; for text it is the left end of the baseline.
type DrawCommand struct {
	Kind     DrawKind
	Sprite   Sprite
	X, Y     float64
	Text     string
	FontSize float64
	Color    color.RGBA
}

// Text sizes and colours used on the gameplay screens.
const (
	scoreFontSize     = 75
	countdownFontSize = 100
	bannerFontSize    = 30
)

var (
	colorBlack = color.RGBA{A: 255}
	colorWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

const rematchPrompt = "Press [ENTER] for rematch, [ESC] for main menu"

// TextMeasurer reports the rendered extent of a string at a font size.
type TextMeasurer interface {
	Measure(text string, size float64) Size
}

// MonoMeasurer estimates text extents with a fixed advance per rune. It is
// the measurer used when nothing better is available, e.g. headless runs.
type MonoMeasurer struct{}

// Measure implements TextMeasurer.
func (MonoMeasurer) Measure(text string, size float64) Size {
	return Size{W: float64(len([]rune(text))) * size / 2, H: size * 7 / 10}
}

// DrawList returns the draw requests for the current session state.
func (s Session) DrawList(m TextMeasurer) []DrawCommand {
	if m == nil {
		m = MonoMeasurer{}
	}
	if s.Phase == PhaseMatchOver {
		return s.drawWinScreen(m)
	}

	w, h := s.Rules.FieldW, s.Rules.FieldH
	cmds := s.drawBackground()

	cmds = append(cmds,
		DrawCommand{Kind: DrawText, X: w/4*3 - 32, Y: 45, Text: strconv.Itoa(s.Score.Right), FontSize: scoreFontSize, Color: colorBlack},
		DrawCommand{Kind: DrawText, X: w / 4, Y: 45, Text: strconv.Itoa(s.Score.Left), FontSize: scoreFontSize, Color: colorBlack},
	)

	if s.Phase == PhaseCountdown {
		digit := strconv.Itoa(s.Countdown.Digit())
		ext := m.Measure(digit, countdownFontSize)
		cmds = append(cmds, DrawCommand{
			Kind: DrawText, X: w/2 - ext.W/2, Y: h/2 - ext.H/2,
			Text: digit, FontSize: countdownFontSize, Color: colorWhite,
		})
	}

	cmds = append(cmds,
		spriteAt(SpriteLeftPaddle, s.Left.Pos, s.Dims.LeftPaddle),
		spriteAt(SpriteRightPaddle, s.Right.Pos, s.Dims.RightPaddle),
		spriteAt(SpriteBall, s.Ball.Pos, s.Dims.Ball),
	)
	return cmds
}

// drawBackground tiles the background sprite over the whole field, one
// extra row and column so partial tiles reach the edges.
func (s Session) drawBackground() []DrawCommand {
	bg := s.Dims.Background
	if bg.W <= 0 || bg.H <= 0 {
		return nil
	}
	cols := int(s.Rules.FieldW/bg.W) + 1
	rows := int(s.Rules.FieldH/bg.H) + 1
	cmds := make([]DrawCommand, 0, cols*rows+6)
	for x := 0; x < cols; x++ {
		for y := 0; y < rows; y++ {
			cmds = append(cmds, DrawCommand{
				Kind: DrawSprite, Sprite: SpriteBackground,
				X: float64(x) * bg.W, Y: float64(y) * bg.H,
			})
		}
	}
	return cmds
}

func (s Session) drawWinScreen(m TextMeasurer) []DrawCommand {
	w, h := s.Rules.FieldW, s.Rules.FieldH
	banner := WinnerBanner(s.Winner)

	be := m.Measure(banner, bannerFontSize)
	pe := m.Measure(rematchPrompt, bannerFontSize)
	return []DrawCommand{
		{Kind: DrawClear, Color: colorBlack},
		{Kind: DrawText, X: w/2 - be.W/2, Y: h/2 - be.H/2, Text: banner, FontSize: bannerFontSize, Color: colorWhite},
		{Kind: DrawText, X: w/2 - pe.W/2, Y: h/2 - pe.H/2 + bannerFontSize, Text: rematchPrompt, FontSize: bannerFontSize, Color: colorWhite},
	}
}

// WinnerBanner is the headline shown when side wins the match.
func WinnerBanner(side Side) string {
	if side == SideLeft {
		return "Left Player Won!"
	}
	return "Right Player Won!"
}

func spriteAt(sp Sprite, centre Vec2, size Size) DrawCommand {
	return DrawCommand{Kind: DrawSprite, Sprite: sp, X: centre.X - size.W/2, Y: centre.Y - size.H/2}
}
