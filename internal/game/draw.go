package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Macro-Pong/internal/match"
)

// Fonts renders every text size by scaling the 7x13 bitmap face. It also
// serves as the match.TextMeasurer so layout and drawing agree.
type Fonts struct {
	face   *text.GoXFace
	lineH  float64
	ascent float64
}

// NewFonts wraps basicfont.Face7x13.
func NewFonts() *Fonts {
	face := text.NewGoXFace(basicfont.Face7x13)
	m := face.Metrics()
	return &Fonts{face: face, lineH: m.HAscent + m.HDescent, ascent: m.HAscent}
}

func (f *Fonts) scale(size float64) float64 {
	return size / f.lineH
}

// Measure implements match.TextMeasurer.
func (f *Fonts) Measure(s string, size float64) match.Size {
	w, h := text.Measure(s, f.face, 0)
	k := f.scale(size)
	return match.Size{W: w * k, H: h * k}
}

// DrawText draws s with its baseline starting at (x, y).
func (f *Fonts) DrawText(dst *ebiten.Image, s string, x, y, size float64, clr ebiten.ColorScale) {
	k := f.scale(size)
	op := &text.DrawOptions{}
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(x, y-f.ascent*k)
	op.ColorScale = clr
	text.Draw(dst, s, f.face, op)
}

// drawFrame executes the simulation's draw list.
func (g *Game) drawFrame(screen *ebiten.Image, cmds []match.DrawCommand) {
	for _, c := range cmds {
		switch c.Kind {
		case match.DrawClear:
			screen.Fill(c.Color)
		case match.DrawSprite:
			g.drawSprite(screen, c)
		case match.DrawText:
			var cs ebiten.ColorScale
			cs.ScaleWithColor(c.Color)
			g.fonts.DrawText(screen, c.Text, c.X, c.Y, c.FontSize, cs)
		}
	}
}

func (g *Game) drawSprite(screen *ebiten.Image, c match.DrawCommand) {
	img := g.assets.Sprite(c.Sprite)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(c.X, c.Y)
	screen.DrawImage(img, op)
}
