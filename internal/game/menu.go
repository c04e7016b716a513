package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorWhite      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	menuPanelFill   = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	menuPanelBorder = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	menuButtonFill  = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	menuTextColor   = color.RGBA{A: 255}
)

// Button identifies a main-menu button.
type Button int

const (
	ButtonNone Button = iota
	ButtonPlay
	ButtonQuit
)

type menuButton struct {
	id    Button
	label string
	x, y  float64
	w, h  float64
}

func (b menuButton) contains(x, y float64) bool {
	return x >= b.x && x < b.x+b.w && y >= b.y && y < b.y+b.h
}

// Menu is the main menu: a centred panel with PLAY and Quit buttons.
type Menu struct {
	x, y, w, h float64
	buttons    []menuButton
}

// NewMenu lays the menu out for a screen of the given size. The panel is
// inset 200px horizontally and 100px vertically.
func NewMenu(screenW, screenH float64) Menu {
	m := Menu{x: 200, y: 100, w: screenW - 400, h: screenH - 200}
	const bw, bh = 48, 20
	bx := m.x + m.w/2 - 15
	m.buttons = []menuButton{
		{id: ButtonPlay, label: "PLAY", x: bx, y: m.y + m.h/2 - 5, w: bw, h: bh},
		{id: ButtonQuit, label: "Quit", x: bx, y: m.y + m.h/2 + 20, w: bw, h: bh},
	}
	return m
}

// ButtonAt returns the button under (x, y).
func (m Menu) ButtonAt(x, y float64) Button {
	for _, b := range m.buttons {
		if b.contains(x, y) {
			return b.id
		}
	}
	return ButtonNone
}

// Draw renders the menu.
func (m Menu) Draw(screen *ebiten.Image, fonts *Fonts) {
	screen.Fill(colorWhite)

	vector.FillRect(screen, float32(m.x), float32(m.y), float32(m.w), float32(m.h), menuPanelFill, false)
	vector.StrokeRect(screen, float32(m.x), float32(m.y), float32(m.w), float32(m.h), 1.0, menuPanelBorder, false)

	var cs ebiten.ColorScale
	cs.ScaleWithColor(menuTextColor)
	for _, b := range m.buttons {
		vector.FillRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), menuButtonFill, false)
		vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 1.0, menuPanelBorder, false)
		fonts.DrawText(screen, b.label, b.x+6, b.y+b.h-5, 13, cs)
	}
	ebitenutil.DebugPrintAt(screen, "[ENTER] play   [Q] quit", int(m.x)+8, int(m.y+m.h)-20)
}
