package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Macro-Pong/internal/match"
)

// Paddle bindings: W/S for the left player, arrows for the right.
var (
	leftUpKeys    = []ebiten.Key{ebiten.KeyW}
	leftDownKeys  = []ebiten.Key{ebiten.KeyS}
	rightUpKeys   = []ebiten.Key{ebiten.KeyArrowUp}
	rightDownKeys = []ebiten.Key{ebiten.KeyArrowDown}
)

// handleInput polls the keyboard and mouse into a match.Input. Paddle keys
// are level-triggered; everything else fires once per press.
func (g *Game) handleInput() match.Input {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	var in match.Input
	in.LeftUp = anyPressed(leftUpKeys)
	in.LeftDown = anyPressed(leftDownKeys)
	in.RightUp = anyPressed(rightUpKeys)
	in.RightDown = anyPressed(rightDownKeys)

	// Enter starts from the menu and asks for a rematch on the win screen.
	enter := pressed(ebiten.KeyEnter)
	enter = pressed(ebiten.KeyNumpadEnter) || enter
	in.Start = enter
	in.Rematch = enter
	in.Abandon = pressed(ebiten.KeyEscape)
	in.Quit = pressed(ebiten.KeyQ)
	in.Copy = pressed(ebiten.KeyC)

	// F1: toggle the event feed overlay.
	if pressed(ebiten.KeyF1) {
		g.showFeed = !g.showFeed
	}

	// Left mouse click on a menu button.
	mouseLeft := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if mouseLeft && !g.prevMouseLeft && g.frame.Mode == match.ModeMainMenu {
		mx, my := ebiten.CursorPosition()
		switch g.menu.ButtonAt(float64(mx), float64(my)) {
		case ButtonPlay:
			in.Start = true
		case ButtonQuit:
			in.Quit = true
		}
	}
	g.prevMouseLeft = mouseLeft

	g.prevKeys = currentKeys
	return in
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
