package main

import (
	"flag"
	"log"

	"github.com/Garsondee/Macro-Pong/internal/config"
	"github.com/Garsondee/Macro-Pong/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	var cfgPath string
	flag.StringVar(&cfgPath, "config", "pong.ini", "optional ini file overriding the built-in defaults")
	flag.Parse()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal(err)
	}

	rules := cfg.MatchRules()
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(int(rules.FieldW*cfg.Window.Scale), int(rules.FieldH*cfg.Window.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	if err := ebiten.RunGame(game.New(cfg)); err != nil {
		log.Fatal(err)
	}
}
