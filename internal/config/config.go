// Package config loads game settings from INI files.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/ini.v1"

	"github.com/Garsondee/Macro-Pong/internal/match"
)

//go:embed default.ini
var defaultConfig []byte

// Config mirrors the sections of pong.ini.
type Config struct {
	Window struct {
		Title string  `ini:"Title"`
		Scale float64 `ini:"Scale"`
	} `ini:"Window"`
	Assets struct {
		Dir string `ini:"Dir"`
	} `ini:"Assets"`
	Audio struct {
		Enabled    bool    `ini:"Enabled"`
		Volume     float64 `ini:"Volume"`
		SampleRate int     `ini:"SampleRate"`
	} `ini:"Audio"`
	Rules struct {
		WinScore         int     `ini:"WinScore"`
		CountdownSeconds float64 `ini:"CountdownSeconds"`
		PaddleSpeed      float64 `ini:"PaddleSpeed"`
		InitialBallSpeed float64 `ini:"InitialBallSpeed"`
		MaxBallSpeedX    float64 `ini:"MaxBallSpeedX"`
		SpeedIncrement   float64 `ini:"SpeedIncrement"`
		BounceFactor     float64 `ini:"BounceFactor"`
	} `ini:"Rules"`

	// Source is the user file that was layered over the defaults, or "" if
	// none was found.
	Source string `ini:"-"`
}

// Default returns the embedded defaults.
func Default() (*Config, error) {
	return Load("")
}

// Load reads the embedded defaults and overlays path if it exists. A missing
// file is not an error; an unreadable or invalid one is.
func Load(path string) (*Config, error) {
	options := ini.LoadOptions{
		IgnoreInlineComment:     false,
		SkipUnrecognizableLines: false,
		AllowShadows:            false,
	}

	sources := []interface{}{defaultConfig}
	source := ""
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			sources = append(sources, path)
			source = path
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	f, err := ini.LoadSources(options, sources[0], sources[1:]...)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	var c Config
	if err := f.MapTo(&c); err != nil {
		return nil, fmt.Errorf("failed to map config: %w", err)
	}
	c.Source = source
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	r := c.Rules
	switch {
	case r.WinScore <= 0:
		return fmt.Errorf("config: Rules.WinScore must be > 0, got %d", r.WinScore)
	case r.CountdownSeconds < 0:
		return fmt.Errorf("config: Rules.CountdownSeconds must be >= 0, got %g", r.CountdownSeconds)
	case r.PaddleSpeed <= 0:
		return fmt.Errorf("config: Rules.PaddleSpeed must be > 0, got %g", r.PaddleSpeed)
	case r.InitialBallSpeed <= 0:
		return fmt.Errorf("config: Rules.InitialBallSpeed must be > 0, got %g", r.InitialBallSpeed)
	case r.MaxBallSpeedX < r.InitialBallSpeed:
		return fmt.Errorf("config: Rules.MaxBallSpeedX (%g) below InitialBallSpeed (%g)", r.MaxBallSpeedX, r.InitialBallSpeed)
	case r.SpeedIncrement < 0:
		return fmt.Errorf("config: Rules.SpeedIncrement must be >= 0, got %g", r.SpeedIncrement)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("config: Window.Scale must be > 0, got %g", c.Window.Scale)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("config: Audio.Volume must be within [0, 1], got %g", c.Audio.Volume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("config: Audio.SampleRate must be > 0, got %d", c.Audio.SampleRate)
	}
	return nil
}

// MatchRules converts the [Rules] section into a simulation ruleset on the
// fixed 800x450 field.
func (c *Config) MatchRules() match.Rules {
	r := match.DefaultRules()
	r.WinScore = c.Rules.WinScore
	r.CountdownSeconds = c.Rules.CountdownSeconds
	r.PaddleSpeed = c.Rules.PaddleSpeed
	r.InitialBallSpeed = c.Rules.InitialBallSpeed
	r.MaxBallSpeedX = c.Rules.MaxBallSpeedX
	r.SpeedIncrement = c.Rules.SpeedIncrement
	r.BounceFactor = c.Rules.BounceFactor
	return r
}
