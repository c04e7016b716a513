package game

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"

	"github.com/Garsondee/Macro-Pong/internal/match"
	"github.com/Garsondee/Macro-Pong/internal/sound"
)

// spriteExts are tried in order for each sprite name.
var spriteExts = []string{".png", ".bmp"}

// Assets resolves the gameplay sprites and sounds from an asset directory.
// It is the match.AssetLoader: every new session reloads from disk and any
// failure aborts the session.
type Assets struct {
	fsys       fs.FS
	withSound  bool
	sampleRate int
	volume     float64

	sprites [4]*ebiten.Image
	sounds  *sound.Bank
}

// NewAssets returns a loader rooted at dir.
func NewAssets(dir string, withSound bool, sampleRate int, volume float64) *Assets {
	return &Assets{
		fsys:       os.DirFS(dir),
		withSound:  withSound,
		sampleRate: sampleRate,
		volume:     volume,
	}
}

// LoadSession implements match.AssetLoader.
func (a *Assets) LoadSession() (match.Dimensions, error) {
	var dims match.Dimensions
	for _, sp := range match.Sprites() {
		img, err := loadSprite(a.fsys, sp.String())
		if err != nil {
			return dims, err
		}
		a.sprites[sp] = ebiten.NewImageFromImage(img)
	}
	dims = dimensionsOf(a.sprites)

	if a.withSound {
		bank, err := sound.LoadBank(a.fsys, a.sampleRate, a.volume)
		if err != nil {
			return dims, err
		}
		a.sounds = bank
	}
	return dims, nil
}

// Sprite returns the loaded image for sp, or nil before the first session.
func (a *Assets) Sprite(sp match.Sprite) *ebiten.Image {
	if int(sp) >= len(a.sprites) || sp < 0 {
		return nil
	}
	return a.sprites[sp]
}

// Sounds returns the decoded sound bank, or nil when audio is off.
func (a *Assets) Sounds() *sound.Bank {
	return a.sounds
}

func loadSprite(fsys fs.FS, name string) (image.Image, error) {
	var lastErr error
	for _, ext := range spriteExts {
		path := "sprites/" + name + ext
		f, err := fsys.Open(path)
		if err != nil {
			lastErr = err
			continue
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decode sprite %s: %w", path, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("load sprite %s: %w", name, lastErr)
}

func dimensionsOf(sprites [4]*ebiten.Image) match.Dimensions {
	size := func(sp match.Sprite) match.Size {
		b := sprites[sp].Bounds()
		return match.Size{W: float64(b.Dx()), H: float64(b.Dy())}
	}
	return match.Dimensions{
		Ball:        size(match.SpriteBall),
		LeftPaddle:  size(match.SpriteLeftPaddle),
		RightPaddle: size(match.SpriteRightPaddle),
		Background:  size(match.SpriteBackground),
	}
}
