package game

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/Garsondee/Macro-Pong/internal/match"
	"github.com/Garsondee/Macro-Pong/internal/sound"
)

// Speaker plays one-shot clips for simulation events. A nil *Speaker is a
// valid silent speaker.
type Speaker struct {
	ctx    *audio.Context
	bank   *sound.Bank
	active []*audio.Player
}

// NewSpeaker opens the audio device. ebiten allows one context per process.
func NewSpeaker(sampleRate int) *Speaker {
	return &Speaker{ctx: audio.NewContext(sampleRate)}
}

// Load swaps in the clips for a new session.
func (sp *Speaker) Load(bank *sound.Bank) {
	if sp == nil {
		return
	}
	sp.bank = bank
}

// Play starts the clip for ev without waiting for it. Clips may overlap.
func (sp *Speaker) Play(ev match.Event) {
	if sp == nil || sp.bank == nil {
		return
	}
	pcm := sp.bank.PCM(sound.CueFor(ev))
	if len(pcm) == 0 {
		return
	}
	sp.prune()
	p := sp.ctx.NewPlayerFromBytes(pcm)
	p.Play()
	// Hold a reference until the clip finishes.
	sp.active = append(sp.active, p)
}

func (sp *Speaker) prune() {
	kept := sp.active[:0]
	for _, p := range sp.active {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		p.Close()
	}
	sp.active = kept
}
