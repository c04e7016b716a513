// Package sound decodes the one-shot effect clips and renders them to the
// 16-bit stereo PCM the output device plays.
package sound

import (
	"fmt"
	"io"
	"io/fs"
	"math"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/wav"

	"github.com/Garsondee/Macro-Pong/internal/match"
)

// resampleQuality is the beep.Resample quality used for every clip.
const resampleQuality = 4

// Cue names one of the effect clips.
type Cue int

const (
	CueLeftPaddle Cue = iota
	CueRightPaddle
	CueBorder
	CueWin
	CueCountEnd
	cueCount
)

var cueFiles = [cueCount]string{
	CueLeftPaddle:  "sounds/left_player.wav",
	CueRightPaddle: "sounds/right_player.wav",
	CueBorder:      "sounds/border.wav",
	CueWin:         "sounds/win.wav",
	CueCountEnd:    "sounds/countend.wav",
}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueFiles[c]
}

// CueFor maps a simulation event to the clip that accompanies it.
func CueFor(ev match.Event) Cue {
	switch ev.Kind {
	case match.EventBorderCollision:
		return CueBorder
	case match.EventPaddleCollision:
		if ev.Side == match.SideLeft {
			return CueLeftPaddle
		}
		return CueRightPaddle
	case match.EventRoundWin:
		return CueWin
	}
	return CueCountEnd
}

// Bank holds every clip rendered to PCM at one sample rate.
type Bank struct {
	rate beep.SampleRate
	pcm  [cueCount][]byte
}

// LoadBank decodes all clips from fsys. Any missing or corrupt clip fails the
// whole bank.
func LoadBank(fsys fs.FS, sampleRate int, volume float64) (*Bank, error) {
	b := &Bank{rate: beep.SampleRate(sampleRate)}
	for c := Cue(0); c < cueCount; c++ {
		f, err := fsys.Open(cueFiles[c])
		if err != nil {
			return nil, fmt.Errorf("open sound %s: %w", cueFiles[c], err)
		}
		pcm, err := Decode(f, b.rate, volume)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decode sound %s: %w", cueFiles[c], err)
		}
		b.pcm[c] = pcm
	}
	return b, nil
}

// PCM returns the rendered clip for c.
func (b *Bank) PCM(c Cue) []byte {
	if c < 0 || c >= cueCount {
		return nil
	}
	return b.pcm[c]
}

// SampleRate is the rate every clip in the bank was rendered at.
func (b *Bank) SampleRate() int {
	return int(b.rate)
}

// Decode reads a WAV clip and renders it at rate with the given linear
// volume in [0, 1].
func Decode(r io.Reader, rate beep.SampleRate, volume float64) ([]byte, error) {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	var s beep.Streamer = gain(streamer, volume)
	if format.SampleRate != rate {
		s = beep.Resample(resampleQuality, format.SampleRate, rate, s)
	}
	pcm := Render(s)
	if err := streamer.Err(); err != nil {
		return nil, err
	}
	return pcm, nil
}

// gain wraps s in a log-scale volume control. Zero volume silences it.
func gain(s beep.Streamer, volume float64) beep.Streamer {
	if volume <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(volume)}
}

// Render drains s into little-endian signed 16-bit interleaved stereo.
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				q := int16(clamp(v) * math.MaxInt16)
				out = append(out, byte(q), byte(q>>8))
			}
		}
		if !ok {
			return out
		}
	}
}

func clamp(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	}
	return v
}
