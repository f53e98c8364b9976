// Package sound turns clip descriptions into ebiten audio players.
package sound

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

// Bank creates players on a shared audio context.
type Bank struct {
	ctx *audio.Context
	dir string
}

// NewBank uses the running audio context, creating it on first use. File
// clips are resolved relative to dir.
func NewBank(dir string) *Bank {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	return &Bank{ctx: ctx, dir: dir}
}

// File loads a clip from disk. Wav files are decoded; anything else is taken
// as 16-bit stereo PCM at the context's sample rate.
func (b *Bank) File(path string) (*audio.Player, error) {
	data, err := os.ReadFile(filepath.Join(b.dir, filepath.FromSlash(path)))
	if err != nil {
		return nil, fmt.Errorf("sound: read %q: %w", path, err)
	}

	if strings.HasSuffix(strings.ToLower(path), ".wav") {
		stream, err := wav.DecodeWithSampleRate(b.ctx.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("sound: decode wav %q: %w", path, err)
		}
		return b.ctx.NewPlayer(stream)
	}

	return b.ctx.NewPlayerFromBytes(data), nil
}

// Tone synthesizes a clip.
func (b *Bank) Tone(t Tone) (*audio.Player, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return b.ctx.NewPlayerFromBytes(Synthesize(b.ctx.SampleRate(), t)), nil
}
