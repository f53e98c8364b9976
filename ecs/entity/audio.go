package entity

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/propeller/ecs"
	"github.com/milk9111/propeller/ecs/component"
	"github.com/milk9111/propeller/prefabs"
	"github.com/milk9111/propeller/sound"
)

// VoiceLoader creates the voice for a clip spec.
type VoiceLoader func(clip prefabs.AudioClipSpec) (component.Voice, error)

// SoundVoices loads clips through an audio bank: tones are synthesized and
// files are decoded.
func SoundVoices(bank *sound.Bank) VoiceLoader {
	return func(clip prefabs.AudioClipSpec) (component.Voice, error) {
		var (
			player *audio.Player
			err    error
		)
		switch {
		case clip.Tone != nil:
			player, err = bank.Tone(sound.Tone{
				Frequency:    clip.Tone.Frequency,
				EndFrequency: clip.Tone.EndFrequency,
				Duration:     clip.Tone.Duration,
			})
		case clip.File != "":
			player, err = bank.File(clip.File)
		default:
			return nil, fmt.Errorf("clip %q has neither a file nor a tone", clip.Name)
		}
		if err != nil {
			return nil, err
		}
		return player, nil
	}
}

type audioSpec = prefabs.AudioComponentSpec

func addAudio(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[audioSpec](raw)
	if err != nil {
		return fmt.Errorf("decode audio spec: %w", err)
	}
	if len(spec.Clips) == 0 {
		return nil
	}
	comp, err := buildAudioComponent(spec.Clips, ctx.Voices)
	if err != nil {
		return fmt.Errorf("build audio component from spec: %w", err)
	}
	for _, name := range spec.Autoplay {
		if i := comp.Index(name); i >= 0 {
			comp.Play[i] = true
		}
	}
	return ecs.Add(w, e, component.AudioComponent.Kind(), comp)
}

func buildAudioComponent(audioSpecs []prefabs.AudioClipSpec, load VoiceLoader) (*component.Audio, error) {
	n := len(audioSpecs)

	names := make([]string, 0, n)
	voices := make([]component.Voice, 0, n)
	volume := make([]float64, 0, n)
	play := make([]bool, 0, n)
	stop := make([]bool, 0, n)

	for i, clip := range audioSpecs {
		if clip.Name == "" {
			return nil, fmt.Errorf("audio clip %d has no name", i)
		}
		var voice component.Voice
		if load != nil {
			v, err := load(clip)
			if err != nil {
				return nil, fmt.Errorf("audio clip %d (%q): %w", i, clip.Name, err)
			}
			voice = v
		}
		vol := clip.Volume
		if vol == 0 {
			vol = 1
		}
		names = append(names, clip.Name)
		voices = append(voices, voice)
		volume = append(volume, vol)
		play = append(play, false)
		stop = append(stop, false)
	}

	return &component.Audio{
		Names:  names,
		Voices: voices,
		Volume: volume,
		Play:   play,
		Stop:   stop,
		Source: -1,
	}, nil
}
