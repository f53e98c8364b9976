package system

import (
	"log"
	"time"

	"github.com/milk9111/propeller/ecs"
	"github.com/milk9111/propeller/ecs/component"
)

type AudioSystem struct{}

func NewAudioSystem() *AudioSystem {
	return &AudioSystem{}
}

func (a *AudioSystem) Update(w *ecs.World, _ time.Duration) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(e ecs.Entity, audioComp *component.Audio) {
		count := min(len(audioComp.Voices), len(audioComp.Play), len(audioComp.Stop))

		for i := 0; i < count; i++ {
			if !audioComp.Stop[i] {
				continue
			}

			voice := audioComp.Voices[i]
			if voice != nil && voice.IsPlaying() {
				voice.Pause()
			}

			audioComp.Stop[i] = false
		}

		for i := 0; i < count; i++ {
			if !audioComp.Play[i] {
				continue
			}

			voice := audioComp.Voices[i]
			if voice != nil && !voice.IsPlaying() {
				if i < len(audioComp.Volume) {
					voice.SetVolume(audioComp.Volume[i])
				}
				if err := voice.Rewind(); err != nil {
					log.Printf("audio: entity=%v rewind %q: %v", e, audioComp.Names[i], err)
				}
				voice.Play()
			}

			audioComp.Play[i] = false
		}
	})
}
