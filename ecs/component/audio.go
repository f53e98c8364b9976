package component

// Voice is a single playable clip. *audio.Player from ebiten satisfies it.
type Voice interface {
	Play()
	Pause()
	Rewind() error
	IsPlaying() bool
	SetVolume(volume float64)
}

// Audio holds the clips of an entity. Systems request playback by setting
// Play or Stop; the audio system applies and clears the flags. Source is the
// index of the clip bound to the entity's own audio source, -1 for none.
type Audio struct {
	Names  []string
	Voices []Voice
	Volume []float64
	Play   []bool
	Stop   []bool
	Source int
}

// Index returns the slot of the named clip, or -1.
func (a *Audio) Index(name string) int {
	for i, n := range a.Names {
		if n == name {
			return i
		}
	}
	return -1
}

var AudioComponent = NewComponent[Audio]()
