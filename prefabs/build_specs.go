package prefabs

import "time"

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type PhysicsBodyComponentSpec struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Mass          float64 `yaml:"mass"`
	Friction      float64 `yaml:"friction"`
	Elasticity    float64 `yaml:"elasticity"`
	Static        bool    `yaml:"static"`
	FixedRotation bool    `yaml:"fixed_rotation"`
}

type AnimatorComponentSpec struct {
	Params  map[string]float64 `yaml:"params"`
	Current string             `yaml:"current"`
}

// ToneSpec describes a synthesized clip: a sine sweep from Frequency to
// EndFrequency with a linear fade out.
type ToneSpec struct {
	Frequency    float64       `yaml:"frequency"`
	EndFrequency float64       `yaml:"end_frequency"`
	Duration     time.Duration `yaml:"duration"`
}

// AudioClipSpec names a clip backed by either a wav file or a tone.
type AudioClipSpec struct {
	Name   string    `yaml:"name"`
	File   string    `yaml:"file"`
	Volume float64   `yaml:"volume"`
	Tone   *ToneSpec `yaml:"tone"`
}

type AudioComponentSpec struct {
	Clips    []AudioClipSpec `yaml:"clips"`
	Autoplay []string        `yaml:"autoplay"`
}

// CharacterComponentSpec holds controller tunables. Nil or empty fields keep
// the controller defaults.
type CharacterComponentSpec struct {
	MoveForce        *float64       `yaml:"move_force"`
	MaxSpeed         *float64       `yaml:"max_speed"`
	JumpForce        *float64       `yaml:"jump_force"`
	JumpClips        []string       `yaml:"jump_clips"`
	Taunts           []string       `yaml:"taunts"`
	TauntProbability *float64       `yaml:"taunt_probability"`
	TauntDelay       *time.Duration `yaml:"taunt_delay"`
	TiltScript       string         `yaml:"tilt_script"`
}

type TiltComponentSpec struct {
	Seconds float64 `yaml:"seconds"`
}

// AttachmentSpec spawns a named child entity at a local offset. Parented
// attachments follow their owner from the moment they are built.
type AttachmentSpec struct {
	Name     string  `yaml:"name"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Parented bool    `yaml:"parented"`
}
