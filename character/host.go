package character

import (
	"context"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/propeller/schedule"
)

// Input action names.
const (
	AxisHorizontal = "Horizontal"
	ButtonJump     = "Jump"
)

// ParamSpeed is the animator parameter fed with the absolute move input.
const ParamSpeed = "Speed"

// Attachment names.
const (
	LeftPropeller  = "leftPropeller"
	RightPropeller = "rightPropeller"
)

type Input interface {
	Axis(name string) float64
	// Button reports whether the button is held this frame.
	Button(name string) bool
	// ButtonDown reports the frame the button went down.
	ButtonDown(name string) bool
	// ButtonUp reports the frame the button was released.
	ButtonUp(name string) bool
}

// Body is the rigid body of the character. Coordinates are y-up.
type Body interface {
	Position() cp.Vector
	Velocity() cp.Vector
	SetVelocity(v cp.Vector)
	// AddForce applies a force at the center of mass for the next step.
	AddForce(f cp.Vector)
}

type Animator interface {
	SetFloat(name string, value float64)
}

// Audio plays fire-and-forget clips.
type Audio interface {
	PlayClipAtPoint(clip Clip, at cp.Vector)
}

// Source is the character's own audio source: one clip at a time.
type Source interface {
	SetClip(clip Clip)
	Play()
	Stop()
	IsPlaying() bool
}

// Attachments exposes the named child transforms of the character.
type Attachments interface {
	// Attach parents the named transform under the character, keeping its
	// world position. Attaching an already attached child does nothing.
	Attach(name string)
	WorldPosition(name string) (cp.Vector, bool)
}

// Timer schedules delayed work on the game clock.
type Timer interface {
	After(ctx context.Context, delay time.Duration, fn func()) *schedule.Task
}

// Host bundles the engine handles a controller callback may use. Update
// needs Input and Audio (plus Body for the clip position), FixedUpdate
// needs Input, Body, Animator, Audio and Attachments, Taunt needs Source
// and Timer.
type Host struct {
	Input       Input
	Body        Body
	Animator    Animator
	Audio       Audio
	Source      Source
	Attachments Attachments
	Timer       Timer
}
