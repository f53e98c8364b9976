package system

import (
	"time"

	"github.com/milk9111/propeller/character"
	"github.com/milk9111/propeller/ecs"
	"github.com/milk9111/propeller/ecs/component"
)

const (
	AnimIdle = "idle"
	AnimMove = "move"

	moveThreshold = 0.1
)

// AnimationSystem picks the current animation from the Speed parameter and
// counts frames spent in it.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World, _ time.Duration) {
	ecs.ForEach(w, component.AnimatorComponent.Kind(), func(_ ecs.Entity, anim *component.Animator) {
		next := AnimIdle
		if anim.Float(character.ParamSpeed) > moveThreshold {
			next = AnimMove
		}
		if next != anim.Current {
			anim.Current = next
			anim.Frame = 0
			return
		}
		anim.Frame++
	})
}
