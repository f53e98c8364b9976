package system

import (
	"time"

	"github.com/milk9111/propeller/ecs"
	"github.com/milk9111/propeller/ecs/component"
)

// CharacterFrameSystem runs the per-frame controller callback.
type CharacterFrameSystem struct{}

func NewCharacterFrameSystem() *CharacterFrameSystem {
	return &CharacterFrameSystem{}
}

func (s *CharacterFrameSystem) Update(w *ecs.World, _ time.Duration) {
	ecs.ForEach(w, component.CharacterComponent.Kind(), func(e ecs.Entity, c *component.Character) {
		if c.Controller == nil {
			return
		}
		c.Controller.Update(characterHost(w, e, nil))
		if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok && in.JumpToggled {
			c.Controller.ToggleJump()
		}
	})
}

// CharacterTickSystem runs the fixed-tick controller callback. It must run
// after bodies are synced and before the physics step.
type CharacterTickSystem struct{}

func NewCharacterTickSystem() *CharacterTickSystem {
	return &CharacterTickSystem{}
}

func (s *CharacterTickSystem) Update(w *ecs.World, _ time.Duration) {
	ecs.ForEach(w, component.CharacterComponent.Kind(), func(e ecs.Entity, c *component.Character) {
		if c.Controller == nil {
			return
		}
		c.Controller.FixedUpdate(characterHost(w, e, nil))
	})
}
