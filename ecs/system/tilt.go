package system

import (
	"time"

	"github.com/milk9111/propeller/ecs"
	"github.com/milk9111/propeller/ecs/component"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const defaultTiltSeconds = 0.25

// rotationTilter is implemented by tilters that choose a body rotation.
type rotationTilter interface {
	Rotation() float64
}

// TiltSystem eases a character's transform rotation towards the rotation
// chosen by its tilt hook. Characters with an inert hook are left alone.
type TiltSystem struct{}

func NewTiltSystem() *TiltSystem {
	return &TiltSystem{}
}

func (s *TiltSystem) Update(w *ecs.World, dt time.Duration) {
	ecs.ForEach3(w, component.CharacterComponent.Kind(), component.TiltComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, c *component.Character, tilt *component.Tilt, t *component.Transform) {
		if c.Controller == nil {
			return
		}
		rt, ok := c.Controller.Tilter().(rotationTilter)
		if !ok {
			return
		}

		if target := rt.Rotation(); target != tilt.Target {
			duration := tilt.Duration
			if duration <= 0 {
				duration = defaultTiltSeconds
			}
			tilt.Tween = gween.New(float32(t.Rotation), float32(target), float32(duration), ease.OutQuad)
			tilt.Target = target
		}
		if tilt.Tween == nil {
			return
		}

		current, done := tilt.Tween.Update(float32(dt.Seconds()))
		t.Rotation = float64(current)
		if done {
			t.Rotation = tilt.Target
			tilt.Tween = nil
		}
	})
}
