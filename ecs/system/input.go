package system

import (
	"time"

	"github.com/milk9111/propeller/ecs"
	"github.com/milk9111/propeller/ecs/component"
)

// InputSource produces one input sample per frame.
type InputSource interface {
	Sample() component.Input
}

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World, _ time.Duration) {
	if i == nil || i.source == nil || w == nil {
		return
	}

	sample := i.source.Sample()
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = sample
	})
}
