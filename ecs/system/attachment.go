package system

import (
	"time"

	"github.com/milk9111/propeller/ecs"
	"github.com/milk9111/propeller/ecs/component"
)

// AttachmentSystem moves parented attachments with their parent. An
// attachment whose parent died is released at its last world position.
type AttachmentSystem struct{}

func NewAttachmentSystem() *AttachmentSystem {
	return &AttachmentSystem{}
}

func (s *AttachmentSystem) Update(w *ecs.World, _ time.Duration) {
	ecs.ForEach2(w, component.AttachmentComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, a *component.Attachment, t *component.Transform) {
		if a.Parent == 0 {
			return
		}
		parent := ecs.Entity(a.Parent)
		pt, ok := ecs.Get(w, parent, component.TransformComponent.Kind())
		if !ok {
			a.Parent = 0
			return
		}
		dx, dy := rotate(a.LocalX, a.LocalY, pt.Rotation)
		t.X = pt.X + dx
		t.Y = pt.Y + dy
		t.Rotation = pt.Rotation
	})
}
