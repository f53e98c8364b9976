package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/propeller/character"
	"github.com/milk9111/propeller/ecs"
	"github.com/milk9111/propeller/ecs/component"
)

// characterHost builds the controller handles for entity e from its
// components. Handles whose component is missing stay nil.
func characterHost(w *ecs.World, e ecs.Entity, timer character.Timer) *character.Host {
	h := &character.Host{Timer: timer}
	if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
		h.Input = inputHandle{in}
	}
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
		h.Body = bodyHandle{pb.Body}
	}
	if anim, ok := ecs.Get(w, e, component.AnimatorComponent.Kind()); ok {
		h.Animator = anim
	}
	if a, ok := ecs.Get(w, e, component.AudioComponent.Kind()); ok {
		h.Audio = clipHandle{a}
		h.Source = sourceHandle{a}
	}
	h.Attachments = attachmentHandle{w: w, owner: e}
	return h
}

type inputHandle struct {
	in *component.Input
}

func (h inputHandle) Axis(name string) float64 {
	if name == character.AxisHorizontal {
		return h.in.MoveX
	}
	return 0
}

func (h inputHandle) Button(name string) bool {
	return name == character.ButtonJump && h.in.Jump
}

func (h inputHandle) ButtonDown(name string) bool {
	return name == character.ButtonJump && h.in.JumpPressed
}

func (h inputHandle) ButtonUp(name string) bool {
	return name == character.ButtonJump && h.in.JumpReleased
}

type bodyHandle struct {
	body *cp.Body
}

func (h bodyHandle) Position() cp.Vector     { return h.body.Position() }
func (h bodyHandle) Velocity() cp.Vector     { return h.body.Velocity() }
func (h bodyHandle) SetVelocity(v cp.Vector) { h.body.SetVelocityVector(v) }

func (h bodyHandle) AddForce(f cp.Vector) {
	h.body.ApplyForceAtWorldPoint(f, h.body.Position())
}

// clipHandle plays one-shot clips through the entity's audio component. The
// mix is not spatialized, so the point is ignored.
type clipHandle struct {
	audio *component.Audio
}

func (h clipHandle) PlayClipAtPoint(clip character.Clip, _ cp.Vector) {
	if i := h.audio.Index(string(clip)); i >= 0 && i < len(h.audio.Play) {
		h.audio.Play[i] = true
	}
}

type sourceHandle struct {
	audio *component.Audio
}

func (h sourceHandle) SetClip(clip character.Clip) {
	h.audio.Source = h.audio.Index(string(clip))
}

func (h sourceHandle) Play() {
	if i := h.audio.Source; i >= 0 && i < len(h.audio.Play) {
		h.audio.Play[i] = true
	}
}

func (h sourceHandle) Stop() {
	if i := h.audio.Source; i >= 0 && i < len(h.audio.Stop) {
		h.audio.Play[i] = false
		h.audio.Stop[i] = true
	}
}

func (h sourceHandle) IsPlaying() bool {
	i := h.audio.Source
	if i < 0 || i >= len(h.audio.Play) {
		return false
	}
	if h.audio.Play[i] {
		return true
	}
	return i < len(h.audio.Voices) && h.audio.Voices[i] != nil && h.audio.Voices[i].IsPlaying()
}

type attachmentHandle struct {
	w     *ecs.World
	owner ecs.Entity
}

func (h attachmentHandle) Attach(name string) {
	child, ok := FindAttachment(h.w, name, h.owner)
	if !ok {
		return
	}
	AttachTo(h.w, child, h.owner)
}

func (h attachmentHandle) WorldPosition(name string) (cp.Vector, bool) {
	child, ok := FindAttachment(h.w, name, h.owner)
	if !ok {
		return cp.Vector{}, false
	}
	t, ok := ecs.Get(h.w, child, component.TransformComponent.Kind())
	if !ok {
		return cp.Vector{}, false
	}
	return cp.Vector{X: t.X, Y: t.Y}, true
}

// FindAttachment returns the attachment called name that is either free or
// already parented to owner.
func FindAttachment(w *ecs.World, name string, owner ecs.Entity) (ecs.Entity, bool) {
	var found ecs.Entity
	ecs.ForEach(w, component.AttachmentComponent.Kind(), func(e ecs.Entity, a *component.Attachment) {
		if found != 0 || a.Name != name {
			return
		}
		if a.Parent == 0 || a.Parent == uint64(owner) {
			found = e
		}
	})
	return found, found != 0
}

// AttachTo parents child under parent, keeping the child's world position.
// It does nothing if child is already attached to parent.
func AttachTo(w *ecs.World, child, parent ecs.Entity) bool {
	a, ok := ecs.Get(w, child, component.AttachmentComponent.Kind())
	if !ok || !ecs.IsAlive(w, parent) {
		return false
	}
	if a.Parent == uint64(parent) {
		return true
	}
	ct, ok := ecs.Get(w, child, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	pt, ok := ecs.Get(w, parent, component.TransformComponent.Kind())
	if !ok {
		return false
	}
	a.LocalX, a.LocalY = rotate(ct.X-pt.X, ct.Y-pt.Y, -pt.Rotation)
	a.Parent = uint64(parent)
	return true
}

func rotate(x, y, angle float64) (float64, float64) {
	if angle == 0 {
		return x, y
	}
	sin, cos := math.Sincos(angle)
	return x*cos - y*sin, x*sin + y*cos
}
