package system

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/propeller/ecs"
	"github.com/milk9111/propeller/ecs/component"
)

// Gravity is the default downward acceleration in world units per second
// squared (y-up).
const Gravity = 9.81

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

// PhysicsSystem owns the Chipmunk space. Sync creates bodies for new
// PhysicsBody components and drops bodies of removed ones; Update steps the
// space by the fixed tick and writes positions back to transforms.
type PhysicsSystem struct {
	space    *cp.Space
	entities map[ecs.Entity]*bodyInfo
}

func NewPhysicsSystem(gravity float64) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: -gravity})
	return &PhysicsSystem{
		space:    space,
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// SyncSystem returns a system that only runs Sync, for use before systems
// that need live bodies.
func (ps *PhysicsSystem) SyncSystem() ecs.System {
	return ecs.SystemFunc(func(w *ecs.World, _ time.Duration) { ps.Sync(w) })
}

func (ps *PhysicsSystem) Update(w *ecs.World, dt time.Duration) {
	if ps == nil || w == nil {
		return
	}
	ps.Sync(w)
	if dt > 0 {
		ps.space.Step(dt.Seconds())
	}
	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) Sync(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if info, ok := ps.entities[e]; ok {
			if pb.Body == nil {
				pb.Body = info.body
				pb.Shape = info.shape
			}
			return
		}
		info := ps.createBodyInfo(t, pb)
		ps.entities[e] = info
		pb.Body = info.body
		pb.Shape = info.shape
	})
}

func (ps *PhysicsSystem) createBodyInfo(t *component.Transform, pb *component.PhysicsBody) *bodyInfo {
	if pb.Static {
		hw, hh := pb.Width/2, pb.Height/2
		shape := cp.NewBox2(ps.space.StaticBody, cp.BB{L: t.X - hw, B: t.Y - hh, R: t.X + hw, T: t.Y + hh}, 0)
		shape.SetFriction(pb.Friction)
		shape.SetElasticity(pb.Elasticity)
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
	}

	mass := pb.Mass
	if mass <= 0 {
		mass = 1
	}
	moment := cp.MomentForBox(mass, pb.Width, pb.Height)
	if pb.FixedRotation {
		moment = math.Inf(1)
	}

	body := cp.NewBody(mass, moment)
	body.SetPosition(cp.Vector{X: t.X, Y: t.Y})
	body.SetAngle(t.Rotation)

	shape := cp.NewBox(body, pb.Width, pb.Height, 0)
	shape.SetFriction(pb.Friction)
	shape.SetElasticity(pb.Elasticity)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return &bodyInfo{body: body, shape: shape}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body == nil || pb.Static {
			return
		}
		pos := pb.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
		if !pb.FixedRotation {
			t.Rotation = pb.Body.Angle()
		}
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}
