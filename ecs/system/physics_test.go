package system

import (
	"testing"
	"time"

	"github.com/milk9111/propeller/ecs"
	"github.com/milk9111/propeller/ecs/component"
)

func TestPhysicsBodyRestsOnGround(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewPhysicsSystem(Gravity)

	ground := ecs.CreateEntity(w)
	mustAdd(t, w, ground, component.TransformComponent.Kind(), &component.Transform{X: 0, Y: -0.5})
	mustAdd(t, w, ground, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 20, Height: 1, Static: true, Friction: 0.5})

	box := ecs.CreateEntity(w)
	mustAdd(t, w, box, component.TransformComponent.Kind(), &component.Transform{X: 0, Y: 3})
	mustAdd(t, w, box, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 1, Height: 1, Mass: 1, FixedRotation: true})

	for i := 0; i < 200; i++ {
		ps.Update(w, 20*time.Millisecond)
	}

	tr, _ := ecs.Get(w, box, component.TransformComponent.Kind())
	if tr.Y < 0.35 || tr.Y > 0.65 {
		t.Fatalf("expected box to rest on the ground at y=0.5, got %v", tr.Y)
	}
	if tr.Rotation != 0 {
		t.Fatalf("fixed rotation body rotated to %v", tr.Rotation)
	}
	gt, _ := ecs.Get(w, ground, component.TransformComponent.Kind())
	if gt.Y != -0.5 {
		t.Fatal("static transforms are not written back")
	}
}

func TestPhysicsRemovesDroppedBodies(t *testing.T) {
	w := ecs.NewWorld()
	ps := NewPhysicsSystem(Gravity)
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 1, Height: 1})

	ps.Sync(w)
	if len(ps.entities) != 1 {
		t.Fatalf("expected one tracked body, got %d", len(ps.entities))
	}
	ecs.DestroyEntity(w, e)
	ps.Sync(w)
	if len(ps.entities) != 0 {
		t.Fatalf("expected body removed, got %d", len(ps.entities))
	}
}
