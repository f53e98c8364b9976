package entity

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/milk9111/propeller/ecs"
	"github.com/milk9111/propeller/ecs/component"
	"github.com/milk9111/propeller/ecs/system"
)

type heldInput struct {
	sample component.Input
}

func (h *heldInput) Sample() component.Input { return h.sample }

func newScene(t *testing.T, in system.InputSource) (*ecs.World, ecs.Entity, *ecs.Loop) {
	t.Helper()
	diskPrefabs(t, nil)
	w := ecs.NewWorld()
	if _, err := NewGround(w); err != nil {
		t.Fatal(err)
	}
	player, err := NewPlayer(w, WithRand(rand.New(rand.NewPCG(3, 4))))
	if err != nil {
		t.Fatal(err)
	}

	physics := system.NewPhysicsSystem(system.Gravity)
	loop := ecs.NewLoop(ecs.DefaultFixedStep,
		ecs.NewScheduler(physics.SyncSystem(), system.NewCharacterTickSystem(), physics, system.NewAttachmentSystem()),
		ecs.NewScheduler(system.NewCharacterFrameSystem(), system.NewTauntSystem(nil, 0), system.NewTiltSystem(), system.NewAnimationSystem(), system.NewAudioSystem()),
	)
	loop.Pre.Add(system.NewInputSystem(in))
	return w, player, loop
}

func run(w *ecs.World, loop *ecs.Loop, d time.Duration) {
	frame := time.Second / 60
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		loop.Tick(w, frame)
	}
}

func TestPlayerSettlesOnGround(t *testing.T) {
	w, player, loop := newScene(t, &heldInput{})
	run(w, loop, 2*time.Second)

	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	if tr.Y < 0.35 || tr.Y > 0.65 {
		t.Fatalf("expected the player to rest on the ground, got y=%v", tr.Y)
	}
}

func TestPlayerFliesAndCapsSpeed(t *testing.T) {
	in := &heldInput{sample: component.Input{MoveX: 1, Jump: true}}
	w, player, loop := newScene(t, in)
	run(w, loop, time.Second)

	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	if tr.Y < 3 {
		t.Fatalf("holding jump should lift the player, got y=%v", tr.Y)
	}
	if tr.X <= 0 {
		t.Fatalf("expected movement to the right, got x=%v", tr.X)
	}

	pb, _ := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())
	// the cap is enforced before the step, so one tick of force may overshoot it
	if vx := pb.Body.Velocity().X; vx > 5+365.0/10*0.02+1e-9 {
		t.Fatalf("horizontal speed %v exceeds the cap", vx)
	}

	var left *component.Attachment
	ecs.ForEach(w, component.AttachmentComponent.Kind(), func(_ ecs.Entity, a *component.Attachment) {
		if a.Name == "leftPropeller" {
			left = a
		}
	})
	if left == nil || left.Parent != uint64(player) {
		t.Fatal("left propeller should be attached after the first tick")
	}
}
