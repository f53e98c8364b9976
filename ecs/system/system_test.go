package system

import (
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/milk9111/propeller/character"
	"github.com/milk9111/propeller/ecs"
	"github.com/milk9111/propeller/ecs/component"
)

type fakeVoice struct {
	playing bool
	plays   int
	pauses  int
	rewinds int
	volume  float64
}

func (v *fakeVoice) Play()                 { v.playing = true; v.plays++ }
func (v *fakeVoice) Pause()                { v.playing = false; v.pauses++ }
func (v *fakeVoice) Rewind() error         { v.rewinds++; return nil }
func (v *fakeVoice) IsPlaying() bool       { return v.playing }
func (v *fakeVoice) SetVolume(vol float64) { v.volume = vol }

type staticInput struct {
	sample component.Input
}

func (s *staticInput) Sample() component.Input { return s.sample }

var clipNames = []string{"flight_start", "flight_loop", "flight_end", "taunt_a", "taunt_b"}

func newAudio(names ...string) (*component.Audio, map[string]*fakeVoice) {
	voices := make(map[string]*fakeVoice, len(names))
	a := &component.Audio{Source: -1}
	for _, n := range names {
		v := &fakeVoice{}
		voices[n] = v
		a.Names = append(a.Names, n)
		a.Voices = append(a.Voices, v)
		a.Volume = append(a.Volume, 0.5)
		a.Play = append(a.Play, false)
		a.Stop = append(a.Stop, false)
	}
	return a, voices
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

type testPlayer struct {
	entity    ecs.Entity
	propeller ecs.Entity
	ctrl      *character.Controller
	voices    map[string]*fakeVoice
	audio     *component.Audio
}

func spawnPlayer(t *testing.T, w *ecs.World, mutate func(cfg *character.Config), opts ...character.Option) testPlayer {
	t.Helper()
	cfg := character.DefaultConfig()
	cfg.Taunts = []character.Clip{"taunt_a", "taunt_b"}
	if mutate != nil {
		mutate(&cfg)
	}
	opts = append([]character.Option{character.WithRand(rand.New(rand.NewPCG(1, 1)))}, opts...)
	ctrl, err := character.New(&cfg, opts...)
	if err != nil {
		t.Fatal(err)
	}

	e := ecs.CreateEntity(w)
	audio, voices := newAudio(clipNames...)
	mustAdd(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: 0, Y: 1, ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, e, component.InputComponent.Kind(), &component.Input{})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 1, Height: 1, Mass: 1, FixedRotation: true})
	mustAdd(t, w, e, component.AnimatorComponent.Kind(), &component.Animator{})
	mustAdd(t, w, e, component.AudioComponent.Kind(), audio)
	mustAdd(t, w, e, component.CharacterComponent.Kind(), &component.Character{Controller: ctrl})
	mustAdd(t, w, e, component.TiltComponent.Kind(), &component.Tilt{Duration: 0.1})

	prop := ecs.CreateEntity(w)
	mustAdd(t, w, prop, component.TransformComponent.Kind(), &component.Transform{X: -0.5, Y: 1.5})
	mustAdd(t, w, prop, component.AttachmentComponent.Kind(), &component.Attachment{Name: character.LeftPropeller})

	return testPlayer{entity: e, propeller: prop, ctrl: ctrl, voices: voices, audio: audio}
}

func newTestLoop(source InputSource, taunts *TauntSystem) (*ecs.Loop, *PhysicsSystem) {
	physics := NewPhysicsSystem(0)
	loop := ecs.NewLoop(20*time.Millisecond,
		ecs.NewScheduler(physics.SyncSystem(), NewCharacterTickSystem(), physics, NewAttachmentSystem()),
		ecs.NewScheduler(NewCharacterFrameSystem(), taunts, NewTiltSystem(), NewAnimationSystem(), NewAudioSystem()),
	)
	loop.Pre.Add(NewInputSystem(source))
	return loop, physics
}

func TestCharacterLoopMovesAndFlies(t *testing.T) {
	w := ecs.NewWorld()
	p := spawnPlayer(t, w, nil)
	in := &staticInput{sample: component.Input{MoveX: 1, Jump: true, JumpPressed: true}}
	loop, _ := newTestLoop(in, NewTauntSystem(nil, 0))

	loop.Tick(w, 20*time.Millisecond)

	body, _ := ecs.Get(w, p.entity, component.PhysicsBodyComponent.Kind())
	if body.Body == nil {
		t.Fatal("physics body was not created")
	}
	// jump intent sampled this frame is applied on the next tick
	if p.voices["flight_start"].plays != 1 {
		t.Fatalf("expected flight start clip, got %d plays", p.voices["flight_start"].plays)
	}
	if !p.ctrl.JumpPending() {
		t.Fatal("expected pending jump after the frame update")
	}

	in.sample = component.Input{MoveX: 1}
	loop.Tick(w, 20*time.Millisecond)
	if p.ctrl.JumpPending() {
		t.Fatal("tick must consume the pending jump")
	}
	if p.voices["flight_loop"].plays != 1 {
		t.Fatalf("expected flight loop clip, got %d", p.voices["flight_loop"].plays)
	}

	v := body.Body.Velocity()
	if v.X <= 0 || v.X > 5+365*0.02 {
		t.Fatalf("unexpected horizontal velocity %v", v.X)
	}
	if want := 1000 * 0.02; math.Abs(v.Y-want) > 1e-6 {
		t.Fatalf("expected one jump impulse worth of vertical velocity %v, got %v", want, v.Y)
	}

	anim, _ := ecs.Get(w, p.entity, component.AnimatorComponent.Kind())
	if anim.Current != AnimMove || anim.Float(character.ParamSpeed) != 1 {
		t.Fatalf("expected move animation, got %q speed %v", anim.Current, anim.Float(character.ParamSpeed))
	}

	attach, _ := ecs.Get(w, p.propeller, component.AttachmentComponent.Kind())
	if attach.Parent != uint64(p.entity) {
		t.Fatal("left propeller should be parented to the player")
	}
	if p.ctrl.PropellerValue() == "" {
		t.Fatal("expected propeller diagnostic value")
	}
}

func TestCharacterReleaseEdgePlaysEndClip(t *testing.T) {
	w := ecs.NewWorld()
	p := spawnPlayer(t, w, nil)
	in := &staticInput{sample: component.Input{JumpReleased: true}}
	loop, _ := newTestLoop(in, NewTauntSystem(nil, 0))

	loop.Tick(w, 10*time.Millisecond)

	if p.voices["flight_end"].plays != 1 {
		t.Fatalf("expected flight end clip, got %d", p.voices["flight_end"].plays)
	}
}

func TestAttachToKeepsWorldPosition(t *testing.T) {
	w := ecs.NewWorld()
	parent := ecs.CreateEntity(w)
	child := ecs.CreateEntity(w)
	mustAdd(t, w, parent, component.TransformComponent.Kind(), &component.Transform{X: 2, Y: 3, Rotation: math.Pi / 2})
	mustAdd(t, w, child, component.TransformComponent.Kind(), &component.Transform{X: 2, Y: 4})
	mustAdd(t, w, child, component.AttachmentComponent.Kind(), &component.Attachment{Name: "p"})

	if !AttachTo(w, child, parent) {
		t.Fatal("attach failed")
	}
	NewAttachmentSystem().Update(w, 0)
	ct, _ := ecs.Get(w, child, component.TransformComponent.Kind())
	if math.Abs(ct.X-2) > 1e-9 || math.Abs(ct.Y-4) > 1e-9 {
		t.Fatalf("attach moved the child to (%v, %v)", ct.X, ct.Y)
	}

	pt, _ := ecs.Get(w, parent, component.TransformComponent.Kind())
	pt.X, pt.Rotation = 5, 0
	NewAttachmentSystem().Update(w, 0)
	// world offset (0, 1) at rotation pi/2 is local (1, 0)
	if math.Abs(ct.X-6) > 1e-9 || math.Abs(ct.Y-3) > 1e-9 {
		t.Fatalf("expected child to follow parent to (6, 3), got (%v, %v)", ct.X, ct.Y)
	}

	if !ecs.DestroyEntity(w, parent) {
		t.Fatal("destroy failed")
	}
	NewAttachmentSystem().Update(w, 0)
	a, _ := ecs.Get(w, child, component.AttachmentComponent.Kind())
	if a.Parent != 0 {
		t.Fatal("attachment should be released when the parent dies")
	}
}

func TestFindAttachmentSkipsForeignParents(t *testing.T) {
	w := ecs.NewWorld()
	owner := ecs.CreateEntity(w)
	other := ecs.CreateEntity(w)
	taken := ecs.CreateEntity(w)
	free := ecs.CreateEntity(w)
	mustAdd(t, w, taken, component.AttachmentComponent.Kind(), &component.Attachment{Name: "p", Parent: uint64(other)})
	mustAdd(t, w, free, component.AttachmentComponent.Kind(), &component.Attachment{Name: "p"})

	got, ok := FindAttachment(w, "p", owner)
	if !ok || got != free {
		t.Fatalf("expected the free attachment, got %v ok=%v", got, ok)
	}
	if _, ok := FindAttachment(w, "missing", owner); ok {
		t.Fatal("unexpected attachment")
	}
}
