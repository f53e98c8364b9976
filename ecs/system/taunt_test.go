package system

import (
	"context"
	"testing"
	"time"

	"github.com/milk9111/propeller/character"
	"github.com/milk9111/propeller/ecs"
	"github.com/milk9111/propeller/ecs/component"
)

func alwaysTaunt(cfg *character.Config) {
	cfg.TauntProbability = 100
	cfg.TauntDelay = 100 * time.Millisecond
}

func tauntPlays(p testPlayer) int {
	return p.voices["taunt_a"].plays + p.voices["taunt_b"].plays
}

func TestTauntSystemTriggers(t *testing.T) {
	cases := []struct {
		name    string
		trigger func(w *ecs.World, p testPlayer, in *component.Input)
	}{
		{"button", func(_ *ecs.World, _ testPlayer, in *component.Input) { in.TauntPressed = true }},
		{"event_for_entity", func(w *ecs.World, p testPlayer, _ *component.Input) {
			w.Events().Push(ecs.Event{Type: ecs.EventTaunt, Entity: p.entity})
		}},
		{"broadcast_event", func(w *ecs.World, _ testPlayer, _ *component.Input) {
			w.Events().Push(ecs.Event{Type: ecs.EventTaunt})
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			p := spawnPlayer(t, w, alwaysTaunt)
			sys := NewTauntSystem(context.Background(), 0)
			audio := NewAudioSystem()
			in, _ := ecs.Get(w, p.entity, component.InputComponent.Kind())

			c.trigger(w, p, in)
			sys.Update(w, 50*time.Millisecond)
			in.TauntPressed = false
			if sys.Clock().Pending() != 1 {
				t.Fatalf("expected one scheduled taunt, got %d", sys.Clock().Pending())
			}

			sys.Update(w, 50*time.Millisecond)
			audio.Update(w, 0)
			if tauntPlays(p) != 1 {
				t.Fatalf("expected a taunt after the delay, got %d", tauntPlays(p))
			}
			if p.ctrl.TauntIndex() != 1 {
				t.Fatalf("first taunt must differ from index 0, got %d", p.ctrl.TauntIndex())
			}
		})
	}
}

func TestTauntSystemIdle(t *testing.T) {
	w := ecs.NewWorld()
	p := spawnPlayer(t, w, func(cfg *character.Config) {
		cfg.TauntProbability = 100
		cfg.TauntDelay = 5 * time.Second
	})
	sys := NewTauntSystem(context.Background(), time.Second)
	in, _ := ecs.Get(w, p.entity, component.InputComponent.Kind())

	for i := 0; i < 9; i++ {
		sys.Update(w, 100*time.Millisecond)
	}
	in.MoveX = 1
	sys.Update(w, 100*time.Millisecond)
	if sys.Clock().Pending() != 0 {
		t.Fatal("moving resets the idle timer")
	}

	in.MoveX = 0
	for i := 0; i < 10; i++ {
		sys.Update(w, 100*time.Millisecond)
	}
	if sys.Clock().Pending() != 1 {
		t.Fatalf("expected an idle taunt after one second, got %d pending", sys.Clock().Pending())
	}
}

func TestTauntSystemCanceledContext(t *testing.T) {
	w := ecs.NewWorld()
	p := spawnPlayer(t, w, alwaysTaunt)
	ctx, cancel := context.WithCancel(context.Background())
	sys := NewTauntSystem(ctx, 0)

	w.Events().Push(ecs.Event{Type: ecs.EventTaunt})
	sys.Update(w, 0)
	cancel()
	sys.Update(w, time.Second)
	NewAudioSystem().Update(w, 0)

	if tauntPlays(p) != 0 {
		t.Fatal("taunts must not play after shutdown")
	}
}
