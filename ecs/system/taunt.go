package system

import (
	"context"
	"time"

	"github.com/milk9111/propeller/ecs"
	"github.com/milk9111/propeller/ecs/component"
	"github.com/milk9111/propeller/schedule"
)

// idleEpsilon is the move input below which a character counts as idle.
const idleEpsilon = 0.01

// TauntSystem starts taunts and owns the clock their delays run on. A
// character taunts when its taunt button is pressed, when an EventTaunt
// names it (or names no entity), or after IdleAfter without input.
type TauntSystem struct {
	ctx   context.Context
	clock *schedule.Scheduler
	idle  map[ecs.Entity]time.Duration

	// IdleAfter is the idle time before an automatic taunt. Zero disables
	// idle taunts.
	IdleAfter time.Duration
}

func NewTauntSystem(ctx context.Context, idleAfter time.Duration) *TauntSystem {
	if ctx == nil {
		ctx = context.Background()
	}
	return &TauntSystem{
		ctx:       ctx,
		clock:     schedule.New(),
		idle:      make(map[ecs.Entity]time.Duration),
		IdleAfter: idleAfter,
	}
}

// Clock exposes the taunt clock.
func (s *TauntSystem) Clock() *schedule.Scheduler {
	return s.clock
}

func (s *TauntSystem) Update(w *ecs.World, dt time.Duration) {
	if s == nil || w == nil {
		return
	}

	requested := make(map[ecs.Entity]bool)
	all := false
	for _, evt := range w.Events().Drain(ecs.EventTaunt) {
		if evt.Entity == 0 {
			all = true
			continue
		}
		requested[evt.Entity] = true
	}

	ecs.ForEach(w, component.CharacterComponent.Kind(), func(e ecs.Entity, c *component.Character) {
		if c.Controller == nil {
			return
		}
		want := all || requested[e]
		if in, ok := ecs.Get(w, e, component.InputComponent.Kind()); ok {
			want = want || in.TauntPressed
			if s.tickIdle(e, in, dt) {
				want = true
			}
		}
		if want {
			c.Controller.Taunt(s.ctx, characterHost(w, e, s.clock))
		}
	})

	for e := range s.idle {
		if !ecs.IsAlive(w, e) {
			delete(s.idle, e)
		}
	}

	s.clock.Advance(dt)
}

// tickIdle accumulates idle time and reports when IdleAfter elapsed.
func (s *TauntSystem) tickIdle(e ecs.Entity, in *component.Input, dt time.Duration) bool {
	if s.IdleAfter <= 0 {
		return false
	}
	if in.Jump || in.MoveX > idleEpsilon || in.MoveX < -idleEpsilon {
		s.idle[e] = 0
		return false
	}
	s.idle[e] += dt
	if s.idle[e] < s.IdleAfter {
		return false
	}
	s.idle[e] = 0
	return true
}
