package ecs

import "time"

// System updates a world. dt is the time the update covers.
type System interface {
	Update(w *World, dt time.Duration)
}

// SystemFunc adapts a function to System.
type SystemFunc func(w *World, dt time.Duration)

func (f SystemFunc) Update(w *World, dt time.Duration) {
	f(w, dt)
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World, dt time.Duration) {
	for _, system := range s.systems {
		if system != nil {
			system.Update(w, dt)
		}
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}

// DefaultFixedStep is the physics tick used when a Loop is built with a
// non-positive step.
const DefaultFixedStep = 20 * time.Millisecond

// maxStepsPerFrame bounds catch-up after a long stall.
const maxStepsPerFrame = 8

// Loop drives three schedulers per frame: Pre runs once (input sampling),
// Fixed runs zero or more times at a constant step, then Frame runs once
// with the frame delta. Events are flushed at the end of every frame.
type Loop struct {
	Pre   *Scheduler
	Fixed *Scheduler
	Frame *Scheduler

	step  time.Duration
	accum time.Duration
	ticks uint64
}

func NewLoop(step time.Duration, fixed, frame *Scheduler) *Loop {
	if step <= 0 {
		step = DefaultFixedStep
	}
	if fixed == nil {
		fixed = NewScheduler()
	}
	if frame == nil {
		frame = NewScheduler()
	}
	return &Loop{Pre: NewScheduler(), Fixed: fixed, Frame: frame, step: step}
}

// Step returns the fixed tick duration.
func (l *Loop) Step() time.Duration {
	return l.step
}

// Ticks returns how many fixed ticks have run.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Tick advances the loop by one frame of length dt and returns the number of
// fixed ticks that ran.
func (l *Loop) Tick(w *World, dt time.Duration) int {
	if l == nil || w == nil {
		return 0
	}
	l.Pre.Update(w, dt)
	l.accum += dt
	n := 0
	for l.accum >= l.step {
		if n == maxStepsPerFrame {
			l.accum = 0
			break
		}
		l.Fixed.Update(w, l.step)
		l.accum -= l.step
		l.ticks++
		n++
	}
	l.Frame.Update(w, dt)
	w.events.flush()
	return n
}
