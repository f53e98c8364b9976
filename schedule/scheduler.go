// Package schedule runs delayed callbacks against a virtual clock that the
// game loop advances explicitly. It is not safe for concurrent use; every
// call is expected from the loop goroutine.
package schedule

import (
	"context"
	"slices"
	"time"
)

type taskState uint8

const (
	statePending taskState = iota
	stateDone
	stateCanceled
)

// Task is a single delayed callback.
type Task struct {
	ctx   context.Context
	fn    func()
	due   time.Duration
	seq   uint64
	state taskState
}

// Cancel prevents a pending task from running. It is a no-op once the task
// has run.
func (t *Task) Cancel() {
	if t != nil && t.state == statePending {
		t.state = stateCanceled
	}
}

// Done reports whether the task callback ran.
func (t *Task) Done() bool {
	return t != nil && t.state == stateDone
}

// Canceled reports whether the task was canceled before it ran.
func (t *Task) Canceled() bool {
	return t != nil && t.state == stateCanceled
}

// Due returns the virtual time at which the task fires.
func (t *Task) Due() time.Duration {
	if t == nil {
		return 0
	}
	return t.due
}

// Scheduler holds pending tasks ordered by due time.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	tasks []*Task
}

func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of tasks waiting to run.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if t.state == statePending {
			n++
		}
	}
	return n
}

// After schedules fn to run once delay has elapsed on the virtual clock.
// A negative delay is treated as zero. If ctx is done by the time the task
// comes due, the task is canceled instead of run.
func (s *Scheduler) After(ctx context.Context, delay time.Duration, fn func()) *Task {
	if ctx == nil {
		ctx = context.Background()
	}
	if delay < 0 {
		delay = 0
	}
	s.seq++
	t := &Task{ctx: ctx, fn: fn, due: s.now + delay, seq: s.seq}
	idx, _ := slices.BinarySearchFunc(s.tasks, t, compareTasks)
	s.tasks = slices.Insert(s.tasks, idx, t)
	return t
}

// Advance moves the clock forward by dt and runs every task that came due,
// in due order with ties broken by scheduling order. Tasks scheduled by a
// running callback are run in the same call if they are already due. It
// returns the number of callbacks run.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}
	ran := 0
	for len(s.tasks) > 0 && s.tasks[0].due <= s.now {
		t := s.tasks[0]
		s.tasks = s.tasks[1:]
		if t.state != statePending {
			continue
		}
		if t.ctx.Err() != nil {
			t.state = stateCanceled
			continue
		}
		t.state = stateDone
		if t.fn != nil {
			t.fn()
		}
		ran++
	}
	return ran
}

func compareTasks(a, b *Task) int {
	switch {
	case a.due < b.due:
		return -1
	case a.due > b.due:
		return 1
	case a.seq < b.seq:
		return -1
	case a.seq > b.seq:
		return 1
	}
	return 0
}
