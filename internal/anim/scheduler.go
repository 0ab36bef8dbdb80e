// Package anim provides a frame-driven scheduler for delayed calls and
// fixed-duration tweens.
//
// Nothing here touches a real clock. The host advances the scheduler once per
// frame, and every started effect fires its completion exactly once when its
// duration has elapsed.
package anim

import (
	"math"
	"sort"
	"time"
)

// effect is a single scheduled delay or tween.
type effect struct {
	seq      uint64
	start    time.Duration
	duration time.Duration
	step     func(progress float64)
	done     func()
}

func (e *effect) deadline() time.Duration {
	return e.start + e.duration
}

// Scheduler owns all in-flight effects for one scene.
type Scheduler struct {
	now     time.Duration
	seq     uint64
	effects []*effect
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{
		effects: make([]*effect, 0),
	}
}

// Now returns the scheduler's elapsed time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Active returns the number of effects that have not completed yet.
func (s *Scheduler) Active() int {
	return len(s.effects)
}

// After calls fn once d has elapsed.
func (s *Scheduler) After(d time.Duration, fn func()) {
	s.add(d, nil, fn)
}

// Tween calls step with linear progress in [0,1] on every advance until d has
// elapsed, then calls step(1) followed by done.
func (s *Scheduler) Tween(d time.Duration, step func(progress float64), done func()) {
	if step != nil {
		step(0)
	}
	s.add(d, step, done)
}

func (s *Scheduler) add(d time.Duration, step func(float64), done func()) {
	if d < 0 {
		d = 0
	}
	s.seq++
	s.effects = append(s.effects, &effect{
		seq:      s.seq,
		start:    s.now,
		duration: d,
		step:     step,
		done:     done,
	})
}

// Advance moves time forward by dt, stepping running tweens and completing
// every effect whose duration has elapsed. Completions fire in deadline order,
// ties broken by start order. Effects started by a completion begin at the
// current time and are not advanced until the next call.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	s.now += dt

	running := s.effects
	kept := make([]*effect, 0, len(running))
	var due []*effect

	for _, e := range running {
		elapsed := s.now - e.start
		if elapsed >= e.duration {
			due = append(due, e)
			continue
		}
		if e.step != nil {
			e.step(float64(elapsed) / float64(e.duration))
		}
		kept = append(kept, e)
	}

	s.effects = kept

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].deadline() != due[j].deadline() {
			return due[i].deadline() < due[j].deadline()
		}
		return due[i].seq < due[j].seq
	})

	for _, e := range due {
		if e.step != nil {
			e.step(1)
		}
		if e.done != nil {
			e.done()
		}
	}
}

// Lerp interpolates between from and to.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// EaseOutSine decelerates towards the end of the tween.
func EaseOutSine(t float64) float64 {
	return math.Sin(t * math.Pi / 2)
}
