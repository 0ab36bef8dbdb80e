package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterFiresOnceWhenElapsed(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.After(100*time.Millisecond, func() { calls++ })

	s.Advance(50 * time.Millisecond)
	assert.Equal(t, 0, calls)

	s.Advance(50 * time.Millisecond)
	assert.Equal(t, 1, calls)

	s.Advance(time.Second)
	assert.Equal(t, 1, calls)
	assert.Zero(t, s.Active())
}

func TestCompletionOrderFollowsDeadline(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(300*time.Millisecond, func() { order = append(order, "slow") })
	s.After(100*time.Millisecond, func() { order = append(order, "fast") })
	s.After(100*time.Millisecond, func() { order = append(order, "fast-second") })

	s.Advance(time.Second)

	assert.Equal(t, []string{"fast", "fast-second", "slow"}, order)
}

func TestEffectStartedInCompletionWaitsForNextAdvance(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.After(10*time.Millisecond, func() {
		order = append(order, "first")
		s.After(0, func() { order = append(order, "second") })
	})

	s.Advance(time.Second)
	require.Equal(t, []string{"first"}, order)

	s.Advance(0)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestTweenStepsToCompletion(t *testing.T) {
	s := NewScheduler()
	var progress []float64
	done := 0
	s.Tween(100*time.Millisecond, func(p float64) { progress = append(progress, p) }, func() { done++ })

	s.Advance(25 * time.Millisecond)
	s.Advance(25 * time.Millisecond)
	s.Advance(100 * time.Millisecond)

	assert.Equal(t, []float64{0, 0.25, 0.5, 1}, progress)
	assert.Equal(t, 1, done)
}

func TestNegativeDurationsAreClamped(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.After(-time.Second, func() { fired = true })

	s.Advance(-time.Second)
	assert.True(t, fired)
	assert.Equal(t, time.Duration(0), s.Now())
}

func TestEasing(t *testing.T) {
	assert.InDelta(t, 0.0, EaseOutSine(0), 1e-9)
	assert.InDelta(t, 1.0, EaseOutSine(1), 1e-9)
	assert.Greater(t, EaseOutSine(0.5), 0.5)
	assert.InDelta(t, 15.0, Lerp(10, 20, 0.5), 1e-9)
}
