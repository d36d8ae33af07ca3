package pacing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/draghini/internal/pacing"
)

// fakeClock advances only when told to, or when slept on.
type fakeClock struct {
	now   time.Duration
	slept []time.Duration
}

func (c *fakeClock) Ticks() time.Duration { return c.now }
func (c *fakeClock) Counter() uint64      { return uint64(c.now) }
func (c *fakeClock) Frequency() uint64    { return uint64(time.Second) }

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now += d
}

func TestPlanBoundedByBudget(t *testing.T) {
	budget := pacing.Budget(60)
	require.InDelta(t, 16.67, float64(budget)/float64(time.Millisecond), 0.01)

	sleep := pacing.Plan(0, 60)
	assert.LessOrEqual(t, sleep, budget)
	assert.Equal(t, budget, sleep)

	assert.Equal(t, budget-10*time.Millisecond, pacing.Plan(10*time.Millisecond, 60))
}

func TestPlanSkipsWhenBudgetSpent(t *testing.T) {
	assert.Zero(t, pacing.Plan(pacing.Budget(60), 60))
	assert.Zero(t, pacing.Plan(20*time.Millisecond, 60))
	assert.Zero(t, pacing.Plan(time.Second, 60))
}

func TestPlanNegativeElapsedIsBounded(t *testing.T) {
	// A clock that went backwards would otherwise ask for more than a frame.
	assert.Zero(t, pacing.Plan(-time.Second, 60))
}

func TestPlanInvalidTarget(t *testing.T) {
	assert.Zero(t, pacing.Plan(0, 0))
	assert.Zero(t, pacing.Plan(0, -5))
}

func TestRate(t *testing.T) {
	assert.Equal(t, 50, pacing.Rate(uint64(20*time.Millisecond), uint64(time.Second)))
	assert.Equal(t, 59, pacing.Rate(uint64(16900*time.Microsecond), uint64(time.Second)))
	// 59.88 rounds up rather than truncating to 59.
	assert.Equal(t, 60, pacing.Rate(uint64(16700*time.Microsecond), uint64(time.Second)))
	assert.Equal(t, 33, pacing.Rate(uint64(30*time.Millisecond), uint64(time.Second)))
	assert.Equal(t, 0, pacing.Rate(0, uint64(time.Second)))
	assert.Equal(t, 0, pacing.Rate(10, 0))
}

func TestTickDeltaForSlowFrame(t *testing.T) {
	clock := &fakeClock{}
	p := pacing.New(clock)
	p.Reset()

	clock.now += 20 * time.Millisecond
	f := p.Tick()

	assert.Empty(t, clock.slept)
	assert.InDelta(t, 0.020, f.Delta, 1e-9)
	assert.Equal(t, 50, f.FPS)
	assert.Equal(t, f, p.Last())
}

func TestTickSleepsRemainder(t *testing.T) {
	clock := &fakeClock{}
	p := pacing.New(clock)
	require.NoError(t, p.SetTarget(50))
	p.Reset()

	clock.now += 5 * time.Millisecond
	f := p.Tick()

	require.Len(t, clock.slept, 1)
	assert.Equal(t, 15*time.Millisecond, clock.slept[0])
	assert.Equal(t, 15*time.Millisecond, f.Slept)
	assert.InDelta(t, 0.020, f.Delta, 1e-9)
	assert.Equal(t, 50, f.FPS)
}

func TestTickCarriesPreviousFrame(t *testing.T) {
	clock := &fakeClock{}
	p := pacing.New(clock)
	p.Reset()

	clock.now += 30 * time.Millisecond
	p.Tick()
	clock.now += 40 * time.Millisecond
	f := p.Tick()

	assert.InDelta(t, 0.040, f.Delta, 1e-9)
	assert.Equal(t, 25, f.FPS)
}

func TestSetTargetRejectsNonPositive(t *testing.T) {
	p := pacing.New(&fakeClock{})
	assert.ErrorIs(t, p.SetTarget(0), pacing.ErrInvalidTarget)
	assert.ErrorIs(t, p.SetTarget(-1), pacing.ErrInvalidTarget)
	assert.Equal(t, pacing.DefaultTargetFPS, p.Target())

	require.NoError(t, p.SetTarget(144))
	assert.Equal(t, 144, p.Target())
}

func TestSystemClockAdvances(t *testing.T) {
	c := pacing.NewSystemClock()
	before := c.Ticks()
	c.Sleep(time.Millisecond)
	assert.Greater(t, c.Ticks(), before)
	assert.Equal(t, uint64(time.Second), c.Frequency())
}
