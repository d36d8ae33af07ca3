// Package pacing implements the sleep-based frame cap used by the render
// context. The arithmetic is kept separate from the clock so it can be
// exercised without a display.
package pacing

import (
	"errors"
	"math"
	"time"
)

const DefaultTargetFPS = 60

var ErrInvalidTarget = errors.New("pacing: target fps must be positive")

// Clock is the timing part of the platform collaborator.
type Clock interface {
	// Ticks returns the time elapsed since the platform started.
	Ticks() time.Duration
	// Counter returns the high resolution counter; Frequency is its rate per second.
	Counter() uint64
	Frequency() uint64
	Sleep(d time.Duration)
}

// Budget is the time allotted to one frame at the target rate.
func Budget(target int) time.Duration {
	if target <= 0 {
		return 0
	}
	return time.Second / time.Duration(target)
}

// Plan returns how long to sleep when elapsed has passed since the previous
// frame started. The sleep is never longer than one frame budget, and is zero
// when the frame already used up its budget.
func Plan(elapsed time.Duration, target int) time.Duration {
	budget := Budget(target)
	remainder := budget - elapsed
	if remainder > 0 && remainder <= budget {
		return remainder
	}
	return 0
}

// Rate converts a counter delta into frames per second, rounded to the
// nearest frame.
func Rate(counterDelta, frequency uint64) int {
	if counterDelta == 0 || frequency == 0 {
		return 0
	}
	return int(math.Round(1.0 / (float64(counterDelta) / float64(frequency))))
}

// Frame is the outcome of one pacing step.
type Frame struct {
	Slept time.Duration
	Delta float64 // seconds
	FPS   int
}

// Pacer carries the bookkeeping between frames. Not safe for concurrent use.
type Pacer struct {
	clock        Clock
	target       int
	previous     time.Duration
	startCounter uint64
	last         Frame
}

func New(clock Clock) *Pacer {
	return &Pacer{clock: clock, target: DefaultTargetFPS}
}

// Reset seeds the previous-frame timestamps from the clock.
func (p *Pacer) Reset() {
	p.previous = p.clock.Ticks()
	p.startCounter = p.clock.Counter()
	p.last = Frame{}
}

func (p *Pacer) SetTarget(fps int) error {
	if fps <= 0 {
		return ErrInvalidTarget
	}
	p.target = fps
	return nil
}

func (p *Pacer) Target() int { return p.target }

// Tick sleeps off the rest of the frame budget and records delta time and
// the measured rate.
func (p *Pacer) Tick() Frame {
	var f Frame
	f.Slept = Plan(p.clock.Ticks()-p.previous, p.target)
	if f.Slept > 0 {
		p.clock.Sleep(f.Slept)
	}

	end := p.clock.Counter()
	f.FPS = Rate(end-p.startCounter, p.clock.Frequency())
	p.startCounter = end

	now := p.clock.Ticks()
	f.Delta = (now - p.previous).Seconds()
	p.previous = now

	p.last = f
	return f
}

func (p *Pacer) Last() Frame { return p.last }

// SystemClock is a Clock backed by the Go runtime's monotonic time.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock { return &SystemClock{start: time.Now()} }

func (c *SystemClock) Ticks() time.Duration  { return time.Since(c.start) }
func (c *SystemClock) Counter() uint64       { return uint64(time.Since(c.start).Nanoseconds()) }
func (c *SystemClock) Frequency() uint64     { return uint64(time.Second) }
func (c *SystemClock) Sleep(d time.Duration) { time.Sleep(d) }
