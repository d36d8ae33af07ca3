package input_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/draghini/internal/input"
)

func TestScancodesMatchSDL(t *testing.T) {
	assert.Equal(t, input.Scancode(4), input.ScancodeA)
	assert.Equal(t, input.Scancode(29), input.ScancodeZ)
	assert.Equal(t, input.Scancode(39), input.Scancode0)
	assert.Equal(t, input.Scancode(41), input.ScancodeEscape)
	assert.Equal(t, input.Scancode(44), input.ScancodeSpace)
	assert.Equal(t, input.Scancode(82), input.ScancodeUp)
}

func TestPollerStartsRunning(t *testing.T) {
	p := input.NewPoller(input.NewQueue())
	assert.Equal(t, input.Running, p.State())
	assert.False(t, p.ShouldClose())
	assert.False(t, p.IsKeyDown(input.ScancodeA))
}

func TestPollerQuitIsSticky(t *testing.T) {
	q := input.NewQueue()
	p := input.NewPoller(q)

	q.Push(input.Event{Kind: input.EventKeyDown, Scancode: input.ScancodeA})
	p.Poll()
	assert.False(t, p.ShouldClose())

	q.Push(input.Event{Kind: input.EventQuit})
	p.Poll()
	assert.True(t, p.ShouldClose())

	q.Push(input.Event{Kind: input.EventKeyUp, Scancode: input.ScancodeA})
	q.Push(input.Event{Kind: input.EventOther})
	p.Poll()
	p.Poll()
	assert.True(t, p.ShouldClose())
	assert.Equal(t, input.Closing, p.State())
}

func TestPollerDrainsQueue(t *testing.T) {
	q := input.NewQueue()
	p := input.NewPoller(q)

	q.Push(input.Event{Kind: input.EventOther})
	q.Push(input.Event{Kind: input.EventQuit})
	q.Push(input.Event{Kind: input.EventKeyDown, Scancode: input.ScancodeSpace})
	require.Equal(t, 3, q.Pending())

	p.Poll()

	assert.Zero(t, q.Pending())
	assert.True(t, p.ShouldClose())
	assert.True(t, p.IsKeyDown(input.ScancodeSpace))
	assert.Equal(t, input.Event{Kind: input.EventKeyDown, Scancode: input.ScancodeSpace}, p.LastEvent())
}

func TestPollerKeySnapshotOnlyChangesOnPoll(t *testing.T) {
	q := input.NewQueue()
	p := input.NewPoller(q)

	q.Push(input.Event{Kind: input.EventKeyDown, Scancode: input.ScancodeLeft})
	assert.False(t, p.IsKeyDown(input.ScancodeLeft))
	p.Poll()
	assert.True(t, p.IsKeyDown(input.ScancodeLeft))

	q.Push(input.Event{Kind: input.EventKeyUp, Scancode: input.ScancodeLeft})
	assert.True(t, p.IsKeyDown(input.ScancodeLeft))
	p.Poll()
	assert.False(t, p.IsKeyDown(input.ScancodeLeft))
}

func TestPollerOutOfRangeKeys(t *testing.T) {
	p := input.NewPoller(input.NewQueue())
	p.Poll()
	assert.False(t, p.IsKeyDown(-1))
	assert.False(t, p.IsKeyDown(input.NumScancodes))
}

func TestPollerWithoutSource(t *testing.T) {
	p := input.NewPoller(nil)
	assert.NotPanics(t, p.Poll)
	assert.False(t, p.ShouldClose())
	assert.False(t, p.IsKeyDown(input.ScancodeEscape))
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "quit", input.EventQuit.String())
	assert.Equal(t, "keydown", input.EventKeyDown.String())
	assert.Equal(t, "keyup", input.EventKeyUp.String())
	assert.Equal(t, "other", input.EventOther.String())
	assert.Equal(t, "closing", input.Closing.String())
	assert.Equal(t, "running", input.Running.String())
}
