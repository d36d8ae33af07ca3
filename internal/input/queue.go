package input

import "sync"

// Queue is a Source fed by Push. It tracks key state from key events the
// way a platform queue would, and is safe to push from other goroutines.
type Queue struct {
	mu     sync.Mutex
	events []Event
	keys   [NumScancodes]uint8
}

func NewQueue() *Queue { return &Queue{} }

func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// PollEvent applies the event's key transition as it is dequeued, so the
// keyboard state tracks what has been polled.
func (q *Queue) PollEvent() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return Event{}, false
	}
	ev := q.events[0]
	q.events[0] = Event{}
	q.events = q.events[1:]
	if ev.Scancode > 0 && int(ev.Scancode) < len(q.keys) {
		switch ev.Kind {
		case EventKeyDown:
			q.keys[ev.Scancode] = 1
		case EventKeyUp:
			q.keys[ev.Scancode] = 0
		}
	}
	return ev, true
}

func (q *Queue) KeyboardState() []uint8 {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]uint8, len(q.keys))
	copy(out, q.keys[:])
	return out
}

// Pending returns the number of queued events.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
