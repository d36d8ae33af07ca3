package input

// State is the window lifecycle as seen by the poller. Once Closing it
// never returns to Running.
type State int

const (
	Running State = iota
	Closing
)

func (s State) String() string {
	if s == Closing {
		return "closing"
	}
	return "running"
}

// Poller drains the platform queue once per frame and keeps a snapshot of
// the keyboard.
type Poller struct {
	source Source
	state  State
	keys   [NumScancodes]uint8
	last   Event
}

func NewPoller(source Source) *Poller {
	return &Poller{source: source}
}

// Poll drains every pending event and refreshes the key snapshot.
func (p *Poller) Poll() {
	if p.source == nil {
		return
	}
	for {
		ev, ok := p.source.PollEvent()
		if !ok {
			break
		}
		p.last = ev
		if ev.Kind == EventQuit {
			p.state = Closing
		}
	}
	copy(p.keys[:], p.source.KeyboardState())
}

func (p *Poller) State() State { return p.state }

func (p *Poller) ShouldClose() bool { return p.state == Closing }

// IsKeyDown reports the key as of the latest Poll. Before the first poll
// every key reads as released.
func (p *Poller) IsKeyDown(code Scancode) bool {
	if code < 0 || int(code) >= len(p.keys) {
		return false
	}
	return p.keys[code] != 0
}

// LastEvent returns the most recent event seen by Poll.
func (p *Poller) LastEvent() Event { return p.last }
