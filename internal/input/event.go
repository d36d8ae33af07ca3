package input

// Scancode is a physical key position. Values follow the SDL scancode table
// so the SDL backend can pass them through unchanged.
type Scancode int

const ScancodeUnknown Scancode = 0

const (
	ScancodeA Scancode = 4 + iota
	ScancodeB
	ScancodeC
	ScancodeD
	ScancodeE
	ScancodeF
	ScancodeG
	ScancodeH
	ScancodeI
	ScancodeJ
	ScancodeK
	ScancodeL
	ScancodeM
	ScancodeN
	ScancodeO
	ScancodeP
	ScancodeQ
	ScancodeR
	ScancodeS
	ScancodeT
	ScancodeU
	ScancodeV
	ScancodeW
	ScancodeX
	ScancodeY
	ScancodeZ
)

const (
	Scancode1 Scancode = 30 + iota
	Scancode2
	Scancode3
	Scancode4
	Scancode5
	Scancode6
	Scancode7
	Scancode8
	Scancode9
	Scancode0
	ScancodeReturn
	ScancodeEscape
	ScancodeBackspace
	ScancodeTab
	ScancodeSpace
)

const (
	ScancodeRight Scancode = 79 + iota
	ScancodeLeft
	ScancodeDown
	ScancodeUp
)

// NumScancodes is the size of a keyboard state array.
const NumScancodes = 512

type EventKind int

const (
	EventOther EventKind = iota
	EventQuit
	EventKeyDown
	EventKeyUp
)

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventKeyDown:
		return "keydown"
	case EventKeyUp:
		return "keyup"
	default:
		return "other"
	}
}

// Event is one record from the platform event queue.
type Event struct {
	Kind     EventKind
	Scancode Scancode
}

// Source is the event side of the platform collaborator.
type Source interface {
	// PollEvent removes and returns the next pending event, or false when the
	// queue is empty.
	PollEvent() (Event, bool)
	// KeyboardState returns the platform's current key state indexed by
	// Scancode. The slice may be live and is only read, never retained.
	KeyboardState() []uint8
}
