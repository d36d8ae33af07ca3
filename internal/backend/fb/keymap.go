package fb

import "github.com/rook-computer/draghini/internal/input"

// Linux input-event-codes.h key codes mapped to scancodes.
var evdevKeys = map[uint16]input.Scancode{
	1:   input.ScancodeEscape,
	2:   input.Scancode1,
	3:   input.Scancode2,
	4:   input.Scancode3,
	5:   input.Scancode4,
	6:   input.Scancode5,
	7:   input.Scancode6,
	8:   input.Scancode7,
	9:   input.Scancode8,
	10:  input.Scancode9,
	11:  input.Scancode0,
	14:  input.ScancodeBackspace,
	15:  input.ScancodeTab,
	16:  input.ScancodeQ,
	17:  input.ScancodeW,
	18:  input.ScancodeE,
	19:  input.ScancodeR,
	20:  input.ScancodeT,
	21:  input.ScancodeY,
	22:  input.ScancodeU,
	23:  input.ScancodeI,
	24:  input.ScancodeO,
	25:  input.ScancodeP,
	28:  input.ScancodeReturn,
	30:  input.ScancodeA,
	31:  input.ScancodeS,
	32:  input.ScancodeD,
	33:  input.ScancodeF,
	34:  input.ScancodeG,
	35:  input.ScancodeH,
	36:  input.ScancodeJ,
	37:  input.ScancodeK,
	38:  input.ScancodeL,
	44:  input.ScancodeZ,
	45:  input.ScancodeX,
	46:  input.ScancodeC,
	47:  input.ScancodeV,
	48:  input.ScancodeB,
	49:  input.ScancodeN,
	50:  input.ScancodeM,
	57:  input.ScancodeSpace,
	103: input.ScancodeUp,
	105: input.ScancodeLeft,
	106: input.ScancodeRight,
	108: input.ScancodeDown,
}

const (
	evKey = 0x01

	keyReleased = 0
	keyPressed  = 1
)

// keyEvent converts one evdev record. Autorepeat and non-key records are
// dropped.
func keyEvent(typ, code uint16, value int32) (input.Event, bool) {
	if typ != evKey {
		return input.Event{}, false
	}
	sc, ok := evdevKeys[code]
	if !ok {
		return input.Event{}, false
	}
	switch value {
	case keyPressed:
		return input.Event{Kind: input.EventKeyDown, Scancode: sc}, true
	case keyReleased:
		return input.Event{Kind: input.EventKeyUp, Scancode: sc}, true
	}
	return input.Event{}, false
}
