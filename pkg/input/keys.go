package input

import (
	"fmt"
	"strings"
)

// Key is an abstract key code of the host engine.
type Key uint8

const (
	KeyTab        Key = 9
	KeyEnter      Key = 13
	KeyEscape     Key = 27
	KeySpace      Key = 32
	KeyStrafeL    Key = 0xa0
	KeyStrafeR    Key = 0xa1
	KeyUse        Key = 0xa2
	KeyFire       Key = 0xa3
	KeyLeftArrow  Key = 0xac
	KeyUpArrow    Key = 0xad
	KeyRightArrow Key = 0xae
	KeyDownArrow  Key = 0xaf
	KeyRShift     Key = 0x80 + 0x36
	KeyRAlt       Key = 0x80 + 0x38
	KeyF1         Key = 0x80 + 0x3b
)

var keyNames = map[Key]string{
	KeyTab:        "tab",
	KeyEnter:      "enter",
	KeyEscape:     "escape",
	KeySpace:      "space",
	KeyStrafeL:    "strafe_left",
	KeyStrafeR:    "strafe_right",
	KeyUse:        "use",
	KeyFire:       "fire",
	KeyLeftArrow:  "left",
	KeyUpArrow:    "up",
	KeyRightArrow: "right",
	KeyDownArrow:  "down",
	KeyRShift:     "rshift",
	KeyRAlt:       "ralt",
	KeyF1:         "f1",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("0x%02x", uint8(k))
}

func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range keyNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// Event is a single key press or release.
type Event struct {
	Pressed bool
	Key     Key
}

// Pack encodes the event into a single word.
//
//	[P:8][KEY:8]
func (e Event) Pack() uint16 {
	var p uint16
	if e.Pressed {
		p = 1
	}
	return p<<8 | uint16(e.Key)
}

func Unpack(v uint16) Event { return Event{Pressed: v>>8 != 0, Key: Key(v & 0xff)} }

func (e Event) String() string {
	if e.Pressed {
		return "+" + e.Key.String()
	}
	return "-" + e.Key.String()
}
