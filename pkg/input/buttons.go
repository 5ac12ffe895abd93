package input

import (
	"fmt"
	"strings"
)

// ButtonMask holds the state of all digital buttons, one bit per button.
// The layout is the one of the Vita control library so that snapshots
// taken from the real hardware can be used as is.
type ButtonMask uint32

const (
	ButtonSelect ButtonMask = 1 << iota
	ButtonL3
	ButtonR3
	ButtonStart
	ButtonUp
	ButtonRight
	ButtonDown
	ButtonLeft
	ButtonLTrigger
	ButtonRTrigger
	ButtonL1
	ButtonR1
	ButtonTriangle
	ButtonCircle
	ButtonCross
	ButtonSquare
)

var buttonNames = map[ButtonMask]string{
	ButtonSelect:   "select",
	ButtonL3:       "l3",
	ButtonR3:       "r3",
	ButtonStart:    "start",
	ButtonUp:       "up",
	ButtonRight:    "right",
	ButtonDown:     "down",
	ButtonLeft:     "left",
	ButtonLTrigger: "ltrigger",
	ButtonRTrigger: "rtrigger",
	ButtonL1:       "l1",
	ButtonR1:       "r1",
	ButtonTriangle: "triangle",
	ButtonCircle:   "circle",
	ButtonCross:    "cross",
	ButtonSquare:   "square",
}

func (b ButtonMask) String() string {
	if name, ok := buttonNames[b]; ok {
		return name
	}
	return fmt.Sprintf("0x%08x", uint32(b))
}

// Has tells if all the bits of x are set in b.
func (b ButtonMask) Has(x ButtonMask) bool { return b&x == x }

// ParseButton returns a single button bit by its name.
func ParseButton(name string) (ButtonMask, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for b, n := range buttonNames {
		if n == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown button %q", name)
}
