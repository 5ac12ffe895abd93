package input

import (
	"fmt"
	"math/bits"

	"github.com/dgvita/dgvita/pkg/config"
)

type binding struct {
	key     Key
	mapped  bool
	release bool
}

// Keymap is a static table of button bit -> key.
type Keymap [32]binding

// Bind maps button b to the key k.
// The release param enables key up events for the button,
// otherwise only presses are reported.
func (m *Keymap) Bind(b ButtonMask, k Key, release bool) {
	if bits.OnesCount32(uint32(b)) != 1 {
		panic(fmt.Sprintf("keymap: %v is not a single button", b))
	}
	m[bits.TrailingZeros32(uint32(b))] = binding{key: k, mapped: true, release: release}
}

// DefaultKeymap returns the built-in bindings.
// Only confirm (cross) and fire (right trigger) report releases.
func DefaultKeymap() Keymap {
	var m Keymap
	m.Bind(ButtonCross, KeyEnter, true)
	m.Bind(ButtonCircle, KeyUse, false)
	m.Bind(ButtonSquare, KeyRShift, false)
	m.Bind(ButtonTriangle, KeyTab, false)
	m.Bind(ButtonStart, KeyEscape, false)
	m.Bind(ButtonSelect, KeyF1, false)
	m.Bind(ButtonRTrigger, KeyFire, true)
	m.Bind(ButtonLTrigger, KeyUse, false)
	return m
}

// KeymapFromConfig builds bindings from the config list.
// An empty list gives the default keymap.
func KeymapFromConfig(list []config.Binding) (Keymap, error) {
	if len(list) == 0 {
		return DefaultKeymap(), nil
	}
	var m Keymap
	for _, b := range list {
		button, err := ParseButton(b.Button)
		if err != nil {
			return m, err
		}
		key, err := ParseKey(b.Key)
		if err != nil {
			return m, err
		}
		m.Bind(button, key, b.Release)
	}
	return m, nil
}
