// Package sdlpad reads a Vita style controller snapshot from SDL.
// A game controller is used when attached, the keyboard works in any case
// so the adapter can be driven on a desktop.
package sdlpad

import (
	"fmt"

	"github.com/dgvita/dgvita/pkg/input"
	"github.com/dgvita/dgvita/pkg/logger"
	"github.com/veandco/go-sdl2/sdl"
)

type Pad struct {
	pad  *sdl.GameController
	quit bool
	log  *logger.Logger
}

var buttons = []struct {
	b   sdl.GameControllerButton
	bit input.ButtonMask
}{
	{sdl.CONTROLLER_BUTTON_A, input.ButtonCross},
	{sdl.CONTROLLER_BUTTON_B, input.ButtonCircle},
	{sdl.CONTROLLER_BUTTON_X, input.ButtonSquare},
	{sdl.CONTROLLER_BUTTON_Y, input.ButtonTriangle},
	{sdl.CONTROLLER_BUTTON_BACK, input.ButtonSelect},
	{sdl.CONTROLLER_BUTTON_START, input.ButtonStart},
	{sdl.CONTROLLER_BUTTON_LEFTSHOULDER, input.ButtonLTrigger},
	{sdl.CONTROLLER_BUTTON_RIGHTSHOULDER, input.ButtonRTrigger},
	{sdl.CONTROLLER_BUTTON_LEFTSTICK, input.ButtonL3},
	{sdl.CONTROLLER_BUTTON_RIGHTSTICK, input.ButtonR3},
	{sdl.CONTROLLER_BUTTON_DPAD_UP, input.ButtonUp},
	{sdl.CONTROLLER_BUTTON_DPAD_DOWN, input.ButtonDown},
	{sdl.CONTROLLER_BUTTON_DPAD_LEFT, input.ButtonLeft},
	{sdl.CONTROLLER_BUTTON_DPAD_RIGHT, input.ButtonRight},
}

var keys = []struct {
	code sdl.Scancode
	bit  input.ButtonMask
}{
	{sdl.SCANCODE_RETURN, input.ButtonCross},
	{sdl.SCANCODE_E, input.ButtonCircle},
	{sdl.SCANCODE_LSHIFT, input.ButtonSquare},
	{sdl.SCANCODE_TAB, input.ButtonTriangle},
	{sdl.SCANCODE_F1, input.ButtonSelect},
	{sdl.SCANCODE_ESCAPE, input.ButtonStart},
	{sdl.SCANCODE_Q, input.ButtonLTrigger},
	{sdl.SCANCODE_LCTRL, input.ButtonRTrigger},
	{sdl.SCANCODE_SPACE, input.ButtonRTrigger},
}

func New(log *logger.Logger) *Pad {
	if log == nil {
		log = logger.Default()
	}
	return &Pad{log: log}
}

// Init opens the first attached game controller.
// No controller is not an error, the keyboard is still there.
func (p *Pad) Init() error {
	if err := sdl.InitSubSystem(sdl.INIT_GAMECONTROLLER | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) {
			continue
		}
		pad := sdl.GameControllerOpen(i)
		if pad != nil && pad.Attached() {
			p.log.Info().Msgf("gamepad: %s", pad.Name())
			p.pad = pad
			break
		}
	}
	if p.pad == nil {
		p.log.Info().Msg("no gamepads found, keyboard only")
	}
	return nil
}

// Peek pumps SDL events and returns the current state of the pad
// merged with the keyboard.
func (p *Pad) Peek() (input.Snapshot, error) {
	sdl.PumpEvents()
	if sdl.HasEvent(sdl.QUIT) {
		p.quit = true
	}

	s := input.Neutral()
	if p.pad != nil {
		if !p.pad.Attached() {
			return s, input.ErrNoController
		}
		for _, b := range buttons {
			if p.pad.Button(b.b) != 0 {
				s.Buttons |= b.bit
			}
		}
		s.LX = axis(p.pad.Axis(sdl.CONTROLLER_AXIS_LEFTX))
		s.LY = axis(p.pad.Axis(sdl.CONTROLLER_AXIS_LEFTY))
		s.RX = axis(p.pad.Axis(sdl.CONTROLLER_AXIS_RIGHTX))
		s.RY = axis(p.pad.Axis(sdl.CONTROLLER_AXIS_RIGHTY))
	}
	keyboard(sdl.GetKeyboardState(), &s)
	return s, nil
}

// QuitRequested tells if the window was asked to close.
func (p *Pad) QuitRequested() bool { return p.quit }

func (p *Pad) Close() {
	if p.pad != nil {
		p.pad.Close()
		p.pad = nil
	}
}

// axis converts SDL [-32768, 32767] into [0, 255].
func axis(v int16) uint8 { return uint8((int32(v) + 32768) >> 8) }

// keyboard adds keys to the snapshot.
// Arrows and WASD push the sticks to the limits: up/down and A/D
// on the left stick, left/right arrows on the right one.
func keyboard(state []uint8, s *input.Snapshot) {
	down := func(code sdl.Scancode) bool { return int(code) < len(state) && state[code] != 0 }

	for _, k := range keys {
		if down(k.code) {
			s.Buttons |= k.bit
		}
	}
	switch {
	case down(sdl.SCANCODE_UP) || down(sdl.SCANCODE_W):
		s.LY = 0
	case down(sdl.SCANCODE_DOWN) || down(sdl.SCANCODE_S):
		s.LY = 255
	}
	switch {
	case down(sdl.SCANCODE_A):
		s.LX = 0
	case down(sdl.SCANCODE_D):
		s.LX = 255
	}
	switch {
	case down(sdl.SCANCODE_LEFT):
		s.RX = 0
	case down(sdl.SCANCODE_RIGHT):
		s.RX = 255
	}
}
