package input

import "errors"

// Snapshot is the state of the controller at some moment.
// Stick values are in [0, 255] with the neutral position in the middle.
type Snapshot struct {
	Buttons ButtonMask
	LX, LY  uint8
	RX, RY  uint8
}

// Controller is the hardware we sample once per tick.
type Controller interface {
	// Init switches the controller into analog sampling mode.
	Init() error
	// Peek returns the latest state without waiting for a new sample.
	Peek() (Snapshot, error)
}

var ErrNoController = errors.New("no controller")

// Neutral returns a snapshot with nothing pressed and sticks centered.
func Neutral() Snapshot { return Snapshot{LX: 128, LY: 128, RX: 128, RY: 128} }
