package input

import (
	"fmt"

	"github.com/dgvita/dgvita/pkg/config"
	"github.com/dgvita/dgvita/pkg/logger"
)

// stick is one analog axis mapped to a pair of keys,
// neg is reported below the deadzone, pos above.
type stick struct {
	name     string
	value    func(Snapshot) uint8
	neg, pos Key
}

// Left stick moves, the horizontal axis of the right stick turns.
// Both horizontal axes produce the same left/right keys.
var sticks = [...]stick{
	{name: "ly", value: func(s Snapshot) uint8 { return s.LY }, neg: KeyUpArrow, pos: KeyDownArrow},
	{name: "lx", value: func(s Snapshot) uint8 { return s.LX }, neg: KeyLeftArrow, pos: KeyRightArrow},
	{name: "rx", value: func(s Snapshot) uint8 { return s.RX }, neg: KeyLeftArrow, pos: KeyRightArrow},
}

// Translator turns controller snapshots into key events.
// Not safe for concurrent use, Sample and PollEvent are expected
// to be called from the host loop.
type Translator struct {
	ctrl     Controller
	keymap   Keymap
	center   int
	deadzone int

	q       *Queue
	buttons ButtonMask
	axes    [len(sticks)]uint8

	stats Stats
	log   *logger.Logger
}

type Stats struct {
	Samples  uint64
	Misses   uint64
	Events   uint64
	Dropped  uint64
	Buffered int
}

func NewTranslator(conf config.Input, ctrl Controller, log *logger.Logger) (*Translator, error) {
	if log == nil {
		log = logger.Default()
	}
	keymap, err := KeymapFromConfig(conf.Keymap)
	if err != nil {
		return nil, fmt.Errorf("keymap: %w", err)
	}
	t := &Translator{
		ctrl:     ctrl,
		keymap:   keymap,
		center:   conf.Center,
		deadzone: conf.Deadzone,
		q:        NewQueue(conf.QueueSize),
		log:      log,
	}
	for i := range t.axes {
		t.axes[i] = uint8(conf.Center)
	}
	return t, nil
}

// Init claims the analog sampling mode of the controller.
func (t *Translator) Init() error {
	if t.ctrl == nil {
		return ErrNoController
	}
	if err := t.ctrl.Init(); err != nil {
		return fmt.Errorf("controller: %w", err)
	}
	t.log.Info().Msgf("controller ready, deadzone: %v, queue: %v", t.deadzone, t.q.Cap())
	return nil
}

// Sample reads the controller and queues all the changes since
// the previous successful read. Read errors are treated as no change.
func (t *Translator) Sample() {
	t.stats.Samples++
	s, err := t.ctrl.Peek()
	if err != nil {
		t.stats.Misses++
		t.log.Debug().Err(err).Msg("controller read skipped")
		return
	}
	t.digital(s.Buttons)
	t.analog(s)
}

func (t *Translator) digital(cur ButtonMask) {
	changed := cur ^ t.buttons
	for i := 0; changed != 0; i++ {
		bit := ButtonMask(1) << i
		if changed&bit == 0 {
			continue
		}
		changed &^= bit

		b := t.keymap[i]
		if !b.mapped {
			continue
		}
		pressed := cur&bit != 0
		if pressed || b.release {
			t.push(Event{Pressed: pressed, Key: b.key})
		}
	}
	t.buttons = cur
}

func (t *Translator) negative(v uint8) bool { return int(v) < t.center-t.deadzone }
func (t *Translator) positive(v uint8) bool { return int(v) > t.center+t.deadzone }

func (t *Translator) analog(s Snapshot) {
	for i, st := range sticks {
		cur, old := st.value(s), t.axes[i]
		changed := false
		if n := t.negative(cur); n != t.negative(old) {
			t.push(Event{Pressed: n, Key: st.neg})
			changed = true
		}
		if p := t.positive(cur); p != t.positive(old) {
			t.push(Event{Pressed: p, Key: st.pos})
			changed = true
		}
		if changed {
			t.axes[i] = cur
		}
	}
}

func (t *Translator) push(e Event) {
	t.stats.Events++
	if t.q.Push(e) {
		t.log.Warn().Msgf("key queue is full, dropped the oldest event for %v", e)
	}
	t.log.Debug().Str("event", e.String()).Msg("key")
}

// PollEvent returns the oldest unread event if any.
func (t *Translator) PollEvent() (Event, bool) { return t.q.Pop() }

// Buttons returns the last sampled button state.
func (t *Translator) Buttons() ButtonMask { return t.buttons }

func (t *Translator) Stats() Stats {
	s := t.stats
	s.Dropped = t.q.Dropped()
	s.Buffered = t.q.Len()
	return s
}
