// Package frontend is the single entry point of the host engine.
// It owns the key translator and the presenter and drives both once per tick.
package frontend

import (
	"sync"
	"time"

	"github.com/dgvita/dgvita/pkg/config"
	"github.com/dgvita/dgvita/pkg/input"
	"github.com/dgvita/dgvita/pkg/logger"
	"github.com/dgvita/dgvita/pkg/video"
)

type Frontend struct {
	conf      config.Config
	keys      *input.Translator
	screen    *video.Presenter
	clock     Clock
	ready     bool
	lastTitle string

	// stats are copied once per tick for readers on other goroutines
	mu    sync.Mutex
	stats Stats

	log *logger.Logger
}

type Stats struct {
	Frames      uint64
	PresentTime time.Duration
	Input       input.Stats
}

type Option func(*Frontend)

// WithClock replaces the default SDL timer.
func WithClock(c Clock) Option { return func(f *Frontend) { f.clock = c } }

func New(conf config.Config, ctrl input.Controller, dev video.Device, log *logger.Logger, opts ...Option) (*Frontend, error) {
	if log == nil {
		log = logger.Default()
	}
	keys, err := input.NewTranslator(conf.Input, ctrl, log.Tag("input"))
	if err != nil {
		return nil, err
	}
	screen, err := video.NewPresenter(dev, conf.Video, log.Tag("video"))
	if err != nil {
		return nil, err
	}
	f := &Frontend{conf: conf, keys: keys, screen: screen, clock: SDLClock{}, log: log}
	for _, o := range opts {
		o(f)
	}
	return f, nil
}

// Init opens the display and switches the controller into analog mode.
// Must be called once before any other call.
func (f *Frontend) Init() error {
	if err := f.screen.Init(); err != nil {
		return err
	}
	if err := f.keys.Init(); err != nil {
		_ = f.screen.Close()
		return err
	}
	f.ready = true
	f.log.Info().Msg("frontend is ready")
	return nil
}

// DrawFrame shows the frame and samples the controller.
func (f *Frontend) DrawFrame(buf []uint32) error {
	if err := f.screen.Present(buf); err != nil {
		return err
	}
	f.keys.Sample()

	frames, took := f.screen.Frames()
	f.mu.Lock()
	f.stats = Stats{Frames: frames, PresentTime: took, Input: f.keys.Stats()}
	f.mu.Unlock()
	return nil
}

// GetKey returns the oldest queued key event.
// When nothing is queued ok is false and the values are zero.
func (f *Frontend) GetKey() (pressed bool, key byte, ok bool) {
	e, ok := f.keys.PollEvent()
	if !ok {
		return false, 0, false
	}
	return e.Pressed, byte(e.Key), true
}

// GetKeyC is the sentinel form of GetKey for callers with out parameters.
// It returns 0 and leaves the outputs untouched when nothing is queued.
func (f *Frontend) GetKeyC(pressed *int, key *byte) int {
	p, k, ok := f.GetKey()
	if !ok {
		return 0
	}
	*pressed = 0
	if p {
		*pressed = 1
	}
	*key = k
	return 1
}

func (f *Frontend) SetWindowTitle(title string) {
	if !f.ready || title == f.lastTitle {
		return
	}
	f.lastTitle = title
	f.screen.SetTitle(title)
}

func (f *Frontend) GetTicksMs() uint32 { return f.clock.Ticks() }
func (f *Frontend) SleepMs(ms uint32)  { f.clock.Sleep(ms) }

// Stats returns the counters as of the last frame.
// Safe to call from any goroutine.
func (f *Frontend) Stats() Stats {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stats
}

// Dest returns the window area of the picture.
func (f *Frontend) Dest() video.Rect { return f.screen.Dest() }

func (f *Frontend) Close() error {
	f.ready = false
	return f.screen.Close()
}
