package frontend

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// Clock is the pacing source of the host engine.
type Clock interface {
	// Ticks returns milliseconds since the clock start, wraps at 2^32.
	Ticks() uint32
	Sleep(ms uint32)
}

// SDLClock uses the SDL timer, SDL must be initialized by the display.
type SDLClock struct{}

func (SDLClock) Ticks() uint32   { return sdl.GetTicks() }
func (SDLClock) Sleep(ms uint32) { sdl.Delay(ms) }

// WallClock is the clock for the headless mode.
type WallClock struct{ start time.Time }

func NewWallClock() *WallClock { return &WallClock{start: time.Now()} }

func (c *WallClock) Ticks() uint32   { return uint32(time.Since(c.start).Milliseconds()) }
func (c *WallClock) Sleep(ms uint32) { time.Sleep(time.Duration(ms) * time.Millisecond) }
