package main

import (
	"fmt"

	"github.com/dgvita/dgvita/pkg/input"
)

// engine is a stand-in host engine: a scrolling test pattern
// moved with the arrow keys.
type engine struct {
	w, h   int
	buf    []uint32
	x, y   int
	dx, dy int
	fire   bool
	quit   bool
	tics   int
}

func newEngine(w, h int) *engine { return &engine{w: w, h: h, buf: make([]uint32, w*h)} }

func (e *engine) key(pressed bool, key byte) {
	step := 0
	if pressed {
		step = 1
	}
	switch input.Key(key) {
	case input.KeyUpArrow:
		e.dy = -step
	case input.KeyDownArrow:
		e.dy = step
	case input.KeyLeftArrow:
		e.dx = -step
	case input.KeyRightArrow:
		e.dx = step
	case input.KeyFire:
		e.fire = pressed
	case input.KeyEscape:
		e.quit = e.quit || pressed
	}
}

// tick advances the world and renders the next frame.
func (e *engine) tick() {
	e.tics++
	e.x = mod(e.x+e.dx*2, e.w)
	e.y = mod(e.y+e.dy*2, e.h)

	for j := 0; j < e.h; j++ {
		row := e.buf[j*e.w : (j+1)*e.w]
		for i := range row {
			u, v := mod(i+e.x, e.w), mod(j+e.y, e.h)
			c := uint32(u*255/e.w)<<16 | uint32(v*255/e.h)<<8
			if (u/16+v/16)%2 == 0 {
				c |= 0x80
			}
			if e.fire {
				c ^= 0xffffff
			}
			row[i] = c
		}
	}
}

func (e *engine) title() string { return fmt.Sprintf("DOOM (%d, %d)", e.x, e.y) }

func mod(a, n int) int { return (a%n + n) % n }
