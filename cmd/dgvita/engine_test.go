package main

import (
	"testing"

	"github.com/dgvita/dgvita/pkg/input"
)

func TestEngineScroll(t *testing.T) {
	e := newEngine(32, 20)

	e.key(true, byte(input.KeyRightArrow))
	e.key(true, byte(input.KeyUpArrow))
	e.tick()
	e.tick()
	if e.x != 4 || e.y != 16 {
		t.Errorf("position %v, %v, want 4, 16", e.x, e.y)
	}

	e.key(false, byte(input.KeyRightArrow))
	e.key(false, byte(input.KeyUpArrow))
	e.tick()
	if e.x != 4 || e.y != 16 {
		t.Errorf("moved after release: %v, %v", e.x, e.y)
	}
	if e.title() != "DOOM (4, 16)" {
		t.Errorf("title %q", e.title())
	}
}

func TestEngineFire(t *testing.T) {
	e := newEngine(32, 20)
	e.tick()
	before := e.buf[0]
	e.key(true, byte(input.KeyFire))
	e.tick()
	if e.buf[0] != before^0xffffff {
		t.Errorf("fire pixel %#x, want %#x", e.buf[0], before^0xffffff)
	}
}

func TestEngineQuit(t *testing.T) {
	e := newEngine(8, 8)
	e.key(true, byte(input.KeyEscape))
	e.key(false, byte(input.KeyEscape))
	if !e.quit {
		t.Error("escape press is lost")
	}
}

func TestDemoPadLoops(t *testing.T) {
	p := &demoPad{}
	total := 0
	for _, st := range demoSteps {
		total += st.frames
	}
	first, _ := p.Peek()
	for i := 1; i < total; i++ {
		_, _ = p.Peek()
	}
	again, _ := p.Peek()
	if first != again {
		t.Errorf("demo does not loop: %+v != %+v", first, again)
	}
}
