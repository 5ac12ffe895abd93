package main

import "github.com/dgvita/dgvita/pkg/input"

// demoPad walks the sticks and buttons through a fixed loop
// for the runs without a real controller.
type demoPad struct{ n int }

var demoSteps = []struct {
	frames int
	s      input.Snapshot
}{
	{35, input.Snapshot{LX: 128, LY: 128, RX: 128, RY: 128}},
	{35, input.Snapshot{LX: 255, LY: 128, RX: 128, RY: 128}},
	{35, input.Snapshot{LX: 128, LY: 0, RX: 128, RY: 128}},
	{10, input.Snapshot{Buttons: input.ButtonRTrigger, LX: 128, LY: 128, RX: 128, RY: 128}},
	{35, input.Snapshot{LX: 128, LY: 128, RX: 0, RY: 128}},
	{35, input.Snapshot{LX: 60, LY: 200, RX: 128, RY: 128}},
}

func (p *demoPad) Init() error { return nil }

func (p *demoPad) Peek() (input.Snapshot, error) {
	total := 0
	for _, st := range demoSteps {
		total += st.frames
	}
	at := p.n % total
	p.n++
	for _, st := range demoSteps {
		if at < st.frames {
			return st.s, nil
		}
		at -= st.frames
	}
	return input.Neutral(), nil
}
