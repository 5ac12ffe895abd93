package sdlpad

import (
	"testing"

	"github.com/dgvita/dgvita/pkg/input"
	"github.com/veandco/go-sdl2/sdl"
)

func TestAxis(t *testing.T) {
	tests := []struct {
		in   int16
		want uint8
	}{
		{in: -32768, want: 0},
		{in: -1, want: 127},
		{in: 0, want: 128},
		{in: 32767, want: 255},
		{in: -8192, want: 96},
	}
	for _, tt := range tests {
		if got := axis(tt.in); got != tt.want {
			t.Errorf("axis(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestKeyboard(t *testing.T) {
	press := func(codes ...sdl.Scancode) []uint8 {
		state := make([]uint8, sdl.NUM_SCANCODES)
		for _, c := range codes {
			state[c] = 1
		}
		return state
	}

	tests := []struct {
		name string
		keys []uint8
		want input.Snapshot
	}{
		{name: "nothing", keys: press(), want: input.Neutral()},
		{
			name: "confirm and fire",
			keys: press(sdl.SCANCODE_RETURN, sdl.SCANCODE_SPACE),
			want: input.Snapshot{Buttons: input.ButtonCross | input.ButtonRTrigger, LX: 128, LY: 128, RX: 128, RY: 128},
		},
		{
			name: "move forward and turn left",
			keys: press(sdl.SCANCODE_UP, sdl.SCANCODE_LEFT),
			want: input.Snapshot{LX: 128, LY: 0, RX: 0, RY: 128},
		},
		{
			name: "strafe right backwards",
			keys: press(sdl.SCANCODE_S, sdl.SCANCODE_D),
			want: input.Snapshot{LX: 255, LY: 255, RX: 128, RY: 128},
		},
		{name: "short state", keys: []uint8{1, 1}, want: input.Neutral()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := input.Neutral()
			keyboard(tt.keys, &s)
			if s != tt.want {
				t.Errorf("got %+v, want %+v", s, tt.want)
			}
		})
	}
}
