package video

import (
	"fmt"
	"strings"
)

// Policy tells how the host buffer is fitted into the window.
type Policy int

const (
	// Stretch fills the whole window, the aspect ratio is lost.
	Stretch Policy = iota
	// Letterbox scales by the largest integer factor of the height
	// and centers the picture, the borders stay black.
	Letterbox
)

func (p Policy) String() string {
	switch p {
	case Stretch:
		return "stretch"
	case Letterbox:
		return "letterbox"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "", "stretch":
		return Stretch, nil
	case "letterbox":
		return Letterbox, nil
	}
	return Stretch, fmt.Errorf("unknown scaling policy %q", s)
}

type Size struct{ W, H int }

// Rect is a destination area on the display.
type Rect struct{ X, Y, W, H int32 }

// Layout returns the output rectangle of the buffer in the window.
func Layout(p Policy, window, buffer Size) Rect {
	if p != Letterbox || buffer.H <= 0 {
		return Rect{W: int32(window.W), H: int32(window.H)}
	}
	scale := window.H / buffer.H
	if scale < 1 {
		scale = 1
	}
	w, h := buffer.W*scale, buffer.H*scale
	return Rect{
		X: int32((window.W - w) / 2),
		Y: int32((window.H - h) / 2),
		W: int32(w),
		H: int32(h),
	}
}
