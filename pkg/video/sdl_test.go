package video

import (
	"testing"

	"github.com/dgvita/dgvita/pkg/logger"
	"github.com/veandco/go-sdl2/sdl"
)

func TestSDLOpenErrorReleases(t *testing.T) {
	t.Setenv("SDL_VIDEODRIVER", "dummy")
	if err := sdl.InitSubSystem(sdl.INIT_VIDEO); err != nil {
		t.Skipf("no SDL video: %v", err)
	}
	defer sdl.QuitSubSystem(sdl.INIT_VIDEO)

	s := NewSDL(logger.Nop())
	// zero sized textures are rejected by SDL
	if err := s.Open("test", 64, 40, 0, 0); err == nil {
		_ = s.Close()
		t.Fatal("Open() with an empty texture should fail")
	}
	if s.window != nil || s.renderer != nil || s.texture != nil {
		t.Errorf("SDL objects are left after a failed open: %v %v %v", s.window, s.renderer, s.texture)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() after a failed open = %v", err)
	}
}
