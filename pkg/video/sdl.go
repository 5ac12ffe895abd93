package video

import (
	"errors"
	"fmt"

	"github.com/dgvita/dgvita/pkg/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// SDL is a window with an accelerated renderer.
// All the calls should be made from the main thread.
type SDL struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	log      *logger.Logger
}

func NewSDL(log *logger.Logger) *SDL {
	if log == nil {
		log = logger.Default()
	}
	return &SDL{log: log}
}

// Open creates the window, the renderer and the texture.
// On error everything created so far is destroyed.
func (s *SDL) Open(title string, w, h, tw, th int) (err error) {
	if err = sdl.InitSubSystem(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	defer func() {
		if err != nil {
			if err1 := s.release(); err1 != nil {
				s.log.Warn().Err(err1).Msg("SDL cleanup")
			}
		}
	}()

	s.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(w), int32(h),
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}

	s.renderer, err = sdl.CreateRenderer(s.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	if err = s.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	// blank window until the first frame
	if err = s.renderer.Clear(); err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	s.renderer.Present()

	// alpha is ignored with the RGB888 format
	s.texture, err = s.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGB888), int(sdl.TEXTUREACCESS_STREAMING), int32(tw), int32(th))
	if err != nil {
		return fmt.Errorf("texture: %w", err)
	}

	s.log.Debug().Msgf("SDL window %vx%v, texture %vx%v", w, h, tw, th)
	return nil
}

func (s *SDL) Update(pix []byte, pitch int) error {
	return s.texture.Update(nil, pix, pitch)
}

func (s *SDL) Clear() error { return s.renderer.Clear() }

func (s *SDL) Copy(dst *Rect) error {
	if dst == nil {
		return s.renderer.Copy(s.texture, nil, nil)
	}
	return s.renderer.Copy(s.texture, nil, &sdl.Rect{X: dst.X, Y: dst.Y, W: dst.W, H: dst.H})
}

func (s *SDL) Flip() { s.renderer.Present() }

func (s *SDL) SetTitle(title string) {
	if s.window != nil {
		s.window.SetTitle(title)
	}
}

func (s *SDL) Close() error { return s.release() }

// release destroys the created objects and quits the video subsystem.
func (s *SDL) release() error {
	var errs []error
	if s.texture != nil {
		errs = append(errs, s.texture.Destroy())
		s.texture = nil
	}
	if s.renderer != nil {
		errs = append(errs, s.renderer.Destroy())
		s.renderer = nil
	}
	if s.window != nil {
		errs = append(errs, s.window.Destroy())
		s.window = nil
	}
	sdl.QuitSubSystem(sdl.INIT_VIDEO)
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("sdl close: %w", err)
	}
	return nil
}
