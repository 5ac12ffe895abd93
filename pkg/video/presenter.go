package video

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/dgvita/dgvita/pkg/config"
	"github.com/dgvita/dgvita/pkg/logger"
)

const pixelDepth = 4

var ErrBufferSize = errors.New("wrong buffer size")

// Presenter uploads host frames into the device texture and shows them
// scaled by the configured policy.
type Presenter struct {
	dev    Device
	policy Policy
	window Size
	buffer Size
	title  string

	dst *Rect
	// pixels is the byte copy of the last host frame,
	// the host buffer itself is never kept
	pixels []byte
	opened bool

	frames uint64
	took   time.Duration
	log    *logger.Logger
}

func NewPresenter(dev Device, conf config.Video, log *logger.Logger) (*Presenter, error) {
	if log == nil {
		log = logger.Default()
	}
	policy, err := ParsePolicy(conf.Scaling)
	if err != nil {
		return nil, err
	}
	p := &Presenter{
		dev:    dev,
		policy: policy,
		window: Size{W: conf.Width, H: conf.Height},
		buffer: Size{W: conf.BufferWidth, H: conf.BufferHeight},
		title:  conf.Title,
		log:    log,
	}
	p.pixels = make([]byte, p.buffer.W*p.buffer.H*pixelDepth)
	if policy == Letterbox {
		r := Layout(policy, p.window, p.buffer)
		p.dst = &r
	}
	return p, nil
}

// Init opens the display.
func (p *Presenter) Init() error {
	if err := p.dev.Open(p.title, p.window.W, p.window.H, p.buffer.W, p.buffer.H); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	p.opened = true
	p.log.Info().Msgf("display %vx%v, buffer %vx%v, scaling: %v %+v",
		p.window.W, p.window.H, p.buffer.W, p.buffer.H, p.policy, p.Dest())
	return nil
}

// Present shows the buffer of exactly W*H pixels.
// The buffer is only read during the call.
func (p *Presenter) Present(buf []uint32) error {
	if len(buf) != p.buffer.W*p.buffer.H {
		return fmt.Errorf("%w: %v, want %vx%v", ErrBufferSize, len(buf), p.buffer.W, p.buffer.H)
	}
	start := time.Now()

	for i, px := range buf {
		binary.LittleEndian.PutUint32(p.pixels[i*pixelDepth:], px)
	}
	if err := p.dev.Update(p.pixels, p.buffer.W*pixelDepth); err != nil {
		return fmt.Errorf("texture update: %w", err)
	}
	if err := p.dev.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	if err := p.dev.Copy(p.dst); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	p.dev.Flip()

	p.frames++
	p.took = time.Since(start)
	return nil
}

// SetTitle changes the window title once the display is open.
func (p *Presenter) SetTitle(title string) {
	if !p.opened {
		return
	}
	p.title = title
	p.dev.SetTitle(title)
}

// Dest returns the area of the window covered by the picture.
func (p *Presenter) Dest() Rect { return Layout(p.policy, p.window, p.buffer) }

func (p *Presenter) Policy() Policy { return p.policy }

// Frames returns the number of presented frames and the time of the last one.
func (p *Presenter) Frames() (uint64, time.Duration) { return p.frames, p.took }

func (p *Presenter) Close() error {
	if !p.opened {
		return nil
	}
	p.opened = false
	return p.dev.Close()
}
