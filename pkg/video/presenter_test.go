package video

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dgvita/dgvita/pkg/config"
	"github.com/dgvita/dgvita/pkg/logger"
)

// recorder is a device that logs all the calls.
type recorder struct {
	calls   []string
	pix     []byte
	pitch   int
	dst     *Rect
	title   string
	openErr error
}

func (r *recorder) Open(title string, w, h, tw, th int) error {
	r.calls = append(r.calls, "open")
	r.title = title
	return r.openErr
}
func (r *recorder) Update(pix []byte, pitch int) error {
	r.calls = append(r.calls, "update")
	r.pix, r.pitch = append([]byte{}, pix...), pitch
	return nil
}
func (r *recorder) Clear() error { r.calls = append(r.calls, "clear"); return nil }
func (r *recorder) Copy(dst *Rect) error {
	r.calls = append(r.calls, "copy")
	r.dst = dst
	return nil
}
func (r *recorder) Flip()                 { r.calls = append(r.calls, "flip") }
func (r *recorder) SetTitle(title string) { r.calls = append(r.calls, "title"); r.title = title }
func (r *recorder) Close() error          { r.calls = append(r.calls, "close"); return nil }

func testConf(scaling string) config.Video {
	return config.Video{Width: 960, Height: 544, BufferWidth: 4, BufferHeight: 2, Scaling: scaling, Title: "DOOM"}
}

func TestPresentSequence(t *testing.T) {
	dev := &recorder{}
	p, err := NewPresenter(dev, testConf("stretch"), logger.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if err = p.Init(); err != nil {
		t.Fatal(err)
	}

	buf := []uint32{0x00112233, 0xff445566, 0, 0, 0, 0, 0, 0x00abcdef}
	if err = p.Present(buf); err != nil {
		t.Fatal(err)
	}

	want := []string{"open", "update", "clear", "copy", "flip"}
	if !reflect.DeepEqual(dev.calls, want) {
		t.Errorf("calls %v, want %v", dev.calls, want)
	}
	if dev.pitch != 16 {
		t.Errorf("pitch %v, want 16", dev.pitch)
	}
	if dev.dst != nil {
		t.Errorf("stretch should copy into the whole window, got %+v", dev.dst)
	}
	if !reflect.DeepEqual(dev.pix[:8], []byte{0x33, 0x22, 0x11, 0x00, 0x66, 0x55, 0x44, 0xff}) {
		t.Errorf("wrong pixel bytes %x", dev.pix[:8])
	}
	if !reflect.DeepEqual(dev.pix[28:], []byte{0xef, 0xcd, 0xab, 0x00}) {
		t.Errorf("wrong last pixel %x", dev.pix[28:])
	}
	if n, _ := p.Frames(); n != 1 {
		t.Errorf("frames %v, want 1", n)
	}
}

func TestPresentLetterbox(t *testing.T) {
	dev := &recorder{}
	conf := testConf("letterbox")
	conf.BufferWidth, conf.BufferHeight = 320, 200
	p, _ := NewPresenter(dev, conf, logger.Nop())
	_ = p.Init()

	if err := p.Present(make([]uint32, 320*200)); err != nil {
		t.Fatal(err)
	}
	want := Rect{160, 72, 640, 400}
	if dev.dst == nil || *dev.dst != want {
		t.Errorf("dst %+v, want %+v", dev.dst, want)
	}
	if p.Dest() != want {
		t.Errorf("Dest() = %+v, want %+v", p.Dest(), want)
	}
}

func TestPresentWrongSize(t *testing.T) {
	dev := &recorder{}
	p, _ := NewPresenter(dev, testConf("stretch"), logger.Nop())
	_ = p.Init()

	for _, n := range []int{0, 7, 9} {
		if err := p.Present(make([]uint32, n)); !errors.Is(err, ErrBufferSize) {
			t.Errorf("Present(%v pixels) = %v, want %v", n, err, ErrBufferSize)
		}
	}
	if len(dev.calls) != 1 {
		t.Errorf("device was touched: %v", dev.calls)
	}
}

func TestPresenterDoesNotKeepBuffer(t *testing.T) {
	dev := &recorder{}
	p, _ := NewPresenter(dev, testConf("stretch"), logger.Nop())
	_ = p.Init()

	buf := make([]uint32, 8)
	buf[0] = 0x00010203
	_ = p.Present(buf)
	buf[0] = 0x00ffffff

	if p.pixels[0] != 0x03 {
		t.Errorf("staging copy follows the host buffer")
	}
}

func TestSetTitle(t *testing.T) {
	dev := &recorder{}
	p, _ := NewPresenter(dev, testConf("stretch"), logger.Nop())

	p.SetTitle("early")
	if len(dev.calls) != 0 {
		t.Errorf("title set before the display exists: %v", dev.calls)
	}

	_ = p.Init()
	p.SetTitle("E1M1")
	if dev.title != "E1M1" {
		t.Errorf("title %q, want E1M1", dev.title)
	}
}

func TestInitError(t *testing.T) {
	dev := &recorder{openErr: errors.New("no display")}
	p, _ := NewPresenter(dev, testConf("stretch"), logger.Nop())
	if err := p.Init(); err == nil {
		t.Fatal("Init() should fail")
	}
	p.SetTitle("x")
	if dev.title == "x" {
		t.Error("title set on a failed display")
	}
	if err := p.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestBadPolicy(t *testing.T) {
	if _, err := NewPresenter(&recorder{}, testConf("fit"), logger.Nop()); err == nil {
		t.Error("unknown policy was accepted")
	}
}
