package video

import (
	"errors"
	"image"
	"image/png"
	"os"
	"sync"

	"golang.org/x/image/draw"
)

// Framebuffer is an in-memory display.
// The back image is composed with Clear/Copy and becomes visible
// in Screen only after Flip.
type Framebuffer struct {
	mu      sync.Mutex
	title   string
	texture *image.RGBA
	back    *image.RGBA
	front   *image.RGBA
	flips   int
}

func NewFramebuffer() *Framebuffer { return &Framebuffer{} }

func (f *Framebuffer) Open(title string, w, h, tw, th int) error {
	if w <= 0 || h <= 0 || tw <= 0 || th <= 0 {
		return errors.New("framebuffer: empty size")
	}
	f.title = title
	f.texture = image.NewRGBA(image.Rect(0, 0, tw, th))
	f.back = image.NewRGBA(image.Rect(0, 0, w, h))
	f.front = image.NewRGBA(image.Rect(0, 0, w, h))
	return nil
}

func (f *Framebuffer) Update(pix []byte, pitch int) error {
	b := f.texture.Bounds()
	if pitch < b.Dx()*pixelDepth || len(pix) < pitch*b.Dy() {
		return errors.New("framebuffer: short texture data")
	}
	for y := 0; y < b.Dy(); y++ {
		src := pix[y*pitch:]
		dst := f.texture.Pix[y*f.texture.Stride:]
		for x := 0; x < b.Dx(); x++ {
			i := x * pixelDepth
			// XRGB8888 little endian is B, G, R, X
			dst[i], dst[i+1], dst[i+2], dst[i+3] = src[i+2], src[i+1], src[i], 0xff
		}
	}
	return nil
}

func (f *Framebuffer) Clear() error {
	draw.Draw(f.back, f.back.Bounds(), image.Black, image.Point{}, draw.Src)
	return nil
}

func (f *Framebuffer) Copy(dst *Rect) error {
	r := f.back.Bounds()
	if dst != nil {
		r = image.Rect(int(dst.X), int(dst.Y), int(dst.X+dst.W), int(dst.Y+dst.H))
	}
	draw.NearestNeighbor.Scale(f.back, r, f.texture, f.texture.Bounds(), draw.Src, nil)
	return nil
}

func (f *Framebuffer) Flip() {
	f.mu.Lock()
	copy(f.front.Pix, f.back.Pix)
	f.flips++
	f.mu.Unlock()
}

func (f *Framebuffer) SetTitle(title string) {
	f.mu.Lock()
	f.title = title
	f.mu.Unlock()
}

func (f *Framebuffer) Title() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.title
}

// Screen returns a copy of the visible picture.
func (f *Framebuffer) Screen() *image.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.front == nil {
		return nil
	}
	return &image.RGBA{Pix: append([]uint8{}, f.front.Pix...), Stride: f.front.Stride, Rect: f.front.Rect}
}

// Flips returns the number of shown frames.
func (f *Framebuffer) Flips() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.flips
}

// SavePNG writes the visible picture into a file.
func (f *Framebuffer) SavePNG(path string) error {
	img := f.Screen()
	if img == nil {
		return errors.New("framebuffer: not open")
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = png.Encode(out, img); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func (f *Framebuffer) Close() error { return nil }
