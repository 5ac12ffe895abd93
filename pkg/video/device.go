package video

// Device is a display with a single streaming texture.
// Nothing drawn is visible until Flip.
type Device interface {
	// Open creates a w×h display and a tw×th texture.
	Open(title string, w, h, tw, th int) error
	// Update uploads the whole texture, pitch is the row size in bytes.
	// The pixels are little-endian XRGB8888, the alpha byte is ignored.
	Update(pix []byte, pitch int) error
	Clear() error
	// Copy draws the texture into dst, nil means the whole display.
	Copy(dst *Rect) error
	Flip()
	SetTitle(title string)
	Close() error
}
