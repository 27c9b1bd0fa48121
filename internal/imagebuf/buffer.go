// Package imagebuf holds the decoded image the picker samples from.
package imagebuf

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/disintegration/imaging"
)

var (
	ErrNotFound = errors.New("image file not found")
	ErrDecode   = errors.New("image could not be decoded")
)

// Buffer is an immutable 8-bit RGB(A) pixel grid whose origin is (0, 0).
type Buffer struct {
	img *image.NRGBA
}

// Load decodes the image at path. EXIF orientation is applied so that
// coordinates match what the window shows.
func Load(path string) (*Buffer, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, path)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return New(img), nil
}

// New copies img into a Buffer.
func New(img image.Image) *Buffer {
	// imaging.Clone always returns a fresh NRGBA starting at (0, 0)
	return &Buffer{img: imaging.Clone(img)}
}

func (b *Buffer) Width() int  { return b.img.Rect.Dx() }
func (b *Buffer) Height() int { return b.img.Rect.Dy() }

// Image exposes the pixels for display. Callers must not modify it.
func (b *Buffer) Image() image.Image { return b.img }

// RGB returns the color at (x, y). ok is false when the point lies outside
// the image.
func (b *Buffer) RGB(x, y int) (r, g, bl uint8, ok bool) {
	if !(image.Point{X: x, Y: y}).In(b.img.Rect) {
		return 0, 0, 0, false
	}
	i := b.img.PixOffset(x, y)
	px := b.img.Pix[i : i+3 : i+3]
	return px[0], px[1], px[2], true
}
