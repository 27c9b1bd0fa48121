package picker

import (
	"fmt"
	"image"
	"image/color"

	"github.com/madihagulraiz771/Color-detection-sys/internal/entity"
)

// Tone is one of the two label colors.
type Tone int

const (
	ToneLight Tone = iota
	ToneDark
)

// DarkTextThreshold is the r+g+b sum from which the label switches to dark text.
const DarkTextThreshold = 600

var (
	SwatchRect = image.Rect(20, 20, 750, 60)
	LabelAt    = image.Pt(50, 50) // text baseline origin
)

// LabelTone picks dark text for light colors and light text otherwise.
func LabelTone(r, g, b uint8) Tone {
	if int(r)+int(g)+int(b) >= DarkTextThreshold {
		return ToneDark
	}
	return ToneLight
}

func (t Tone) Color() color.Color {
	if t == ToneDark {
		return color.Black
	}
	return color.White
}

// Overlay is what gets drawn on top of the image for the current selection.
type Overlay struct {
	Visible bool

	Swatch image.Rectangle
	Fill   color.RGBA

	Label     string
	LabelAt   image.Point
	LabelTone Tone
}

// Overlay computes the overlay for the current selection. It has no side effects.
func (s *Session) Overlay() Overlay {
	return OverlayFor(s.sel)
}

func OverlayFor(sel entity.Selection) Overlay {
	if !sel.Selected {
		return Overlay{}
	}
	return Overlay{
		Visible:   true,
		Swatch:    SwatchRect,
		Fill:      color.RGBA{R: sel.R, G: sel.G, B: sel.B, A: 0xff},
		Label:     fmt.Sprintf("%s R=%d G=%d B=%d", sel.Name, sel.R, sel.G, sel.B),
		LabelAt:   LabelAt,
		LabelTone: LabelTone(sel.R, sel.G, sel.B),
	}
}
