// Package picker turns pointer and keyboard events into color selections.
// It knows nothing about windows; see internal/game for the ebiten side.
package picker

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/madihagulraiz771/Color-detection-sys/internal/entity"
	"github.com/madihagulraiz771/Color-detection-sys/internal/imagebuf"
	"github.com/madihagulraiz771/Color-detection-sys/internal/palette"
)

var log = logrus.WithField("component", "picker")

// ErrQuit is returned once a Cancel event has been handled.
var ErrQuit = errors.New("picker: quit requested")

// Session owns the image, the palette and the current selection.
// It is not safe for concurrent use; the caller serialises events and draws.
type Session struct {
	img *imagebuf.Buffer
	pal palette.Palette
	sel entity.Selection
}

func NewSession(img *imagebuf.Buffer, pal palette.Palette) *Session {
	return &Session{img: img, pal: pal}
}

func (s *Session) Image() *imagebuf.Buffer { return s.img }

func (s *Session) Selection() entity.Selection { return s.sel }

// Handle applies one event. Clicks outside the image are dropped.
func (s *Session) Handle(ev Event) error {
	switch ev.Kind {
	case Cancel:
		return ErrQuit
	case Click:
		s.pick(ev.X, ev.Y)
	}
	return nil
}

// Step polls src once and handles everything it returned, stopping at the
// first Cancel.
func (s *Session) Step(src Source) error {
	for _, ev := range src.Poll() {
		if err := s.Handle(ev); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) pick(x, y int) {
	r, g, b, ok := s.img.RGB(x, y)
	if !ok {
		log.WithField("x", x).WithField("y", y).Debug("click outside image ignored")
		return
	}

	match := s.pal.Nearest(r, g, b)
	// replace the whole record, never merge with the previous one
	s.sel = entity.Selection{
		Selected: true,
		R:        r,
		G:        g,
		B:        b,
		Name:     match.Name,
		Hex:      match.Hex,
		X:        x,
		Y:        y,
	}
	log.WithFields(logrus.Fields{
		"name": match.Name,
		"rgb":  []uint8{r, g, b},
		"x":    x,
		"y":    y,
	}).Info("color selected")
}

// Open loads the image and then the palette. Either failure aborts before
// anything is shown.
func Open(imagePath, palettePath string) (*Session, error) {
	img, err := imagebuf.Load(imagePath)
	if err != nil {
		return nil, err
	}
	pal, err := palette.Load(palettePath)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"image":   imagePath,
		"size":    []int{img.Width(), img.Height()},
		"palette": palettePath,
		"colors":  len(pal),
	}).Info("ready")
	return NewSession(img, pal), nil
}
