package game

import (
	"errors"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font/basicfont"

	"github.com/madihagulraiz771/Color-detection-sys/config"
	"github.com/madihagulraiz771/Color-detection-sys/internal/monitor"
	"github.com/madihagulraiz771/Color-detection-sys/internal/picker"
)

var log = logrus.WithField("component", "game")

// hudColor is used for the optional monitor line.
var hudColor = color.RGBA{0, 255, 0, 255}

// Manager is the ebiten.Game that shows the image and the current selection.
type Manager struct {
	cfg     *config.Config
	session *picker.Session
	src     picker.Source
	base    *ebiten.Image
	sampler *monitor.Sampler // nil unless show_monitor is set
	width   int
	height  int
}

func New(cfg *config.Config, session *picker.Session) *Manager {
	img := session.Image()
	m := &Manager{
		cfg:     cfg,
		session: session,
		src:     newInputSource(cfg.DoubleClickWindow()),
		base:    ebiten.NewImageFromImage(img.Image()),
		width:   img.Width(),
		height:  img.Height(),
	}
	if cfg.ShowMonitor {
		m.sampler = monitor.NewSampler(cfg.MonitorEvery())
	}
	return m
}

// Run opens the window and blocks until Esc is pressed or the window is
// closed. The window and the image texture are released either way.
func (g *Manager) Run() error {
	defer g.base.Dispose()

	ebiten.SetWindowTitle(g.cfg.WindowTitle)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.cfg.TPS())

	log.WithFields(logrus.Fields{
		"width":  g.width,
		"height": g.height,
		"tps":    g.cfg.TPS(),
	}).Debug("opening window")
	return ebiten.RunGame(g)
}

func (g *Manager) Update() error {
	if err := g.session.Step(g.src); err != nil {
		if errors.Is(err, picker.ErrQuit) {
			log.Debug("escape pressed")
			return ebiten.Termination
		}
		return err
	}
	if g.sampler != nil {
		g.sampler.Tick(time.Now())
	}
	return nil
}

func (g *Manager) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.base, nil)

	if o := g.session.Overlay(); o.Visible {
		r := o.Swatch
		vector.DrawFilledRect(screen,
			float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()),
			o.Fill, false)
		text.Draw(screen, o.Label, basicfont.Face7x13, o.LabelAt.X, o.LabelAt.Y, o.LabelTone.Color())
	}

	if g.sampler != nil {
		// 13px font; lift the baseline off the bottom edge
		text.Draw(screen, g.sampler.Stats().String(), basicfont.Face7x13, 4, g.height-4, hudColor)
	}
}

// Layout keeps the logical screen at image size; ebiten scales it to the
// window, so cursor positions stay in image coordinates.
func (g *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
