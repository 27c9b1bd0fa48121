package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/madihagulraiz771/Color-detection-sys/internal/picker"
)

// clickSlop is how far the cursor may drift between the two presses of a
// double-click.
const clickSlop = 4

// inputSource reads ebiten's input state once per Update.
type inputSource struct {
	clicks picker.ClickTracker
}

func newInputSource(doubleClick time.Duration) *inputSource {
	return &inputSource{
		clicks: picker.ClickTracker{Window: doubleClick, Slop: clickSlop},
	}
}

func (s *inputSource) Poll() []picker.Event {
	var events []picker.Event

	// 1. Esc closes the program
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		events = append(events, picker.Event{Kind: picker.Cancel})
	}

	// 2. only the primary button counts; CursorPosition is already in image
	// coordinates because Layout returns the image size
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.clicks.Press(x, y, time.Now()) {
			events = append(events, picker.ClickAt(x, y))
		}
	}

	return append(events, picker.Event{Kind: picker.Tick})
}
