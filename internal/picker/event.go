package picker

import "fmt"

type EventKind int

const (
	// Tick is delivered once per frame, after any input of that frame.
	Tick EventKind = iota
	// Click is a primary-button double-click at (X, Y) in image coordinates.
	Click
	// Cancel asks the loop to stop.
	Cancel
)

func (k EventKind) String() string {
	switch k {
	case Tick:
		return "tick"
	case Click:
		return "click"
	case Cancel:
		return "cancel"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

type Event struct {
	Kind EventKind
	X, Y int
}

func ClickAt(x, y int) Event { return Event{Kind: Click, X: x, Y: y} }

// Source yields the input gathered since the previous Poll.
type Source interface {
	Poll() []Event
}

// Scripted replays a fixed list of frames, one per Poll. Once the frames are
// used up every Poll returns a single Tick.
type Scripted struct {
	Frames [][]Event
	next   int
}

func (s *Scripted) Poll() []Event {
	if s.next >= len(s.Frames) {
		return []Event{{Kind: Tick}}
	}
	f := s.Frames[s.next]
	s.next++
	return f
}
