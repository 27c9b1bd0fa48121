package entity

// Selection is the result of the most recent double-click.
// The zero value is the unselected state.
type Selection struct {
	Selected bool // false until the first double-click

	R, G, B uint8
	Name    string // nearest palette name
	Hex     string // hex of the matched palette entry
	X, Y    int    // clicked pixel in image coordinates
}

// Sum is r+g+b, range 0..765.
func (s Selection) Sum() int {
	return int(s.R) + int(s.G) + int(s.B)
}
