package palette

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "palette")

var (
	ErrNotFound  = errors.New("palette file not found")
	ErrMalformed = errors.New("palette file is malformed")
	ErrEmpty     = errors.New("palette file has no rows")
)

// columns: color, color_name, hex, R, G, B
const numColumns = 6

// Entry is one named reference color.
type Entry struct {
	Name string
	Hex  string
	R    uint8
	G    uint8
	B    uint8
}

// Palette keeps entries in file order. Order matters for ties in Nearest.
type Palette []Entry

// LoadError describes why a palette could not be loaded.
// Line is 1-based and zero when the failure is not tied to a row.
type LoadError struct {
	Path string
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load palette %q line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("load palette %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Load reads a headerless palette CSV from disk.
func Load(path string) (Palette, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Path: path, Err: ErrNotFound}
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	defer file.Close()

	p, err := Parse(file)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
			return nil, le
		}
		return nil, &LoadError{Path: path, Err: err}
	}
	log.WithField("path", path).WithField("entries", len(p)).Debug("palette loaded")
	return p, nil
}

// Parse reads palette rows from r. At least one row is required.
func Parse(r io.Reader) (Palette, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = numColumns
	reader.TrimLeadingSpace = true

	var p Palette
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line := 0
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				line = pe.Line
			}
			return nil, &LoadError{Line: line, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
		}
		line, _ := reader.FieldPos(0)

		entry, err := parseRecord(record)
		if err != nil {
			return nil, &LoadError{Line: line, Err: err}
		}
		p = append(p, entry)
	}

	if len(p) == 0 {
		return nil, &LoadError{Err: ErrEmpty}
	}
	return p, nil
}

func parseRecord(record []string) (Entry, error) {
	e := Entry{
		Name: strings.TrimSpace(record[1]),
		Hex:  strings.TrimSpace(record[2]),
	}
	if e.Name == "" {
		return Entry{}, fmt.Errorf("%w: empty color name", ErrMalformed)
	}

	channels := [3]*uint8{&e.R, &e.G, &e.B}
	for i, dst := range channels {
		raw := strings.TrimSpace(record[3+i])
		v, err := strconv.ParseUint(raw, 10, 8)
		if err != nil {
			return Entry{}, fmt.Errorf("%w: channel %q of %q: %v", ErrMalformed, raw, e.Name, err)
		}
		*dst = uint8(v)
	}

	c, err := colorful.Hex(e.Hex)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: hex %q of %q: %v", ErrMalformed, e.Hex, e.Name, err)
	}
	// the RGB columns win when they disagree with the hex column
	if r, g, b := c.RGB255(); r != e.R || g != e.G || b != e.B {
		log.WithField("name", e.Name).WithField("hex", e.Hex).Debug("hex does not match rgb columns")
	}
	return e, nil
}

// Distance is the Manhattan distance between e and (r, g, b).
func Distance(e Entry, r, g, b uint8) int {
	return absDiff(e.R, r) + absDiff(e.G, g) + absDiff(e.B, b)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// Nearest returns the entry closest to (r, g, b). When several entries share
// the minimum distance the earliest one in file order is returned.
// Nearest panics on an empty palette; Load and Parse never return one.
func (p Palette) Nearest(r, g, b uint8) Entry {
	best := 0
	bestDist := Distance(p[0], r, g, b)
	for i := 1; i < len(p); i++ {
		if d := Distance(p[i], r, g, b); d < bestDist {
			best, bestDist = i, d
		}
	}
	return p[best]
}

func (p Palette) NearestName(r, g, b uint8) string {
	return p.Nearest(r, g, b).Name
}
