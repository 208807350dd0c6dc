package planck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	Rows    = 4
	Cols    = 12
	NumKeys = Rows * Cols
)

var ErrOutOfRange = errors.New("key position out of range")

var positionRegexp = regexp.MustCompile(`^[Rr](\d+)\s*[Cc](\d+)$`)

// Position of a key on the board. Row 0 is the top row.
type Position struct {
	Row int
	Col int
}

func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

// String returns the 1-based "R<row>C<col>" form.
func (p Position) String() string {
	return fmt.Sprintf("R%dC%d", p.Row+1, p.Col+1)
}

// index counts from the bottom-left key, left to right, then upwards, so that
// every row above is one octave higher.
func (p Position) index() int {
	return (Rows-1-p.Row)*Cols + p.Col
}

func positionAt(i int) Position {
	return Position{Row: Rows - 1 - i/Cols, Col: i % Cols}
}

// ParsePosition reads a 1-based position such as "R3C1".
func ParsePosition(s string) (Position, error) {
	m := positionRegexp.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Position{}, fmt.Errorf("bad key position %q, expected R<row>C<col>", s)
	}
	row, _ := strconv.Atoi(m[1])
	col, _ := strconv.Atoi(m[2])
	p := Position{Row: row - 1, Col: col - 1}
	if !p.Valid() {
		return Position{}, fmt.Errorf("%w: %s", ErrOutOfRange, s)
	}
	return p, nil
}

// Layout holds the legend printed on every key.
type Layout [Rows][Cols]string

// Default is the stock Planck QWERTY layer in grid (2x1u space) mode.
var Default = Layout{
	{"Tab", "Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P", "Bksp"},
	{"Esc", "A", "S", "D", "F", "G", "H", "J", "K", "L", ";", "'"},
	{"Shift", "Z", "X", "C", "V", "B", "N", "M", ",", ".", "/", "Enter"},
	{"Ctrl", "Fn", "Alt", "GUI", "Lower", "Space", "Space", "Raise", "Left", "Down", "Up", "Right"},
}

// NewLayout builds a layout from Rows rows of Cols legends each.
func NewLayout(rows [][]string) (Layout, error) {
	var l Layout
	if len(rows) != Rows {
		return l, fmt.Errorf("layout needs %d rows, got %d", Rows, len(rows))
	}
	for r, row := range rows {
		if len(row) != Cols {
			return l, fmt.Errorf("layout row %d needs %d keys, got %d", r+1, Cols, len(row))
		}
		copy(l[r][:], row)
	}
	return l, nil
}

func (l *Layout) Legend(p Position) string {
	if !p.Valid() {
		return ""
	}
	return l[p.Row][p.Col]
}

type LabelStyle int

const (
	LabelLegend LabelStyle = iota
	LabelPosition
)

func ParseLabelStyle(s string) (LabelStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "legend":
		return LabelLegend, nil
	case "position":
		return LabelPosition, nil
	default:
		return LabelLegend, fmt.Errorf("unknown label style %q", s)
	}
}

func (s LabelStyle) String() string {
	if s == LabelPosition {
		return "position"
	}
	return "legend"
}

type Key struct {
	Position
	Legend string
}

func (k Key) Label(style LabelStyle) string {
	if style == LabelPosition || k.Legend == "" {
		return k.Position.String()
	}
	return k.Legend
}
