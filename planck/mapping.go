package planck

import "fmt"

// MiddleC is the pitch the base key plays unless configured otherwise.
const MiddleC = 60

// DefaultBase leaves one octave below middle C on the bottom row.
var DefaultBase = Position{Row: 2, Col: 0}

// Mapping assigns consecutive pitches to consecutive keys, anchored so that
// the base key plays the base pitch.
type Mapping struct {
	layout    Layout
	base      Position
	basePitch uint8
}

func NewMapping(layout Layout, base Position, basePitch uint8) (*Mapping, error) {
	if !base.Valid() {
		return nil, fmt.Errorf("%w: base key %s", ErrOutOfRange, base)
	}
	if basePitch > 127 {
		return nil, fmt.Errorf("%w: base pitch %d", ErrOutOfRange, basePitch)
	}
	return &Mapping{layout: layout, base: base, basePitch: basePitch}, nil
}

// DefaultMapping maps middle C to DefaultBase on the Default layout.
func DefaultMapping() *Mapping {
	return &Mapping{layout: Default, base: DefaultBase, basePitch: MiddleC}
}

func (m *Mapping) Base() Position   { return m.base }
func (m *Mapping) BasePitch() uint8 { return m.basePitch }
func (m *Mapping) Layout() Layout   { return m.layout }

// Key returns the key playing pitch, false when the pitch is off the board.
func (m *Mapping) Key(pitch uint8) (Key, bool) {
	if pitch > 127 {
		return Key{}, false
	}
	i := m.base.index() + int(pitch) - int(m.basePitch)
	if i < 0 || i >= NumKeys {
		return Key{}, false
	}
	pos := positionAt(i)
	return Key{Position: pos, Legend: m.layout.Legend(pos)}, true
}

// Pitch is the inverse of Key.
func (m *Mapping) Pitch(p Position) (uint8, bool) {
	if !p.Valid() {
		return 0, false
	}
	v := int(m.basePitch) + p.index() - m.base.index()
	if v < 0 || v > 127 {
		return 0, false
	}
	return uint8(v), true
}

// Range returns the lowest and highest pitch that lands on a key.
func (m *Mapping) Range() (lo, hi uint8) {
	l := int(m.basePitch) - m.base.index()
	h := l + NumKeys - 1
	return uint8(max(l, 0)), uint8(min(h, 127))
}
