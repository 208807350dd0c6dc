package shared

import "github.com/Atlinx/planck-scribe/planck"

type Event int

const (
	Quit Event = iota
	LoadFile
	Loaded
	Picked
	Error
	SetBase
	SetStyle
	Reload
)

func (e Event) String() string {
	switch e {
	case Quit:
		return "quit"
	case LoadFile:
		return "load-file"
	case Loaded:
		return "loaded"
	case Picked:
		return "picked"
	case Error:
		return "error"
	case SetBase:
		return "set-base"
	case SetStyle:
		return "set-style"
	case Reload:
		return "reload"
	default:
		return "unknown"
	}
}

type Message struct {
	Type    Event
	Number  int
	Boolean bool
	String  string
}

// BaseKeyNames lists every key position in board order, top-left first.
func BaseKeyNames() []string {
	names := make([]string, 0, planck.NumKeys)
	for r := 0; r < planck.Rows; r++ {
		for c := 0; c < planck.Cols; c++ {
			names = append(names, planck.Position{Row: r, Col: c}.String())
		}
	}
	return names
}

// BaseKeyIndex is the index of p in BaseKeyNames.
func BaseKeyIndex(p planck.Position) int {
	return p.Row*planck.Cols + p.Col
}
