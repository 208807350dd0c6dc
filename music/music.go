package music

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Atlinx/planck-scribe/gm"

	"gitlab.com/gomidi/midi/v2/smf"
	"gitlab.com/gomidi/quantizer/lib/quantizer"
)

var (
	ErrNoTracks    = errors.New("no track exists")
	ErrInvalidFile = errors.New("not a MIDI file")
)

const DefaultTempo = float64(120)

type Note struct {
	Tick     uint32 // absolute
	Channel  uint8
	Key      uint8
	Velocity uint8
}

type Track struct {
	Index int
	Name  string
	// meta instrument text, if any
	InstrumentName string
	// first program change of the track
	Program *uint8
	// first channel a note or program change was seen on, -1 if none
	Channel int
	Notes   []Note
}

func (t *Track) Instrument() string {
	if t.Channel == gm.DrumChannel {
		return "Percussion"
	}
	if t.Program != nil {
		return gm.Instrument(*t.Program)
	}
	return t.InstrumentName
}

func (t *Track) IsPercussion() bool {
	return t.Channel == gm.DrumChannel
}

func (t *Track) seenChannel(ch uint8) {
	if t.Channel < 0 {
		t.Channel = int(ch)
	}
}

type Score struct {
	Path   string
	Format uint16
	// ticks per quarter note, 0 for SMPTE time codes
	Resolution uint16
	Tempo      float64
	Tracks     []Track
}

// Melodic returns the tracks holding at least one note.
func (s *Score) Melodic() []Track {
	out := []Track{}
	for _, tr := range s.Tracks {
		if len(tr.Notes) > 0 {
			out = append(out, tr)
		}
	}
	return out
}

func (s *Score) NumNotes() (n int) {
	for _, tr := range s.Tracks {
		n += len(tr.Notes)
	}
	return
}

type Options struct {
	// snap notes to the grid before reading them
	Quantize bool
	// only read the first track chunk
	FirstTrackOnly bool
}

func IsMidiPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mid", ".midi":
		return true
	}
	return false
}

func Load(path string, opts Options) (*Score, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	score, err := Read(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	score.Path = path
	return score, nil
}

func Read(r io.Reader, opts Options) (*Score, error) {
	if opts.Quantize {
		var bf bytes.Buffer
		if err := quantizer.Quantize(r, &bf); err != nil {
			return nil, errors.Join(ErrInvalidFile, err)
		}
		r = &bf
	}
	mf, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Join(ErrInvalidFile, err)
	}
	return Convert(mf, opts)
}

// Convert reduces a parsed file to its tracks and note starts.
func Convert(mf *smf.SMF, opts Options) (*Score, error) {
	if mf == nil || len(mf.Tracks) == 0 {
		return nil, ErrNoTracks
	}
	score := &Score{
		Format: mf.Format(),
		Tempo:  DefaultTempo,
	}
	if ticks, ok := mf.TimeFormat.(smf.MetricTicks); ok {
		score.Resolution = ticks.Resolution()
	}
	tracks := mf.Tracks
	if opts.FirstTrackOnly {
		tracks = tracks[:1]
	}
	tempoSet := false
	for i, tr := range tracks {
		t := Track{Index: i, Channel: -1, Notes: []Note{}}
		var ch, key, vel, prog uint8
		var bpm float64
		var text string
		abs := uint32(0)
		for _, ev := range tr {
			abs += ev.Delta
			switch {
			case ev.Message.GetMetaTrackName(&text):
				if t.Name == "" {
					t.Name = strings.TrimSpace(text)
				}
			case ev.Message.GetMetaInstrument(&text):
				if t.InstrumentName == "" {
					t.InstrumentName = strings.TrimSpace(text)
				}
			case ev.Message.GetMetaTempo(&bpm):
				if !tempoSet {
					score.Tempo = bpm
					tempoSet = true
				}
			case ev.Message.GetProgramChange(&ch, &prog):
				if t.Program == nil {
					p := prog
					t.Program = &p
				}
				t.seenChannel(ch)
			case ev.Message.GetNoteStart(&ch, &key, &vel):
				t.Notes = append(t.Notes, Note{
					Tick:     abs,
					Channel:  ch,
					Key:      key,
					Velocity: vel,
				})
				t.seenChannel(ch)
			}
		}
		score.Tracks = append(score.Tracks, t)
	}
	return score, nil
}
