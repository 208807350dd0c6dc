package music

import (
	"fmt"
	"strings"

	"github.com/Atlinx/planck-scribe/gm"
	"github.com/Atlinx/planck-scribe/planck"

	"gitlab.com/gomidi/midi/v2"
)

// Hit is one note placed on the board.
type Hit struct {
	Note   Note
	Key    planck.Key
	Mapped bool
}

func (h Hit) Label(style planck.LabelStyle) string {
	if !h.Mapped {
		if h.Note.Channel == gm.DrumChannel {
			if name := gm.Percussion(h.Note.Key); name != "" {
				return "(" + name + ")"
			}
		}
		return "(" + midi.Note(h.Note.Key).String() + ")"
	}
	return h.Key.Label(style)
}

// Step groups the notes of a track that start on the same tick.
type Step struct {
	Tick uint32
	Hits []Hit
}

func (s Step) Label(style planck.LabelStyle) string {
	if len(s.Hits) == 1 {
		return s.Hits[0].Label(style)
	}
	labels := make([]string, len(s.Hits))
	for i, h := range s.Hits {
		labels[i] = h.Label(style)
	}
	return "[" + strings.Join(labels, "+") + "]"
}

type Transcript struct {
	Track Track
	Steps []Step
}

// Unmapped counts the notes that fall off the board.
func (t *Transcript) Unmapped() (n int) {
	for _, s := range t.Steps {
		for _, h := range s.Hits {
			if !h.Mapped {
				n++
			}
		}
	}
	return
}

func (t *Transcript) Text(style planck.LabelStyle) string {
	labels := make([]string, len(t.Steps))
	for i, s := range t.Steps {
		labels[i] = s.Label(style)
	}
	return strings.Join(labels, " ")
}

func (t *Transcript) Header() string {
	h := fmt.Sprintf("Track %d", t.Track.Index+1)
	if t.Track.Name != "" {
		h += ": " + t.Track.Name
	}
	if instr := t.Track.Instrument(); instr != "" {
		h += " (" + instr + ")"
	}
	return h
}

type TranscribeOptions struct {
	SkipPercussion bool
	SkipEmpty      bool
}

func Transcribe(score *Score, m *planck.Mapping, opts TranscribeOptions) []Transcript {
	out := []Transcript{}
	for _, tr := range score.Tracks {
		if opts.SkipPercussion && tr.IsPercussion() {
			continue
		}
		if opts.SkipEmpty && len(tr.Notes) == 0 {
			continue
		}
		out = append(out, TranscribeTrack(tr, m))
	}
	return out
}

func TranscribeTrack(tr Track, m *planck.Mapping) Transcript {
	t := Transcript{Track: tr, Steps: []Step{}}
	for i, n := range tr.Notes {
		k, ok := m.Key(n.Key)
		hit := Hit{Note: n, Key: k, Mapped: ok}
		if i > 0 && n.Tick == t.Steps[len(t.Steps)-1].Tick {
			last := &t.Steps[len(t.Steps)-1]
			last.Hits = append(last.Hits, hit)
			continue
		}
		t.Steps = append(t.Steps, Step{Tick: n.Tick, Hits: []Hit{hit}})
	}
	return t
}

// Render builds the text of the notes panel.
func Render(transcripts []Transcript, style planck.LabelStyle) string {
	if len(transcripts) == 0 {
		return "no notes found"
	}
	var sb strings.Builder
	for i, t := range transcripts {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(t.Header())
		sb.WriteString("\n")
		if len(t.Steps) == 0 {
			sb.WriteString("-")
			continue
		}
		sb.WriteString(t.Text(style))
	}
	return sb.String()
}
