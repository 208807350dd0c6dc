package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gitlab.com/gomidi/midi/v2"

	"github.com/Atlinx/planck-scribe/music"
	"github.com/Atlinx/planck-scribe/planck"
)

const cellWidth = 7

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

var cellStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Width(cellWidth).
	Align(lipgloss.Center)

var (
	baseStyle = cellStyle.Copy().BorderForeground(lipgloss.Color("212"))
	offStyle  = cellStyle.Copy().Faint(true)
)

// renderLayout draws the board, every key showing its label and the note it
// plays.
func renderLayout(m *planck.Mapping, style planck.LabelStyle) string {
	layout := m.Layout()
	rows := make([]string, 0, planck.Rows)
	for r := 0; r < planck.Rows; r++ {
		cells := make([]string, 0, planck.Cols)
		for c := 0; c < planck.Cols; c++ {
			pos := planck.Position{Row: r, Col: c}
			key := planck.Key{Position: pos, Legend: layout.Legend(pos)}
			label := truncate(key.Label(style), cellWidth)
			pitch, ok := m.Pitch(pos)
			switch {
			case !ok:
				cells = append(cells, offStyle.Render(label+"\n-"))
			case pos == m.Base():
				cells = append(cells, baseStyle.Render(label+"\n"+midi.Note(pitch).String()))
			default:
				cells = append(cells, cellStyle.Render(label+"\n"+midi.Note(pitch).String()))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderNotes(transcripts []music.Transcript, style planck.LabelStyle) string {
	if len(transcripts) == 0 {
		return "no notes found"
	}
	blocks := make([]string, 0, len(transcripts))
	for _, t := range transcripts {
		body := t.Text(style)
		if body == "" {
			body = "-"
		}
		blocks = append(blocks, headerStyle.Render(t.Header())+"\n"+body)
	}
	return strings.Join(blocks, "\n\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
