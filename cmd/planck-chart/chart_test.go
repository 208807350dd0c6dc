package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Atlinx/planck-scribe/music"
	"github.com/Atlinx/planck-scribe/planck"
)

func TestRenderLayout(t *testing.T) {
	out := renderLayout(planck.DefaultMapping(), planck.LabelLegend)
	for _, legend := range []string{"Tab", "Bksp", "Shift", "Enter", "Ctrl", "Right"} {
		assert.Contains(t, out, legend)
	}
	// every key is a border, its label, its note and a border
	assert.Len(t, strings.Split(out, "\n"), planck.Rows*4)

	out = renderLayout(planck.DefaultMapping(), planck.LabelPosition)
	assert.Contains(t, out, "R1C1")
	assert.Contains(t, out, "R4C12")
	assert.NotContains(t, out, "Bksp")
}

func TestRenderLayoutOffBoard(t *testing.T) {
	m, err := planck.NewMapping(planck.Default, planck.Position{Row: 3, Col: 0}, 120)
	require.NoError(t, err)
	out := renderLayout(m, planck.LabelLegend)
	assert.Contains(t, out, "-")
}

func TestRenderNotes(t *testing.T) {
	prog := uint8(0)
	tr := music.Track{
		Index:   0,
		Name:    "Piano",
		Program: &prog,
		Notes: []music.Note{
			{Tick: 0, Key: 60, Velocity: 100},
			{Tick: 10, Key: 72, Velocity: 100},
		},
	}
	m := planck.DefaultMapping()
	out := renderNotes([]music.Transcript{
		music.TranscribeTrack(tr, m),
		music.TranscribeTrack(music.Track{Index: 1, Channel: -1}, m),
	}, planck.LabelLegend)
	assert.Contains(t, out, "Track 1: Piano (Acoustic Grand Piano)")
	assert.Contains(t, out, "Shift Esc")
	assert.Contains(t, out, "Track 2\n-")

	assert.Equal(t, "no notes found", renderNotes(nil, planck.LabelLegend))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Shift", truncate("Shift", 7))
	assert.Equal(t, "Backspa", truncate("Backspace", 7))
	assert.Equal(t, "🎹🎹", truncate("🎹🎹🎹", 2))
}
