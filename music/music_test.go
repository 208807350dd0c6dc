package music

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/Atlinx/planck-scribe/planck"
)

// song builds a three track file: a violin melody with a chord, a drum track on
// channel 10 and a track without notes.
func song(t *testing.T) []byte {
	t.Helper()
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(960)

	melody := smf.Track{}
	melody.Add(0, smf.MetaTrackSequenceName("Lead"))
	melody.Add(0, smf.MetaTempo(90))
	melody.Add(0, midi.ProgramChange(0, 40))
	melody.Add(0, midi.NoteOn(0, 60, 100))
	melody.Add(480, midi.NoteOff(0, 60))
	melody.Add(0, midi.NoteOn(0, 62, 100))
	melody.Add(480, midi.NoteOn(0, 62, 0)) // zero velocity ends the note
	melody.Add(0, midi.NoteOn(0, 60, 90))
	melody.Add(0, midi.NoteOn(0, 64, 90))
	melody.Add(0, midi.NoteOn(0, 67, 90))
	melody.Add(960, midi.NoteOff(0, 60))
	melody.Add(0, midi.NoteOff(0, 64))
	melody.Add(0, midi.NoteOff(0, 67))
	melody.Add(0, midi.NoteOn(0, 100, 90))
	melody.Add(480, midi.NoteOff(0, 100))
	melody.Close(0)
	require.NoError(t, s.Add(melody))

	drums := smf.Track{}
	drums.Add(0, smf.MetaTrackSequenceName("Drums"))
	drums.Add(0, midi.NoteOn(9, 36, 100))
	drums.Add(240, midi.NoteOff(9, 36))
	drums.Add(0, midi.NoteOn(9, 38, 100))
	drums.Add(240, midi.NoteOff(9, 38))
	drums.Close(0)
	require.NoError(t, s.Add(drums))

	empty := smf.Track{}
	empty.Add(0, smf.MetaTrackSequenceName("Silence"))
	empty.Close(0)
	require.NoError(t, s.Add(empty))

	var bf bytes.Buffer
	_, err := s.WriteTo(&bf)
	require.NoError(t, err)
	return bf.Bytes()
}

func TestRead(t *testing.T) {
	score, err := Read(bytes.NewReader(song(t)), Options{})
	require.NoError(t, err)

	assert.Equal(t, uint16(960), score.Resolution)
	assert.InDelta(t, 90.0, score.Tempo, 0.01)
	require.Len(t, score.Tracks, 3)

	lead := score.Tracks[0]
	assert.Equal(t, "Lead", lead.Name)
	assert.Equal(t, 0, lead.Channel)
	require.NotNil(t, lead.Program)
	assert.Equal(t, uint8(40), *lead.Program)
	assert.Equal(t, "Violin", lead.Instrument())

	keys := []uint8{}
	for _, n := range lead.Notes {
		keys = append(keys, n.Key)
	}
	assert.Equal(t, []uint8{60, 62, 60, 64, 67, 100}, keys)
	assert.Equal(t, uint32(0), lead.Notes[0].Tick)
	assert.Equal(t, uint32(480), lead.Notes[1].Tick)
	assert.Equal(t, uint32(960), lead.Notes[2].Tick)
	assert.Equal(t, uint32(960), lead.Notes[4].Tick)
	assert.Equal(t, uint32(1920), lead.Notes[5].Tick)
	assert.Equal(t, uint8(90), lead.Notes[2].Velocity)

	drums := score.Tracks[1]
	assert.True(t, drums.IsPercussion())
	assert.Equal(t, "Percussion", drums.Instrument())
	assert.Len(t, drums.Notes, 2)

	assert.Empty(t, score.Tracks[2].Notes)
	assert.Equal(t, -1, score.Tracks[2].Channel)
	assert.Equal(t, "", score.Tracks[2].Instrument())

	assert.Len(t, score.Melodic(), 2)
	assert.Equal(t, 8, score.NumNotes())
}

func TestReadFirstTrackOnly(t *testing.T) {
	score, err := Read(bytes.NewReader(song(t)), Options{FirstTrackOnly: true})
	require.NoError(t, err)
	require.Len(t, score.Tracks, 1)
	assert.Equal(t, "Lead", score.Tracks[0].Name)
}

func TestReadQuantize(t *testing.T) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(960)
	tr := smf.Track{}
	tr.Add(0, midi.NoteOn(0, 60, 100))
	tr.Add(480, midi.NoteOff(0, 60))
	tr.Add(480, midi.NoteOn(0, 60, 100))
	tr.Add(3, midi.NoteOn(0, 64, 100)) // played a little late
	tr.Add(477, midi.NoteOff(0, 60))
	tr.Add(3, midi.NoteOff(0, 64))
	tr.Close(0)
	require.NoError(t, s.Add(tr))
	var bf bytes.Buffer
	_, err := s.WriteTo(&bf)
	require.NoError(t, err)

	score, err := Read(bytes.NewReader(bf.Bytes()), Options{})
	require.NoError(t, err)
	require.Len(t, score.Tracks[0].Notes, 3)
	assert.Equal(t, uint32(963), score.Tracks[0].Notes[2].Tick)
	assert.Len(t, TranscribeTrack(score.Tracks[0], planck.DefaultMapping()).Steps, 3)

	score, err = Read(bytes.NewReader(bf.Bytes()), Options{Quantize: true})
	require.NoError(t, err)
	notes := score.Tracks[0].Notes
	require.Len(t, notes, 3)
	assert.Equal(t, uint32(0), notes[0].Tick)
	assert.Equal(t, uint32(960), notes[1].Tick)
	assert.Equal(t, uint32(960), notes[2].Tick)
	assert.ElementsMatch(t, []uint8{60, 64}, []uint8{notes[1].Key, notes[2].Key})

	steps := TranscribeTrack(score.Tracks[0], planck.DefaultMapping()).Steps
	require.Len(t, steps, 2)
	assert.Equal(t, uint32(960), steps[1].Tick)
	assert.Len(t, steps[1].Hits, 2)
}

func TestReadGarbage(t *testing.T) {
	_, err := Read(strings.NewReader("definitely not a midi file"), Options{})
	assert.ErrorIs(t, err, ErrInvalidFile)
}

func TestConvertNoTracks(t *testing.T) {
	_, err := Convert(smf.New(), Options{})
	assert.ErrorIs(t, err, ErrNoTracks)
	_, err = Convert(nil, Options{})
	assert.ErrorIs(t, err, ErrNoTracks)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "song.mid")
	require.NoError(t, os.WriteFile(path, song(t), 0o644))

	score, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, path, score.Path)

	_, err = Load(filepath.Join(dir, "missing.mid"), Options{})
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.True(t, strings.HasPrefix(err.Error(), "missing.mid: "), err.Error())

	bad := filepath.Join(dir, "bad.mid")
	require.NoError(t, os.WriteFile(bad, []byte("MThd"), 0o644))
	_, err = Load(bad, Options{})
	assert.ErrorIs(t, err, ErrInvalidFile)
	assert.Contains(t, err.Error(), "bad.mid")
}

func TestIsMidiPath(t *testing.T) {
	assert.True(t, IsMidiPath("/tmp/a.mid"))
	assert.True(t, IsMidiPath("song.MIDI"))
	assert.False(t, IsMidiPath("song.wav"))
	assert.False(t, IsMidiPath("mid"))
}

func TestTranscribe(t *testing.T) {
	score, err := Read(bytes.NewReader(song(t)), Options{})
	require.NoError(t, err)

	ts := Transcribe(score, planck.DefaultMapping(), TranscribeOptions{SkipEmpty: true})
	require.Len(t, ts, 2)

	lead := ts[0]
	require.Len(t, lead.Steps, 4)
	assert.Len(t, lead.Steps[2].Hits, 3)
	assert.Equal(t, 1, lead.Unmapped())
	assert.Equal(t, "Track 1: Lead (Violin)", lead.Header())

	text := lead.Text(planck.LabelLegend)
	labels := strings.Split(text, " ")
	require.Len(t, labels, 4)
	assert.Equal(t, []string{"Shift", "X", "[Shift+V+M]"}, labels[:3])
	// gomidi spells the note with flats and octave = pitch / 12
	assert.Equal(t, "(E8)", labels[3])

	assert.Equal(t, "R3C1", strings.Split(lead.Text(planck.LabelPosition), " ")[0])

	// kick and snare are below the board
	assert.Equal(t, "(Bass Drum 1) (Acoustic Snare)", ts[1].Text(planck.LabelLegend))

	ts = Transcribe(score, planck.DefaultMapping(), TranscribeOptions{SkipPercussion: true})
	require.Len(t, ts, 2)
	assert.Equal(t, "Silence", ts[1].Track.Name)
}

func TestHitLabel(t *testing.T) {
	off := Hit{Note: Note{Key: 61}}
	assert.Equal(t, "(Db5)", off.Label(planck.LabelLegend))
	drum := Hit{Note: Note{Channel: 9, Key: 38}}
	assert.Equal(t, "(Acoustic Snare)", drum.Label(planck.LabelLegend))
	k, ok := planck.DefaultMapping().Key(61)
	require.True(t, ok)
	assert.Equal(t, "Z", Hit{Note: Note{Key: 61}, Key: k, Mapped: true}.Label(planck.LabelLegend))
}

func TestRender(t *testing.T) {
	score, err := Read(bytes.NewReader(song(t)), Options{})
	require.NoError(t, err)

	text := Render(Transcribe(score, planck.DefaultMapping(), TranscribeOptions{}), planck.LabelLegend)
	parts := strings.Split(text, "\n\n")
	require.Len(t, parts, 3)
	assert.True(t, strings.HasPrefix(parts[0], "Track 1: Lead (Violin)\nShift X "), parts[0])
	assert.Equal(t, "Track 2: Drums (Percussion)\n(Bass Drum 1) (Acoustic Snare)", parts[1])
	assert.Equal(t, "Track 3: Silence\n-", parts[2])

	assert.Equal(t, "no notes found", Render(nil, planck.LabelLegend))
}
