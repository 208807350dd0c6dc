package music

import (
	"sync"

	"github.com/Atlinx/planck-scribe/planck"
)

// State caches the last loaded score so that a new base key or label style
// only re-renders it.
type State struct {
	Score      *Score
	Mapping    *planck.Mapping
	Style      planck.LabelStyle
	Options    Options
	Transcribe TranscribeOptions
	sync.Mutex
}

func NewState(m *planck.Mapping, style planck.LabelStyle) *State {
	if m == nil {
		m = planck.DefaultMapping()
	}
	return &State{Mapping: m, Style: style}
}

// LoadFile replaces the cached score. On error the previous score is kept.
func (s *State) LoadFile(path string) error {
	s.Lock()
	opts := s.Options
	s.Unlock()
	score, err := Load(path, opts)
	if err != nil {
		return err
	}
	s.Lock()
	s.Score = score
	s.Unlock()
	return nil
}

// Reload reads the cached score's file again.
func (s *State) Reload() error {
	s.Lock()
	score := s.Score
	s.Unlock()
	if score == nil {
		return nil
	}
	return s.LoadFile(score.Path)
}

func (s *State) SetBase(base planck.Position) error {
	s.Lock()
	defer s.Unlock()
	m, err := planck.NewMapping(s.Mapping.Layout(), base, s.Mapping.BasePitch())
	if err != nil {
		return err
	}
	s.Mapping = m
	return nil
}

func (s *State) SetStyle(style planck.LabelStyle) {
	s.Lock()
	s.Style = style
	s.Unlock()
}

func (s *State) Path() string {
	s.Lock()
	defer s.Unlock()
	if s.Score == nil {
		return ""
	}
	return s.Score.Path
}

// Text renders the cached score, "" when nothing is loaded.
func (s *State) Text() string {
	s.Lock()
	defer s.Unlock()
	if s.Score == nil {
		return ""
	}
	return Render(Transcribe(s.Score, s.Mapping, s.Transcribe), s.Style)
}

func (s *State) Stats() (tracks, notes int) {
	s.Lock()
	defer s.Unlock()
	if s.Score == nil {
		return 0, 0
	}
	return len(s.Score.Tracks), s.Score.NumNotes()
}
