package ui

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"time"
)

const maxRecentFiles = 10

type RecentFile struct {
	Path string `json:"path"`
	Time int64  `json:"time"`
}
type RecentFiles []RecentFile
type Preferences struct {
	RecentFiles RecentFiles `json:"recent_files"`
	BaseKey     string      `json:"base_key,omitempty"`
	Positions   bool        `json:"positions,omitempty"`

	path string
}

// PreferencesPath is the default location of the preferences file.
func PreferencesPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "planck-scribe.json"
	}
	return filepath.Join(dir, "planck-scribe", "preferences.json")
}

func LoadPreferences(path string) (*Preferences, error) {
	prefs := &Preferences{
		RecentFiles: RecentFiles{},
		path:        path,
	}
	f, err := os.Open(path)
	if err != nil {
		return prefs, err
	}
	defer f.Close()
	stat, err := f.Stat()
	if err != nil {
		return prefs, err
	}
	if stat.Size() < 10 {
		return prefs, nil
	}
	if err := json.NewDecoder(f).Decode(prefs); err != nil {
		return prefs, err
	}
	prefs.Refresh()
	return prefs, nil
}

// unique keeps the latest entry of every path, oldest first.
func unique(sl RecentFiles) RecentFiles {
	seen := map[string]bool{}
	out := RecentFiles{}
	for i := len(sl) - 1; i >= 0; i-- {
		if seen[sl[i].Path] {
			continue
		}
		seen[sl[i].Path] = true
		out = append(out, sl[i])
	}
	slices.Reverse(out)
	return out
}

func (p *Preferences) Save() error {
	if err := os.MkdirAll(filepath.Dir(p.path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(p.path)
	if err != nil {
		return err
	}
	if err := json.NewEncoder(f).Encode(p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (p *Preferences) AddFile(path string) {
	p.RecentFiles = unique(append(p.RecentFiles, RecentFile{
		Path: path,
		Time: time.Now().Unix(),
	}))
	if len(p.RecentFiles) > maxRecentFiles {
		p.RecentFiles = p.RecentFiles[len(p.RecentFiles)-maxRecentFiles:]
	}
}

// Files returns the recent files, latest first.
func (p *Preferences) Files() RecentFiles {
	s := slices.Clone(p.RecentFiles)
	slices.Reverse(s)
	return s
}

// Refresh drops the files that disappeared.
func (p *Preferences) Refresh() {
	p.RecentFiles = slices.DeleteFunc(p.RecentFiles, func(e RecentFile) bool {
		_, err := os.Stat(e.Path)
		return err != nil
	})
}

func (p *Preferences) DeleteFile(path string) {
	p.RecentFiles = slices.DeleteFunc(p.RecentFiles, func(e RecentFile) bool {
		return e.Path == path
	})
}
