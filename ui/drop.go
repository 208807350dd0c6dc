package ui

import (
	"net/url"
	"strings"

	"github.com/Atlinx/planck-scribe/music"
)

// droppedPaths reads a text/uri-list selection and returns its local paths.
// Comment lines and non-file URIs are skipped.
func droppedPaths(data []byte) []string {
	paths := []string{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(strings.TrimRight(line, "\r\x00"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !strings.Contains(line, "://") {
			paths = append(paths, line)
			continue
		}
		u, err := url.Parse(line)
		if err != nil || u.Scheme != "file" {
			continue
		}
		paths = append(paths, u.Path)
	}
	return paths
}

// firstMidi picks the first dropped path with a MIDI suffix.
func firstMidi(paths []string) (string, bool) {
	for _, p := range paths {
		if music.IsMidiPath(p) {
			return p, true
		}
	}
	return "", false
}

// dropPreview is the overlay text shown while files hover over the window.
func dropPreview(paths []string) string {
	if len(paths) == 0 {
		return "Dropping files…"
	}
	return "Dropping files:\n\n" + strings.Join(paths, "\n")
}
