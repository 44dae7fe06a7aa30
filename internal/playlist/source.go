// Package playlist resolves a configured playlist source into an ordered
// list of playable stream URLs, falling back to a built-in remote playlist
// when the configured source cannot be used.
package playlist

import (
	"path/filepath"
	"strings"
)

// DefaultURL is the canonical remote playlist, used whenever no source is
// configured or the configured source fails.
const DefaultURL = "https://raw.githubusercontent.com/theaetet/radioclick/refs/heads/main/all_radio.m3u"

// SourceKind discriminates between remote and local playlist sources.
type SourceKind int

const (
	SourceRemote SourceKind = iota
	SourceLocal
)

func (k SourceKind) String() string {
	switch k {
	case SourceRemote:
		return "remote"
	case SourceLocal:
		return "local"
	default:
		return "unknown"
	}
}

// Source is a tagged playlist location: a remote URL or a local file path.
type Source struct {
	Kind SourceKind
	// URL is set for remote sources, Path for local ones.
	URL  string
	Path string
}

// Remote returns a remote source for the given URL.
func Remote(url string) Source {
	return Source{Kind: SourceRemote, URL: url}
}

// Local returns a local source for the given path.
func Local(path string) Source {
	return Source{Kind: SourceLocal, Path: path}
}

// Location returns the URL or path of the source.
func (s Source) Location() string {
	if s.Kind == SourceRemote {
		return s.URL
	}
	return s.Path
}

// ParseSource turns a configured descriptor into a Source. An empty
// descriptor selects the default remote playlist; anything starting with
// http:// or https:// is remote; everything else is a local path, with
// relative paths resolved against baseDir.
func ParseSource(descriptor, baseDir string) Source {
	descriptor = strings.TrimSpace(descriptor)
	if descriptor == "" {
		return Remote(DefaultURL)
	}
	if strings.HasPrefix(descriptor, "http://") || strings.HasPrefix(descriptor, "https://") {
		return Remote(descriptor)
	}
	if !filepath.IsAbs(descriptor) {
		descriptor = filepath.Join(baseDir, descriptor)
	}
	return Local(descriptor)
}
