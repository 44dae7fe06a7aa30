package playlist

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/theaetet/radioclick/internal/errors"
)

// ReadFunc reads a local playlist file. It is injectable for tests;
// the default is os.ReadFile.
type ReadFunc func(path string) ([]byte, error)

// Resolver turns a Source into a station list, applying the fallback
// chain: the configured source first, then the built-in default remote
// playlist. The chain has exactly one fallback level; a failure on the
// default candidate is terminal.
type Resolver struct {
	fetch Fetcher
	read  ReadFunc
	log   zerolog.Logger
}

// NewResolver creates a resolver. A nil read function defaults to
// os.ReadFile.
func NewResolver(fetch Fetcher, read ReadFunc, log zerolog.Logger) *Resolver {
	if read == nil {
		read = os.ReadFile
	}
	return &Resolver{fetch: fetch, read: read, log: log}
}

// Resolve tries each candidate source in order and extracts stations from
// the first one that yields playlist text. It returns ErrNoStations when
// the text of the winning candidate contains no stream URLs, and the last
// candidate's error when the whole chain fails.
func (r *Resolver) Resolve(ctx context.Context, src Source) ([]string, error) {
	var lastErr error
	for _, candidate := range candidates(src) {
		text, err := r.load(ctx, candidate)
		if err != nil {
			lastErr = err
			r.log.Warn().
				Str("source", candidate.Location()).
				Str("kind", candidate.Kind.String()).
				Err(err).
				Msg("playlist source failed")
			continue
		}

		stations := ParseStations(text)
		if len(stations) == 0 {
			return nil, fmt.Errorf("%w: %s", errors.ErrNoStations, candidate.Location())
		}
		r.log.Info().
			Str("source", candidate.Location()).
			Int("stations", len(stations)).
			Msg("playlist resolved")
		return stations, nil
	}

	return nil, fmt.Errorf("all playlist sources failed: %w", lastErr)
}

// candidates builds the explicit fallback chain for a source. The default
// remote playlist is appended unless the source already is it.
func candidates(src Source) []Source {
	chain := []Source{src}
	if src.Kind != SourceRemote || src.URL != DefaultURL {
		chain = append(chain, Remote(DefaultURL))
	}
	return chain
}

func (r *Resolver) load(ctx context.Context, src Source) (string, error) {
	if src.Kind == SourceRemote {
		r.log.Info().Str("url", src.URL).Msg("fetching remote playlist")
		return r.fetch.Fetch(ctx, src.URL)
	}

	r.log.Info().Str("path", src.Path).Msg("loading local playlist")
	data, err := r.read(src.Path)
	if err != nil {
		return "", fmt.Errorf("read local playlist: %w", err)
	}
	text := string(data)
	if !HasHeader(text) {
		return "", fmt.Errorf("%w: missing %s header", errors.ErrPlaylistMalformed, headerMarker)
	}
	return text, nil
}
