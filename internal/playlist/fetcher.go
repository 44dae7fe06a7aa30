package playlist

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/theaetet/radioclick/internal/errors"
)

// FetchTimeout bounds the single blocking playlist fetch at startup.
const FetchTimeout = 10 * time.Second

// Fetcher retrieves remote playlist text.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// HTTPFetcher fetches playlists over HTTP with a bounded timeout.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates a fetcher with the standard timeout.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: FetchTimeout},
	}
}

// Fetch performs a single blocking GET. Any transport error or non-2xx
// status fails the fetch; there are no retries here, fallback policy
// belongs to the resolver.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrPlaylistFetch, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: unexpected status %s", errors.ErrPlaylistFetch, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", errors.ErrPlaylistFetch, err)
	}

	return string(body), nil
}
