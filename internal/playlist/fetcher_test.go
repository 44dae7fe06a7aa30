package playlist

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	raderrors "github.com/theaetet/radioclick/internal/errors"
)

func TestHTTPFetcherSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("#EXTM3U\nhttp://a\n"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher()
	got, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if !strings.HasPrefix(got, "#EXTM3U") {
		t.Errorf("Fetch() = %q, want playlist text", got)
	}
}

func TestHTTPFetcherNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewHTTPFetcher()
	_, err := f.Fetch(context.Background(), srv.URL)
	if !errors.Is(err, raderrors.ErrPlaylistFetch) {
		t.Errorf("Fetch() error = %v, want ErrPlaylistFetch", err)
	}
}

func TestHTTPFetcherConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	f := NewHTTPFetcher()
	_, err := f.Fetch(context.Background(), url)
	if !errors.Is(err, raderrors.ErrPlaylistFetch) {
		t.Errorf("Fetch() error = %v, want ErrPlaylistFetch", err)
	}
}
