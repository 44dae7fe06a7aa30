package config

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"
)

func TestWatchDeliversReload(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	edited := strings.Replace(string(data), "volume = 80", "volume = 25", 1)
	if edited == string(data) {
		t.Fatal("fixture edit did not apply")
	}
	if err := os.WriteFile(s.Path(), []byte(edited), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	select {
	case cfg := <-changes:
		if cfg.Volume != 25 {
			t.Errorf("reloaded volume = %d, want 25", cfg.Volume)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload delivered after file change")
	}

	cancel()
	select {
	case _, ok := <-changes:
		if ok {
			// A queued reload may still arrive; the next receive must
			// observe the close.
			if _, ok := <-changes; ok {
				t.Error("channel not closed after cancel")
			}
		}
	case <-time.After(5 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
