package config

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the burst of write events an editor save
// produces into a single reload.
const watchDebounce = 500 * time.Millisecond

// Watch reloads the config record whenever the file changes on disk and
// delivers the result on the returned channel. SaveIndex rewrites count
// as changes too; consumers that only care about operator-editable fields
// should compare before applying. The channel closes when ctx is done.
func (s *Store) Watch(ctx context.Context) (<-chan *Config, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: editors and our own writeRaw
	// replace the file, which drops a file-level watch.
	if err := watcher.Add(s.Dir()); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	out := make(chan *Config, 1)

	go func() {
		defer close(out)
		defer func() { _ = watcher.Close() }()

		var timer *time.Timer
		var fire <-chan time.Time

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != s.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if timer == nil {
					timer = time.NewTimer(watchDebounce)
				} else {
					if !timer.Stop() {
						select {
						case <-timer.C:
						default:
						}
					}
					timer.Reset(watchDebounce)
				}
				fire = timer.C
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.log.Warn().Err(err).Msg("config watcher error")
			case <-fire:
				fire = nil
				cfg, err := s.Load()
				if err != nil {
					s.log.Warn().Err(err).Msg("config reload failed")
					continue
				}
				select {
				case out <- cfg:
				default:
					// Drop when the consumer is busy; the next change
					// will deliver a fresh snapshot anyway.
				}
			}
		}
	}()

	return out, nil
}
