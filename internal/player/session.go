// Package player drives the external media-player process: one live
// session at a time, replaced wholesale on every station change.
package player

import (
	"fmt"
	"os/exec"
	"syscall"

	"github.com/theaetet/radioclick/internal/errors"
)

// Session is a live playback process.
type Session interface {
	// Terminate asks the process to exit. Safe to call more than once.
	Terminate() error
	// Running reports whether the process is still alive. The check is
	// lazy: a player that died on its own is only noticed here.
	Running() bool
}

// Backend starts playback processes.
type Backend interface {
	Start(url string) (Session, error)
}

// VLCBackend plays streams with cvlc.
type VLCBackend struct {
	// Binary overrides the player binary, cvlc by default.
	Binary string
}

// NewVLCBackend creates the default cvlc backend.
func NewVLCBackend() *VLCBackend {
	return &VLCBackend{Binary: "cvlc"}
}

// Start launches cvlc for the given stream URL.
func (b *VLCBackend) Start(url string) (Session, error) {
	binary := b.Binary
	if binary == "" {
		binary = "cvlc"
	}
	cmd := exec.Command(binary, "--quiet", url)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errors.ErrPlayerStart, binary, err)
	}

	s := &execSession{cmd: cmd, done: make(chan struct{})}
	go func() {
		_ = cmd.Wait()
		close(s.done)
	}()
	return s, nil
}

// execSession wraps a started process; done closes once it is reaped.
type execSession struct {
	cmd  *exec.Cmd
	done chan struct{}
}

func (s *execSession) Terminate() error {
	if !s.Running() {
		return nil
	}
	return s.cmd.Process.Signal(syscall.SIGTERM)
}

func (s *execSession) Running() bool {
	select {
	case <-s.done:
		return false
	default:
		return true
	}
}
