package input

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

// FIFO reads newline-delimited event names from a named pipe, so GPIO or
// IR helper scripts can inject events with a plain shell redirect:
//
//	echo next > /run/radioclick.fifo
type FIFO struct {
	path   string
	file   *os.File
	events chan Event
	log    zerolog.Logger
}

// NewFIFO opens (creating if needed) the named pipe at path and starts
// reading events from it.
func NewFIFO(path string, log zerolog.Logger) (*FIFO, error) {
	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		if err := unix.Mkfifo(path, 0666); err != nil {
			return nil, fmt.Errorf("mkfifo %s: %w", path, err)
		}
	case err != nil:
		return nil, err
	case info.Mode()&os.ModeNamedPipe == 0:
		return nil, fmt.Errorf("%s exists and is not a named pipe", path)
	}

	// O_RDWR keeps a write end open so the reader never sees EOF when a
	// writer disconnects.
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open fifo %s: %w", path, err)
	}

	f := &FIFO{
		path:   path,
		file:   file,
		events: make(chan Event),
		log:    log,
	}
	go f.run(file)

	log.Info().Str("path", path).Msg("fifo input active")
	return f, nil
}

// Events returns the event channel. It closes when the pipe is closed.
func (f *FIFO) Events() <-chan Event {
	return f.events
}

// Close stops the source by closing the pipe.
func (f *FIFO) Close() error {
	return f.file.Close()
}

func (f *FIFO) run(r io.Reader) {
	defer close(f.events)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		ev := Parse(line)
		if ev == Unknown {
			f.log.Debug().Str("line", line).Msg("ignoring unrecognized event")
			continue
		}
		f.events <- ev
	}
}
