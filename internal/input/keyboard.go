package input

import (
	"fmt"
	"os"
	"sync"

	"github.com/muesli/cancelreader"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Keyboard reads single key presses from a raw-mode terminal. It exists
// so the controller can be driven on a machine without GPIO or IR
// hardware: n/p switch stations, +/- adjust volume, space acts as the
// physical button, q closes the source (which shuts the loop down).
type Keyboard struct {
	events    chan Event
	reader    cancelreader.CancelReader
	fd        int
	state     *term.State
	log       zerolog.Logger
	closeOnce sync.Once
}

// NewKeyboard puts stdin into raw mode and starts reading key presses.
// Fails when stdin is not a terminal.
func NewKeyboard(log zerolog.Logger) (*Keyboard, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("stdin is not a terminal")
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("raw mode: %w", err)
	}

	reader, err := cancelreader.NewReader(os.Stdin)
	if err != nil {
		_ = term.Restore(fd, state)
		return nil, fmt.Errorf("cancelable stdin: %w", err)
	}

	k := &Keyboard{
		events: make(chan Event),
		reader: reader,
		fd:     fd,
		state:  state,
		log:    log,
	}
	go k.run()

	log.Info().Msg("keyboard control active: n=next p=previous +/-=volume space=button q=quit")
	return k, nil
}

// Events returns the event channel. It closes on 'q', Ctrl-C, or Close.
func (k *Keyboard) Events() <-chan Event {
	return k.events
}

// Close interrupts the blocking read and restores the terminal.
func (k *Keyboard) Close() error {
	var err error
	k.closeOnce.Do(func() {
		k.reader.Cancel()
		err = term.Restore(k.fd, k.state)
	})
	return err
}

func (k *Keyboard) run() {
	defer close(k.events)

	buf := make([]byte, 1)
	for {
		if _, err := k.reader.Read(buf); err != nil {
			// Canceled on shutdown, or stdin went away.
			return
		}

		switch buf[0] {
		case 'n', 'N':
			k.events <- KeyNext
		case 'p', 'P':
			k.events <- KeyPrevious
		case '+', '=':
			k.events <- KeyVolumeUp
		case '-', '_':
			k.events <- KeyVolumeDown
		case ' ', '\r', '\n':
			k.events <- ButtonPress
		case 'q', 'Q', 0x03, 0x04: // q, Ctrl-C, Ctrl-D
			return
		default:
			// Unrecognized keys are ignored.
		}
	}
}
