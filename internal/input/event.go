// Package input defines the control-event vocabulary and the sources
// that produce it: a raw-mode keyboard for development machines and a
// named pipe for headless deployments. Hardware sources (GPIO button,
// IR receiver) implement the same Source interface out of tree.
package input

import "strings"

// Event is a discrete, press-only control event.
type Event int

const (
	Unknown Event = iota
	ButtonPress
	KeyNext
	KeyPrevious
	KeyVolumeUp
	KeyVolumeDown
)

func (e Event) String() string {
	switch e {
	case ButtonPress:
		return "button"
	case KeyNext:
		return "next"
	case KeyPrevious:
		return "previous"
	case KeyVolumeUp:
		return "volume_up"
	case KeyVolumeDown:
		return "volume_down"
	default:
		return "unknown"
	}
}

// Parse maps an event name to an Event. Unrecognized names map to
// Unknown; the dispatcher ignores those silently.
func Parse(name string) Event {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "button", "press":
		return ButtonPress
	case "next":
		return KeyNext
	case "previous", "prev":
		return KeyPrevious
	case "volume_up", "volumeup", "up":
		return KeyVolumeUp
	case "volume_down", "volumedown", "down":
		return KeyVolumeDown
	default:
		return Unknown
	}
}
