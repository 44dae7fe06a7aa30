// Package volume applies the system playback volume through amixer.
package volume

import (
	"fmt"
	"os/exec"
)

// Clamp bounds a volume level to [0, 100].
func Clamp(level int) int {
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return level
}

// Mixer applies a volume percentage to the system.
type Mixer interface {
	Set(percent int) error
}

// AmixerMixer drives the ALSA mixer via the amixer binary.
type AmixerMixer struct {
	// Control is the mixer control to set, "Master" by default.
	Control string
}

// NewAmixer creates a mixer for the Master control.
func NewAmixer() *AmixerMixer {
	return &AmixerMixer{Control: "Master"}
}

// Set applies the volume percentage. The caller clamps; amixer rejects
// values outside its range otherwise.
func (m *AmixerMixer) Set(percent int) error {
	control := m.Control
	if control == "" {
		control = "Master"
	}
	cmd := exec.Command("amixer", "sset", control, fmt.Sprintf("%d%%", percent))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("amixer sset %s: %w", control, err)
	}
	return nil
}
