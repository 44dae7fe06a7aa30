// Package speech announces station numbers through espeak. The whole
// feature silently disables itself when the binary is not installed.
package speech

import (
	"fmt"
	"os/exec"

	"github.com/rs/zerolog"
)

// Announcer speaks short status phrases. The zero-value announcer is
// disabled; use New to probe for espeak.
type Announcer struct {
	binary string
	voice  string
	log    zerolog.Logger
}

// New creates an announcer using the given espeak voice. When espeak is
// not on PATH the announcer is a no-op.
func New(voice string, log zerolog.Logger) *Announcer {
	a := &Announcer{voice: voice, log: log}
	path, err := exec.LookPath("espeak")
	if err != nil {
		log.Info().Msg("TTS disabled: 'espeak' not found")
		return a
	}
	a.binary = path
	log.Info().Str("binary", path).Str("voice", voice).Msg("TTS enabled")
	return a
}

// Enabled reports whether espeak was found.
func (a *Announcer) Enabled() bool {
	return a.binary != ""
}

// SetVoice changes the voice used for subsequent announcements.
func (a *Announcer) SetVoice(voice string) {
	a.voice = voice
}

// AnnounceStation speaks "Station N" for the 1-based station number.
// Fire-and-forget: it never blocks on espeak finishing and swallows all
// failures, playback must not depend on it.
func (a *Announcer) AnnounceStation(number int) {
	if a.binary == "" {
		return
	}
	text := fmt.Sprintf("Station %d", number)
	cmd := exec.Command(a.binary, "-v"+a.voice, text)
	if err := cmd.Start(); err != nil {
		a.log.Debug().Err(err).Msg("espeak failed to start")
		return
	}
	go func() { _ = cmd.Wait() }()
}
