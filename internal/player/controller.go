package player

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/theaetet/radioclick/internal/volume"
)

// stopGrace is how long a replaced session gets to release the audio
// device before the new one starts. Best-effort drain, not a clean
// shutdown wait.
const stopGrace = 200 * time.Millisecond

// Announcer speaks the station number after a station change.
type Announcer interface {
	AnnounceStation(number int)
}

// Saver persists the current station index.
type Saver interface {
	SaveIndex(index int) error
}

// Controller owns the playback session and the volume level. It is not
// safe for concurrent use; the dispatcher drives it from a single
// goroutine.
type Controller struct {
	backend   Backend
	announcer Announcer
	mixer     volume.Mixer
	saver     Saver
	log       zerolog.Logger

	session Session
	level   int
	grace   time.Duration
}

// NewController creates a controller starting at the given volume level.
// announcer may be nil to disable announcements.
func NewController(backend Backend, announcer Announcer, mixer volume.Mixer, saver Saver, level int, log zerolog.Logger) *Controller {
	return &Controller{
		backend:   backend,
		announcer: announcer,
		mixer:     mixer,
		saver:     saver,
		level:     volume.Clamp(level),
		grace:     stopGrace,
		log:       log,
	}
}

// Play switches playback to the given station. A live session is
// terminated first with a short grace period. The announcement is
// fire-and-forget and a failed index save is logged, never propagated:
// the station change has already happened.
func (c *Controller) Play(index int, url string) error {
	if c.session != nil && c.session.Running() {
		if err := c.session.Terminate(); err != nil {
			c.log.Warn().Err(err).Msg("failed to terminate player")
		}
		time.Sleep(c.grace)
	}

	session, err := c.backend.Start(url)
	if err != nil {
		return err
	}
	c.session = session
	c.log.Info().Int("station", index).Str("url", url).Msg("playing")

	if c.announcer != nil {
		c.announcer.AnnounceStation(index + 1)
	}

	if err := c.saver.SaveIndex(index); err != nil {
		c.log.Error().Err(err).Msg("failed to save last_index")
	}

	return nil
}

// Stop terminates the live session, if any. Idempotent; used at process
// shutdown.
func (c *Controller) Stop() {
	if c.session == nil || !c.session.Running() {
		return
	}
	if err := c.session.Terminate(); err != nil {
		c.log.Warn().Err(err).Msg("failed to terminate player")
	}
}

// AdjustVolume adds delta to the level, clamps to [0, 100] and applies
// the result. Works with or without an active session.
func (c *Controller) AdjustVolume(delta int) int {
	return c.SetVolume(c.level + delta)
}

// SetVolume sets an absolute level, clamped, and applies it.
func (c *Controller) SetVolume(level int) int {
	c.level = volume.Clamp(level)
	if err := c.mixer.Set(c.level); err != nil {
		c.log.Warn().Err(err).Msg("failed to set volume")
	} else {
		c.log.Info().Int("volume", c.level).Msg("volume set")
	}
	return c.level
}

// Volume returns the current level.
func (c *Controller) Volume() int {
	return c.level
}

// ApplyVolume pushes the current level to the mixer, used once at
// startup.
func (c *Controller) ApplyVolume() {
	c.SetVolume(c.level)
}
