// Package radio is the top-level control loop: it consumes the merged
// input-event stream and dispatches to the station state and the
// playback controller. Events are processed one at a time, in order;
// there is no concurrent handling of overlapping events.
package radio

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/theaetet/radioclick/internal/config"
	"github.com/theaetet/radioclick/internal/input"
	"github.com/theaetet/radioclick/internal/station"
)

// volumeStep is how much one volume key press changes the level.
const volumeStep = 5

// Player is the playback controller surface the dispatcher drives.
type Player interface {
	Play(index int, url string) error
	Stop()
	AdjustVolume(delta int) int
}

// Dispatcher runs the event loop.
type Dispatcher struct {
	state  *station.State
	player Player
	events <-chan input.Event
	log    zerolog.Logger

	reload   <-chan *config.Config
	onReload func(*config.Config)
}

// New creates a dispatcher over the given state, player and merged event
// stream.
func New(state *station.State, player Player, events <-chan input.Event, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		state:  state,
		player: player,
		events: events,
		log:    log,
	}
}

// SetReload attaches a config-change channel and the callback invoked
// for each reloaded config. Optional; without it the loop only consumes
// input events.
func (d *Dispatcher) SetReload(ch <-chan *config.Config, apply func(*config.Config)) {
	d.reload = ch
	d.onReload = apply
}

// Run starts playback of the currently selected station and then blocks,
// handling events until ctx is canceled or every input source has
// closed. Playback is stopped on the way out. An initial playback
// failure is returned; failures during the loop are logged and the loop
// keeps going.
func (d *Dispatcher) Run(ctx context.Context) error {
	index, url := d.state.Current()
	if err := d.player.Play(index, url); err != nil {
		return err
	}

	d.log.Info().Int("stations", d.state.Len()).Msg("entering main loop")
	for {
		select {
		case <-ctx.Done():
			d.log.Info().Msg("signal received, shutting down")
			d.player.Stop()
			return nil

		case ev, ok := <-d.events:
			if !ok {
				d.log.Info().Msg("input closed, shutting down")
				d.player.Stop()
				return nil
			}
			d.handle(ev)

		case cfg, ok := <-d.reload:
			if !ok {
				d.reload = nil
				continue
			}
			d.log.Info().Msg("config changed on disk")
			if d.onReload != nil {
				d.onReload(cfg)
			}
		}
	}
}

func (d *Dispatcher) handle(ev input.Event) {
	switch ev {
	case input.ButtonPress, input.KeyNext:
		d.play(d.state.Advance(+1))
	case input.KeyPrevious:
		d.play(d.state.Advance(-1))
	case input.KeyVolumeUp:
		d.player.AdjustVolume(+volumeStep)
	case input.KeyVolumeDown:
		d.player.AdjustVolume(-volumeStep)
	default:
		// Unrecognized events are ignored.
	}
}

func (d *Dispatcher) play(index int, url string) {
	if err := d.player.Play(index, url); err != nil {
		d.log.Error().Int("station", index).Str("url", url).Err(err).Msg("playback failed")
	}
}
