package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/theaetet/radioclick/internal/config"
	"github.com/theaetet/radioclick/internal/errors"
	"github.com/theaetet/radioclick/internal/input"
	"github.com/theaetet/radioclick/internal/player"
	"github.com/theaetet/radioclick/internal/playlist"
	"github.com/theaetet/radioclick/internal/radio"
	"github.com/theaetet/radioclick/internal/speech"
	"github.com/theaetet/radioclick/internal/station"
	"github.com/theaetet/radioclick/internal/volume"
)

var (
	runFIFO       string
	runNoKeyboard bool
	runNoWatch    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the radio controller",
	Long: `Resolve the playlist, restore the last played station and enter the
event loop.

Input comes from any combination of sources: the keyboard when run from a
terminal (n/p switch stations, +/- adjust volume, space acts as the button,
q quits), and a named pipe when --fifo is given. Hardware helpers for the
GPIO button and the IR receiver write event names into the pipe:

  echo next > /run/radioclick.fifo

The controller exits on SIGINT/SIGTERM after stopping playback.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runFIFO, "fifo", "", "named pipe to read events from")
	runCmd.Flags().BoolVar(&runNoKeyboard, "no-keyboard", false, "disable keyboard input")
	runCmd.Flags().BoolVar(&runNoWatch, "no-watch", false, "do not apply config file changes while running")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The single blocking resolve happens here, before the loop starts.
	resolver := playlist.NewResolver(playlist.NewHTTPFetcher(), nil, logger)
	source := playlist.ParseSource(cfg.PlaylistPath, store.Dir())
	stations, err := resolver.Resolve(ctx, source)
	if err != nil {
		return err
	}

	state, err := station.New(stations, cfg.LastIndex)
	if err != nil {
		return err
	}

	announcer := speech.New(cfg.TTSVoice, logger)
	controller := player.NewController(player.NewVLCBackend(), announcer, volume.NewAmixer(), store, cfg.Volume, logger)
	controller.ApplyVolume()

	var sources []input.Source
	if !runNoKeyboard {
		kb, err := input.NewKeyboard(logger)
		if err != nil {
			logger.Debug().Err(err).Msg("keyboard input unavailable")
		} else {
			defer func() { _ = kb.Close() }()
			sources = append(sources, kb)
		}
	}
	if runFIFO != "" {
		fifo, err := input.NewFIFO(runFIFO, logger)
		if err != nil {
			return err
		}
		defer func() { _ = fifo.Close() }()
		sources = append(sources, fifo)
	}
	if len(sources) == 0 {
		return errors.ErrNoInputSource
	}

	dispatcher := radio.New(state, controller, input.Merge(sources...), logger)

	if !runNoWatch {
		reload, err := store.Watch(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("config watching disabled")
		} else {
			dispatcher.SetReload(reload, func(c *config.Config) {
				if c.Volume != controller.Volume() {
					controller.SetVolume(c.Volume)
				}
				announcer.SetVoice(c.TTSVoice)
			})
		}
	}

	return dispatcher.Run(ctx)
}
