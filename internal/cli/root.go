package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/theaetet/radioclick/internal/config"
	"github.com/theaetet/radioclick/internal/errors"
)

var (
	cfgFile string
	jsonOut bool
	verbose bool

	cfg    *config.Config
	store  *config.Store
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "radioclick",
	Short: "Cycle internet-radio stations from a button or IR remote",
	Long: `Radioclick is a radio-station controller for Raspberry Pi and other
single-board computers. It cycles through an M3U playlist of stream URLs,
drives playback through cvlc, announces stations via espeak, and remembers
the last played station across restarts.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: ~/.config/radioclick/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initConfig() error {
	path := cfgFile
	if path == "" {
		path = config.FindConfigFile()
	}

	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	store = config.NewStore(path, logger)

	var err error
	cfg, err = store.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidConfig, err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	logger = logger.Level(level)
	store = config.NewStore(path, logger)

	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errors.Format(err))
		os.Exit(1)
	}
}

// JSONOutput returns true if JSON output is requested.
func JSONOutput() bool {
	return jsonOut
}

// Verbose returns true if verbose output is requested.
func Verbose() bool {
	return verbose
}
