package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/theaetet/radioclick/internal/playlist"
)

var stationsCmd = &cobra.Command{
	Use:   "stations",
	Short: "List the resolved stations",
	Long: `Resolve the configured playlist source (with the same fallback rules
the controller uses) and list the stations. The station that would play on
startup is marked.`,
	RunE: runStations,
}

func init() {
	rootCmd.AddCommand(stationsCmd)
}

func runStations(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	resolver := playlist.NewResolver(playlist.NewHTTPFetcher(), nil, logger)
	source := playlist.ParseSource(cfg.PlaylistPath, store.Dir())
	stations, err := resolver.Resolve(ctx, source)
	if err != nil {
		return err
	}

	current := cfg.LastIndex % len(stations)

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"source":   source.Location(),
			"kind":     source.Kind.String(),
			"current":  current,
			"stations": stations,
		})
	}

	fmt.Printf("Playlist: %s (%s)\n", source.Location(), source.Kind)
	if source.Kind == playlist.SourceLocal {
		if info, err := os.Stat(source.Path); err == nil {
			fmt.Println(styleMuted.Render(fmt.Sprintf("Modified %s", humanize.Time(info.ModTime()))))
		}
	}
	fmt.Println()

	for i, url := range stations {
		marker := "  "
		line := styleURL.Render(url)
		if i == current {
			marker = stylePlaying.Render("▶ ")
			line = stylePlaying.Render(url)
		}
		fmt.Printf("%s%s %s\n", marker, styleIndex.Render(fmt.Sprintf("%3d", i+1)), line)
	}

	fmt.Println()
	fmt.Println(styleMuted.Render(fmt.Sprintf("%d stations", len(stations))))
	return nil
}
