package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sidestep/internal/platform/window"
)

var flagAssets string

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window sized to the configured screen and play there.

Images are read from --assets: player.png and obstacle.png. A missing image
is replaced by a red triangle (player) or a red square (obstacle).

Controls:
  Left/A     - Move left (while held)
  Right/D    - Move right (while held)
  Space      - Start / restart
  Esc        - Quit (closing the window works too)

Examples:
  sidestep window
  sidestep window --assets ./assets --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory containing player.png and obstacle.png")
}

func runWindow(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	exitOnError("loading config", err)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sidestep",
	})
	applyLogLevel(logger)

	err = window.Run(gameCfg, window.Options{
		Assets:   flagAssets,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Logger:   logger,
	})
	exitOnError("running game", err)
}
