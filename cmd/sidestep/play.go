package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sidestep/internal/core"
	"github.com/vovakirdan/sidestep/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A     - Move left
  Right/D    - Move right
  Space      - Start / restart
  ?          - Toggle help
  Ctrl+S     - Save a screenshot to ~/.sidestep/screenshots
  Esc/Q      - Quit

Terminals do not report key releases, so a movement key stays held for
input.hold_window_ms after its last press or auto-repeat.

Difficulty options:
  easy   - Slower block, 5 lives
  normal - Default settings
  hard   - Faster block and player, 2 lives

Examples:
  sidestep play
  sidestep play --difficulty easy
  sidestep play --seed 42 --log-file ./sidestep.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write game logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) {
	exitOnError("running game", playTerminal())
}

// playTerminal runs the terminal game and closes the log file before returning.
func playTerminal() error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closeLog, err := newPlayLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close, logs are already flushed

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	if err := tui.Run(gameCfg, cfg, logger); err != nil {
		logger.Error("game exited", "error", err)
		return err
	}
	return nil
}

// newPlayLogger returns the terminal game's logger and a function closing its
// output. The terminal belongs to Bubble Tea, so logs go to path or nowhere.
func newPlayLogger(path string) (*log.Logger, func() error, error) {
	var out io.Writer = io.Discard
	closeLog := func() error { return nil }

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		out = f
		closeLog = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "sidestep",
	})
	applyLogLevel(logger)
	return logger, closeLog, nil
}
