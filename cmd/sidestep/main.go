// sidestep is an arcade avoidance game: slide left and right to dodge the
// falling block, and survive as long as your lives hold out.
//
// Usage:
//
//	sidestep play            - Play in the terminal
//	sidestep window          - Play in a desktop window
//	sidestep serve           - Start SSH server for remote play
//	sidestep config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - Difficulty preset: easy, normal, hard
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sidestep/internal/config"
)

// envLogLevel selects the log level, e.g. "debug" or "warn".
const envLogLevel = "SIDESTEP_LOG_LEVEL"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

func main() {
	// .env is optional; it only seeds SIDESTEP_* variables for this checkout.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sidestep",
	Short: "Sidestep - dodge the falling block",
	Long: `Sidestep is a single-screen avoidance game. Move left and right to
dodge the falling block. Every block that leaves the screen scores a point,
every hit costs a life.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  sidestep play
  sidestep play --difficulty hard
  sidestep window --assets ./assets
  sidestep serve --ssh :2222
  sidestep config --config ./my-sidestep.yaml`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the game configuration from --config, the
// environment and the embedded defaults, then applies --difficulty.
func loadGameConfig() (config.SidestepConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SidestepConfig{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.SidestepConfig{}, err
	}

	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.SidestepConfig{}, err
	}
	return cfg, nil
}

// applyLogLevel sets the logger level from SIDESTEP_LOG_LEVEL when present.
func applyLogLevel(logger *log.Logger) {
	value := os.Getenv(envLogLevel)
	if value == "" {
		return
	}
	level, err := log.ParseLevel(value)
	if err != nil {
		logger.Warn("ignoring log level", "env", envLogLevel, "value", value, "error", err)
		return
	}
	logger.SetLevel(level)
}

// exitOnError prints err and terminates the process.
func exitOnError(msg string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", msg, err)
	os.Exit(1)
}
