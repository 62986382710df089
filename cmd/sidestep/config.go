package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sidestep/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the game configuration as YAML after resolving --config,
$SIDESTEP_CONFIG, ~/.sidestep/sidestep.yaml, ./configs/sidestep.yaml and the
built-in defaults, and applying --difficulty.

The output is a complete config file and can be saved and edited:
  sidestep config > ~/.sidestep/sidestep.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	exitOnError("loading config", err)

	data, err := config.Marshal(cfg)
	exitOnError("encoding config", err)

	_, err = os.Stdout.Write(data)
	exitOnError("writing config", err)
}
