package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "rover",
		Short: "Space Rover - race rockets around the solar system",
		Long: `Space Rover is a turn-based racing game on a hex map of the solar system.
Each racer has to fly through the gravity well of every full gravity body
and can land on the home world to refuel. Momentum carries over between
turns, gravity bends your course and asteroid fields can disable you.

Games are saved after every turn.

Examples:
  rover new Ada Bob:red --scenario random
  rover play
  rover games list
  rover status
  rover board --scenario classic
  rover catalog export sol.yaml`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml, ./configs/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")

	rootCmd.AddCommand(NewNewGameCommand())
	rootCmd.AddCommand(NewPlayCommand())
	rootCmd.AddCommand(NewGamesCommand())
	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewBoardCommand())
	rootCmd.AddCommand(NewCatalogCommand())
	rootCmd.AddCommand(NewConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
