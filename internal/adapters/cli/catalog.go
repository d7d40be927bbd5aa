package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spacerover/spacerover-go/internal/adapters/catalog"
	"github.com/spacerover/spacerover-go/internal/domain/board"
	"github.com/spacerover/spacerover-go/internal/infrastructure/config"
)

// NewCatalogCommand creates the catalog command with subcommands
func NewCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Export and check solar system catalogs",
		Long: `A catalog describes the bodies of a solar system: their sizes, gravity,
orbits and classic positions, plus the asteroid belt. Point game.system_file
at a catalog to race around a different system.

Examples:
  rover catalog export sol.yaml
  rover catalog check my-system.yaml`,
	}

	cmd.AddCommand(newCatalogExportCommand())
	cmd.AddCommand(newCatalogCheckCommand())

	return cmd
}

// newCatalogExportCommand creates the catalog export subcommand
func newCatalogExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the configured system as YAML",
		Long: `Write the catalog new games use, the built-in Sol system unless
game.system_file is set, to a file or to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfigOrDefault(configPath)

			system := board.NewSolDescription()
			if cfg.Game.SystemFile != "" {
				loaded, err := catalog.LoadSystemFile(cfg.Game.SystemFile)
				if err != nil {
					return err
				}
				system = loaded
			}

			data, err := catalog.Marshal(system)
			if err != nil {
				return fmt.Errorf("failed to encode catalog: %w", err)
			}
			if len(args) == 0 {
				_, err := os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(args[0], data, 0644); err != nil {
				return fmt.Errorf("failed to write catalog: %w", err)
			}
			fmt.Printf("✓ Wrote %s catalog to %s\n", system.Name(), args[0])
			return nil
		},
	}
}

// newCatalogCheckCommand creates the catalog check subcommand
func newCatalogCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a catalog file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			system, err := catalog.LoadSystemFile(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("✓ %s: %d bodies, %d asteroid hexes, home %s\n",
				system.Name(), len(system.Entries), len(system.Asteroids), system.Home)
			return nil
		},
	}
}
