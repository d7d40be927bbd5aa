package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spacerover/spacerover-go/internal/domain/player"
	"github.com/spacerover/spacerover-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration settings",
		Long: `Manage Space Rover configuration settings.

Configuration is loaded from multiple sources with priority:
1. Environment variables (ROVER_* prefix)
2. Config file (config.yaml)
3. Default values

User preferences (default racers, last game) are stored in ~/.spacerover/config.json

Examples:
  rover config show
  rover config set-racers Ada Bob:red
  rover config clear`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetRacersCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

// newConfigShowCommand creates the config show subcommand
func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Printf("Warning: Failed to load config: %v\n", err)
				fmt.Println("Using default configuration.")
				cfg = config.LoadConfigOrDefault("")
			}

			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			userCfg, err := userConfigHandler.Load()
			if err != nil {
				fmt.Printf("Warning: Failed to load user config: %v\n\n", err)
				userCfg = &config.UserConfig{}
			}

			fmt.Println("Space Rover Configuration")
			fmt.Println("=========================")

			fmt.Println("User Preferences:")
			fmt.Printf("  Config file:      %s\n", userConfigHandler.GetConfigPath())
			if len(userCfg.DefaultRacers) > 0 {
				fmt.Printf("  Default Racers:   %s\n", strings.Join(userCfg.DefaultRacers, ", "))
			} else {
				fmt.Printf("  Default Racers:   (not set)\n")
			}
			if userCfg.LastGameID != "" {
				fmt.Printf("  Last Game:        %s\n", userCfg.LastGameID)
			}

			fmt.Println("\nDatabase:")
			fmt.Printf("  Type:             %s\n", cfg.Database.Type)
			if cfg.Database.Type == "sqlite" {
				fmt.Printf("  Path:             %s\n", cfg.Database.Path)
			} else {
				fmt.Printf("  URL:              %s\n", maskPassword(cfg.Database.URL))
				fmt.Printf("  Max Connections:  %d\n", cfg.Database.MaxConns)
			}

			fmt.Println("\nGame:")
			fmt.Printf("  Board:            %dx%d\n", cfg.Game.BoardWidth, cfg.Game.BoardHeight)
			fmt.Printf("  Scenario:         %s\n", cfg.Game.Scenario)
			fmt.Printf("  Fuel Capacity:    %d (burn %d)\n", cfg.Game.FuelCapacity, cfg.Game.Burn)
			fmt.Printf("  Tick Rate:        %g/s\n", cfg.Game.TickRate)
			if cfg.Game.Seed != 0 {
				fmt.Printf("  Seed:             %d\n", cfg.Game.Seed)
			}
			if cfg.Game.SystemFile != "" {
				fmt.Printf("  System File:      %s\n", cfg.Game.SystemFile)
			}

			fmt.Println("\nMetrics:")
			if cfg.Metrics.Enabled {
				fmt.Printf("  Endpoint:         http://%s%s\n", cfg.Metrics.Listen, cfg.Metrics.Path)
			} else {
				fmt.Printf("  Endpoint:         (disabled)\n")
			}

			fmt.Println("\nLogging:")
			fmt.Printf("  Level:            %s\n", cfg.Logging.Level)
			fmt.Printf("  Format:           %s\n", cfg.Logging.Format)
			fmt.Printf("  Output:           %s\n", cfg.Logging.Output)

			return nil
		},
	}
}

// newConfigSetRacersCommand creates the config set-racers subcommand
func newConfigSetRacersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-racers <name[:color]>...",
		Short: "Set the default racers for new games",
		Long: `Set the racers "rover new" uses when none are given.

Colors are optional; racers without one get the first free color.

Examples:
  rover config set-racers Ada Bob
  rover config set-racers Ada:green Bob:red Cy`,
		Args: cobra.RangeArgs(1, player.MaxPlayers),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				racer := parseRacer(arg)
				if racer.Name == "" {
					return fmt.Errorf("racer %q has no name", arg)
				}
				if racer.Color != "" {
					if _, err := player.ParseColor(racer.Color); err != nil {
						return err
					}
				}
			}

			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			if err := userConfigHandler.SetDefaultRacers(args); err != nil {
				return fmt.Errorf("failed to set default racers: %w", err)
			}

			fmt.Printf("✓ Default racers set: %s\n", strings.Join(args, ", "))
			return nil
		},
	}
}

// newConfigClearCommand creates the config clear subcommand
func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear user preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			userConfigHandler, err := config.NewUserConfigHandler()
			if err != nil {
				return fmt.Errorf("failed to create user config handler: %w", err)
			}
			if err := userConfigHandler.Clear(); err != nil {
				return fmt.Errorf("failed to clear user config: %w", err)
			}
			fmt.Println("✓ User preferences cleared")
			return nil
		},
	}
}

// maskPassword hides the password in a connection URL
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}
