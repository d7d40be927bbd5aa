package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	gameApp "github.com/spacerover/spacerover-go/internal/application/game"
	"github.com/spacerover/spacerover-go/internal/domain/player"
	"github.com/spacerover/spacerover-go/internal/infrastructure/config"
)

// NewNewGameCommand creates the new command
func NewNewGameCommand() *cobra.Command {
	var (
		scenarioFlag string
		seed         uint64
	)

	cmd := &cobra.Command{
		Use:   "new [racer[:color]...]",
		Short: "Start a new race",
		Long: `Create a new game and land every racer on the home world.

Racers are given as name or name:color. Without any, the default racers
from "rover config set-racers" are used. Colors: blue, red, green,
purple, orange, yellow.

The classic scenario uses the fixed solar system layout; random places
every planet at a random bearing on its orbit.

Examples:
  rover new Ada
  rover new Ada:green Bob Cy --scenario random
  rover new Ada Bob --seed 1969`,
		Args: cobra.MaximumNArgs(player.MaxPlayers),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()
			ctx := a.context()

			if len(args) == 0 {
				if handler, err := config.NewUserConfigHandler(); err == nil {
					if userCfg, err := handler.Load(); err == nil {
						args = userCfg.DefaultRacers
					}
				}
			}
			if len(args) == 0 {
				return fmt.Errorf("no racers given and no default racers configured")
			}

			if scenarioFlag == "" {
				scenarioFlag = a.cfg.Game.Scenario
			}
			scenario, err := parseScenario(scenarioFlag)
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = a.cfg.Game.Seed
			}

			racers := make([]gameApp.Racer, 0, len(args))
			for _, arg := range args {
				racers = append(racers, parseRacer(arg))
			}

			response, err := a.mediator.Send(ctx, &gameApp.CreateGameCommand{
				Racers:   racers,
				Scenario: scenario,
				Seed:     seed,
			})
			if err != nil {
				return fmt.Errorf("failed to create game: %w", err)
			}
			g := response.(*gameApp.CreateGameResponse).Game
			rememberGame(g.ID())

			fmt.Printf("✓ Created %s race %s (seed %d)\n", g.Scenario(), g.ID().Short(), g.Seed())
			for _, p := range g.Players() {
				fmt.Printf("  %-10s %-7s %s\n", p.Name(), p.Color(), p.Ship().Name())
			}
			fmt.Println("\nRun \"rover play\" to start.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&scenarioFlag, "scenario", "s", "", "Scenario: classic or random (default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for board generation and dice (default from config or clock)")

	return cmd
}
