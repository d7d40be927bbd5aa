package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/spacerover/spacerover-go/internal/domain/board"
	"github.com/spacerover/spacerover-go/internal/domain/shared"
	"github.com/spacerover/spacerover-go/internal/infrastructure/config"
)

// NewBoardCommand creates the board command
func NewBoardCommand() *cobra.Command {
	var (
		preview      bool
		scenarioFlag string
		seed         uint64
	)

	cmd := &cobra.Command{
		Use:   "board [game-id]",
		Short: "Show the bodies on a game board",
		Long: `List the planets, moons and asteroid fields of a saved game's board and
mark the race goals.

With --preview a board is generated from the configuration without
creating a game, which is handy for checking a custom system file.

Examples:
  rover board
  rover board 3f2a
  rover board --preview --scenario random --seed 7`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if preview {
				cfg, err := config.LoadConfig(configPath)
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				if scenarioFlag == "" {
					scenarioFlag = cfg.Game.Scenario
				}
				scenario, err := parseScenario(scenarioFlag)
				if err != nil {
					return err
				}
				if seed == 0 {
					seed = cfg.Game.Seed
				}
				if seed == 0 {
					seed = uint64(time.Now().UnixNano())
				}
				b, err := previewBoard(cfg.Game, scenario, seed)
				if err != nil {
					return err
				}
				fmt.Printf("%s board preview (seed %d)\n\n", scenario, seed)
				printBoard(b)
				return nil
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			var arg string
			if len(args) > 0 {
				arg = args[0]
			}
			g, err := loadGame(a.context(), a, arg)
			if err != nil {
				return err
			}
			fmt.Printf("Game %s (%s, seed %d)\n\n", g.ID().Short(), g.Scenario(), g.Seed())
			printBoard(g.Board())
			return nil
		},
	}

	cmd.Flags().BoolVar(&preview, "preview", false, "Generate a board from config instead of loading a game")
	cmd.Flags().StringVarP(&scenarioFlag, "scenario", "s", "", "Scenario for --preview: classic or random")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for --preview")

	return cmd
}

func previewBoard(cfg config.GameConfig, scenario board.Scenario, seed uint64) (*board.Board, error) {
	settings, err := settingsFrom(cfg)
	if err != nil {
		return nil, err
	}
	var system board.SystemDescription = board.NewSolDescription()
	if settings.System != nil {
		system = settings.System
	}
	b, err := board.NewFactory(
		settings.BoardWidth,
		settings.BoardHeight,
		system,
		shared.NewRandom(seed),
		settings.PlacementRetries,
	).Build(scenario)
	if err != nil {
		return nil, fmt.Errorf("failed to build board: %w", err)
	}
	return b, nil
}

func printBoard(b *board.Board) {
	goals := make(map[*board.Body]bool)
	for _, body := range b.RaceGoals() {
		goals[body] = true
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tKIND\tPOSITION\tRADIUS\tGRAVITY\tLANDABLE\tORBITS\tGOAL")
	for _, body := range b.Planets() {
		goal := ""
		if goals[body] {
			goal = "✓"
		}
		if body == b.Home() {
			goal += " home"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%s\t%t\t%s\t%s\n",
			body.Name(),
			body.Kind(),
			body.Position(),
			body.Radius(),
			body.Gravity(),
			body.IsLandable(),
			body.Orbiting(),
			goal,
		)
	}
	w.Flush()

	fmt.Printf("\nBoard: %dx%d, %d asteroid field(s), %d race goal(s)\n",
		b.Width(), b.Height(), len(b.Asteroids()), len(b.RaceGoals()))
}
