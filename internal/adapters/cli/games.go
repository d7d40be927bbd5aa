package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	gameApp "github.com/spacerover/spacerover-go/internal/application/game"
)

// NewGamesCommand creates the games command with subcommands
func NewGamesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Manage saved games",
		Long: `List and delete saved games.

Game ids may be shortened to any unique prefix.

Examples:
  rover games list
  rover games list --limit 5
  rover games delete 3f2a9c1e`,
	}

	cmd.AddCommand(newGamesListCommand())
	cmd.AddCommand(newGamesDeleteCommand())

	return cmd
}

// newGamesListCommand creates the games list subcommand
func newGamesListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved games, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()

			response, err := a.mediator.Send(a.context(), &gameApp.ListGamesQuery{Limit: limit})
			if err != nil {
				return fmt.Errorf("failed to list games: %w", err)
			}
			games := response.(*gameApp.ListGamesResponse).Games
			if len(games) == 0 {
				fmt.Println("No saved games. Start one with \"rover new\".")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSCENARIO\tSTATUS\tPLAYERS\tUPDATED")
			fmt.Fprintln(w, "--\t--------\t------\t-------\t-------")
			for _, g := range games {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					g.ID.Short(),
					g.Scenario,
					g.Summary,
					strings.Join(g.Players, ", "),
					g.Updated,
				)
			}
			w.Flush()

			fmt.Printf("\nTotal: %d game(s)\n", len(games))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many games")

	return cmd
}

// newGamesDeleteCommand creates the games delete subcommand
func newGamesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game-id>",
		Short: "Delete a saved game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.close()
			ctx := a.context()

			id, err := resolveGameID(ctx, a, args[0])
			if err != nil {
				return err
			}
			if _, err := a.mediator.Send(ctx, &gameApp.DeleteGameCommand{GameID: id}); err != nil {
				return fmt.Errorf("failed to delete game: %w", err)
			}
			fmt.Printf("✓ Deleted game %s\n", id.Short())
			return nil
		},
	}
}

// NewStatusCommand creates the status command
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status [game-id]",
		Short: "Show where every racer stands",
		Long: `Show a saved game's progress: each racer's ship, fuel, position and the
race goals they still have to fly past.

Without an id the last game played is shown.

Examples:
  rover status
  rover status 3f2a`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			fmt.Printf("Game %s (%s, seed %d)\n", g.ID().Short(), g.Scenario(), g.Seed())
			fmt.Printf("%s\n\n", g.Summary())

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RACER\tCOLOR\tSHIP\tSTATE\tFUEL\tPOSITION\tVELOCITY\tSTATUS")
			for _, p := range g.Players() {
				ship := p.Ship()
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d/%d\t%s\t%s\t%s\n",
					p.Name(),
					p.Color(),
					ship.Name(),
					ship.State(),
					ship.Fuel().Current,
					ship.Fuel().Capacity,
					ship.Position(),
					ship.Velocity(),
					g.PlayerStatus(p),
				)
			}
			w.Flush()
			return nil
		},
	}
}
