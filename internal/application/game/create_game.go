package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/spacerover/spacerover-go/internal/application/common"
	"github.com/spacerover/spacerover-go/internal/domain/board"
	"github.com/spacerover/spacerover-go/internal/domain/game"
	"github.com/spacerover/spacerover-go/internal/domain/navigation"
	"github.com/spacerover/spacerover-go/internal/domain/player"
	"github.com/spacerover/spacerover-go/internal/domain/shared"
)

// Racer is one sign-up for a new game. ShipName defaults to "<Name>Rover"
// and an empty Color takes the next free livery.
type Racer struct {
	Name     string
	ShipName string
	Color    string
}

// Settings are the board and ship parameters new games are built with
type Settings struct {
	BoardWidth       int
	BoardHeight      int
	FuelCapacity     int
	PlacementRetries int
	// System replaces the built-in Sol catalog when set
	System *board.Catalog
}

// DefaultSettings returns the standard 100x100 Sol race
func DefaultSettings() Settings {
	return Settings{
		BoardWidth:       board.DefaultWidth,
		BoardHeight:      board.DefaultHeight,
		FuelCapacity:     shared.DefaultFuelCapacity,
		PlacementRetries: board.DefaultPlacementRetries,
	}
}

// CreateGameCommand builds a board, lands every racer's ship on the home
// world and saves the new game
type CreateGameCommand struct {
	Racers   []Racer
	Scenario board.Scenario
	// Seed drives board generation and hazard dice. Zero picks one from
	// the clock.
	Seed uint64
}

// CreateGameResponse carries the created game
type CreateGameResponse struct {
	Game *game.Game
}

// CreateGameHandler handles the CreateGame command
type CreateGameHandler struct {
	gameRepo game.GameRepository
	clock    shared.Clock
	settings Settings
}

// NewCreateGameHandler creates a new CreateGameHandler
func NewCreateGameHandler(gameRepo game.GameRepository, clock shared.Clock, settings Settings) *CreateGameHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &CreateGameHandler{
		gameRepo: gameRepo,
		clock:    clock,
		settings: settings,
	}
}

// Handle executes the CreateGame command
func (h *CreateGameHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*CreateGameCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *CreateGameCommand")
	}
	logger := common.LoggerFromContext(ctx)

	entries, err := rosterFor(cmd.Racers)
	if err != nil {
		return nil, err
	}

	seed := cmd.Seed
	if seed == 0 {
		seed = uint64(h.clock.Now().UnixNano())
	}

	var system board.SystemDescription = board.NewSolDescription()
	if h.settings.System != nil {
		system = h.settings.System
	}

	b, err := board.NewFactory(
		h.settings.BoardWidth,
		h.settings.BoardHeight,
		system,
		shared.NewRandom(seed),
		h.settings.PlacementRetries,
	).Build(cmd.Scenario)
	if err != nil {
		return nil, fmt.Errorf("failed to build board: %w", err)
	}

	players := make([]*player.Player, 0, len(entries))
	for _, e := range entries {
		ship, err := navigation.NewShip(e.ShipName, e.Name, b.Home(), h.settings.FuelCapacity, b.RaceGoals())
		if err != nil {
			return nil, err
		}
		p, err := player.NewPlayer(e.Name, e.Color, ship)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	g, err := game.NewGame(shared.NewGameID(), cmd.Scenario, b, players, seed, h.clock)
	if err != nil {
		return nil, err
	}

	if err := h.gameRepo.Save(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	logger.Info().
		Str("game_id", g.ID().Short()).
		Str("scenario", cmd.Scenario.String()).
		Str("system", system.Name()).
		Uint64("seed", seed).
		Int("racers", len(players)).
		Msg("game created")

	return &CreateGameResponse{Game: g}, nil
}

func rosterFor(racers []Racer) ([]player.Entry, error) {
	entries := make([]player.Entry, len(racers))
	explicit := make([]bool, len(racers))
	for i, r := range racers {
		name := strings.TrimSpace(r.Name)
		entries[i] = player.Entry{Name: name, ShipName: strings.TrimSpace(r.ShipName)}
		if entries[i].ShipName == "" && name != "" {
			entries[i].ShipName = name + "Rover"
		}
		if r.Color != "" {
			c, err := player.ParseColor(r.Color)
			if err != nil {
				return nil, shared.NewValidationError("color", err.Error())
			}
			entries[i].Color = c
			explicit[i] = true
		}
	}
	entries = player.AssignColors(entries, explicit)
	if err := player.ValidateRoster(entries); err != nil {
		return nil, err
	}
	return entries, nil
}
