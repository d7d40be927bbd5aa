package game

import (
	"context"
	"fmt"

	"github.com/spacerover/spacerover-go/internal/application/common"
	"github.com/spacerover/spacerover-go/internal/domain/game"
	"github.com/spacerover/spacerover-go/internal/domain/shared"
)

// LoadGameQuery fetches a saved game by ID. An empty GameID with
// Latest set loads the most recently played game instead.
type LoadGameQuery struct {
	GameID shared.GameID
	Latest bool
}

// LoadGameResponse carries the loaded game
type LoadGameResponse struct {
	Game *game.Game
}

// LoadGameHandler handles the LoadGame query
type LoadGameHandler struct {
	gameRepo game.GameRepository
}

// NewLoadGameHandler creates a new LoadGameHandler
func NewLoadGameHandler(gameRepo game.GameRepository) *LoadGameHandler {
	return &LoadGameHandler{gameRepo: gameRepo}
}

// Handle executes the LoadGame query
func (h *LoadGameHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*LoadGameQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *LoadGameQuery")
	}

	if query.GameID.IsZero() {
		if !query.Latest {
			return nil, shared.NewValidationError("game_id", "is required")
		}
		games, err := h.gameRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list games: %w", err)
		}
		if len(games) == 0 {
			return nil, shared.NewNotFoundError("game", "latest")
		}
		return &LoadGameResponse{Game: games[0]}, nil
	}

	g, err := h.gameRepo.FindByID(ctx, query.GameID)
	if err != nil {
		return nil, err
	}
	return &LoadGameResponse{Game: g}, nil
}

// ListGamesQuery lists saved games, most recently played first
type ListGamesQuery struct {
	// Limit caps the result; zero means no limit
	Limit int
}

// GameSummary is one row of the saved games list
type GameSummary struct {
	ID       shared.GameID
	Scenario string
	Status   string
	Summary  string
	Players  []string
	Updated  string
}

// ListGamesResponse carries the saved games
type ListGamesResponse struct {
	Games []GameSummary
}

// ListGamesHandler handles the ListGames query
type ListGamesHandler struct {
	gameRepo game.GameRepository
}

// NewListGamesHandler creates a new ListGamesHandler
func NewListGamesHandler(gameRepo game.GameRepository) *ListGamesHandler {
	return &ListGamesHandler{gameRepo: gameRepo}
}

// Handle executes the ListGames query
func (h *ListGamesHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*ListGamesQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ListGamesQuery")
	}

	games, err := h.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	if query.Limit > 0 && len(games) > query.Limit {
		games = games[:query.Limit]
	}

	out := make([]GameSummary, 0, len(games))
	for _, g := range games {
		names := make([]string, 0, len(g.Players()))
		for _, p := range g.Players() {
			names = append(names, p.Name())
		}
		out = append(out, GameSummary{
			ID:       g.ID(),
			Scenario: g.Scenario().String(),
			Status:   g.Status().String(),
			Summary:  g.Summary(),
			Players:  names,
			Updated:  g.Lifecycle().UpdatedAt().Format("2006-01-02 15:04"),
		})
	}
	return &ListGamesResponse{Games: out}, nil
}
