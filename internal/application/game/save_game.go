package game

import (
	"context"
	"fmt"

	"github.com/spacerover/spacerover-go/internal/application/common"
	"github.com/spacerover/spacerover-go/internal/domain/game"
	"github.com/spacerover/spacerover-go/internal/domain/shared"
)

// SaveGameCommand persists a game between turns
type SaveGameCommand struct {
	Game *game.Game
}

// SaveGameResponse is returned on a successful save
type SaveGameResponse struct {
	GameID shared.GameID
}

// SaveGameHandler handles the SaveGame command
type SaveGameHandler struct {
	gameRepo game.GameRepository
}

// NewSaveGameHandler creates a new SaveGameHandler
func NewSaveGameHandler(gameRepo game.GameRepository) *SaveGameHandler {
	return &SaveGameHandler{gameRepo: gameRepo}
}

// Handle executes the SaveGame command
func (h *SaveGameHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SaveGameCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SaveGameCommand")
	}
	if cmd.Game == nil {
		return nil, shared.NewValidationError("game", "cannot be nil")
	}

	if err := h.gameRepo.Save(ctx, cmd.Game); err != nil {
		return nil, fmt.Errorf("failed to save game %s: %w", cmd.Game.ID().Short(), err)
	}

	common.LoggerFromContext(ctx).Debug().
		Str("game_id", cmd.Game.ID().Short()).
		Int("turn", cmd.Game.TurnCount()).
		Msg("game saved")

	return &SaveGameResponse{GameID: cmd.Game.ID()}, nil
}

// DeleteGameCommand removes a saved game
type DeleteGameCommand struct {
	GameID shared.GameID
}

// DeleteGameResponse is returned on a successful delete
type DeleteGameResponse struct{}

// DeleteGameHandler handles the DeleteGame command
type DeleteGameHandler struct {
	gameRepo game.GameRepository
}

// NewDeleteGameHandler creates a new DeleteGameHandler
func NewDeleteGameHandler(gameRepo game.GameRepository) *DeleteGameHandler {
	return &DeleteGameHandler{gameRepo: gameRepo}
}

// Handle executes the DeleteGame command
func (h *DeleteGameHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*DeleteGameCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *DeleteGameCommand")
	}
	if err := h.gameRepo.Delete(ctx, cmd.GameID); err != nil {
		return nil, err
	}
	return &DeleteGameResponse{}, nil
}
