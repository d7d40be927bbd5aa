package game

import (
	"context"

	"github.com/spacerover/spacerover-go/internal/domain/shared"
)

// GameRepository stores whole games. A saved game restores exactly: the
// board as built, every ship's state and the turn counter.
type GameRepository interface {
	Save(ctx context.Context, g *Game) error
	FindByID(ctx context.Context, id shared.GameID) (*Game, error)
	// List returns every saved game, most recently played first
	List(ctx context.Context) ([]*Game, error)
	Delete(ctx context.Context, id shared.GameID) error
}
