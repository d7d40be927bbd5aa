package setup

import (
	"github.com/spacerover/spacerover-go/internal/application/common"
	gameApp "github.com/spacerover/spacerover-go/internal/application/game"
	"github.com/spacerover/spacerover-go/internal/domain/game"
	"github.com/spacerover/spacerover-go/internal/domain/shared"
)

// HandlerRegistry holds the dependencies handlers are built from
type HandlerRegistry struct {
	gameRepo game.GameRepository
	clock    shared.Clock
	settings gameApp.Settings
}

// NewHandlerRegistry creates a new handler registry with required dependencies
func NewHandlerRegistry(gameRepo game.GameRepository, clock shared.Clock, settings gameApp.Settings) *HandlerRegistry {
	// Default to real clock if not provided
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &HandlerRegistry{
		gameRepo: gameRepo,
		clock:    clock,
		settings: settings,
	}
}

// RegisterGameHandlers registers the game lifecycle commands and queries:
//   - CreateGameCommand → CreateGameHandler
//   - LoadGameQuery → LoadGameHandler
//   - ListGamesQuery → ListGamesHandler
//   - SaveGameCommand → SaveGameHandler
//   - DeleteGameCommand → DeleteGameHandler
func (r *HandlerRegistry) RegisterGameHandlers(m common.Mediator) error {
	if err := common.RegisterHandler[*gameApp.CreateGameCommand](m,
		gameApp.NewCreateGameHandler(r.gameRepo, r.clock, r.settings)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*gameApp.LoadGameQuery](m, gameApp.NewLoadGameHandler(r.gameRepo)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*gameApp.ListGamesQuery](m, gameApp.NewListGamesHandler(r.gameRepo)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*gameApp.SaveGameCommand](m, gameApp.NewSaveGameHandler(r.gameRepo)); err != nil {
		return err
	}
	if err := common.RegisterHandler[*gameApp.DeleteGameCommand](m, gameApp.NewDeleteGameHandler(r.gameRepo)); err != nil {
		return err
	}
	return nil
}

// NewMediator builds a mediator with every handler registered and the
// given middlewares installed, outermost first
func (r *HandlerRegistry) NewMediator(middlewares ...common.Middleware) (common.Mediator, error) {
	m := common.NewMediator()
	for _, mw := range middlewares {
		m.RegisterMiddleware(mw)
	}
	if err := r.RegisterGameHandlers(m); err != nil {
		return nil, err
	}
	return m, nil
}
