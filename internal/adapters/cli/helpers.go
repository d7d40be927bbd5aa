package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/spacerover/spacerover-go/internal/adapters/catalog"
	"github.com/spacerover/spacerover-go/internal/adapters/metrics"
	"github.com/spacerover/spacerover-go/internal/adapters/persistence"
	"github.com/spacerover/spacerover-go/internal/application/common"
	gameApp "github.com/spacerover/spacerover-go/internal/application/game"
	"github.com/spacerover/spacerover-go/internal/application/setup"
	"github.com/spacerover/spacerover-go/internal/domain/board"
	"github.com/spacerover/spacerover-go/internal/domain/game"
	"github.com/spacerover/spacerover-go/internal/domain/shared"
	"github.com/spacerover/spacerover-go/internal/infrastructure/config"
	"github.com/spacerover/spacerover-go/internal/infrastructure/database"
	"github.com/spacerover/spacerover-go/internal/infrastructure/logging"
)

// app is everything a command needs once config is loaded and the
// database is open
type app struct {
	cfg      *config.Config
	logger   zerolog.Logger
	db       *gorm.DB
	repo     game.GameRepository
	mediator common.Mediator
	metrics  *metrics.GameMetrics
	closers  []io.Closer
}

// openApp loads config, builds the logger, connects to the database and
// registers the game handlers. Call close when done.
func openApp() (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, logCloser, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	a := &app{cfg: cfg, logger: logger, closers: []io.Closer{logCloser}}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		_ = database.Close(db)
		a.close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	a.db = db
	a.repo = persistence.NewGormGameRepository(db, nil)

	settings, err := settingsFrom(cfg.Game)
	if err != nil {
		a.close()
		return nil, err
	}

	middlewares := []common.Middleware{common.LoggingMiddleware()}
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		a.metrics = metrics.NewGameMetrics()
		if err := a.metrics.Register(); err != nil {
			a.close()
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		middlewares = append(middlewares, metrics.PrometheusMiddleware(a.metrics.CommandMetricsCollector))
	}

	m, err := setup.NewHandlerRegistry(a.repo, nil, settings).NewMediator(middlewares...)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to register handlers: %w", err)
	}
	a.mediator = m
	return a, nil
}

// context returns a background context carrying the app logger
func (a *app) context() context.Context {
	return common.WithLogger(context.Background(), a.logger)
}

func (a *app) close() {
	if a.db != nil {
		_ = database.Close(a.db)
	}
	for _, c := range a.closers {
		_ = c.Close()
	}
}

// settingsFrom turns the game config section into board settings, loading
// a custom system catalog if one is configured
func settingsFrom(cfg config.GameConfig) (gameApp.Settings, error) {
	settings := gameApp.Settings{
		BoardWidth:       cfg.BoardWidth,
		BoardHeight:      cfg.BoardHeight,
		FuelCapacity:     cfg.FuelCapacity,
		PlacementRetries: cfg.PlacementRetries,
	}
	if cfg.SystemFile != "" {
		system, err := catalog.LoadSystemFile(cfg.SystemFile)
		if err != nil {
			return settings, fmt.Errorf("failed to load system %s: %w", cfg.SystemFile, err)
		}
		settings.System = system
	}
	return settings, nil
}

// resolveGameID finds the game a command refers to. An empty argument
// means the last game played from this machine, or else the most recent
// save. Any unambiguous prefix of an id is accepted.
func resolveGameID(ctx context.Context, a *app, arg string) (shared.GameID, error) {
	if arg == "" {
		if handler, err := config.NewUserConfigHandler(); err == nil {
			if userCfg, err := handler.Load(); err == nil && userCfg.LastGameID != "" {
				arg = userCfg.LastGameID
			}
		}
	}
	if arg == "" {
		response, err := a.mediator.Send(ctx, &gameApp.LoadGameQuery{Latest: true})
		if err != nil {
			return shared.GameID{}, err
		}
		return response.(*gameApp.LoadGameResponse).Game.ID(), nil
	}

	if id, err := shared.ParseGameID(arg); err == nil {
		return id, nil
	}

	response, err := a.mediator.Send(ctx, &gameApp.ListGamesQuery{})
	if err != nil {
		return shared.GameID{}, err
	}
	var matches []shared.GameID
	for _, g := range response.(*gameApp.ListGamesResponse).Games {
		if strings.HasPrefix(g.ID.String(), strings.ToLower(arg)) {
			matches = append(matches, g.ID)
		}
	}
	switch len(matches) {
	case 0:
		return shared.GameID{}, shared.NewNotFoundError("game", arg)
	case 1:
		return matches[0], nil
	}
	return shared.GameID{}, fmt.Errorf("game id %q is ambiguous: %d games match", arg, len(matches))
}

// loadGame resolves and loads a saved game
func loadGame(ctx context.Context, a *app, arg string) (*game.Game, error) {
	id, err := resolveGameID(ctx, a, arg)
	if err != nil {
		return nil, err
	}
	response, err := a.mediator.Send(ctx, &gameApp.LoadGameQuery{GameID: id})
	if err != nil {
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	return response.(*gameApp.LoadGameResponse).Game, nil
}

// rememberGame records the game as the one "rover play" resumes by default
func rememberGame(id shared.GameID) {
	handler, err := config.NewUserConfigHandler()
	if err != nil {
		return
	}
	_ = handler.SetLastGame(id.String())
}

// parseRacer reads "name" or "name:color"
func parseRacer(s string) gameApp.Racer {
	name, color, _ := strings.Cut(s, ":")
	return gameApp.Racer{Name: strings.TrimSpace(name), Color: strings.TrimSpace(color)}
}

// parseScenario accepts classic or random in any case
func parseScenario(s string) (board.Scenario, error) {
	return board.ParseScenario(s)
}
