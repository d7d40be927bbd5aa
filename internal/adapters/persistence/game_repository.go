package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/spacerover/spacerover-go/internal/application/common"
	"github.com/spacerover/spacerover-go/internal/domain/board"
	"github.com/spacerover/spacerover-go/internal/domain/game"
	"github.com/spacerover/spacerover-go/internal/domain/hex"
	"github.com/spacerover/spacerover-go/internal/domain/navigation"
	"github.com/spacerover/spacerover-go/internal/domain/player"
	"github.com/spacerover/spacerover-go/internal/domain/shared"
)

// GormGameRepository implements game.GameRepository using GORM
type GormGameRepository struct {
	db    *gorm.DB
	clock shared.Clock
}

// NewGormGameRepository creates a new GORM game repository. The clock is
// handed to restored games for their lifecycle timestamps.
func NewGormGameRepository(db *gorm.DB, clock shared.Clock) *GormGameRepository {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GormGameRepository{db: db, clock: clock}
}

// Save writes the whole game in one transaction. Bodies are written once,
// players and ships are upserted.
func (r *GormGameRepository) Save(ctx context.Context, g *game.Game) error {
	model := r.gameToModel(g)
	bodies := r.bodiesToModels(g)
	players, ships, err := r.playersToModels(g)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(model).Error; err != nil {
			return fmt.Errorf("failed to save game: %w", err)
		}

		var count int64
		if err := tx.Model(&BodyModel{}).Where("game_id = ?", model.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count bodies: %w", err)
		}
		if count == 0 && len(bodies) > 0 {
			if err := tx.CreateInBatches(bodies, 200).Error; err != nil {
				return fmt.Errorf("failed to save bodies: %w", err)
			}
		}

		upsert := clause.OnConflict{
			Columns:   []clause.Column{{Name: "game_id"}, {Name: "ordinal"}},
			UpdateAll: true,
		}
		if err := tx.Clauses(upsert).Create(&players).Error; err != nil {
			return fmt.Errorf("failed to save players: %w", err)
		}
		if err := tx.Clauses(upsert).Create(&ships).Error; err != nil {
			return fmt.Errorf("failed to save ships: %w", err)
		}
		return nil
	})
}

// FindByID restores a saved game
func (r *GormGameRepository) FindByID(ctx context.Context, id shared.GameID) (*game.Game, error) {
	var model GameModel
	result := r.db.WithContext(ctx).
		Preload("Bodies", func(db *gorm.DB) *gorm.DB { return db.Order("ordinal") }).
		Preload("Players", func(db *gorm.DB) *gorm.DB { return db.Order("ordinal") }).
		Preload("Ships", func(db *gorm.DB) *gorm.DB { return db.Order("ordinal") }).
		Where("id = ?", id.String()).
		First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError("game", id.String())
		}
		return nil, fmt.Errorf("failed to find game: %w", result.Error)
	}

	return r.modelToGame(&model)
}

// List returns every saved game, most recently played first. Games that
// fail to restore are skipped.
func (r *GormGameRepository) List(ctx context.Context) ([]*game.Game, error) {
	var models []GameModel
	result := r.db.WithContext(ctx).
		Preload("Bodies", func(db *gorm.DB) *gorm.DB { return db.Order("ordinal") }).
		Preload("Players", func(db *gorm.DB) *gorm.DB { return db.Order("ordinal") }).
		Preload("Ships", func(db *gorm.DB) *gorm.DB { return db.Order("ordinal") }).
		Order("updated_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list games: %w", result.Error)
	}

	games := make([]*game.Game, 0, len(models))
	for i := range models {
		g, err := r.modelToGame(&models[i])
		if err != nil {
			common.LoggerFromContext(ctx).Warn().
				Err(err).
				Str("game_id", models[i].ID).
				Msg("skipping saved game that cannot be restored")
			continue
		}
		games = append(games, g)
	}
	return games, nil
}

// Delete removes a game and everything in it
func (r *GormGameRepository) Delete(ctx context.Context, id shared.GameID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{&ShipModel{}, &PlayerModel{}, &BodyModel{}} {
			if err := tx.Where("game_id = ?", id.String()).Delete(m).Error; err != nil {
				return fmt.Errorf("failed to delete game rows: %w", err)
			}
		}
		result := tx.Where("id = ?", id.String()).Delete(&GameModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete game: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return shared.NewNotFoundError("game", id.String())
		}
		return nil
	})
}

func (r *GormGameRepository) gameToModel(g *game.Game) *GameModel {
	l := g.Lifecycle()
	return &GameModel{
		ID:          g.ID().String(),
		Scenario:    g.Scenario().Code(),
		Status:      l.Status().Code(),
		TurnCount:   g.TurnCount(),
		Seed:        int64(g.Seed()),
		BoardWidth:  g.Board().Width(),
		BoardHeight: g.Board().Height(),
		HomeWorld:   g.Board().Home().Name(),
		CreatedAt:   l.CreatedAt(),
		UpdatedAt:   l.UpdatedAt(),
		StartedAt:   l.StartedAt(),
		FinishedAt:  l.FinishedAt(),
	}
}

func (r *GormGameRepository) bodiesToModels(g *game.Game) []BodyModel {
	bodies := g.Board().Bodies()
	out := make([]BodyModel, 0, len(bodies))
	for i, b := range bodies {
		out = append(out, BodyModel{
			GameID:        g.ID().String(),
			Ordinal:       i,
			Name:          b.Name(),
			Kind:          b.Kind().Code(),
			X:             b.Position().X,
			Y:             b.Position().Y,
			Radius:        b.Radius(),
			Landable:      b.IsLandable(),
			Gravity:       b.Gravity().Code(),
			Orbiting:      b.Orbiting(),
			OrbitDistance: b.OrbitDistance(),
		})
	}
	return out
}

func (r *GormGameRepository) playersToModels(g *game.Game) ([]PlayerModel, []ShipModel, error) {
	players := make([]PlayerModel, 0, len(g.Players()))
	ships := make([]ShipModel, 0, len(g.Players()))
	for i, p := range g.Players() {
		players = append(players, PlayerModel{
			GameID:  g.ID().String(),
			Ordinal: i,
			Name:    p.Name(),
			Color:   p.Color().Code(),
			State:   p.State().Code(),
		})

		s := p.Ship()
		goals, err := json.Marshal(s.RaceGoals())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal race goals: %w", err)
		}
		orbiting := ""
		if s.Orbiting() != nil {
			orbiting = s.Orbiting().Name()
		}
		ships = append(ships, ShipModel{
			GameID:        g.ID().String(),
			Ordinal:       i,
			Name:          s.Name(),
			Owner:         s.Owner(),
			State:         s.State().Code(),
			X:             s.Position().X,
			Y:             s.Position().Y,
			VelocityX:     s.Velocity().X,
			VelocityY:     s.Velocity().Y,
			Direction:     s.Direction().Code(),
			Fuel:          s.Fuel().Current,
			FuelCapacity:  s.Fuel().Capacity,
			DisabledTurns: s.DisabledTurns(),
			Orbiting:      orbiting,
			RaceGoals:     string(goals),
			DeathReason:   s.DeathReason(),
		})
	}
	return players, ships, nil
}

func (r *GormGameRepository) modelToGame(model *GameModel) (*game.Game, error) {
	id, err := shared.ParseGameID(model.ID)
	if err != nil {
		return nil, err
	}
	scenario, err := board.ScenarioFromCode(model.Scenario)
	if err != nil {
		return nil, err
	}
	status, err := game.StatusFromCode(model.Status)
	if err != nil {
		return nil, err
	}

	b, err := r.modelsToBoard(model)
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", model.ID, err)
	}
	players, err := r.modelsToPlayers(model, b)
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", model.ID, err)
	}

	lifecycle := game.RecoverLifecycle(r.clock, status,
		model.CreatedAt, model.UpdatedAt, model.StartedAt, model.FinishedAt)
	return game.ReconstructGame(id, scenario, b, players, model.TurnCount, uint64(model.Seed), lifecycle)
}

func (r *GormGameRepository) modelsToBoard(model *GameModel) (*board.Board, error) {
	bodies := make([]*board.Body, 0, len(model.Bodies))
	for _, m := range model.Bodies {
		kind, err := board.KindFromCode(m.Kind)
		if err != nil {
			return nil, err
		}
		if kind == board.KindAsteroid {
			bodies = append(bodies, board.NewAsteroid(hex.Pt(m.X, m.Y)))
			continue
		}
		gravity, err := board.GravityFromCode(m.Gravity)
		if err != nil {
			return nil, err
		}
		body, err := board.NewBody(board.BodyInfo{
			Name:          m.Name,
			Kind:          kind,
			Radius:        m.Radius,
			Landable:      m.Landable,
			Gravity:       gravity,
			Orbiting:      m.Orbiting,
			OrbitDistance: m.OrbitDistance,
		}, hex.Pt(m.X, m.Y))
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, body)
	}
	return board.NewBoard(model.BoardWidth, model.BoardHeight, bodies, model.HomeWorld)
}

func (r *GormGameRepository) modelsToPlayers(model *GameModel, b *board.Board) ([]*player.Player, error) {
	if len(model.Players) != len(model.Ships) {
		return nil, fmt.Errorf("%d players but %d ships", len(model.Players), len(model.Ships))
	}

	players := make([]*player.Player, 0, len(model.Players))
	for i, pm := range model.Players {
		ship, err := r.modelToShip(&model.Ships[i], b)
		if err != nil {
			return nil, err
		}
		color, err := player.ColorFromCode(pm.Color)
		if err != nil {
			return nil, err
		}
		state, err := player.StateFromCode(pm.State)
		if err != nil {
			return nil, err
		}
		p, err := player.ReconstructPlayer(pm.Name, color, state, ship)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}

func (r *GormGameRepository) modelToShip(m *ShipModel, b *board.Board) (*navigation.Ship, error) {
	state, err := navigation.ShipStateFromCode(m.State)
	if err != nil {
		return nil, err
	}
	direction, err := hex.DirectionFromCode(m.Direction)
	if err != nil {
		return nil, err
	}
	fuel, err := shared.NewFuel(m.Fuel, m.FuelCapacity)
	if err != nil {
		return nil, shared.NewInvalidShipDataError(m.Name, err.Error())
	}

	var orbiting *board.Body
	if m.Orbiting != "" {
		body, ok := b.Lookup(m.Orbiting)
		if !ok {
			return nil, shared.NewNotFoundError("body", m.Orbiting)
		}
		orbiting = body
	}

	var goalNames []string
	if m.RaceGoals != "" {
		if err := json.Unmarshal([]byte(m.RaceGoals), &goalNames); err != nil {
			return nil, fmt.Errorf("failed to parse race goals of %s: %w", m.Name, err)
		}
	}
	goals := make([]*board.Body, 0, len(goalNames))
	for _, name := range goalNames {
		body, ok := b.Lookup(name)
		if !ok {
			return nil, shared.NewNotFoundError("body", name)
		}
		goals = append(goals, body)
	}

	return navigation.ReconstructShip(
		m.Name, m.Owner, state,
		hex.Pt(m.X, m.Y), hex.Pt(m.VelocityX, m.VelocityY),
		direction, fuel, m.DisabledTurns, orbiting, goals, m.DeathReason,
	)
}
