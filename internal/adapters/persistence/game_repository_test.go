package persistence_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/spacerover/spacerover-go/internal/adapters/persistence"
	"github.com/spacerover/spacerover-go/internal/application/common"
	"github.com/spacerover/spacerover-go/internal/domain/board"
	"github.com/spacerover/spacerover-go/internal/domain/game"
	"github.com/spacerover/spacerover-go/internal/domain/hex"
	"github.com/spacerover/spacerover-go/internal/domain/navigation"
	"github.com/spacerover/spacerover-go/internal/domain/player"
	"github.com/spacerover/spacerover-go/internal/domain/shared"
	"github.com/spacerover/spacerover-go/internal/infrastructure/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}

func newRace(t *testing.T, scenario board.Scenario, clock shared.Clock, names ...string) *game.Game {
	t.Helper()
	b, err := board.NewFactory(board.DefaultWidth, board.DefaultHeight, board.NewSolDescription(),
		shared.NewRandom(42), 0).Build(scenario)
	require.NoError(t, err)

	var players []*player.Player
	for i, name := range names {
		ship, err := navigation.NewShip(name+"Rover", name, b.Home(), shared.DefaultFuelCapacity, b.RaceGoals())
		require.NoError(t, err)
		p, err := player.NewPlayer(name, player.Colors()[i], ship)
		require.NoError(t, err)
		players = append(players, p)
	}

	g, err := game.NewGame(shared.NewGameID(), scenario, b, players, 42, clock)
	require.NoError(t, err)
	return g
}

func TestGameRepository_SaveAndFindRestoresEverything(t *testing.T) {
	// Arrange
	ctx := context.Background()
	clock := shared.NewFixedClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	repo := persistence.NewGormGameRepository(newTestDB(t), clock)
	g := newRace(t, board.ScenarioRandom, clock, "Ada", "Bob", "Cy")
	require.NoError(t, g.Start())

	ada := g.Players()[0].Ship()
	require.NoError(t, ada.Launch(hex.NorthEast))
	require.NoError(t, ada.Accelerate(hex.East, navigation.DefaultBurn))
	ada.Disable(2)
	earth, _ := g.Board().Lookup(board.Earth)
	ada.VisitGoal(earth.Name())

	bob := g.Players()[1]
	bob.Ship().Crash(navigation.SelfDestructReason("BobRover"))
	bob.MarkLost()
	require.True(t, g.NextShip())

	// Act
	require.NoError(t, repo.Save(ctx, g))
	loaded, err := repo.FindByID(ctx, g.ID())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, g.ID(), loaded.ID())
	assert.Equal(t, board.ScenarioRandom, loaded.Scenario())
	assert.Equal(t, game.StatusInProgress, loaded.Status())
	assert.Equal(t, uint64(42), loaded.Seed())
	assert.Equal(t, 2, loaded.TurnCount())
	assert.Equal(t, "Cy", loaded.CurrentPlayer().Name())
	assert.True(t, g.Lifecycle().StartedAt().Equal(*loaded.Lifecycle().StartedAt()))

	assert.Equal(t, board.Earth, loaded.Board().Home().Name())
	assert.Len(t, loaded.Board().Bodies(), len(g.Board().Bodies()))
	assert.Equal(t, g.Board().Asteroids()[0].Position(), loaded.Board().Asteroids()[0].Position())
	for _, body := range g.Board().Planets() {
		restored, ok := loaded.Board().Lookup(body.Name())
		require.True(t, ok, body.Name())
		assert.Equal(t, body.Position(), restored.Position(), body.Name())
		assert.Equal(t, body.Gravity(), restored.Gravity(), body.Name())
	}

	la := loaded.Players()[0].Ship()
	assert.Equal(t, navigation.ShipFlight, la.State())
	assert.Equal(t, ada.Position(), la.Position())
	assert.Equal(t, ada.Velocity(), la.Velocity())
	assert.Equal(t, hex.East, la.Direction())
	assert.Equal(t, 19, la.Fuel().Current)
	assert.Equal(t, 3, la.DisabledTurns())
	assert.Equal(t, ada.RaceGoals(), la.RaceGoals())
	assert.NotContains(t, la.RaceGoals(), board.Earth)

	lb := loaded.Players()[1]
	assert.Equal(t, player.Lost, lb.State())
	assert.Equal(t, player.Red, lb.Color())
	assert.Equal(t, "Ship BobRover self destructed", lb.Ship().DeathReason())

	lc := loaded.Players()[2].Ship()
	assert.Equal(t, navigation.ShipLanded, lc.State())
	assert.Equal(t, board.Earth, lc.Orbiting().Name())
}

func TestGameRepository_SaveUpdatesExistingGame(t *testing.T) {
	ctx := context.Background()
	clock := shared.NewFixedClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	repo := persistence.NewGormGameRepository(newTestDB(t), clock)
	g := newRace(t, board.ScenarioClassic, clock, "Ada")
	require.NoError(t, g.Start())
	require.NoError(t, repo.Save(ctx, g))

	require.NoError(t, g.Players()[0].Ship().Launch(hex.West))
	require.True(t, g.NextShip())
	g.Players()[0].MarkWon()
	require.NoError(t, g.Finish())
	require.NoError(t, repo.Save(ctx, g))

	loaded, err := repo.FindByID(ctx, g.ID())
	require.NoError(t, err)
	assert.Equal(t, game.StatusFinished, loaded.Status())
	assert.Equal(t, 1, loaded.TurnCount())
	assert.Equal(t, player.Won, loaded.Players()[0].State())
	assert.Equal(t, navigation.ShipFlight, loaded.Players()[0].Ship().State())
	assert.Len(t, loaded.Board().Asteroids(), 72)
}

func TestGameRepository_NotFound(t *testing.T) {
	repo := persistence.NewGormGameRepository(newTestDB(t), nil)

	_, err := repo.FindByID(context.Background(), shared.NewGameID())

	var notFound *shared.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestGameRepository_ListMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	clock := shared.NewFixedClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	repo := persistence.NewGormGameRepository(newTestDB(t), clock)

	older := newRace(t, board.ScenarioClassic, clock, "Ada")
	require.NoError(t, repo.Save(ctx, older))
	clock.Advance(time.Hour)
	newer := newRace(t, board.ScenarioClassic, clock, "Bob", "Cy")
	require.NoError(t, repo.Save(ctx, newer))

	games, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, newer.ID(), games[0].ID())
	assert.Equal(t, older.ID(), games[1].ID())
	assert.Equal(t, "Not started", games[1].Summary())
}

func TestGameRepository_ListLogsUnreadableGames(t *testing.T) {
	// Arrange
	var logs bytes.Buffer
	ctx := common.WithLogger(context.Background(), zerolog.New(&logs))
	clock := shared.NewFixedClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	db := newTestDB(t)
	repo := persistence.NewGormGameRepository(db, clock)

	good := newRace(t, board.ScenarioClassic, clock, "Ada")
	require.NoError(t, repo.Save(ctx, good))
	require.NoError(t, db.Create(&persistence.GameModel{
		ID:          "not-a-game-id",
		BoardWidth:  board.DefaultWidth,
		BoardHeight: board.DefaultHeight,
		HomeWorld:   board.Earth,
		CreatedAt:   clock.Now(),
		UpdatedAt:   clock.Now(),
	}).Error)

	// Act
	games, err := repo.List(ctx)

	// Assert
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, good.ID(), games[0].ID())
	assert.Contains(t, logs.String(), "skipping saved game that cannot be restored")
	assert.Contains(t, logs.String(), "not-a-game-id")
}

func TestGameRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewGormGameRepository(newTestDB(t), nil)
	g := newRace(t, board.ScenarioClassic, shared.NewRealClock(), "Ada")
	require.NoError(t, repo.Save(ctx, g))

	require.NoError(t, repo.Delete(ctx, g.ID()))

	_, err := repo.FindByID(ctx, g.ID())
	var notFound *shared.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.ErrorAs(t, repo.Delete(ctx, g.ID()), &notFound)
}
