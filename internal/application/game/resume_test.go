package game_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gameApp "github.com/spacerover/spacerover-go/internal/application/game"
	"github.com/spacerover/spacerover-go/internal/application/simulation"
	"github.com/spacerover/spacerover-go/internal/domain/board"
	"github.com/spacerover/spacerover-go/internal/domain/game"
	"github.com/spacerover/spacerover-go/internal/domain/hex"
	"github.com/spacerover/spacerover-go/internal/domain/navigation"
	"github.com/spacerover/spacerover-go/internal/domain/shared"
)

func (f *fixture) load(t *testing.T, id shared.GameID) *game.Game {
	t.Helper()
	resp, err := f.mediator.Send(context.Background(), &gameApp.LoadGameQuery{GameID: id})
	require.NoError(t, err)
	return resp.(*gameApp.LoadGameResponse).Game
}

func TestResume_LeavingMidMoveReplaysTheTurn(t *testing.T) {
	// Arrange
	ctx := context.Background()
	f := newFixture(t)
	created := f.create(t, &gameApp.CreateGameCommand{
		Racers:   []gameApp.Racer{{Name: "Ada"}, {Name: "Bob"}},
		Scenario: board.ScenarioClassic,
		Seed:     7,
	})
	s, err := simulation.NewSession(created, simulation.WithRepository(f.repo))
	require.NoError(t, err)

	require.NoError(t, s.Launch(hex.East))
	require.NoError(t, s.Update(ctx))
	require.NoError(t, s.Update(ctx))
	require.Equal(t, "Bob", s.Snapshot().Player)
	adaAt := created.Players()[0].Ship().Position()

	// Act
	require.NoError(t, s.Launch(hex.East))
	err = s.Save(ctx)

	// Assert
	var invalid *shared.InvalidCommandError
	require.ErrorAs(t, err, &invalid)

	resumed := f.load(t, created.ID())
	assert.Equal(t, 1, resumed.TurnCount())
	assert.Equal(t, "Bob", resumed.CurrentPlayer().Name())
	bob := resumed.CurrentShip()
	assert.Equal(t, navigation.ShipLanded, bob.State())
	assert.Equal(t, board.Earth, bob.Orbiting().Name())
	assert.Equal(t, adaAt, resumed.Players()[0].Ship().Position())

	again, err := simulation.NewSession(resumed, simulation.WithRepository(f.repo))
	require.NoError(t, err)
	assert.Equal(t, game.WaitingForDirection, again.State())
	assert.NoError(t, again.Launch(hex.East), "Bob gets exactly the move he had not finished")
}

func TestResume_FinishedTurnIsKept(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	created := f.create(t, &gameApp.CreateGameCommand{
		Racers:   []gameApp.Racer{{Name: "Ada"}, {Name: "Bob"}},
		Scenario: board.ScenarioClassic,
		Seed:     7,
	})
	s, err := simulation.NewSession(created, simulation.WithRepository(f.repo))
	require.NoError(t, err)

	require.NoError(t, s.Launch(hex.East))
	require.NoError(t, s.Update(ctx))
	require.NoError(t, s.Update(ctx))
	require.NoError(t, s.Save(ctx))

	resumed := f.load(t, created.ID())
	ada := resumed.Players()[0].Ship()
	assert.Equal(t, navigation.ShipFlight, ada.State())
	assert.Equal(t, game.StatusInProgress, resumed.Status())
	assert.Equal(t, "Bob", resumed.CurrentPlayer().Name())
}
