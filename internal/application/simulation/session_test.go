package simulation_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacerover/spacerover-go/internal/application/simulation"
	"github.com/spacerover/spacerover-go/internal/domain/board"
	"github.com/spacerover/spacerover-go/internal/domain/game"
	"github.com/spacerover/spacerover-go/internal/domain/hex"
	"github.com/spacerover/spacerover-go/internal/domain/navigation"
	"github.com/spacerover/spacerover-go/internal/domain/player"
	"github.com/spacerover/spacerover-go/internal/domain/shared"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeMetrics struct {
	mu        sync.Mutex
	turns     int
	fuel      map[string]int
	hazards   []int
	crashes   []string
	decisions []bool
	outcomes  []string
	rounds    []int
	commands  map[string][2]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{fuel: map[string]int{}, commands: map[string][2]int{}}
}

func (m *fakeMetrics) RecordTurn(string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns++
}

func (m *fakeMetrics) RecordFuelBurned(p string, units int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fuel[p] += units
}

func (m *fakeMetrics) RecordHazardRoll(die, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hazards = append(m.hazards, die)
}

func (m *fakeMetrics) RecordCrash(cause string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.crashes = append(m.crashes, cause)
}

func (m *fakeMetrics) RecordGravityDecision(accepted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.decisions = append(m.decisions, accepted)
}

func (m *fakeMetrics) RecordGameFinished(outcome string, rounds int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
	m.rounds = append(m.rounds, rounds)
}

func (m *fakeMetrics) RecordCommandExecution(name string, _ float64, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.commands[name]
	if success {
		c[0]++
	} else {
		c[1]++
	}
	m.commands[name] = c
}

type memoryRepo struct {
	saves int
	err   error
	games map[shared.GameID]*game.Game
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{games: map[shared.GameID]*game.Game{}}
}

func (r *memoryRepo) Save(_ context.Context, g *game.Game) error {
	if r.err != nil {
		return r.err
	}
	r.saves++
	r.games[g.ID()] = g
	return nil
}

func (r *memoryRepo) FindByID(_ context.Context, id shared.GameID) (*game.Game, error) {
	g, ok := r.games[id]
	if !ok {
		return nil, shared.NewNotFoundError("game", id.String())
	}
	return g, nil
}

func (r *memoryRepo) List(context.Context) ([]*game.Game, error) {
	var out []*game.Game
	for _, g := range r.games {
		out = append(out, g)
	}
	return out, nil
}

func (r *memoryRepo) Delete(_ context.Context, id shared.GameID) error {
	delete(r.games, id)
	return nil
}

type recordingObserver struct {
	game.NopObserver
	calls []string
}

func (o *recordingObserver) StartTurn(ship *navigation.Ship) {
	o.calls = append(o.calls, "start "+ship.Name())
}

func (o *recordingObserver) ShipDoneMoving(ship *navigation.Ship) {
	o.calls = append(o.calls, "done "+ship.Name())
}

func (o *recordingObserver) Crash(ship *navigation.Ship, _ string) {
	o.calls = append(o.calls, "crash "+ship.Name())
}

func (o *recordingObserver) OptionalHalfGravity(_ *navigation.Ship, well board.Contact) {
	o.calls = append(o.calls, "offer "+well.Body.Name())
}

func (o *recordingObserver) EndGame(*game.Game) {
	o.calls = append(o.calls, "end")
}

// testBoard has a landable home at (10,10) and a half gravity moon at
// (20,10)
func testBoard(t *testing.T) *board.Board {
	t.Helper()
	home, err := board.NewBody(board.BodyInfo{
		Name: "Home", Kind: board.KindPlanet, Radius: 0.25, Landable: true, Gravity: board.GravityFull,
	}, hex.Pt(10, 10))
	require.NoError(t, err)
	moon, err := board.NewBody(board.BodyInfo{
		Name: "Pebble", Kind: board.KindMoon, Radius: 0.1, Gravity: board.GravityHalf,
		Orbiting: "Home", OrbitDistance: 10,
	}, hex.Pt(20, 10))
	require.NoError(t, err)
	b, err := board.NewBoard(40, 40, []*board.Body{home, moon}, "Home")
	require.NoError(t, err)
	return b
}

func newRace(t *testing.T, b *board.Board, ships ...*navigation.Ship) *game.Game {
	t.Helper()
	var players []*player.Player
	for i, ship := range ships {
		p, err := player.NewPlayer(ship.Owner(), player.Colors()[i], ship)
		require.NoError(t, err)
		players = append(players, p)
	}
	g, err := game.NewGame(shared.NewGameID(), board.ScenarioClassic, b, players, 11, shared.NewFixedClock(epoch))
	require.NoError(t, err)
	return g
}

func landedShip(t *testing.T, b *board.Board, owner string) *navigation.Ship {
	t.Helper()
	ship, err := navigation.NewShip(owner+"Rover", owner, b.Home(), shared.DefaultFuelCapacity, b.RaceGoals())
	require.NoError(t, err)
	return ship
}

func TestSession_TurnPassesAndSaves(t *testing.T) {
	// Arrange
	ctx := context.Background()
	b := testBoard(t)
	g := newRace(t, b, landedShip(t, b, "Ada"))
	metrics := newFakeMetrics()
	repo := newMemoryRepo()
	observer := &recordingObserver{}

	s, err := simulation.NewSession(g,
		simulation.WithMetrics(metrics),
		simulation.WithRepository(repo),
		simulation.WithObserver(observer),
	)
	require.NoError(t, err)
	assert.Equal(t, game.WaitingForDirection, s.State())
	assert.Len(t, s.Options(), 7)

	// Act
	require.NoError(t, s.Launch(hex.East))
	assert.Nil(t, s.Options())
	require.NoError(t, s.Update(ctx))
	assert.Equal(t, 0, repo.saves, "no save until the next turn starts")
	require.NoError(t, s.Update(ctx))

	// Assert
	assert.Equal(t, game.WaitingForDirection, s.State())
	assert.Equal(t, 1, repo.saves)
	assert.Equal(t, 2, metrics.turns)
	assert.Equal(t, [2]int{1, 0}, metrics.commands["Launch"])
	assert.Equal(t, []string{"start AdaRover", "done AdaRover", "start AdaRover"}, observer.calls)

	snap := s.Snapshot()
	assert.Equal(t, g.ID(), snap.GameID)
	assert.Equal(t, 2, snap.Round)
	assert.Equal(t, "Ada", snap.Player)
	assert.Equal(t, "AdaRover", snap.Ship)
	assert.Contains(t, snap.Information, "Fuel: 20")
	assert.Nil(t, snap.Notification)
	assert.Equal(t, "In turn 2", snap.Summary)
}

func TestSession_ThrustRecordsFuel(t *testing.T) {
	ctx := context.Background()
	b := testBoard(t)
	g := newRace(t, b, landedShip(t, b, "Ada"))
	metrics := newFakeMetrics()
	s, err := simulation.NewSession(g, simulation.WithMetrics(metrics))
	require.NoError(t, err)

	require.NoError(t, s.Launch(hex.East))
	require.NoError(t, s.Update(ctx))
	require.NoError(t, s.Update(ctx))
	require.NoError(t, s.Accelerate(hex.East))

	ship := g.CurrentShip()
	assert.Equal(t, hex.Pt(11, 10), ship.Position())
	assert.Equal(t, hex.West.Unit(), ship.Velocity(), "a stopped ship is pulled again by the well")
	assert.Equal(t, 19, ship.Fuel().Current)
	assert.Equal(t, 1, metrics.fuel["Ada"])
}

func TestSession_CrashEndsTheGame(t *testing.T) {
	ctx := context.Background()
	b := testBoard(t)
	g := newRace(t, b, landedShip(t, b, "Ada"))
	metrics := newFakeMetrics()
	repo := newMemoryRepo()
	observer := &recordingObserver{}
	s, err := simulation.NewSession(g,
		simulation.WithMetrics(metrics),
		simulation.WithRepository(repo),
		simulation.WithObserver(observer),
	)
	require.NoError(t, err)

	require.NoError(t, s.Launch(hex.East))
	require.NoError(t, s.Update(ctx))
	require.NoError(t, s.Update(ctx))

	// coasting straight back into the planet
	require.NoError(t, s.Accelerate(hex.None))
	snap := s.Snapshot()
	require.NotNil(t, snap.Notification)
	assert.Equal(t, game.NotificationCrash, snap.Notification.Kind)
	assert.Equal(t, "Ship AdaRover crashed in to Home", snap.Notification.Message)

	require.NoError(t, s.Update(ctx))
	assert.Equal(t, game.Moving, s.State(), "the crash holds the turn until dismissed")

	_, more, err := s.Dismiss()
	require.NoError(t, err)
	assert.False(t, more)
	require.NoError(t, s.Update(ctx))

	assert.True(t, s.Done())
	assert.Equal(t, game.StatusFinished, g.Status())
	assert.Equal(t, []string{simulation.CauseSurface}, metrics.crashes)
	assert.Equal(t, []string{simulation.OutcomeAllLost}, metrics.outcomes)
	assert.Equal(t, []int{2}, metrics.rounds)
	assert.Equal(t, 2, repo.saves)
	assert.Equal(t, "Everyone died.", s.Snapshot().Summary)
	assert.Equal(t, "end", observer.calls[len(observer.calls)-1])
	assert.Contains(t, observer.calls, "crash AdaRover")
}

func TestSession_SelfDestruct(t *testing.T) {
	b := testBoard(t)
	g := newRace(t, b, landedShip(t, b, "Ada"), landedShip(t, b, "Bob"))
	metrics := newFakeMetrics()
	s, err := simulation.NewSession(g, simulation.WithMetrics(metrics))
	require.NoError(t, err)

	require.NoError(t, s.SelfDestruct())
	_, _, err = s.Dismiss()
	require.NoError(t, err)
	require.NoError(t, s.Update(context.Background()))
	require.NoError(t, s.Update(context.Background()))

	assert.Equal(t, []string{simulation.CauseSelfDestruct}, metrics.crashes)
	assert.Equal(t, player.Lost, g.Players()[0].State())
	assert.Equal(t, "Bob", s.Snapshot().Player)
	assert.False(t, s.Done())
}

func TestSession_RejectedCommands(t *testing.T) {
	b := testBoard(t)
	g := newRace(t, b, landedShip(t, b, "Ada"))
	metrics := newFakeMetrics()
	s, err := simulation.NewSession(g, simulation.WithMetrics(metrics))
	require.NoError(t, err)

	var stateErr *shared.InvalidShipStateError
	assert.ErrorAs(t, s.Land(), &stateErr)

	var commandErr *shared.InvalidCommandError
	assert.ErrorAs(t, s.ResolveGravity(true), &commandErr)
	_, _, err = s.Dismiss()
	assert.ErrorAs(t, err, &commandErr)

	require.NoError(t, s.Launch(hex.West))
	assert.ErrorAs(t, s.Launch(hex.West), &commandErr, "a second command waits for the move to settle")

	assert.Equal(t, [2]int{0, 1}, metrics.commands["Land"])
	assert.Equal(t, [2]int{0, 1}, metrics.commands["ResolveGravity"])
	assert.Equal(t, [2]int{0, 1}, metrics.commands["Dismiss"])
	assert.Equal(t, [2]int{1, 1}, metrics.commands["Launch"])
}

func TestSession_HalfGravityDecision(t *testing.T) {
	b := testBoard(t)
	ship, err := navigation.ReconstructShip("AdaRover", "Ada", navigation.ShipFlight,
		hex.Pt(19, 11), hex.Pt(0, -3), hex.SouthEast, shared.FullTank(shared.DefaultFuelCapacity),
		0, nil, b.RaceGoals(), "")
	require.NoError(t, err)
	g := newRace(t, b, ship)
	metrics := newFakeMetrics()
	observer := &recordingObserver{}
	s, err := simulation.NewSession(g, simulation.WithMetrics(metrics), simulation.WithObserver(observer))
	require.NoError(t, err)

	// (19,10) pulls East on the first hit, (19,9) offers a pull North East
	require.NoError(t, s.Accelerate(hex.None))
	assert.Equal(t, game.AwaitingGravityDecision, s.State())
	assert.Contains(t, observer.calls, "offer Pebble")
	snap := s.Snapshot()
	require.NotNil(t, snap.Notification)
	assert.Equal(t, game.NotificationHalfGravity, snap.Notification.Kind)

	var commandErr *shared.InvalidCommandError
	_, _, err = s.Dismiss()
	assert.ErrorAs(t, err, &commandErr, "gravity questions need an answer")

	require.NoError(t, s.ResolveGravity(true))

	assert.Equal(t, game.Moving, s.State())
	assert.Equal(t, hex.Pt(2, -2), ship.Velocity())
	assert.Equal(t, hex.Pt(19, 8), ship.Position())
	assert.Equal(t, []bool{true}, metrics.decisions)
	assert.Empty(t, metrics.fuel)
}

func TestSession_ResumesFinishedGame(t *testing.T) {
	b := testBoard(t)
	g := newRace(t, b, landedShip(t, b, "Ada"))
	require.NoError(t, g.Start())
	require.NoError(t, g.Finish())
	metrics := newFakeMetrics()

	s, err := simulation.NewSession(g, simulation.WithMetrics(metrics))

	require.NoError(t, err)
	assert.True(t, s.Done())
	assert.Empty(t, metrics.outcomes, "the end was recorded when it happened")
	assert.Zero(t, metrics.turns)
}

func TestSession_SaveFailureSurfaces(t *testing.T) {
	b := testBoard(t)
	g := newRace(t, b, landedShip(t, b, "Ada"))
	repo := newMemoryRepo()
	repo.err = errors.New("disk full")
	s, err := simulation.NewSession(g, simulation.WithRepository(repo))
	require.NoError(t, err)

	require.NoError(t, s.Launch(hex.East))
	require.NoError(t, s.Update(context.Background()))
	err = s.Update(context.Background())

	assert.ErrorIs(t, err, repo.err)
	assert.Error(t, s.Save(context.Background()))
}

func TestSession_SaveOnlyBetweenTurns(t *testing.T) {
	// Arrange
	ctx := context.Background()
	b := testBoard(t)
	g := newRace(t, b, landedShip(t, b, "Ada"), landedShip(t, b, "Bob"))
	repo := newMemoryRepo()
	s, err := simulation.NewSession(g, simulation.WithRepository(repo))
	require.NoError(t, err)
	require.True(t, s.CanSave())
	require.NoError(t, s.Save(ctx))
	require.Equal(t, 1, repo.saves)

	// Act
	require.NoError(t, s.Launch(hex.East))
	err = s.Save(ctx)

	// Assert
	var invalid *shared.InvalidCommandError
	assert.ErrorAs(t, err, &invalid)
	assert.False(t, s.CanSave())
	assert.Equal(t, 1, repo.saves, "a move in progress is never written")

	require.NoError(t, s.Update(ctx))
	require.NoError(t, s.Update(ctx))
	assert.Equal(t, "Bob", s.Snapshot().Player)
	assert.Equal(t, 2, repo.saves, "the next turn start is the new resume point")
	assert.NoError(t, s.Save(ctx))
}

func TestSession_PendingGravityDecisionIsNotSaved(t *testing.T) {
	ctx := context.Background()
	b := testBoard(t)
	ship, err := navigation.ReconstructShip("AdaRover", "Ada", navigation.ShipFlight,
		hex.Pt(19, 11), hex.Pt(0, -3), hex.SouthEast, shared.FullTank(20), 0, nil, nil, "")
	require.NoError(t, err)
	g := newRace(t, b, ship)
	repo := newMemoryRepo()
	s, err := simulation.NewSession(g, simulation.WithRepository(repo))
	require.NoError(t, err)

	require.NoError(t, s.Accelerate(hex.None))
	require.Equal(t, game.AwaitingGravityDecision, s.State())

	var invalid *shared.InvalidCommandError
	assert.ErrorAs(t, s.Save(ctx), &invalid)
	assert.Zero(t, repo.saves)
}

func TestNewSession_RequiresGame(t *testing.T) {
	_, err := simulation.NewSession(nil)

	var validation *shared.ValidationError
	assert.ErrorAs(t, err, &validation)
}
