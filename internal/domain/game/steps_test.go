package game_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"

	"github.com/spacerover/spacerover-go/internal/domain/board"
	"github.com/spacerover/spacerover-go/internal/domain/game"
	"github.com/spacerover/spacerover-go/internal/domain/hex"
	"github.com/spacerover/spacerover-go/internal/domain/navigation"
	"github.com/spacerover/spacerover-go/internal/domain/player"
	"github.com/spacerover/spacerover-go/internal/domain/shared"
)

type racerSetup struct {
	name      string
	destroyed bool
	flying    bool
	position  hex.SlantPoint
	velocity  hex.SlantPoint
	disabled  int
	goals     []string
}

type raceContext struct {
	board   *board.Board
	racers  []*racerSetup
	dice    []int
	game    *game.Game
	seq     *game.Sequencer
	lastErr error
}

func (rc *raceContext) reset() {
	rc.board = nil
	rc.racers = nil
	rc.dice = nil
	rc.game = nil
	rc.seq = nil
	rc.lastErr = nil
}

// provingGround is a small board: landable full gravity "Rock" at (10,10),
// full gravity "Boulder" at (40,40), half gravity "Pebble" at (30,10) and
// an asteroid at (15,10)
func provingGround() (*board.Board, error) {
	rock, err := board.NewBody(board.BodyInfo{
		Name: "Rock", Kind: board.KindPlanet, Radius: 0.25, Landable: true, Gravity: board.GravityFull,
	}, hex.Pt(10, 10))
	if err != nil {
		return nil, err
	}
	boulder, err := board.NewBody(board.BodyInfo{
		Name: "Boulder", Kind: board.KindPlanet, Radius: 0.3, Gravity: board.GravityFull,
	}, hex.Pt(40, 40))
	if err != nil {
		return nil, err
	}
	pebble, err := board.NewBody(board.BodyInfo{
		Name: "Pebble", Kind: board.KindMoon, Radius: 0.1, Gravity: board.GravityHalf,
		Orbiting: "Rock", OrbitDistance: 20,
	}, hex.Pt(30, 10))
	if err != nil {
		return nil, err
	}
	return board.NewBoard(60, 60,
		[]*board.Body{rock, boulder, pebble, board.NewAsteroid(hex.Pt(15, 10))}, "Rock")
}

func (rc *raceContext) racer(name string) (*racerSetup, error) {
	for _, r := range rc.racers {
		if r.name == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("no racer named %s", name)
}

func (rc *raceContext) playerNamed(name string) (*player.Player, error) {
	if rc.game == nil {
		return nil, fmt.Errorf("the race has not begun")
	}
	for _, p := range rc.game.Players() {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no player named %s", name)
}

// Given steps

func (rc *raceContext) theProvingGroundBoard() error {
	b, err := provingGround()
	if err != nil {
		return err
	}
	rc.board = b
	return nil
}

func (rc *raceContext) racersNamed(list string) error {
	for _, name := range strings.Split(list, ",") {
		rc.racers = append(rc.racers, &racerSetup{name: strings.TrimSpace(name)})
	}
	return nil
}

func (rc *raceContext) shipIsDestroyed(name string) error {
	r, err := rc.racer(name)
	if err != nil {
		return err
	}
	r.destroyed = true
	return nil
}

func (rc *raceContext) shipIsFlying(name string, x, y, vx, vy int) error {
	r, err := rc.racer(name)
	if err != nil {
		return err
	}
	r.flying = true
	r.position = hex.Pt(x, y)
	r.velocity = hex.Pt(vx, vy)
	return nil
}

func (rc *raceContext) shipIsDisabledFor(name string, turns int) error {
	r, err := rc.racer(name)
	if err != nil {
		return err
	}
	r.disabled = turns
	return nil
}

func (rc *raceContext) onlyRemainingGoal(name, goal string) error {
	r, err := rc.racer(name)
	if err != nil {
		return err
	}
	r.goals = []string{goal}
	return nil
}

func (rc *raceContext) theDiceWillRoll(faces string) error {
	for _, f := range strings.Split(faces, ",") {
		var v int
		if _, err := fmt.Sscanf(strings.TrimSpace(f), "%d", &v); err != nil {
			return err
		}
		rc.dice = append(rc.dice, v)
	}
	return nil
}

// When steps

func (rc *raceContext) theRaceBegins() error {
	var players []*player.Player
	for i, r := range rc.racers {
		goals := rc.board.RaceGoals()
		if r.goals != nil {
			goals = nil
			for _, name := range r.goals {
				body, ok := rc.board.Lookup(name)
				if !ok {
					return fmt.Errorf("no body named %s", name)
				}
				goals = append(goals, body)
			}
		}

		shipName := r.name + "Rover"
		var ship *navigation.Ship
		var err error
		if r.flying {
			ship, err = navigation.ReconstructShip(shipName, r.name, navigation.ShipFlight,
				r.position, r.velocity, hex.East, shared.FullTank(shared.DefaultFuelCapacity),
				r.disabled, nil, goals, "")
		} else {
			ship, err = navigation.NewShip(shipName, r.name, rc.board.Home(), shared.DefaultFuelCapacity, goals)
		}
		if err != nil {
			return err
		}

		p, err := player.NewPlayer(r.name, player.Colors()[i], ship)
		if err != nil {
			return err
		}
		if r.destroyed {
			ship.Crash("destroyed before the race")
			p.MarkLost()
		}
		players = append(players, p)
	}

	g, err := game.NewGame(shared.NewGameID(), board.ScenarioClassic, rc.board, players, 1, shared.NewRealClock())
	if err != nil {
		return err
	}
	rc.game = g
	rc.seq = game.NewSequencer(g, shared.NewScriptedDice(rc.dice...))
	return rc.seq.Begin()
}

func (rc *raceContext) currentShipCoasts() error {
	rc.lastErr = rc.seq.Accelerate(hex.None)
	return nil
}

func (rc *raceContext) currentShipThrusts(dir string) error {
	d, err := hex.ParseDirection(dir)
	if err != nil {
		return err
	}
	rc.lastErr = rc.seq.Accelerate(d)
	return nil
}

func (rc *raceContext) currentShipLaunches(dir string) error {
	d, err := hex.ParseDirection(dir)
	if err != nil {
		return err
	}
	rc.lastErr = rc.seq.Launch(d)
	return nil
}

func (rc *raceContext) currentShipLands() error {
	rc.lastErr = rc.seq.Land()
	return nil
}

func (rc *raceContext) currentShipSelfDestructs() error {
	rc.lastErr = rc.seq.SelfDestruct()
	return nil
}

func (rc *raceContext) theTurnSettles() error {
	for i := 0; i < 10; i++ {
		before := rc.seq.State()
		if before != game.Moving && before != game.TurnDone {
			return nil
		}
		if err := rc.seq.Update(); err != nil {
			return err
		}
		if rc.seq.State() == before {
			return nil
		}
	}
	return nil
}

func (rc *raceContext) thePlayerDismisses() error {
	_, _, rc.lastErr = rc.seq.Dismiss()
	return nil
}

func (rc *raceContext) thePlayerAccepts() error {
	rc.lastErr = rc.seq.ResolveGravity(true)
	return nil
}

func (rc *raceContext) thePlayerDeclines() error {
	rc.lastErr = rc.seq.ResolveGravity(false)
	return nil
}

// Then steps

func (rc *raceContext) theTurnOrderShouldBe(turns int, expected string) error {
	var got []string
	for i := 0; i < turns; i++ {
		got = append(got, rc.game.CurrentPlayer().Name())
		if err := rc.seq.Accelerate(hex.None); err != nil {
			return err
		}
		if err := rc.theTurnSettles(); err != nil {
			return err
		}
	}
	if strings.Join(got, ", ") != expected {
		return fmt.Errorf("expected turn order %q, got %q", expected, strings.Join(got, ", "))
	}
	return nil
}

func (rc *raceContext) theRoundShouldBe(expected int) error {
	if rc.game.Round() != expected {
		return fmt.Errorf("expected round %d, got %d", expected, rc.game.Round())
	}
	return nil
}

func (rc *raceContext) currentShipBelongsTo(name string) error {
	if got := rc.game.CurrentPlayer().Name(); got != name {
		return fmt.Errorf("expected %s to move, got %s", name, got)
	}
	return nil
}

func (rc *raceContext) theTurnStateShouldBe(expected string) error {
	if got := rc.seq.State().String(); got != expected {
		return fmt.Errorf("expected turn state %s, got %s", expected, got)
	}
	return nil
}

func (rc *raceContext) theLastCommandShouldFail() error {
	if rc.lastErr == nil {
		return fmt.Errorf("expected the last command to fail, but it succeeded")
	}
	return nil
}

func (rc *raceContext) playerShouldBe(name, state string) error {
	p, err := rc.playerNamed(name)
	if err != nil {
		return err
	}
	if p.State().String() != state {
		return fmt.Errorf("expected %s to be %s, got %s", name, state, p.State())
	}
	return nil
}

func (rc *raceContext) theGameSummaryShouldBe(expected string) error {
	if got := rc.game.Summary(); got != expected {
		return fmt.Errorf("expected summary %q, got %q", expected, got)
	}
	return nil
}

func (rc *raceContext) theStatusOfShouldBe(name, expected string) error {
	p, err := rc.playerNamed(name)
	if err != nil {
		return err
	}
	if got := rc.game.PlayerStatus(p); got != expected {
		return fmt.Errorf("expected status %q, got %q", expected, got)
	}
	return nil
}

func (rc *raceContext) aNotificationShouldBeShowing(kind, message string) error {
	n, ok := rc.seq.Notifications().Current()
	if !ok {
		return fmt.Errorf("no notification is showing")
	}
	if n.Kind.String() != kind || n.Message != message {
		return fmt.Errorf("expected %s notification %q, got %s %q", kind, message, n.Kind, n.Message)
	}
	return nil
}

func (rc *raceContext) shipFor(name string) (*navigation.Ship, error) {
	p, err := rc.playerNamed(name)
	if err != nil {
		return nil, err
	}
	return p.Ship(), nil
}

func (rc *raceContext) shipShouldBeAt(name string, x, y int) error {
	s, err := rc.shipFor(name)
	if err != nil {
		return err
	}
	if s.Position() != hex.Pt(x, y) {
		return fmt.Errorf("expected %s at (%d,%d), got %s", name, x, y, s.Position())
	}
	return nil
}

func (rc *raceContext) shipShouldHaveVelocity(name string, x, y int) error {
	s, err := rc.shipFor(name)
	if err != nil {
		return err
	}
	if s.Velocity() != hex.Pt(x, y) {
		return fmt.Errorf("expected %s velocity (%d,%d), got %s", name, x, y, s.Velocity())
	}
	return nil
}

func (rc *raceContext) shipShouldBeInState(name, state string) error {
	s, err := rc.shipFor(name)
	if err != nil {
		return err
	}
	if s.State().String() != state {
		return fmt.Errorf("expected %s's ship to be %s, got %s", name, state, s.State())
	}
	return nil
}

func (rc *raceContext) shipShouldHaveFuel(name string, fuel int) error {
	s, err := rc.shipFor(name)
	if err != nil {
		return err
	}
	if s.Fuel().Current != fuel {
		return fmt.Errorf("expected %s to have %d fuel, got %d", name, fuel, s.Fuel().Current)
	}
	return nil
}

// theShipsShouldBe checks every row of a racer/state/fuel table
func (rc *raceContext) theShipsShouldBe(table *godog.Table) error {
	for _, row := range table.Rows[1:] {
		name := cellValue(table, row, "racer")
		if err := rc.shipShouldBeInState(name, cellValue(table, row, "state")); err != nil {
			return err
		}
		if fuel := cellValue(table, row, "fuel"); fuel != "" {
			var want int
			if _, err := fmt.Sscanf(fuel, "%d", &want); err != nil {
				return fmt.Errorf("bad fuel %q for %s", fuel, name)
			}
			if err := rc.shipShouldHaveFuel(name, want); err != nil {
				return err
			}
		}
	}
	return nil
}

// cellValue gets a cell by column name, using the first row as the header
func cellValue(table *godog.Table, row *messages.PickleTableRow, column string) string {
	if len(table.Rows) == 0 {
		return ""
	}
	for i, header := range table.Rows[0].Cells {
		if header.Value == column && i < len(row.Cells) {
			return row.Cells[i].Value
		}
	}
	return ""
}

func (rc *raceContext) shipShouldBeDisabledFor(name string, turns int) error {
	s, err := rc.shipFor(name)
	if err != nil {
		return err
	}
	if s.DisabledTurns() != turns {
		return fmt.Errorf("expected %s disabled for %d turns, got %d", name, turns, s.DisabledTurns())
	}
	return nil
}

func InitializeRaceScenario(ctx *godog.ScenarioContext) {
	rc := &raceContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		rc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the proving ground board$`, rc.theProvingGroundBoard)
	ctx.Step(`^racers "([^"]*)"$`, rc.racersNamed)
	ctx.Step(`^"([^"]*)"'s ship is destroyed$`, rc.shipIsDestroyed)
	ctx.Step(`^"([^"]*)"'s ship is flying at \((-?\d+), (-?\d+)\) with velocity \((-?\d+), (-?\d+)\)$`, rc.shipIsFlying)
	ctx.Step(`^"([^"]*)"'s ship is disabled for (\d+) turns$`, rc.shipIsDisabledFor)
	ctx.Step(`^"([^"]*)"'s only remaining goal is "([^"]*)"$`, rc.onlyRemainingGoal)
	ctx.Step(`^the dice will roll ([\d, ]+)$`, rc.theDiceWillRoll)

	// When steps
	ctx.Step(`^the race begins$`, rc.theRaceBegins)
	ctx.Step(`^the current ship coasts$`, rc.currentShipCoasts)
	ctx.Step(`^the current ship thrusts "([^"]*)"$`, rc.currentShipThrusts)
	ctx.Step(`^the current ship launches "([^"]*)"$`, rc.currentShipLaunches)
	ctx.Step(`^the current ship lands$`, rc.currentShipLands)
	ctx.Step(`^the current ship self destructs$`, rc.currentShipSelfDestructs)
	ctx.Step(`^the turn settles$`, rc.theTurnSettles)
	ctx.Step(`^the player dismisses the notification$`, rc.thePlayerDismisses)
	ctx.Step(`^the player accepts the half gravity$`, rc.thePlayerAccepts)
	ctx.Step(`^the player declines the half gravity$`, rc.thePlayerDeclines)

	// Then steps
	ctx.Step(`^the turn order for the next (\d+) turns should be "([^"]*)"$`, rc.theTurnOrderShouldBe)
	ctx.Step(`^the round should be (\d+)$`, rc.theRoundShouldBe)
	ctx.Step(`^the current ship should belong to "([^"]*)"$`, rc.currentShipBelongsTo)
	ctx.Step(`^the turn state should be "([^"]*)"$`, rc.theTurnStateShouldBe)
	ctx.Step(`^the last command should fail$`, rc.theLastCommandShouldFail)
	ctx.Step(`^"([^"]*)" should be "([^"]*)"$`, rc.playerShouldBe)
	ctx.Step(`^the game summary should be "([^"]*)"$`, rc.theGameSummaryShouldBe)
	ctx.Step(`^the status of "([^"]*)" should be "([^"]*)"$`, rc.theStatusOfShouldBe)
	ctx.Step(`^a "([^"]*)" notification should be showing with "([^"]*)"$`, rc.aNotificationShouldBeShowing)
	ctx.Step(`^"([^"]*)"'s ship should be at \((-?\d+), (-?\d+)\)$`, rc.shipShouldBeAt)
	ctx.Step(`^"([^"]*)"'s ship should have velocity \((-?\d+), (-?\d+)\)$`, rc.shipShouldHaveVelocity)
	ctx.Step(`^"([^"]*)"'s ship should be "([^"]*)"$`, rc.shipShouldBeInState)
	ctx.Step(`^"([^"]*)"'s ship should have (\d+) fuel$`, rc.shipShouldHaveFuel)
	ctx.Step(`^"([^"]*)"'s ship should be disabled for (\d+) turns$`, rc.shipShouldBeDisabledFor)
	ctx.Step(`^the ships should be:$`, rc.theShipsShouldBe)
}
