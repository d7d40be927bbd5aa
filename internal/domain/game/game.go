package game

import (
	"fmt"
	"strings"

	"github.com/spacerover/spacerover-go/internal/domain/board"
	"github.com/spacerover/spacerover-go/internal/domain/navigation"
	"github.com/spacerover/spacerover-go/internal/domain/player"
	"github.com/spacerover/spacerover-go/internal/domain/shared"
)

// Game aggregate - one race: the board, the racers in registration order
// and the turn counter
//
// Invariants:
// - 1 to player.MaxPlayers players, each with one ship
// - turnCount only grows; the ship to move is turnCount mod ships
// - a finished game never changes again
type Game struct {
	id        shared.GameID
	scenario  board.Scenario
	board     *board.Board
	players   []*player.Player
	turnCount int
	seed      uint64
	lifecycle *Lifecycle
}

// NewGame creates a game that has not started yet
func NewGame(
	id shared.GameID,
	scenario board.Scenario,
	b *board.Board,
	players []*player.Player,
	seed uint64,
	clock shared.Clock,
) (*Game, error) {
	g := &Game{
		id:        id,
		scenario:  scenario,
		board:     b,
		players:   players,
		seed:      seed,
		lifecycle: NewLifecycle(clock),
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// ReconstructGame rebuilds a game from persisted state
func ReconstructGame(
	id shared.GameID,
	scenario board.Scenario,
	b *board.Board,
	players []*player.Player,
	turnCount int,
	seed uint64,
	lifecycle *Lifecycle,
) (*Game, error) {
	g := &Game{
		id:        id,
		scenario:  scenario,
		board:     b,
		players:   players,
		turnCount: turnCount,
		seed:      seed,
		lifecycle: lifecycle,
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) validate() error {
	if g.id.IsZero() {
		return shared.NewValidationError("game_id", "cannot be empty")
	}
	if g.board == nil {
		return shared.NewValidationError("board", "cannot be nil")
	}
	if len(g.players) == 0 {
		return shared.NewValidationError("players", "at least one player is required")
	}
	if len(g.players) > player.MaxPlayers {
		return shared.NewValidationError("players",
			fmt.Sprintf("at most %d players, got %d", player.MaxPlayers, len(g.players)))
	}
	if g.turnCount < 0 {
		return shared.NewValidationError("turn_count", "cannot be negative")
	}
	if g.lifecycle == nil {
		return shared.NewValidationError("lifecycle", "cannot be nil")
	}
	return nil
}

func (g *Game) ID() shared.GameID {
	return g.id
}

func (g *Game) Scenario() board.Scenario {
	return g.scenario
}

func (g *Game) Board() *board.Board {
	return g.board
}

func (g *Game) Players() []*player.Player {
	return g.players
}

func (g *Game) TurnCount() int {
	return g.turnCount
}

func (g *Game) Seed() uint64 {
	return g.seed
}

func (g *Game) Lifecycle() *Lifecycle {
	return g.lifecycle
}

func (g *Game) Status() Status {
	return g.lifecycle.Status()
}

// Ships lists every ship in registration order
func (g *Game) Ships() []*navigation.Ship {
	out := make([]*navigation.Ship, 0, len(g.players))
	for _, p := range g.players {
		out = append(out, p.Ship())
	}
	return out
}

// CurrentPlayer is the player whose ship moves this turn
func (g *Game) CurrentPlayer() *player.Player {
	return g.players[g.turnCount%len(g.players)]
}

func (g *Game) CurrentShip() *navigation.Ship {
	return g.CurrentPlayer().Ship()
}

// Round counts full passes through the registration order, starting at 1.
// Destroyed ships still take up their slot.
func (g *Game) Round() int {
	return g.turnCount/len(g.players) + 1
}

// LiveShips counts the ships not destroyed
func (g *Game) LiveShips() int {
	n := 0
	for _, p := range g.players {
		if !p.Ship().IsDestroyed() {
			n++
		}
	}
	return n
}

// NextShip advances the turn counter to the next live ship. Returns false
// when no ship is left alive.
func (g *Game) NextShip() bool {
	if g.LiveShips() == 0 {
		return false
	}
	for {
		g.turnCount++
		if !g.CurrentShip().IsDestroyed() {
			g.lifecycle.Touch()
			return true
		}
	}
}

// SkipDestroyed moves off a destroyed current ship, used when resuming.
// Returns false when no ship is left alive.
func (g *Game) SkipDestroyed() bool {
	if !g.CurrentShip().IsDestroyed() {
		return true
	}
	return g.NextShip()
}

// Winner returns the player who won, if any
func (g *Game) Winner() *player.Player {
	for _, p := range g.players {
		if p.State() == player.Won {
			return p
		}
	}
	return nil
}

// PlayerFor returns the player owning the named ship
func (g *Game) PlayerFor(ship *navigation.Ship) *player.Player {
	for _, p := range g.players {
		if p.Ship() == ship {
			return p
		}
	}
	return nil
}

func (g *Game) Start() error {
	return g.lifecycle.Start()
}

func (g *Game) Finish() error {
	return g.lifecycle.Finish()
}

// Summary is the one line description shown in game lists
func (g *Game) Summary() string {
	switch g.lifecycle.Status() {
	case StatusNotStarted:
		return "Not started"
	case StatusInProgress:
		return fmt.Sprintf("In turn %d", g.Round())
	}
	if w := g.Winner(); w != nil {
		return fmt.Sprintf("%s won in %d turns", w.Name(), g.Round())
	}
	return "Everyone died."
}

// PlayerStatus describes how a player is doing: the goals still missing,
// how they died or when they won
func (g *Game) PlayerStatus(p *player.Player) string {
	switch p.State() {
	case player.Lost:
		return p.Ship().DeathReason()
	case player.Won:
		return fmt.Sprintf("Won in %d turns.", g.Round())
	}
	return "Missing: " + strings.Join(p.Ship().RaceGoals(), ", ")
}
