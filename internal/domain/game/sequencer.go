package game

import (
	"fmt"

	"github.com/spacerover/spacerover-go/internal/domain/board"
	"github.com/spacerover/spacerover-go/internal/domain/hex"
	"github.com/spacerover/spacerover-go/internal/domain/navigation"
	"github.com/spacerover/spacerover-go/internal/domain/shared"
)

// TurnState is the phase of the current ship's turn
type TurnState int

const (
	WaitingForDirection TurnState = iota
	Moving
	// AwaitingGravityDecision pauses a move until the player accepts or
	// declines an optional half gravity pull
	AwaitingGravityDecision
	TurnDone
	GameOver
)

func (s TurnState) String() string {
	switch s {
	case WaitingForDirection:
		return "WaitingForDirection"
	case Moving:
		return "Moving"
	case AwaitingGravityDecision:
		return "AwaitingGravityDecision"
	case TurnDone:
		return "TurnDone"
	case GameOver:
		return "GameOver"
	}
	return fmt.Sprintf("TurnState(%d)", int(s))
}

// Observer is told about everything a player needs to see. Calls happen
// synchronously inside the sequencer's step.
type Observer interface {
	UpdateShipInformation(text string)
	StartTurn(ship *navigation.Ship)
	ShipMoving(ship *navigation.Ship)
	ShipDoneMoving(ship *navigation.Ship)
	Crash(ship *navigation.Ship, reason string)
	OptionalHalfGravity(ship *navigation.Ship, well board.Contact)
	MoveEvent(ship *navigation.Ship, event navigation.Event)
	EndGame(g *Game)
}

// NopObserver ignores every callback
type NopObserver struct{}

func (NopObserver) UpdateShipInformation(string) {}
func (NopObserver) StartTurn(*navigation.Ship) {}
func (NopObserver) ShipMoving(*navigation.Ship) {}
func (NopObserver) ShipDoneMoving(*navigation.Ship) {}
func (NopObserver) Crash(*navigation.Ship, string) {}
func (NopObserver) OptionalHalfGravity(*navigation.Ship, board.Contact) {}
func (NopObserver) MoveEvent(*navigation.Ship, navigation.Event) {}
func (NopObserver) EndGame(*Game) {}

// Animations reports whether the presentation has caught up with the last
// move. A turn does not finish until it has.
type Animations interface {
	Settled() bool
}

type alwaysSettled struct{}

func (alwaysSettled) Settled() bool { return true }

// SequencerOption configures a Sequencer
type SequencerOption func(*Sequencer)

// WithObserver sets the observer notified of turn events
func WithObserver(o Observer) SequencerOption {
	return func(s *Sequencer) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithAnimations gates turn completion on the presentation layer
func WithAnimations(a Animations) SequencerOption {
	return func(s *Sequencer) {
		if a != nil {
			s.animations = a
		}
	}
}

// WithBurn sets the fuel used per thrust
func WithBurn(burn int) SequencerOption {
	return func(s *Sequencer) {
		if burn >= 0 {
			s.burn = burn
		}
	}
}

// Sequencer runs the turn state machine for one game. It is not safe for
// concurrent use; callers serialize commands and updates.
type Sequencer struct {
	game       *Game
	dice       shared.Random
	state      TurnState
	move       *navigation.Move
	queue      *NotificationQueue
	observer   Observer
	animations Animations
	burn       int
}

// NewSequencer creates a sequencer. Call Begin before sending commands.
func NewSequencer(g *Game, dice shared.Random, opts ...SequencerOption) *Sequencer {
	s := &Sequencer{
		game:       g,
		dice:       dice,
		state:      TurnDone,
		queue:      NewNotificationQueue(),
		observer:   NopObserver{},
		animations: alwaysSettled{},
		burn:       navigation.DefaultBurn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sequencer) Game() *Game { return s.game }
func (s *Sequencer) State() TurnState { return s.state }
func (s *Sequencer) Notifications() *NotificationQueue { return s.queue }

// Begin starts a new game or resumes a saved one at its current ship
func (s *Sequencer) Begin() error {
	switch s.game.Status() {
	case StatusFinished:
		s.state = GameOver
		return nil
	case StatusNotStarted:
		if err := s.game.Start(); err != nil {
			return err
		}
	}
	if !s.game.SkipDestroyed() {
		return s.gameOver()
	}
	s.ready()
	return nil
}

// Accelerate thrusts the current ship (None to coast) and moves it. A
// landed ship may pass its turn with None.
func (s *Sequencer) Accelerate(d hex.Direction) error {
	if err := s.expect("Accelerate", WaitingForDirection); err != nil {
		return err
	}
	ship := s.game.CurrentShip()
	if ship.IsLanded() && d == hex.None {
		s.move = nil
		s.state = Moving
		s.observer.ShipMoving(ship)
		return nil
	}
	if err := ship.Accelerate(d, s.burn); err != nil {
		return err
	}
	move, err := ship.Advance(s.game.Board(), s.dice)
	if err != nil {
		return err
	}
	s.move = move
	s.state = Moving
	s.observer.ShipMoving(ship)
	s.resolve(move.Resolve())
	return nil
}

// Launch lifts the current ship off the body it is landed on
func (s *Sequencer) Launch(d hex.Direction) error {
	if err := s.expect("Launch", WaitingForDirection); err != nil {
		return err
	}
	ship := s.game.CurrentShip()
	if err := ship.Launch(d); err != nil {
		return err
	}
	s.move = nil
	s.state = Moving
	s.observer.ShipMoving(ship)
	return nil
}

// Land sets the current ship down on the body it is orbiting
func (s *Sequencer) Land() error {
	if err := s.expect("Land", WaitingForDirection); err != nil {
		return err
	}
	ship := s.game.CurrentShip()
	if ship.State() != navigation.ShipOrbit {
		return shared.NewInvalidShipStateError(ship.Name(), ship.State().String(), "must be in orbit to land")
	}
	if err := ship.LandOn(ship.Orbiting()); err != nil {
		return err
	}
	s.move = nil
	s.state = Moving
	s.observer.ShipMoving(ship)
	return nil
}

// SelfDestruct scuttles the current ship
func (s *Sequencer) SelfDestruct() error {
	if err := s.expect("SelfDestruct", WaitingForDirection); err != nil {
		return err
	}
	ship := s.game.CurrentShip()
	reason := navigation.SelfDestructReason(ship.Name())
	ship.Crash(reason)
	s.move = nil
	s.state = Moving
	s.shipDeath(ship, reason)
	return nil
}

// ResolveGravity answers the pending half gravity question and resumes
// the interrupted move
func (s *Sequencer) ResolveGravity(accept bool) error {
	if err := s.expect("ResolveGravity", AwaitingGravityDecision); err != nil {
		return err
	}
	events, err := s.move.Decide(accept)
	if err != nil {
		return err
	}
	s.queue.Dismiss()
	s.state = Moving
	s.resolve(events)
	return nil
}

// Dismiss acknowledges the presented notification. Gravity questions must
// be answered with ResolveGravity instead.
func (s *Sequencer) Dismiss() (Notification, bool, error) {
	current, ok := s.queue.Current()
	if !ok {
		return Notification{}, false, shared.NewInvalidCommandError("Dismiss", "no notification is showing")
	}
	if current.Kind == NotificationHalfGravity {
		return Notification{}, false, shared.NewInvalidCommandError("Dismiss", "a gravity decision is pending")
	}
	next, more := s.queue.Dismiss()
	return next, more, nil
}

// Update is the per-tick step. It finishes a move once the presentation
// has settled and every notification is acknowledged, then hands the turn
// to the next live ship. It fails only if the game cannot be finished.
func (s *Sequencer) Update() error {
	switch s.state {
	case Moving:
		if !s.animations.Settled() || s.queue.HasPending() {
			return nil
		}
		ship := s.game.CurrentShip()
		s.move = nil
		if ship.IsDestroyed() {
			if s.game.LiveShips() == 0 {
				return s.gameOver()
			}
			s.state = TurnDone
			return nil
		}
		ship.EndTurn()
		s.observer.ShipDoneMoving(ship)
		if ship.HasFinishedRace() {
			s.game.PlayerFor(ship).MarkWon()
			return s.gameOver()
		}
		s.state = TurnDone

	case TurnDone:
		if !s.game.NextShip() {
			return s.gameOver()
		}
		s.ready()
	}
	return nil
}

func (s *Sequencer) ready() {
	ship := s.game.CurrentShip()
	s.state = WaitingForDirection
	ship.StartTurn()
	s.observer.StartTurn(ship)
	s.observer.UpdateShipInformation(ship.Information())
}

func (s *Sequencer) resolve(events []navigation.Event) {
	ship := s.game.CurrentShip()
	for _, ev := range events {
		s.observer.MoveEvent(ship, ev)
		if ev.Kind == navigation.EventCrash {
			s.shipDeath(ship, ev.Reason)
		}
	}
	if s.move == nil {
		return
	}
	if well, ok := s.move.Pending(); ok {
		s.state = AwaitingGravityDecision
		s.queue.Push(Notification{
			Kind:    NotificationHalfGravity,
			Ship:    ship.Name(),
			Message: fmt.Sprintf("Accept half gravity toward %s?", well.Body.Name()),
			Well:    well,
		})
		s.observer.OptionalHalfGravity(ship, well)
	}
}

func (s *Sequencer) shipDeath(ship *navigation.Ship, reason string) {
	if p := s.game.PlayerFor(ship); p != nil {
		p.MarkLost()
	}
	s.queue.Push(Notification{Kind: NotificationCrash, Ship: ship.Name(), Message: reason})
	s.observer.Crash(ship, reason)
}

func (s *Sequencer) gameOver() error {
	s.state = GameOver
	if err := s.game.Finish(); err != nil {
		return fmt.Errorf("failed to finish game: %w", err)
	}
	s.observer.EndGame(s.game)
	return nil
}

func (s *Sequencer) expect(command string, want TurnState) error {
	if s.state != want {
		return shared.NewInvalidCommandError(command, s.state.String())
	}
	return nil
}
