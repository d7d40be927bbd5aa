package simulation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/spacerover/spacerover-go/internal/domain/board"
	"github.com/spacerover/spacerover-go/internal/domain/game"
	"github.com/spacerover/spacerover-go/internal/domain/hex"
	"github.com/spacerover/spacerover-go/internal/domain/navigation"
	"github.com/spacerover/spacerover-go/internal/domain/shared"
)

// Option configures a Session
type Option func(*Session)

// WithObserver adds an observer. Observers are called in the order added,
// synchronously, while the session lock is held; they must not call back
// into the session.
func WithObserver(o game.Observer) Option {
	return func(s *Session) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// WithMetrics records gameplay metrics
func WithMetrics(m MetricsRecorder) Option {
	return func(s *Session) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithLogger sets the session logger
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithRepository saves the game every time a turn passes and when it ends
func WithRepository(repo game.GameRepository) Option {
	return func(s *Session) {
		s.repo = repo
	}
}

// WithDice replaces the hazard dice. By default every turn rolls from a
// stream seeded by the game seed and turn count, so a resumed game rolls
// the same as one played straight through.
func WithDice(dice shared.Random) Option {
	return func(s *Session) {
		s.dice = dice
	}
}

// WithAnimations gates turn completion on the presentation layer
func WithAnimations(a game.Animations) Option {
	return func(s *Session) {
		s.animations = a
	}
}

// WithBurn sets the fuel used per thrust
func WithBurn(burn int) Option {
	return func(s *Session) {
		s.burn = burn
	}
}

// Snapshot is a consistent view of the session between steps
type Snapshot struct {
	GameID       shared.GameID
	Round        int
	State        game.TurnState
	Player       string
	Ship         string
	ShipState    navigation.ShipState
	Information  string
	Notification *game.Notification
	Summary      string
}

// Session owns one running game. Every command and tick goes through its
// lock, so a UI goroutine and a Runner can share it.
type Session struct {
	mu         sync.Mutex
	game       *game.Game
	seq        *game.Sequencer
	dice       shared.Random
	turnDice   *shared.TurnRandom
	animations game.Animations
	burn       int
	observers  []game.Observer
	metrics    MetricsRecorder
	logger     zerolog.Logger
	repo       game.GameRepository
}

// NewSession starts or resumes g. A finished game opens straight into
// GameOver.
func NewSession(g *game.Game, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, shared.NewValidationError("game", "cannot be nil")
	}
	s := &Session{
		game:    g,
		burn:    navigation.DefaultBurn,
		metrics: nopMetrics{},
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.dice == nil {
		s.turnDice = shared.NewTurnRandom(g.Seed())
		s.dice = s.turnDice
	}
	s.logger = s.logger.With().Str("game_id", g.ID().Short()).Logger()

	s.seq = game.NewSequencer(g, s.dice,
		game.WithObserver(&relay{s: s}),
		game.WithAnimations(s.animations),
		game.WithBurn(s.burn),
	)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.seq.Begin(); err != nil {
		return nil, fmt.Errorf("failed to begin game: %w", err)
	}
	s.logger.Info().
		Str("scenario", g.Scenario().String()).
		Int("racers", len(g.Players())).
		Int("round", g.Round()).
		Msg("session started")
	return s, nil
}

// Game returns the game being played. Read it only between steps.
func (s *Session) Game() *game.Game {
	return s.game
}

func (s *Session) State() game.TurnState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq.State()
}

// Done reports whether the game is over
func (s *Session) Done() bool {
	return s.State() == game.GameOver
}

// Snapshot captures what a UI needs to draw the current step
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.game.CurrentPlayer()
	snap := Snapshot{
		GameID:      s.game.ID(),
		Round:       s.game.Round(),
		State:       s.seq.State(),
		Player:      p.Name(),
		Ship:        p.Ship().Name(),
		ShipState:   p.Ship().State(),
		Information: p.Ship().Information(),
		Summary:     s.game.Summary(),
	}
	if n, ok := s.seq.Notifications().Current(); ok {
		snap.Notification = &n
	}
	return snap
}

// Options lists the moves open to the current ship, with landing and crash
// hints. Empty unless the session is waiting for a direction.
func (s *Session) Options() []game.Option {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq.State() != game.WaitingForDirection {
		return nil
	}
	return game.Options(s.game.Board(), s.game.CurrentShip())
}

// Accelerate thrusts the current ship in d and moves it. None coasts, or
// passes the turn for a landed ship.
func (s *Session) Accelerate(d hex.Direction) error {
	return s.command("Accelerate", func(ship *navigation.Ship) error {
		before := ship.Fuel().Current
		if err := s.seq.Accelerate(d); err != nil {
			return err
		}
		if burned := before - ship.Fuel().Current; burned > 0 {
			s.metrics.RecordFuelBurned(ship.Owner(), burned)
		}
		s.logger.Debug().
			Str("ship", ship.Name()).
			Str("direction", d.String()).
			Str("position", ship.Position().String()).
			Str("velocity", ship.Velocity().String()).
			Msg("ship moved")
		return nil
	})
}

// Launch lifts the current ship off its body
func (s *Session) Launch(d hex.Direction) error {
	return s.command("Launch", func(ship *navigation.Ship) error {
		if err := s.seq.Launch(d); err != nil {
			return err
		}
		s.logger.Debug().Str("ship", ship.Name()).Str("direction", d.String()).Msg("ship launched")
		return nil
	})
}

// Land sets the current ship down on the body it orbits
func (s *Session) Land() error {
	return s.command("Land", func(ship *navigation.Ship) error {
		if err := s.seq.Land(); err != nil {
			return err
		}
		s.logger.Info().Str("ship", ship.Name()).Str("body", ship.Orbiting().Name()).Msg("ship landed")
		return nil
	})
}

// SelfDestruct scuttles the current ship
func (s *Session) SelfDestruct() error {
	return s.command("SelfDestruct", func(ship *navigation.Ship) error {
		if err := s.seq.SelfDestruct(); err != nil {
			return err
		}
		s.metrics.RecordCrash(CauseSelfDestruct)
		return nil
	})
}

// ResolveGravity answers a pending half gravity offer
func (s *Session) ResolveGravity(accept bool) error {
	return s.command("ResolveGravity", func(ship *navigation.Ship) error {
		if err := s.seq.ResolveGravity(accept); err != nil {
			return err
		}
		s.metrics.RecordGravityDecision(accept)
		s.logger.Debug().Str("ship", ship.Name()).Bool("accepted", accept).Msg("half gravity decided")
		return nil
	})
}

// Dismiss acknowledges the notification on screen and returns the next one
func (s *Session) Dismiss() (game.Notification, bool, error) {
	var next game.Notification
	var more bool
	err := s.command("Dismiss", func(*navigation.Ship) error {
		var err error
		next, more, err = s.seq.Dismiss()
		return err
	})
	return next, more, err
}

// Update runs one tick. With a repository configured the game is saved
// whenever a new turn starts and once when it ends.
func (s *Session) Update(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.seq.State()
	if err := s.seq.Update(); err != nil {
		s.logger.Error().Err(err).Msg("failed to advance turn")
		return err
	}
	after := s.seq.State()
	if after == before {
		return nil
	}
	if !s.betweenTurns() {
		return nil
	}
	return s.save(ctx)
}

// Save persists the game now. Only a game between turns can be saved: a
// move in progress or a pending gravity decision is rejected with an
// InvalidCommandError, and the last save (made when the turn started)
// stays the resume point.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.betweenTurns() {
		return shared.NewInvalidCommandError("Save", s.seq.State().String())
	}
	return s.save(ctx)
}

// CanSave reports whether Save would write the game
func (s *Session) CanSave() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.betweenTurns()
}

func (s *Session) betweenTurns() bool {
	state := s.seq.State()
	return state == game.WaitingForDirection || state == game.GameOver
}

func (s *Session) save(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	if err := s.repo.Save(ctx, s.game); err != nil {
		s.logger.Error().Err(err).Msg("failed to save game")
		return fmt.Errorf("failed to save game: %w", err)
	}
	s.logger.Debug().Int("turn", s.game.TurnCount()).Msg("game saved")
	return nil
}

func (s *Session) command(name string, run func(ship *navigation.Ship) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	err := run(s.game.CurrentShip())
	s.metrics.RecordCommandExecution(name, time.Since(start).Seconds(), err == nil)
	if err != nil {
		s.logger.Warn().Err(err).Str("command", name).Str("state", s.seq.State().String()).Msg("command rejected")
	}
	return err
}

// relay is the sequencer's observer. It logs and records metrics, then
// fans out to the session's observers.
type relay struct {
	s *Session
}

func (r *relay) each(fn func(game.Observer)) {
	for _, o := range r.s.observers {
		fn(o)
	}
}

func (r *relay) UpdateShipInformation(text string) {
	r.each(func(o game.Observer) { o.UpdateShipInformation(text) })
}

func (r *relay) StartTurn(ship *navigation.Ship) {
	if r.s.turnDice != nil {
		r.s.turnDice.StartTurn(r.s.game.TurnCount())
	}
	r.s.metrics.RecordTurn(r.s.game.Scenario().String())
	r.s.logger.Debug().
		Str("ship", ship.Name()).
		Int("round", r.s.game.Round()).
		Str("state", ship.State().String()).
		Msg("turn started")
	r.each(func(o game.Observer) { o.StartTurn(ship) })
}

func (r *relay) ShipMoving(ship *navigation.Ship) {
	r.each(func(o game.Observer) { o.ShipMoving(ship) })
}

func (r *relay) ShipDoneMoving(ship *navigation.Ship) {
	r.each(func(o game.Observer) { o.ShipDoneMoving(ship) })
}

func (r *relay) Crash(ship *navigation.Ship, reason string) {
	r.s.logger.Info().Str("ship", ship.Name()).Str("reason", reason).Msg("ship destroyed")
	r.each(func(o game.Observer) { o.Crash(ship, reason) })
}

func (r *relay) OptionalHalfGravity(ship *navigation.Ship, well board.Contact) {
	r.s.logger.Debug().Str("ship", ship.Name()).Str("body", well.Body.Name()).Msg("half gravity offered")
	r.each(func(o game.Observer) { o.OptionalHalfGravity(ship, well) })
}

func (r *relay) MoveEvent(ship *navigation.Ship, event navigation.Event) {
	switch event.Kind {
	case navigation.EventHazard:
		r.s.metrics.RecordHazardRoll(event.Hazard.Die, event.Hazard.Disabled)
		r.s.logger.Debug().
			Str("ship", ship.Name()).
			Int("die", event.Hazard.Die).
			Int("disabled", ship.DisabledTurns()).
			Msg("asteroid hazard rolled")
	case navigation.EventCrash:
		cause := CauseSurface
		if event.Body != nil && event.Body.IsAsteroid() {
			cause = CauseAsteroids
		}
		r.s.metrics.RecordCrash(cause)
	case navigation.EventGoalReached:
		r.s.logger.Info().Str("ship", ship.Name()).Str("body", event.Body.Name()).Msg("race goal reached")
	case navigation.EventOrbit:
		r.s.logger.Debug().Str("ship", ship.Name()).Str("body", event.Body.Name()).Msg("orbit established")
	}
	r.each(func(o game.Observer) { o.MoveEvent(ship, event) })
}

func (r *relay) EndGame(g *game.Game) {
	outcome := OutcomeAllLost
	event := r.s.logger.Info().Int("round", g.Round())
	if w := g.Winner(); w != nil {
		outcome = OutcomeWon
		event = event.Str("winner", w.Name())
	}
	r.s.metrics.RecordGameFinished(outcome, g.Round())
	event.Str("outcome", outcome).Msg("game over")
	r.each(func(o game.Observer) { o.EndGame(g) })
}
