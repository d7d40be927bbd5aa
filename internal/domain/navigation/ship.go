package navigation

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/spacerover/spacerover-go/internal/domain/board"
	"github.com/spacerover/spacerover-go/internal/domain/hex"
	"github.com/spacerover/spacerover-go/internal/domain/shared"
)

// ShipState is the ship's flight state. The numeric values are the
// persisted codes.
type ShipState int16

const (
	ShipLanded ShipState = iota
	ShipOrbit
	ShipFlight
	ShipDestroyed
)

var shipStateNames = map[ShipState]string{
	ShipLanded:    "Landed",
	ShipOrbit:     "Orbit",
	ShipFlight:    "Flight",
	ShipDestroyed: "Destroyed",
}

func ShipStateFromCode(code int16) (ShipState, error) {
	s := ShipState(code)
	if _, ok := shipStateNames[s]; !ok {
		return ShipLanded, fmt.Errorf("invalid ship state code: %d", code)
	}
	return s, nil
}

func (s ShipState) Code() int16 { return int16(s) }

func (s ShipState) String() string {
	if name, ok := shipStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ShipState(%d)", int16(s))
}

const (
	// DefaultBurn is the fuel used by one thrust
	DefaultBurn = 1

	// CrashDisabledTurns is the disabled-turn count at which a ship burns up
	CrashDisabledTurns = 6
)

// Ship entity - one player's rover and its physical state
//
// Invariants:
// - Name must be non-empty
// - Fuel never drops below zero; an empty tank disables thrust but does not
//   destroy the ship
// - Destroyed is terminal: every mutating operation is rejected afterwards
//
// State machine:
// - Landed -> Launch() -> Flight
// - Flight -> gravity capture -> Orbit
// - Orbit -> Accelerate() -> Flight
// - Orbit/Flight -> LandOn() -> Landed
// - any -> Crash() -> Destroyed
type Ship struct {
	name            string
	owner           string
	position        hex.SlantPoint
	velocity        hex.SlantPoint
	direction       hex.Direction
	fuel            *shared.Fuel
	disabledTurns   int
	state           ShipState
	orbiting        *board.Body
	raceGoals       map[string]*board.Body
	deathReason     string
	halfGravityHits int
}

// NewShip creates a ship landed on its home world with a full tank
func NewShip(name, owner string, home *board.Body, fuelCapacity int, raceGoals []*board.Body) (*Ship, error) {
	if home == nil {
		return nil, shared.NewInvalidShipDataError(name, "home world cannot be nil")
	}
	s := &Ship{
		name:      name,
		owner:     owner,
		direction: hex.West,
		fuel:      shared.FullTank(fuelCapacity),
		raceGoals: make(map[string]*board.Body, len(raceGoals)),
	}
	for _, g := range raceGoals {
		s.raceGoals[g.Name()] = g
	}
	s.landOn(home)
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ReconstructShip rebuilds a ship from persisted state without re-deriving
// anything
func ReconstructShip(
	name, owner string,
	state ShipState,
	position, velocity hex.SlantPoint,
	direction hex.Direction,
	fuel *shared.Fuel,
	disabledTurns int,
	orbiting *board.Body,
	raceGoals []*board.Body,
	deathReason string,
) (*Ship, error) {
	s := &Ship{
		name:          name,
		owner:         owner,
		position:      position,
		velocity:      velocity,
		direction:     direction,
		fuel:          fuel,
		disabledTurns: disabledTurns,
		state:         state,
		orbiting:      orbiting,
		raceGoals:     make(map[string]*board.Body, len(raceGoals)),
		deathReason:   deathReason,
	}
	for _, g := range raceGoals {
		s.raceGoals[g.Name()] = g
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Ship) validate() error {
	if s.name == "" {
		return shared.NewInvalidShipDataError(s.name, "ship name cannot be empty")
	}
	if s.fuel == nil {
		return shared.NewInvalidShipDataError(s.name, "fuel cannot be nil")
	}
	if s.fuel.Current < 0 {
		return shared.NewInvalidShipDataError(s.name, "fuel cannot be negative")
	}
	if s.disabledTurns < 0 {
		return shared.NewInvalidShipDataError(s.name, "disabled turns cannot be negative")
	}
	if _, ok := shipStateNames[s.state]; !ok {
		return shared.NewInvalidShipDataError(s.name, fmt.Sprintf("invalid state: %d", s.state))
	}
	if (s.state == ShipLanded || s.state == ShipOrbit) && s.orbiting == nil {
		return shared.NewInvalidShipDataError(s.name, fmt.Sprintf("%s ship needs a body", s.state))
	}
	return nil
}

// Getters

func (s *Ship) Name() string {
	return s.name
}

func (s *Ship) Owner() string {
	return s.owner
}

// FullName is the name shown in turn announcements
func (s *Ship) FullName() string {
	if s.owner == "" {
		return s.name
	}
	return fmt.Sprintf("%s's %s", s.owner, s.name)
}

func (s *Ship) Position() hex.SlantPoint {
	return s.position
}

func (s *Ship) Velocity() hex.SlantPoint {
	return s.velocity
}

// NextPosition is where the ship ends up if nothing changes its velocity
func (s *Ship) NextPosition() hex.SlantPoint {
	return s.position.Add(s.velocity)
}

func (s *Ship) Speed() float64 {
	return s.velocity.Magnitude()
}

func (s *Ship) Direction() hex.Direction {
	return s.direction
}

func (s *Ship) Fuel() *shared.Fuel {
	return s.fuel
}

func (s *Ship) DisabledTurns() int {
	return s.disabledTurns
}

func (s *Ship) State() ShipState {
	return s.state
}

// Orbiting is the body the ship is landed on or orbiting, nil in flight
func (s *Ship) Orbiting() *board.Body {
	return s.orbiting
}

func (s *Ship) DeathReason() string {
	return s.deathReason
}

func (s *Ship) HalfGravityHits() int {
	return s.halfGravityHits
}

func (s *Ship) IsDestroyed() bool {
	return s.state == ShipDestroyed
}

func (s *Ship) IsLanded() bool {
	return s.state == ShipLanded
}

// IsDisabled reports whether thrust is blocked, either by asteroid damage
// or an empty tank
func (s *Ship) IsDisabled() bool {
	return s.fuel.IsEmpty() || s.disabledTurns > 0
}

// RaceGoals returns the names of the bodies still to visit, sorted
func (s *Ship) RaceGoals() []string {
	out := make([]string, 0, len(s.raceGoals))
	for name := range s.raceGoals {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (s *Ship) HasGoal(name string) bool {
	_, ok := s.raceGoals[name]
	return ok
}

// HasFinishedRace reports whether every race goal has been visited
func (s *Ship) HasFinishedRace() bool {
	return len(s.raceGoals) == 0
}

// VisitGoal removes a body from the remaining race goals. Returns true if
// the body was still a goal.
func (s *Ship) VisitGoal(name string) bool {
	if _, ok := s.raceGoals[name]; !ok {
		return false
	}
	delete(s.raceGoals, name)
	return true
}

// Commands

// LandOn puts the ship down on a body it is at or next to. Landing refuels,
// stops the ship and repairs asteroid damage.
func (s *Ship) LandOn(body *board.Body) error {
	if s.state == ShipDestroyed {
		return shared.NewShipDestroyedError(s.name)
	}
	if s.state == ShipLanded {
		return shared.NewInvalidShipStateError(s.name, s.state.String(), "already landed")
	}
	if body == nil || !body.IsLandable() {
		return shared.NewInvalidShipStateError(s.name, s.state.String(), "body is not landable")
	}
	if s.position.Steps(body.Position()) > 1 {
		return shared.NewInvalidShipStateError(s.name, s.state.String(),
			fmt.Sprintf("too far from %s to land", body.Name()))
	}
	if s.disabledTurns > 0 {
		return shared.NewInvalidShipStateError(s.name, s.state.String(), "ship is disabled")
	}
	s.landOn(body)
	return nil
}

func (s *Ship) landOn(body *board.Body) {
	s.state = ShipLanded
	s.fuel = s.fuel.Refill()
	s.position = body.Position()
	s.velocity = hex.Zero
	s.disabledTurns = 0
	s.orbiting = body
}

// Launch lifts off into the gravity well on the given side of the body the
// ship is landed on. The ship starts with the well's pull as its velocity.
func (s *Ship) Launch(d hex.Direction) error {
	if s.state == ShipDestroyed {
		return shared.NewShipDestroyedError(s.name)
	}
	if s.state != ShipLanded {
		return shared.NewInvalidShipStateError(s.name, s.state.String(), "must be landed to launch")
	}
	if d == hex.None {
		return shared.NewInvalidShipStateError(s.name, s.state.String(), "launch needs a direction")
	}
	s.state = ShipFlight
	s.position = s.orbiting.Position().Add(d.Unit())
	s.velocity = d.Invert().Unit()
	s.direction = d
	s.orbiting = nil
	return nil
}

// Accelerate thrusts one hex in direction d, burning fuel. None is a coast
// and always allowed in space. Fuel is floored at zero.
func (s *Ship) Accelerate(d hex.Direction, burn int) error {
	if s.state == ShipDestroyed {
		return shared.NewShipDestroyedError(s.name)
	}
	if s.state == ShipLanded {
		return shared.NewInvalidShipStateError(s.name, s.state.String(), "cannot accelerate while landed")
	}
	if d == hex.None {
		return nil
	}
	if s.disabledTurns > 0 {
		return shared.NewInvalidShipStateError(s.name, s.state.String(),
			fmt.Sprintf("disabled for %d turns", s.disabledTurns))
	}
	if s.fuel.IsEmpty() {
		return shared.NewInvalidShipStateError(s.name, s.state.String(), "out of fuel")
	}
	s.velocity = s.velocity.Add(d.Unit())
	s.fuel = s.fuel.Burn(burn)
	s.direction = d
	s.state = ShipFlight
	s.orbiting = nil
	return nil
}

// StartTurn resets the per-turn half gravity counter
func (s *Ship) StartTurn() {
	s.halfGravityHits = 0
}

// EndTurn lets asteroid damage wear off by one turn
func (s *Ship) EndTurn() {
	if s.disabledTurns > 0 {
		s.disabledTurns--
	}
}

// Crash destroys the ship. The first reason recorded sticks.
func (s *Ship) Crash(reason string) {
	if s.state == ShipDestroyed {
		return
	}
	s.state = ShipDestroyed
	s.deathReason = reason
	s.velocity = hex.Zero
	s.orbiting = nil
}

// Physics

// ApplyGravity adds a well's pull to the velocity, then checks whether the
// ship has been captured into orbit around the body
func (s *Ship) ApplyGravity(pull hex.Direction, body *board.Body) {
	if s.state == ShipDestroyed || s.state == ShipLanded {
		return
	}
	s.velocity = s.velocity.Add(pull.Unit())
	s.CheckOrbit(body)
}

// GravityOutcome is what entering a well did to the ship
type GravityOutcome int

const (
	GravityIgnored GravityOutcome = iota
	GravityApplied
	// GravityOptional means the player has to accept or decline the pull
	GravityOptional
)

// EnterGravity handles entering a well. Full wells always pull. Half wells
// alternate within a turn: odd encounters pull, even ones are the player's
// choice.
func (s *Ship) EnterGravity(well board.Contact) GravityOutcome {
	if s.state == ShipDestroyed || s.state == ShipLanded {
		return GravityIgnored
	}
	switch well.Strength {
	case board.GravityFull:
		s.ApplyGravity(well.Pull, well.Body)
		return GravityApplied
	case board.GravityHalf:
		s.halfGravityHits++
		if s.halfGravityHits%2 == 1 {
			s.ApplyGravity(well.Pull, well.Body)
			return GravityApplied
		}
		return GravityOptional
	}
	return GravityIgnored
}

// CheckOrbit moves a ship in flight into orbit when it is one hex from the
// body, moving at exactly one hex per turn, and its next position is still
// one hex from the body
func (s *Ship) CheckOrbit(body *board.Body) bool {
	if s.state != ShipFlight || body == nil {
		return false
	}
	if s.position.Sub(body.Position()).IsOne() &&
		s.velocity.IsOne() &&
		s.NextPosition().Sub(body.Position()).IsOne() {
		s.state = ShipOrbit
		s.orbiting = body
		return true
	}
	return false
}

// HazardResult is the outcome of flying through an asteroid hex
type HazardResult struct {
	Rolled   bool
	Die      int
	Disabled int
	Crashed  bool
}

// EnterAsteroidField rolls for damage when the ship crosses an asteroid hex
// faster than one hex per turn. A 5 disables for one turn, a 6 for two.
func (s *Ship) EnterAsteroidField(dice shared.Random) HazardResult {
	if s.state == ShipDestroyed || s.state == ShipLanded {
		return HazardResult{}
	}
	if s.Speed() <= 1 {
		return HazardResult{}
	}
	die := shared.RollDie(dice)
	res := HazardResult{Rolled: true, Die: die}
	switch die {
	case 5:
		res.Disabled = 1
	case 6:
		res.Disabled = 2
	}
	if res.Disabled > 0 {
		res.Crashed = s.Disable(res.Disabled)
	}
	return res
}

// Disable adds asteroid damage. A fresh disable also covers the end of the
// current turn. Reaching CrashDisabledTurns burns the ship up. Returns true
// if the ship was destroyed.
func (s *Ship) Disable(turns int) bool {
	if s.state == ShipDestroyed {
		return false
	}
	if s.disabledTurns == 0 {
		s.disabledTurns = 1
	}
	s.disabledTurns += turns
	if s.disabledTurns >= CrashDisabledTurns {
		s.Crash(AsteroidBurnUpReason(s.name))
		return true
	}
	return false
}

// advance moves the ship by its velocity. A stationary ship sitting in a
// gravity well is pulled again instead of floating forever.
func (s *Ship) advance(wellAt func(hex.SlantPoint) (board.Contact, bool)) (from, to hex.SlantPoint) {
	from = s.position
	s.position = s.position.Add(s.velocity)
	if s.velocity.IsZero() {
		if well, ok := wellAt(s.position); ok {
			s.velocity = well.Pull.Unit()
		}
	}
	return from, s.position
}

// Information is the short status block shown for the active ship
func (s *Ship) Information() string {
	switch s.state {
	case ShipLanded:
		return fmt.Sprintf("%s\nFuel: %d\nOn %s", s.name, s.fuel.Current, s.orbiting.Name())
	case ShipDestroyed:
		return fmt.Sprintf("%s\ndestroyed", s.name)
	case ShipOrbit:
		return fmt.Sprintf("%s\nFuel: %d\n%s orbit", s.name, s.fuel.Current, s.orbiting.Name())
	}
	if s.fuel.IsEmpty() {
		return fmt.Sprintf("%s\nOut of fuel", s.name)
	}
	if s.disabledTurns > 0 {
		return fmt.Sprintf("%s\nFuel: %d\nDisabled: %d", s.name, s.fuel.Current, s.disabledTurns)
	}
	speed := strconv.FormatFloat(math.Round(s.Speed()*10)/10, 'f', -1, 64)
	return fmt.Sprintf("%s\nFuel: %d\nSpeed: %s", s.name, s.fuel.Current, speed)
}

func (s *Ship) String() string {
	return fmt.Sprintf("Ship(%s, %s at %s v%s)", s.name, s.state, s.position, s.velocity)
}

// AsteroidBurnUpReason is the death reason for a ship destroyed by
// accumulated asteroid damage
func AsteroidBurnUpReason(name string) string {
	return fmt.Sprintf("Your ship, %s, burned up in the Asteroid Fields!", name)
}

// CrashReason is the death reason for flying into a body's surface
func CrashReason(name, body string) string {
	return fmt.Sprintf("Ship %s crashed in to %s", name, body)
}

// SelfDestructReason is the death reason for a scuttled ship
func SelfDestructReason(name string) string {
	return fmt.Sprintf("Ship %s self destructed", name)
}
