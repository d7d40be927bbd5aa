package player

import (
	"fmt"

	"github.com/spacerover/spacerover-go/internal/domain/navigation"
	"github.com/spacerover/spacerover-go/internal/domain/shared"
)

// State is a player's standing in the race. The numeric values are the
// persisted codes.
type State int16

const (
	Playing State = iota
	Lost
	Won
)

func StateFromCode(code int16) (State, error) {
	switch State(code) {
	case Playing, Lost, Won:
		return State(code), nil
	}
	return Playing, fmt.Errorf("invalid player state code: %d", code)
}

func (s State) Code() int16 { return int16(s) }

func (s State) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Lost:
		return "Lost"
	case Won:
		return "Won"
	}
	return fmt.Sprintf("State(%d)", int16(s))
}

// Player represents one racer and the ship they fly
type Player struct {
	name  string
	color Color
	state State
	ship  *navigation.Ship
}

// NewPlayer creates a player still in the race
func NewPlayer(name string, color Color, ship *navigation.Ship) (*Player, error) {
	return ReconstructPlayer(name, color, Playing, ship)
}

// ReconstructPlayer rebuilds a player from persisted state
func ReconstructPlayer(name string, color Color, state State, ship *navigation.Ship) (*Player, error) {
	p := &Player{name: name, color: color, state: state, ship: ship}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Player) validate() error {
	if p.name == "" {
		return shared.NewValidationError("player_name", "cannot be empty")
	}
	if !p.color.IsValid() {
		return shared.NewValidationError("color", fmt.Sprintf("invalid color %d", p.color))
	}
	if p.ship == nil {
		return shared.NewValidationError("ship", "player needs a ship")
	}
	return nil
}

func (p *Player) Name() string { return p.name }
func (p *Player) Color() Color { return p.color }
func (p *Player) State() State { return p.state }
func (p *Player) Ship() *navigation.Ship { return p.ship }
func (p *Player) IsPlaying() bool { return p.state == Playing }

// MarkLost takes the player out of the race. Winners stay winners.
func (p *Player) MarkLost() {
	if p.state == Playing {
		p.state = Lost
	}
}

func (p *Player) MarkWon() {
	p.state = Won
}

func (p *Player) String() string {
	return fmt.Sprintf("Player(%s, %s, %s)", p.name, p.color, p.state)
}
