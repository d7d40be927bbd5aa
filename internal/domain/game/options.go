package game

import (
	"github.com/spacerover/spacerover-go/internal/domain/board"
	"github.com/spacerover/spacerover-go/internal/domain/hex"
	"github.com/spacerover/spacerover-go/internal/domain/navigation"
)

// Action is what choosing a direction would do
type Action int

const (
	ActionThrust Action = iota
	ActionCoast
	ActionLand
	ActionCrash
	ActionLaunch
)

func (a Action) String() string {
	switch a {
	case ActionThrust:
		return "thrust"
	case ActionCoast:
		return "coast"
	case ActionLand:
		return "land"
	case ActionCrash:
		return "crash"
	case ActionLaunch:
		return "launch"
	}
	return "unknown"
}

// Option is one choice offered to the player for the current ship
type Option struct {
	Direction hex.Direction
	Target    hex.SlantPoint
	Action    Action
	Body      *board.Body
}

// Options lists the moves open to a ship. In space every direction ends at
// position+velocity+d; a target on the surface of the orbited landable body
// offers a landing, any other surface is a crash. Disabled ships may only
// coast. Landed ships may launch in any direction or stay put.
func Options(b *board.Board, ship *navigation.Ship) []Option {
	switch ship.State() {
	case navigation.ShipDestroyed:
		return nil
	case navigation.ShipLanded:
		out := []Option{{Direction: hex.None, Target: ship.Position(), Action: ActionCoast, Body: ship.Orbiting()}}
		for _, d := range hex.Directions() {
			out = append(out, Option{
				Direction: d,
				Target:    ship.Position().Add(d.Unit()),
				Action:    ActionLaunch,
				Body:      ship.Orbiting(),
			})
		}
		return out
	}

	directions := hex.AllDirections()
	if ship.IsDisabled() {
		directions = []hex.Direction{hex.None}
	}

	out := make([]Option, 0, len(directions))
	for _, d := range directions {
		target := ship.NextPosition().Add(d.Unit())
		opt := Option{Direction: d, Target: target, Action: ActionThrust}
		if d == hex.None {
			opt.Action = ActionCoast
		}
		if body, ok := b.SurfaceAt(target); ok {
			opt.Body = body
			opt.Action = ActionCrash
			if ship.State() == navigation.ShipOrbit && ship.Orbiting() == body && body.IsLandable() {
				opt.Action = ActionLand
			}
		}
		out = append(out, opt)
	}
	return out
}
