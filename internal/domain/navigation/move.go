package navigation

import (
	"github.com/spacerover/spacerover-go/internal/domain/board"
	"github.com/spacerover/spacerover-go/internal/domain/hex"
	"github.com/spacerover/spacerover-go/internal/domain/shared"
)

// Space answers what occupies a hex. *board.Board implements it.
type Space interface {
	ContactsAt(p hex.SlantPoint) []board.Contact
	WellAt(p hex.SlantPoint) (board.Contact, bool)
}

// EventKind tags what happened to a ship while it moved
type EventKind int

const (
	EventGravity EventKind = iota
	EventGravityOffered
	EventGravityDeclined
	EventGoalReached
	EventOrbit
	EventHazard
	EventCrash
)

func (k EventKind) String() string {
	switch k {
	case EventGravity:
		return "gravity"
	case EventGravityOffered:
		return "gravity_offered"
	case EventGravityDeclined:
		return "gravity_declined"
	case EventGoalReached:
		return "goal_reached"
	case EventOrbit:
		return "orbit"
	case EventHazard:
		return "hazard"
	case EventCrash:
		return "crash"
	}
	return "unknown"
}

// Event is one outcome of resolving a move
type Event struct {
	Kind   EventKind
	At     hex.SlantPoint
	Body   *board.Body
	Well   board.Contact
	Hazard HazardResult
	Reason string
}

// Move walks a ship along the hexes it crosses in one turn and applies
// each contact in order. Resolution pauses when a half gravity well needs
// the player's decision and resumes with Decide.
type Move struct {
	ship    *Ship
	space   Space
	dice    shared.Random
	From    hex.SlantPoint
	To      hex.SlantPoint
	path    []hex.SlantPoint
	next    int
	at      hex.SlantPoint
	queue   []board.Contact
	offered *board.Contact
	done    bool
}

// Advance moves the ship by its velocity and returns the pending contact
// resolution for the hexes it crossed. The start hex is not revisited.
func (s *Ship) Advance(space Space, dice shared.Random) (*Move, error) {
	if s.state == ShipDestroyed {
		return nil, shared.NewShipDestroyedError(s.name)
	}
	if s.state == ShipLanded {
		return nil, shared.NewInvalidShipStateError(s.name, s.state.String(), "cannot move while landed")
	}
	from, to := s.advance(space.WellAt)
	return &Move{
		ship:  s,
		space: space,
		dice:  dice,
		From:  from,
		To:    to,
		path:  hex.Path(from, to),
	}, nil
}

// Path returns the hexes the move crosses
func (m *Move) Path() []hex.SlantPoint {
	return m.path
}

// Done reports whether every contact has been resolved
func (m *Move) Done() bool {
	return m.done
}

// Pending returns the half gravity well awaiting a decision, if any
func (m *Move) Pending() (board.Contact, bool) {
	if m.offered == nil {
		return board.Contact{}, false
	}
	return *m.offered, true
}

// Resolve applies contacts until the move completes, the ship is destroyed
// or a gravity decision is needed
func (m *Move) Resolve() []Event {
	var events []Event
	for !m.done && m.offered == nil {
		if len(m.queue) == 0 {
			if m.next >= len(m.path) {
				m.done = true
				break
			}
			m.at = m.path[m.next]
			m.next++
			m.queue = m.space.ContactsAt(m.at)
			continue
		}

		c := m.queue[0]
		m.queue = m.queue[1:]
		events = append(events, m.collide(c)...)

		if m.ship.IsDestroyed() {
			m.queue = nil
			m.done = true
		}
	}
	return events
}

// Decide answers a pending half gravity offer and resumes resolution
func (m *Move) Decide(accept bool) ([]Event, error) {
	if m.offered == nil {
		return nil, shared.NewInvalidCommandError("ResolveGravity", "no gravity decision is pending")
	}
	well := *m.offered
	m.offered = nil

	var events []Event
	if accept {
		events = append(events, m.pull(well)...)
	} else {
		events = append(events, Event{Kind: EventGravityDeclined, At: m.at, Body: well.Body, Well: well})
	}
	return append(events, m.Resolve()...), nil
}

func (m *Move) collide(c board.Contact) []Event {
	switch c.Kind {
	case board.ContactSurface:
		reason := CrashReason(m.ship.Name(), c.Body.Name())
		m.ship.Crash(reason)
		return []Event{{Kind: EventCrash, At: m.at, Body: c.Body, Reason: reason}}

	case board.ContactGravityWell:
		var events []Event
		if m.ship.VisitGoal(c.Body.Name()) {
			events = append(events, Event{Kind: EventGoalReached, At: m.at, Body: c.Body})
		}
		wasOrbiting := m.ship.State() == ShipOrbit
		switch m.ship.EnterGravity(c) {
		case GravityApplied:
			events = append(events, Event{Kind: EventGravity, At: m.at, Body: c.Body, Well: c})
			if !wasOrbiting && m.ship.State() == ShipOrbit {
				events = append(events, Event{Kind: EventOrbit, At: m.at, Body: c.Body})
			}
		case GravityOptional:
			well := c
			m.offered = &well
			events = append(events, Event{Kind: EventGravityOffered, At: m.at, Body: c.Body, Well: c})
		}
		return events

	case board.ContactAsteroid:
		res := m.ship.EnterAsteroidField(m.dice)
		if !res.Rolled {
			return nil
		}
		events := []Event{{Kind: EventHazard, At: m.at, Body: c.Body, Hazard: res}}
		if res.Crashed {
			events = append(events, Event{Kind: EventCrash, At: m.at, Body: c.Body, Reason: m.ship.DeathReason()})
		}
		return events
	}
	return nil
}

func (m *Move) pull(well board.Contact) []Event {
	wasOrbiting := m.ship.State() == ShipOrbit
	m.ship.ApplyGravity(well.Pull, well.Body)
	events := []Event{{Kind: EventGravity, At: m.at, Body: well.Body, Well: well}}
	if !wasOrbiting && m.ship.State() == ShipOrbit {
		events = append(events, Event{Kind: EventOrbit, At: m.at, Body: well.Body})
	}
	return events
}
