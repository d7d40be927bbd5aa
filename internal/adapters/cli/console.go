package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spacerover/spacerover-go/internal/domain/board"
	"github.com/spacerover/spacerover-go/internal/domain/game"
	"github.com/spacerover/spacerover-go/internal/domain/navigation"
)

// console prints turn events as text. It is written to from the runner
// goroutine and the input loop, so every write takes the lock.
type console struct {
	mu  sync.Mutex
	out io.Writer
}

var _ game.Observer = (*console)(nil)

func newConsole(out io.Writer) *console {
	return &console{out: out}
}

func (c *console) printf(format string, args ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintf(c.out, format, args...)
}

func (c *console) UpdateShipInformation(text string) {
	c.printf("%s\n> ", indent(text))
}

func (c *console) StartTurn(ship *navigation.Ship) {
	c.printf("\n== %s's turn (%s at %s, velocity %s) ==\n", ship.Owner(), ship.Name(), ship.Position(), ship.Velocity())
}

func (c *console) ShipMoving(ship *navigation.Ship) {}

func (c *console) ShipDoneMoving(ship *navigation.Ship) {
	switch ship.State() {
	case navigation.ShipLanded:
		c.printf("%s is landed on %s\n", ship.Name(), ship.Orbiting().Name())
	case navigation.ShipOrbit:
		c.printf("%s is in orbit around %s\n", ship.Name(), ship.Orbiting().Name())
	default:
		c.printf("%s is at %s\n", ship.Name(), ship.Position())
	}
}

func (c *console) Crash(ship *navigation.Ship, reason string) {
	c.printf("!! %s\n   type ok to continue\n> ", reason)
}

func (c *console) OptionalHalfGravity(ship *navigation.Ship, well board.Contact) {
	c.printf("%s passes %s. Accept half gravity? (yes/no)\n> ", ship.Name(), well.Body.Name())
}

func (c *console) MoveEvent(ship *navigation.Ship, event navigation.Event) {
	switch event.Kind {
	case navigation.EventGravity:
		c.printf("   pulled by %s at %s\n", event.Body.Name(), event.At)
	case navigation.EventGravityDeclined:
		c.printf("   ignored %s's pull\n", event.Body.Name())
	case navigation.EventGoalReached:
		c.printf("   * passed %s\n", event.Body.Name())
	case navigation.EventOrbit:
		c.printf("   entered orbit around %s\n", event.Body.Name())
	case navigation.EventHazard:
		if event.Hazard.Disabled > 0 {
			c.printf("   asteroids at %s: rolled %d, disabled for %d turn(s)\n", event.At, event.Hazard.Die, event.Hazard.Disabled)
		} else {
			c.printf("   asteroids at %s: rolled %d, no damage\n", event.At, event.Hazard.Die)
		}
	}
}

func (c *console) EndGame(g *game.Game) {
	c.printf("\n== Game over: %s ==\n", g.Summary())
	for _, p := range g.Players() {
		c.printf("   %-10s %s\n", p.Name(), g.PlayerStatus(p))
	}
}

func indent(text string) string {
	return "   " + strings.ReplaceAll(text, "\n", "\n   ")
}
