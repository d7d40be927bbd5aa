package board

import (
	"fmt"
	"math"

	"github.com/spacerover/spacerover-go/internal/domain/hex"
	"github.com/spacerover/spacerover-go/internal/domain/shared"
)

// DefaultPlacementRetries bounds the random bearings tried per body before
// falling back to its classic location
const DefaultPlacementRetries = 1000

// Scenario selects how a board is laid out
type Scenario int16

const (
	// ScenarioClassic uses the fixed catalog positions
	ScenarioClassic Scenario = iota
	// ScenarioRandom places each body at a random bearing around its parent
	ScenarioRandom
)

func ScenarioFromCode(code int16) (Scenario, error) {
	switch Scenario(code) {
	case ScenarioClassic, ScenarioRandom:
		return Scenario(code), nil
	}
	return ScenarioClassic, fmt.Errorf("invalid scenario code: %d", code)
}

func ParseScenario(s string) (Scenario, error) {
	switch s {
	case "classic", "Classic", "RACE_CLASSIC":
		return ScenarioClassic, nil
	case "random", "Random", "RACE_RANDOM":
		return ScenarioRandom, nil
	}
	return ScenarioClassic, fmt.Errorf("unknown scenario %q", s)
}

func (s Scenario) Code() int16 { return int16(s) }

func (s Scenario) String() string {
	switch s {
	case ScenarioClassic:
		return "Classic"
	case ScenarioRandom:
		return "Random"
	}
	return fmt.Sprintf("Scenario(%d)", int16(s))
}

// Factory builds boards from a system description
type Factory struct {
	width      int
	height     int
	system     SystemDescription
	rng        shared.Random
	maxRetries int
}

// NewFactory creates a board factory. A non-positive maxRetries uses
// DefaultPlacementRetries.
func NewFactory(width, height int, system SystemDescription, rng shared.Random, maxRetries int) *Factory {
	if maxRetries <= 0 {
		maxRetries = DefaultPlacementRetries
	}
	return &Factory{
		width:      width,
		height:     height,
		system:     system,
		rng:        rng,
		maxRetries: maxRetries,
	}
}

// Build lays out a new board for the scenario. Either every body is placed
// or an error is returned; there are no partial boards.
func (f *Factory) Build(scenario Scenario) (*Board, error) {
	if f.width <= 0 || f.height <= 0 {
		return nil, shared.NewConfigurationError(f.system.Name(),
			fmt.Sprintf("board must be positive, got %dx%d", f.width, f.height))
	}

	var bodies []*Body
	var err error
	switch scenario {
	case ScenarioClassic:
		bodies, err = f.classic()
	case ScenarioRandom:
		bodies, err = f.random()
	default:
		return nil, fmt.Errorf("unsupported scenario %s", scenario)
	}
	if err != nil {
		return nil, err
	}
	return NewBoard(f.width, f.height, bodies, f.system.HomeWorld())
}

func (f *Factory) classic() ([]*Body, error) {
	var bodies []*Body
	for _, info := range f.system.Bodies() {
		body, err := NewBody(info, info.ClassicLocation)
		if err != nil {
			return nil, fmt.Errorf("catalog body %s: %w", info.Name, err)
		}
		bodies = append(bodies, body)
	}
	for _, p := range f.system.ClassicAsteroids() {
		bodies = append(bodies, NewAsteroid(p))
	}
	return bodies, nil
}

func (f *Factory) random() ([]*Body, error) {
	sunLocation := hex.AppleHex{Column: f.width / 2, Row: f.height / 2}.ToSlantPoint()
	placed := make(map[string]hex.SlantPoint)
	occupied := make(map[hex.SlantPoint]bool)

	var bodies []*Body
	for _, info := range f.system.Bodies() {
		location := sunLocation
		if info.Orbiting != "" {
			parent, ok := placed[info.Orbiting]
			if !ok {
				return nil, shared.NewConfigurationError(info.Name,
					fmt.Sprintf("parent %q is not placed before its satellite", info.Orbiting))
			}
			var err error
			location, err = f.pickLocation(info, parent)
			if err != nil {
				return nil, err
			}
		}
		body, err := NewBody(info, location)
		if err != nil {
			return nil, fmt.Errorf("catalog body %s: %w", info.Name, err)
		}
		placed[info.Name] = location
		occupied[location] = true
		bodies = append(bodies, body)
	}

	for row := 0; row < f.height; row++ {
		for column := 0; column < f.width; column++ {
			p := hex.AppleHex{Column: column, Row: row}.ToSlantPoint()
			if occupied[p] {
				continue
			}
			density := f.system.AsteroidDensity(p.Distance(sunLocation))
			if f.rng.IntN(DensityScale) < density {
				bodies = append(bodies, NewAsteroid(p))
			}
		}
	}
	return bodies, nil
}

// pickLocation tries random bearings, in tenths of a degree, until the
// orbit lands on the board. After maxRetries misses it falls back to the
// classic location if that is on the board, and fails otherwise.
func (f *Factory) pickLocation(info BodyInfo, origin hex.SlantPoint) (hex.SlantPoint, error) {
	tries := f.maxRetries
	if info.OrbitDistance > math.Hypot(float64(f.width), float64(f.height)) {
		tries = 0
	}
	for i := 0; i < tries; i++ {
		theta := float64(f.rng.IntN(3600)) / 10
		p := origin.AddPolar(theta, info.OrbitDistance)
		if p.ToAppleHex().InBox(f.width, f.height) {
			return p, nil
		}
	}
	if info.ClassicLocation.ToAppleHex().InBox(f.width, f.height) {
		return info.ClassicLocation, nil
	}
	return hex.Zero, shared.NewConfigurationError(info.Name,
		fmt.Sprintf("no position %.2f hexes from %s fits a %dx%d board after %d tries",
			info.OrbitDistance, origin, f.width, f.height, f.maxRetries))
}
