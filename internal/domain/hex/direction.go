package hex

import (
	"fmt"
	"math"
	"strings"
)

// Direction is one of the six hex directions, or None for "no thrust".
// The numeric values are the persisted codes.
type Direction int16

const (
	None Direction = iota
	West
	NorthWest
	NorthEast
	East
	SouthEast
	SouthWest
)

var directionNames = map[Direction]string{
	None:      "None",
	West:      "West",
	NorthWest: "NorthWest",
	NorthEast: "NorthEast",
	East:      "East",
	SouthEast: "SouthEast",
	SouthWest: "SouthWest",
}

var directionAliases = map[string]Direction{
	"none": None, "-": None, "0": None,
	"w": West, "west": West,
	"nw": NorthWest, "northwest": NorthWest,
	"ne": NorthEast, "northeast": NorthEast,
	"e": East, "east": East,
	"se": SouthEast, "southeast": SouthEast,
	"sw": SouthWest, "southwest": SouthWest,
}

// Directions lists the six thrust directions in clockwise order from West
func Directions() []Direction {
	return []Direction{West, NorthWest, NorthEast, East, SouthEast, SouthWest}
}

// AllDirections lists None followed by the six thrust directions
func AllDirections() []Direction {
	return append([]Direction{None}, Directions()...)
}

// DirectionFromCode converts a persisted code back into a Direction
func DirectionFromCode(code int16) (Direction, error) {
	d := Direction(code)
	if _, ok := directionNames[d]; !ok {
		return None, fmt.Errorf("invalid direction code: %d", code)
	}
	return d, nil
}

// ParseDirection accepts full names or compass abbreviations, any case
func ParseDirection(s string) (Direction, error) {
	d, ok := directionAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return None, fmt.Errorf("unknown direction %q", s)
	}
	return d, nil
}

func (d Direction) Code() int16 {
	return int16(d)
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int16(d))
}

// Invert returns the opposite direction
func (d Direction) Invert() Direction {
	switch d {
	case NorthEast:
		return SouthWest
	case NorthWest:
		return SouthEast
	case West:
		return East
	case East:
		return West
	case SouthWest:
		return NorthEast
	case SouthEast:
		return NorthWest
	}
	return None
}

// Clockwise rotates by the given number of 60 degree steps; negative turns
// rotate counter-clockwise. None stays None.
func (d Direction) Clockwise(turns int) Direction {
	if d == None {
		return None
	}
	v := (int(d) - 1 + turns) % 6
	if v < 0 {
		v += 6
	}
	return Direction(v + 1)
}

// Unit returns the one-hex vector pointing in this direction
func (d Direction) Unit() SlantPoint {
	switch d {
	case NorthEast:
		return SlantPoint{X: 1, Y: 1}
	case East:
		return SlantPoint{X: 1, Y: 0}
	case SouthEast:
		return SlantPoint{X: 0, Y: -1}
	case SouthWest:
		return SlantPoint{X: -1, Y: -1}
	case West:
		return SlantPoint{X: -1, Y: 0}
	case NorthWest:
		return SlantPoint{X: 0, Y: 1}
	}
	return Zero
}

// Angle is the sprite rotation for a ship facing this way, in radians.
// West is the unrotated orientation.
func (d Direction) Angle() float64 {
	switch d {
	case NorthWest:
		return 5 * math.Pi / 3
	case NorthEast:
		return 4 * math.Pi / 3
	case East:
		return math.Pi
	case SouthEast:
		return 2 * math.Pi / 3
	case SouthWest:
		return math.Pi / 3
	}
	return 0
}

// DirectionOf returns the direction whose unit vector is v, or None
func DirectionOf(v SlantPoint) Direction {
	for _, d := range Directions() {
		if d.Unit() == v {
			return d
		}
	}
	return None
}
