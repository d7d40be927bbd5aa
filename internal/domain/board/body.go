package board

import (
	"fmt"

	"github.com/spacerover/spacerover-go/internal/domain/hex"
	"github.com/spacerover/spacerover-go/internal/domain/shared"
)

// Kind classifies a celestial body. The numeric values are the persisted codes.
type Kind int16

const (
	KindStar Kind = iota
	KindPlanet
	KindMoon
	KindAsteroid
)

var kindNames = map[Kind]string{
	KindStar:     "Star",
	KindPlanet:   "Planet",
	KindMoon:     "Moon",
	KindAsteroid: "Asteroid",
}

func KindFromCode(code int16) (Kind, error) {
	k := Kind(code)
	if _, ok := kindNames[k]; !ok {
		return KindStar, fmt.Errorf("invalid body kind code: %d", code)
	}
	return k, nil
}

// ParseKind accepts the display names used in catalog files
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return KindStar, fmt.Errorf("unknown body kind %q", s)
}

func (k Kind) Code() int16 { return int16(k) }

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int16(k))
}

// Gravity is the strength of a body's gravity wells
type Gravity int16

const (
	GravityNone Gravity = iota
	GravityHalf
	GravityFull
)

var gravityNames = map[Gravity]string{
	GravityNone: "None",
	GravityHalf: "Half",
	GravityFull: "Full",
}

func GravityFromCode(code int16) (Gravity, error) {
	g := Gravity(code)
	if _, ok := gravityNames[g]; !ok {
		return GravityNone, fmt.Errorf("invalid gravity code: %d", code)
	}
	return g, nil
}

func ParseGravity(s string) (Gravity, error) {
	for g, name := range gravityNames {
		if name == s {
			return g, nil
		}
	}
	return GravityNone, fmt.Errorf("unknown gravity %q", s)
}

func (g Gravity) Code() int16 { return int16(g) }

func (g Gravity) String() string {
	if name, ok := gravityNames[g]; ok {
		return name
	}
	return fmt.Sprintf("Gravity(%d)", int16(g))
}

// Body is a star, planet, moon or asteroid placed on the board.
// Bodies are immutable once the board is built.
type Body struct {
	name          string
	kind          Kind
	position      hex.SlantPoint
	radius        float64
	landable      bool
	gravity       Gravity
	parent        string
	orbitDistance float64
}

// NewBody creates a body from its catalog entry at the given location
func NewBody(info BodyInfo, position hex.SlantPoint) (*Body, error) {
	b := &Body{
		name:          info.Name,
		kind:          info.Kind,
		position:      position,
		radius:        info.Radius,
		landable:      info.Landable,
		gravity:       info.Gravity,
		parent:        info.Orbiting,
		orbitDistance: info.OrbitDistance,
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// NewAsteroid creates an asteroid hex. Asteroids have no gravity and can
// never be landed on.
func NewAsteroid(position hex.SlantPoint) *Body {
	return &Body{
		name:     AsteroidName(position),
		kind:     KindAsteroid,
		position: position,
		radius:   0.5,
		gravity:  GravityNone,
	}
}

// AsteroidName is the generated name for the asteroid at p
func AsteroidName(p hex.SlantPoint) string {
	return fmt.Sprintf("asteroid at %d, %d", p.X, p.Y)
}

func (b *Body) validate() error {
	if b.name == "" {
		return shared.NewValidationError("name", "cannot be empty")
	}
	if _, ok := kindNames[b.kind]; !ok {
		return shared.NewValidationError("kind", fmt.Sprintf("invalid kind %d", b.kind))
	}
	if _, ok := gravityNames[b.gravity]; !ok {
		return shared.NewValidationError("gravity", fmt.Sprintf("invalid gravity %d", b.gravity))
	}
	if b.radius < 0 {
		return shared.NewValidationError("radius", "cannot be negative")
	}
	if b.orbitDistance < 0 {
		return shared.NewValidationError("orbit_distance", "cannot be negative")
	}
	return nil
}

func (b *Body) Name() string { return b.name }
func (b *Body) Kind() Kind { return b.kind }
func (b *Body) Position() hex.SlantPoint { return b.position }
func (b *Body) Radius() float64 { return b.radius }
func (b *Body) IsLandable() bool { return b.landable }
func (b *Body) Gravity() Gravity { return b.gravity }
func (b *Body) Orbiting() string { return b.parent }
func (b *Body) OrbitDistance() float64 { return b.orbitDistance }
func (b *Body) IsAsteroid() bool { return b.kind == KindAsteroid }
func (b *Body) HasGravity() bool { return b.gravity != GravityNone }

// Info returns the catalog entry the body was built from
func (b *Body) Info() BodyInfo {
	return BodyInfo{
		Name:          b.name,
		Kind:          b.kind,
		Radius:        b.radius,
		Landable:      b.landable,
		Gravity:       b.gravity,
		Orbiting:      b.parent,
		OrbitDistance: b.orbitDistance,
	}
}

func (b *Body) String() string {
	return fmt.Sprintf("%s(%s at %s)", b.kind, b.name, b.position)
}
