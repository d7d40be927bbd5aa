package board

import (
	"fmt"
	"sort"

	"github.com/spacerover/spacerover-go/internal/domain/hex"
	"github.com/spacerover/spacerover-go/internal/domain/shared"
)

const (
	DefaultWidth  = 100
	DefaultHeight = 100
)

// ContactKind tags what a ship runs into when it enters a hex
type ContactKind int

const (
	// ContactSurface is the hex a star, planet or moon occupies
	ContactSurface ContactKind = iota
	// ContactGravityWell is one of the six hexes around a body with gravity
	ContactGravityWell
	// ContactAsteroid is an asteroid field hex
	ContactAsteroid
)

func (k ContactKind) String() string {
	switch k {
	case ContactSurface:
		return "Surface"
	case ContactGravityWell:
		return "GravityWell"
	case ContactAsteroid:
		return "Asteroid"
	}
	return fmt.Sprintf("ContactKind(%d)", int(k))
}

// Contact is one thing found at a hex. For gravity wells Pull is the
// direction the well pulls a ship (toward the body) and Strength is the
// body's gravity.
type Contact struct {
	Kind     ContactKind
	Body     *Body
	Pull     hex.Direction
	Strength Gravity
}

// Board is the generated map: bodies, asteroid fields and the gravity wells
// derived from them, indexed by hex.
type Board struct {
	width     int
	height    int
	bodies    []*Body
	byName    map[string]*Body
	surfaces  map[hex.SlantPoint][]*Body
	wells     map[hex.SlantPoint][]Contact
	asteroids map[hex.SlantPoint]*Body
	home      *Body
}

// NewBoard indexes the given bodies. The home world must be one of them.
func NewBoard(width, height int, bodies []*Body, homeWorld string) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, shared.NewValidationError("size", fmt.Sprintf("board must be positive, got %dx%d", width, height))
	}

	b := &Board{
		width:     width,
		height:    height,
		byName:    make(map[string]*Body),
		surfaces:  make(map[hex.SlantPoint][]*Body),
		wells:     make(map[hex.SlantPoint][]Contact),
		asteroids: make(map[hex.SlantPoint]*Body),
	}

	for _, body := range bodies {
		if body.IsAsteroid() {
			if _, dup := b.asteroids[body.Position()]; dup {
				continue
			}
			b.asteroids[body.Position()] = body
			b.bodies = append(b.bodies, body)
			continue
		}
		if _, dup := b.byName[body.Name()]; dup {
			return nil, shared.NewConfigurationError(body.Name(), "duplicate body name")
		}
		b.byName[body.Name()] = body
		b.bodies = append(b.bodies, body)
		b.surfaces[body.Position()] = append(b.surfaces[body.Position()], body)

		if !body.HasGravity() {
			continue
		}
		for _, d := range hex.Directions() {
			// the well on side d pulls back toward the body
			at := body.Position().Add(d.Unit())
			b.wells[at] = append(b.wells[at], Contact{
				Kind:     ContactGravityWell,
				Body:     body,
				Pull:     d.Invert(),
				Strength: body.Gravity(),
			})
		}
	}

	home, ok := b.byName[homeWorld]
	if !ok {
		return nil, shared.NewNotFoundError("body", homeWorld)
	}
	if !home.IsLandable() {
		return nil, shared.NewConfigurationError(homeWorld, "home world must be landable")
	}
	b.home = home
	return b, nil
}

func (b *Board) Width() int { return b.width }
func (b *Board) Height() int { return b.height }
func (b *Board) Home() *Body { return b.home }

// Bodies returns every body including asteroids, in insertion order
func (b *Board) Bodies() []*Body {
	out := make([]*Body, len(b.bodies))
	copy(out, b.bodies)
	return out
}

// Planets returns the stars, planets and moons
func (b *Board) Planets() []*Body {
	var out []*Body
	for _, body := range b.bodies {
		if !body.IsAsteroid() {
			out = append(out, body)
		}
	}
	return out
}

// Asteroids returns the asteroid hexes ordered by position
func (b *Board) Asteroids() []*Body {
	out := make([]*Body, 0, len(b.asteroids))
	for _, a := range b.asteroids {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		pi, pj := out[i].Position(), out[j].Position()
		if pi.Y != pj.Y {
			return pi.Y < pj.Y
		}
		return pi.X < pj.X
	})
	return out
}

func (b *Board) Lookup(name string) (*Body, bool) {
	body, ok := b.byName[name]
	return body, ok
}

// RaceGoals returns every body with full gravity. A player has to pass
// through a gravity well of each one to win.
func (b *Board) RaceGoals() []*Body {
	var out []*Body
	for _, body := range b.bodies {
		if body.Gravity() == GravityFull {
			out = append(out, body)
		}
	}
	return out
}

// InBounds reports whether p lies on the board
func (b *Board) InBounds(p hex.SlantPoint) bool {
	return p.ToAppleHex().InBox(b.width, b.height)
}

// ContactsAt lists what occupies hex p: surfaces first, then gravity
// wells, then an asteroid field.
func (b *Board) ContactsAt(p hex.SlantPoint) []Contact {
	var out []Contact
	for _, body := range b.surfaces[p] {
		out = append(out, Contact{Kind: ContactSurface, Body: body, Strength: body.Gravity()})
	}
	out = append(out, b.wells[p]...)
	if a, ok := b.asteroids[p]; ok {
		out = append(out, Contact{Kind: ContactAsteroid, Body: a})
	}
	return out
}

// WellAt returns the gravity well at p, if any. When wells overlap the
// first body listed wins.
func (b *Board) WellAt(p hex.SlantPoint) (Contact, bool) {
	wells := b.wells[p]
	if len(wells) == 0 {
		return Contact{}, false
	}
	return wells[0], true
}

// SurfaceAt returns the body occupying p, if any
func (b *Board) SurfaceAt(p hex.SlantPoint) (*Body, bool) {
	s := b.surfaces[p]
	if len(s) == 0 {
		return nil, false
	}
	return s[0], true
}

// IsAsteroid reports whether p is an asteroid field
func (b *Board) IsAsteroid(p hex.SlantPoint) bool {
	_, ok := b.asteroids[p]
	return ok
}
