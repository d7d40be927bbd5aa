// Package hex implements the slant-coordinate hex algebra the movement
// rules are written in.
//
// Offset ("apple") coordinates, the column/row layout a tile map uses:
//
//	(-2,2)  (-1,2)  (0,2)   (1,2)
//	    (-2,1)  (-1,1)  (0,1)   (1,1)
//	        (-1,0)  (0,0)   (1,0)   (2,0)
//	            (-1,-1) (0,-1)  (1,-1)  (2,-1)
//
// Slant coordinates of the same hexes:
//
//	(-1,2)  (0,2)   (1,2)   (2,2)
//	    (-1,1)  (0,1)   (1,1)   (2,1)
//	        (-1,0)  (0,0)   (1,0)   (2,0)
//	            (-1,-1) (0,-1)  (1,-1)  (2,-1)
//
// The slant axes follow two natural hex directions (east and northeast), so
// velocities and accelerations compose with plain vector addition.
package hex

import (
	"fmt"
	"math"
)

// RootThreeHalf is the vertical spacing between hex rows, in hexes
var RootThreeHalf = math.Sqrt(3) / 2

// SlantPoint is an immutable integer vector in slant coordinates
type SlantPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is a short constructor
func Pt(x, y int) SlantPoint {
	return SlantPoint{X: x, Y: y}
}

// Zero is the null vector
var Zero = SlantPoint{}

func (p SlantPoint) Add(o SlantPoint) SlantPoint {
	return SlantPoint{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p SlantPoint) Sub(o SlantPoint) SlantPoint {
	return SlantPoint{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p SlantPoint) Neg() SlantPoint {
	return SlantPoint{X: -p.X, Y: -p.Y}
}

// Distance measures the distance between two hex centres, in hexes.
// A "hex" is the distance between the centres of two adjacent hexes.
func (p SlantPoint) Distance(o SlantPoint) float64 {
	dx := float64(p.X - o.X)
	dy := float64(p.Y - o.Y)
	return math.Hypot(dx-dy/2, RootThreeHalf*dy)
}

// Magnitude is the length of the vector in hexes, used for speeds
func (p SlantPoint) Magnitude() float64 {
	return p.Distance(Zero)
}

// Steps is the number of single-hex moves between two points
func (p SlantPoint) Steps(o SlantPoint) int {
	q, r, s := o.Sub(p).cube()
	return max(abs(q), abs(r), abs(s))
}

func (p SlantPoint) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// IsOne reports whether the vector is exactly one step in one of the six
// directions
func (p SlantPoint) IsOne() bool {
	switch {
	case p.X == 0:
		return abs(p.Y) == 1
	case p.Y == 0:
		return abs(p.X) == 1
	}
	return p.X == p.Y && abs(p.X) == 1
}

// AddPolar returns the lattice point nearest to the given compass bearing
// (degrees clockwise from north) and distance in hexes from p. Rounding onto
// the lattice may land up to half a hex away from the requested radius.
func (p SlantPoint) AddPolar(degree, distance float64) SlantPoint {
	rad := degree * math.Pi / 180
	xOffset := math.Sin(rad) * distance
	yOffset := math.Cos(rad) * distance
	ySlant := yOffset / RootThreeHalf
	xSlant := xOffset + ySlant/2
	return p.Add(SlantPoint{X: int(math.Round(xSlant)), Y: int(math.Round(ySlant))})
}

// ToAppleHex converts to offset coordinates
func (p SlantPoint) ToAppleHex() AppleHex {
	return AppleHex{Column: p.X - (p.Y+1)/2, Row: p.Y}
}

func (p SlantPoint) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// cube returns the cube coordinates (q, r, s) of the point
func (p SlantPoint) cube() (int, int, int) {
	return p.X - p.Y, p.Y, -p.X
}

// AppleHex is a point in tile-map offset coordinates. The columns zigzag
// back and forth, but a range of columns and rows defines a box.
type AppleHex struct {
	Column int `json:"column"`
	Row    int `json:"row"`
}

func (a AppleHex) ToSlantPoint() SlantPoint {
	return SlantPoint{X: a.Column + (a.Row+1)/2, Y: a.Row}
}

// InBox reports whether the hex lies in a width x height board
func (a AppleHex) InBox(width, height int) bool {
	return a.Column >= 0 && a.Column < width && a.Row >= 0 && a.Row < height
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
