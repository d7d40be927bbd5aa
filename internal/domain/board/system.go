package board

import (
	"fmt"

	"github.com/spacerover/spacerover-go/internal/domain/hex"
	"github.com/spacerover/spacerover-go/internal/domain/shared"
)

// DensityScale is the denominator of asteroid density values. A hex is an
// asteroid when a uniform draw in [0, DensityScale) is below its density.
const DensityScale = 800

// BodyInfo is the catalog entry for one body of a solar system
type BodyInfo struct {
	Name          string
	Kind          Kind
	Radius        float64
	Landable      bool
	Gravity       Gravity
	Orbiting      string
	OrbitDistance float64
	// ClassicLocation is the position on the fixed classic board
	ClassicLocation hex.SlantPoint
}

// SystemDescription describes how a solar system is laid out when boards
// are generated
type SystemDescription interface {
	Name() string
	// Sun is the body every orbit ultimately hangs off
	Sun() BodyInfo
	// Bodies lists every body, sun first, parents before their satellites
	Bodies() []BodyInfo
	ClassicAsteroids() []hex.SlantPoint
	// AsteroidDensity returns how likely a hex at the given distance from
	// the sun is to hold an asteroid, out of DensityScale
	AsteroidDensity(distanceToSun float64) int
	// HomeWorld is where every ship starts
	HomeWorld() string
}

// DensityBand maps a distance range, measured in AU, onto a density table
// sampled evenly across the range
type DensityBand struct {
	MinAU float64
	MaxAU float64
	Table []int
}

// At returns the density for a distance in AU; zero outside the band
func (d DensityBand) At(au float64) int {
	if len(d.Table) == 0 || au < d.MinAU || au >= d.MaxAU {
		return 0
	}
	idx := int((au - d.MinAU) * float64(len(d.Table)) / (d.MaxAU - d.MinAU))
	if idx >= len(d.Table) {
		idx = len(d.Table) - 1
	}
	return d.Table[idx]
}

// Catalog is a SystemDescription held entirely in memory. The built-in Sol
// system and catalog files both produce one.
type Catalog struct {
	SystemName string
	Home       string
	// AUDistance is the number of hexes in one astronomical unit
	AUDistance float64
	Entries    []BodyInfo
	Asteroids  []hex.SlantPoint
	Density    DensityBand
}

func (c *Catalog) Name() string { return c.SystemName }
func (c *Catalog) Sun() BodyInfo { return c.Entries[0] }
func (c *Catalog) Bodies() []BodyInfo { return c.Entries }
func (c *Catalog) ClassicAsteroids() []hex.SlantPoint { return c.Asteroids }
func (c *Catalog) HomeWorld() string { return c.Home }

func (c *Catalog) AsteroidDensity(distanceToSun float64) int {
	if c.AUDistance <= 0 {
		return 0
	}
	return c.Density.At(distanceToSun / c.AUDistance)
}

// Validate checks the catalog is internally consistent: one sun listed
// first, unique names, parents listed before satellites and a landable
// home world.
func (c *Catalog) Validate() error {
	if len(c.Entries) == 0 {
		return shared.NewConfigurationError(c.SystemName, "catalog has no bodies")
	}
	sun := c.Entries[0]
	if sun.Orbiting != "" {
		return shared.NewConfigurationError(sun.Name, "first body must not orbit anything")
	}
	seen := make(map[string]BodyInfo, len(c.Entries))
	for i, info := range c.Entries {
		if info.Name == "" {
			return shared.NewConfigurationError(c.SystemName, fmt.Sprintf("body %d has no name", i))
		}
		if _, dup := seen[info.Name]; dup {
			return shared.NewConfigurationError(info.Name, "duplicate body name")
		}
		if info.Kind == KindAsteroid {
			return shared.NewConfigurationError(info.Name, "asteroids are generated, not catalogued")
		}
		if i > 0 {
			if info.Orbiting == "" {
				return shared.NewConfigurationError(info.Name, "only the sun may have no parent")
			}
			if _, ok := seen[info.Orbiting]; !ok {
				return shared.NewConfigurationError(info.Name,
					fmt.Sprintf("parent %q must be listed before its satellites", info.Orbiting))
			}
			if info.OrbitDistance <= 0 {
				return shared.NewConfigurationError(info.Name, "orbit distance must be positive")
			}
		}
		seen[info.Name] = info
	}
	home, ok := seen[c.Home]
	if !ok {
		return shared.NewConfigurationError(c.Home, "home world is not in the catalog")
	}
	if !home.Landable {
		return shared.NewConfigurationError(c.Home, "home world must be landable")
	}
	if c.Density.MaxAU < c.Density.MinAU {
		return shared.NewConfigurationError(c.SystemName, "density band is inverted")
	}
	for _, v := range c.Density.Table {
		if v < 0 || v > DensityScale {
			return shared.NewConfigurationError(c.SystemName,
				fmt.Sprintf("density %d outside [0, %d]", v, DensityScale))
		}
	}
	return nil
}
