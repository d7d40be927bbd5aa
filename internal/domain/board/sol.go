package board

import "github.com/spacerover/spacerover-go/internal/domain/hex"

const (
	Sol     = "Sol"
	Earth   = "Earth"
	Jupiter = "Jupiter"

	// SolAUDistance is one astronomical unit in hexes. Planet orbits use
	// 1 hex = 15 million km; moon orbits are scaled up 100x so moons do
	// not share a hex with their primary.
	SolAUDistance = 10.0
)

// NewSolDescription returns the built-in description of our solar system
func NewSolDescription() *Catalog {
	return &Catalog{
		SystemName: Sol,
		Home:       Earth,
		AUDistance: SolAUDistance,
		Entries:    solBodies(),
		Asteroids:  solClassicAsteroids(),
		Density:    DensityBand{MinAU: 2.0, MaxAU: 3.5, Table: solDensity},
	}
}

func solBodies() []BodyInfo {
	return []BodyInfo{
		{Name: Sol, Kind: KindStar, Radius: 0.5, Gravity: GravityFull, ClassicLocation: hex.Pt(39, 23)},

		{Name: "Mercury", Kind: KindPlanet, Radius: 0.14, Gravity: GravityFull,
			Orbiting: Sol, OrbitDistance: 3.9, ClassicLocation: hex.Pt(40, 20)},
		{Name: "Venus", Kind: KindPlanet, Radius: 0.24, Landable: true, Gravity: GravityFull,
			Orbiting: Sol, OrbitDistance: 7.2, ClassicLocation: hex.Pt(31, 19)},
		{Name: Earth, Kind: KindPlanet, Radius: 0.25, Landable: true, Gravity: GravityFull,
			Orbiting: Sol, OrbitDistance: SolAUDistance, ClassicLocation: hex.Pt(51, 29)},
		{Name: "Mars", Kind: KindPlanet, Radius: 0.20, Landable: true, Gravity: GravityFull,
			Orbiting: Sol, OrbitDistance: 15.2, ClassicLocation: hex.Pt(40, 43)},
		{Name: Jupiter, Kind: KindPlanet, Radius: 0.45, Gravity: GravityFull,
			Orbiting: Sol, OrbitDistance: 51.9, ClassicLocation: hex.Pt(59, 59)},
		{Name: "Ceres", Kind: KindPlanet, Radius: 0.12, Gravity: GravityNone,
			Orbiting: Sol, OrbitDistance: 27.5, ClassicLocation: hex.Pt(47, 50)},

		{Name: "Luna", Kind: KindMoon, Radius: 0.1, Gravity: GravityHalf,
			Orbiting: Earth, OrbitDistance: 2.56, ClassicLocation: hex.Pt(54, 30)},

		{Name: "Io", Kind: KindMoon, Radius: 0.1, Gravity: GravityHalf,
			Orbiting: Jupiter, OrbitDistance: 2.81, ClassicLocation: hex.Pt(59, 57)},
		{Name: "Ganymede", Kind: KindMoon, Radius: 0.1, Gravity: GravityFull,
			Orbiting: Jupiter, OrbitDistance: 7.13, ClassicLocation: hex.Pt(63, 61)},
		{Name: "Callisto", Kind: KindMoon, Radius: 0.1, Landable: true, Gravity: GravityFull,
			Orbiting: Jupiter, OrbitDistance: 12.55, ClassicLocation: hex.Pt(54, 59)},
	}
}

func solClassicAsteroids() []hex.SlantPoint {
	rows := map[int][]int{
		41: {47, 49},
		42: {46, 50, 53, 55, 56},
		43: {48, 50, 53, 56, 59, 65},
		44: {46, 50, 51, 54, 57, 59, 61, 65, 66},
		45: {37, 48, 51, 52, 53, 55, 65, 68, 69},
		46: {36, 37, 38, 47, 49, 59, 62, 67},
		47: {38, 52, 55, 57, 59, 60, 62, 63, 65},
		48: {39, 41, 42, 57, 62, 64, 65, 68, 69, 70},
		49: {43, 45, 48, 60, 63, 64, 67},
		50: {38, 39, 41, 59},
		51: {40},
		52: {39, 40},
	}
	var out []hex.SlantPoint
	for y := 41; y <= 52; y++ {
		for _, x := range rows[y] {
			out = append(out, hex.Pt(x, y))
		}
	}
	return out
}
