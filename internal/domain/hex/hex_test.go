package hex_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacerover/spacerover-go/internal/domain/hex"
)

func TestDirection_InvertIsInvolution(t *testing.T) {
	for _, d := range hex.AllDirections() {
		assert.Equal(t, d, d.Invert().Invert(), d.String())
		assert.Equal(t, d.Unit(), d.Invert().Unit().Neg(), d.String())
	}
}

func TestDirection_Clockwise(t *testing.T) {
	tests := []struct {
		from  hex.Direction
		turns int
		want  hex.Direction
	}{
		{hex.West, 1, hex.NorthWest},
		{hex.SouthWest, 1, hex.West},
		{hex.East, 3, hex.West},
		{hex.NorthEast, -1, hex.NorthWest},
		{hex.West, -7, hex.SouthWest},
		{hex.SouthEast, 12, hex.SouthEast},
		{hex.None, 2, hex.None},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.Clockwise(tt.turns), "%s + %d", tt.from, tt.turns)
	}

	for _, d := range hex.Directions() {
		assert.Equal(t, d.Invert(), d.Clockwise(3))
	}
}

func TestDirection_UnitVectorsAreOneHex(t *testing.T) {
	for _, d := range hex.Directions() {
		u := d.Unit()
		assert.True(t, u.IsOne(), d.String())
		assert.InDelta(t, 1.0, u.Magnitude(), 1e-9, d.String())
		assert.Equal(t, d, hex.DirectionOf(u))
	}
	assert.True(t, hex.None.Unit().IsZero())
}

func TestDirection_AnglesAreSixtyDegreeSteps(t *testing.T) {
	for _, d := range hex.Directions() {
		steps := d.Angle() / (math.Pi / 3)
		assert.InDelta(t, math.Round(steps), steps, 1e-9)
	}
}

func TestDirection_CodesRoundTrip(t *testing.T) {
	for _, d := range hex.AllDirections() {
		got, err := hex.DirectionFromCode(d.Code())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}

	_, err := hex.DirectionFromCode(7)
	assert.Error(t, err)
}

func TestParseDirection(t *testing.T) {
	d, err := hex.ParseDirection(" NE ")
	require.NoError(t, err)
	assert.Equal(t, hex.NorthEast, d)

	d, err = hex.ParseDirection("southwest")
	require.NoError(t, err)
	assert.Equal(t, hex.SouthWest, d)

	_, err = hex.ParseDirection("up")
	assert.Error(t, err)
}

func TestSlantPoint_IsOne(t *testing.T) {
	assert.True(t, hex.Pt(1, 1).IsOne())
	assert.True(t, hex.Pt(-1, -1).IsOne())
	assert.True(t, hex.Pt(0, -1).IsOne())
	assert.False(t, hex.Pt(1, -1).IsOne())
	assert.False(t, hex.Pt(2, 0).IsOne())
	assert.False(t, hex.Pt(0, 0).IsOne())
}

func TestSlantPoint_Distance(t *testing.T) {
	assert.InDelta(t, 2.0, hex.Pt(0, 0).Distance(hex.Pt(2, 0)), 1e-9)
	assert.InDelta(t, 2.0, hex.Pt(0, 0).Distance(hex.Pt(2, 2)), 1e-9)
	// one east plus one northwest is the 120 degree diagonal
	assert.InDelta(t, math.Sqrt(3), hex.Pt(1, 1).Add(hex.Pt(0, 1)).Magnitude(), 1e-9)
	assert.Equal(t, 2, hex.Pt(0, 0).Steps(hex.Pt(1, 2)))
	assert.Equal(t, 3, hex.Pt(0, 0).Steps(hex.Pt(3, 3)))
}

func TestSlantPoint_AppleHexRoundTrip(t *testing.T) {
	for x := -12; x <= 12; x++ {
		for y := -12; y <= 12; y++ {
			p := hex.Pt(x, y)
			require.Equal(t, p, p.ToAppleHex().ToSlantPoint(), "%v", p)
		}
	}
}

func TestSlantPoint_AddPolarStaysNearRadius(t *testing.T) {
	origin := hex.Pt(39, 23)
	for deg := 0.0; deg < 360; deg += 7.5 {
		p := origin.AddPolar(deg, 10)
		assert.InDelta(t, 10.0, p.Distance(origin), 0.9, "bearing %v", deg)
	}

	assert.Equal(t, origin.Add(hex.Pt(0, 0)), origin.AddPolar(123, 0))
}

func TestPath(t *testing.T) {
	assert.Empty(t, hex.Path(hex.Pt(3, 3), hex.Pt(3, 3)))

	assert.Equal(t,
		[]hex.SlantPoint{hex.Pt(1, 0), hex.Pt(2, 0), hex.Pt(3, 0)},
		hex.Path(hex.Pt(0, 0), hex.Pt(3, 0)))

	assert.Equal(t,
		[]hex.SlantPoint{hex.Pt(-1, -1), hex.Pt(-2, -2)},
		hex.Path(hex.Pt(0, 0), hex.Pt(-2, -2)))

	path := hex.Path(hex.Pt(0, 0), hex.Pt(4, 2))
	require.Len(t, path, 4)
	prev := hex.Pt(0, 0)
	for _, p := range path {
		assert.True(t, p.Sub(prev).IsOne(), "%v -> %v", prev, p)
		prev = p
	}
	assert.Equal(t, hex.Pt(4, 2), prev)
}
