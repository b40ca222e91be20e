package hex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructorsDeriveThirdAxis(t *testing.T) {
	cases := []struct {
		name string
		got  Coord
	}{
		{"FromXY", FromXY(2, -3)},
		{"FromXZ", FromXZ(-4, 1)},
		{"FromYZ", FromYZ(5, -2)},
		{"FromXY origin", FromXY(0, 0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, 0, c.got.X+c.got.Y+c.got.Z, "axes must sum to zero")
		})
	}
}

func TestNewRejectsMalformedTriple(t *testing.T) {
	_, err := New(1, 1, 1)
	require.Error(t, err)

	c, err := New(2, -1, -1)
	require.NoError(t, err)
	require.Equal(t, Coord{X: 2, Y: -1, Z: -1}, c)
}

func TestNeighbourDistanceAndInvariant(t *testing.T) {
	coords := []Coord{
		FromXY(0, 0),
		FromXY(3, -1),
		FromXY(-2, 5),
		FromXY(-4, -1),
	}
	for _, c := range coords {
		for _, d := range Directions {
			n := c.Neighbour(d)
			require.Equal(t, 0, n.X+n.Y+n.Z, "neighbour of %v in %v breaks axis sum", c, d)
			require.Equal(t, 1, Distance(c, n), "neighbour of %v in %v not at distance 1", c, d)
		}
	}
}

func TestTranslateScalesDistance(t *testing.T) {
	start := FromXY(1, -2)
	for _, d := range Directions {
		require.Equal(t, 4, Distance(start, start.Translate(d, 4)))
	}
}

func TestNeighboursAreDistinct(t *testing.T) {
	seen := map[Coord]bool{}
	for _, n := range FromXY(0, 0).Neighbours() {
		require.False(t, seen[n], "duplicate neighbour %v", n)
		seen[n] = true
	}
	require.Len(t, seen, 6)
}

func TestDistanceMatchesHalfAxisSum(t *testing.T) {
	a := FromXY(-3, 2)
	b := FromXY(4, -1)
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z
	require.Equal(t, (abs(dx)+abs(dy)+abs(dz))/2, Distance(a, b))
}

func TestLineDirection(t *testing.T) {
	origin := FromXY(0, 0)

	t.Run("aligned coordinates", func(t *testing.T) {
		for _, d := range Directions {
			target := origin.Translate(d, 3)
			got, ok := LineDirection(origin, target)
			require.True(t, ok, "expected a line towards %v", target)
			require.Equal(t, d, got)
		}
	})

	t.Run("unaligned coordinates", func(t *testing.T) {
		// (0,0,0) -> (2,-1,-1) shares no axis.
		_, ok := LineDirection(origin, FromXY(2, -1))
		require.False(t, ok)
		require.False(t, SameLine(origin, FromXY(2, -1)))
	})

	t.Run("identical coordinates", func(t *testing.T) {
		_, ok := LineDirection(origin, origin)
		require.False(t, ok)
	})
}
