package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hive/hex"
)

func TestBoardFieldCount(t *testing.T) {
	cases := []struct {
		radius int
		want   int
	}{
		{radius: 1, want: 7},
		{radius: 2, want: 19},
		{radius: 5, want: 91},
	}
	for _, c := range cases {
		b := NewBoard(c.radius)
		require.Equal(t, c.want, b.FieldCount(), "radius %d", c.radius)
		require.Len(t, b.EmptyFields(), c.want)
	}
}

func TestIsOnBoardHexagonalBound(t *testing.T) {
	b := NewBoard(2)

	// |x| <= R and |y| <= R alone is not enough: the bound on y depends
	// on x.
	require.True(t, b.IsOnBoard(hex.FromXY(2, 0)))
	require.True(t, b.IsOnBoard(hex.FromXY(2, -2)))
	require.False(t, b.IsOnBoard(hex.FromXY(2, 1)), "square-bound corner must be rejected")
	require.False(t, b.IsOnBoard(hex.FromXY(-2, -1)), "square-bound corner must be rejected")
	require.False(t, b.IsOnBoard(hex.FromXY(3, 0)))
}

func TestIndexIsBijective(t *testing.T) {
	b := NewBoard(3)
	seen := make(map[int]hex.Coord)
	for x := -3; x <= 3; x++ {
		for y := -3; y <= 3; y++ {
			c := hex.FromXY(x, y)
			if !b.IsOnBoard(c) {
				continue
			}
			i := b.index(c)
			require.GreaterOrEqual(t, i, 0)
			require.Less(t, i, b.FieldCount())
			prev, dup := seen[i]
			require.False(t, dup, "index %d maps both %v and %v", i, prev, c)
			seen[i] = c
			require.Equal(t, c, b.fields[i].Coord)
		}
	}
	require.Len(t, seen, b.FieldCount())
}

func TestQueriesFailClosedOffBoard(t *testing.T) {
	b := NewBoard(2)
	far := hex.FromXY(10, 10)

	_, ok := b.FieldAt(far)
	require.False(t, ok)
	_, ok = b.StateAt(far)
	require.False(t, ok)
	require.False(t, b.SetField(Field{Coord: far}))
	require.False(t, b.pushPiece(far, Piece{Owner: Red, Type: Ant}))
	_, ok = b.popPiece(far)
	require.False(t, ok)
	require.Empty(t, b.NeighbourFields(far))
}

func TestFieldStatePriority(t *testing.T) {
	b := NewBoard(2)

	origin := hex.FromXY(0, 0)
	require.True(t, b.pushPiece(origin, Piece{Owner: Red, Type: QueenBee}))
	require.True(t, b.pushPiece(origin, Piece{Owner: Blue, Type: Beetle}))
	state, ok := b.StateAt(origin)
	require.True(t, ok)
	require.Equal(t, FieldBlue, state, "top piece decides ownership")

	blockedAt := hex.FromXY(1, 0)
	require.True(t, b.SetField(Field{Coord: blockedAt, Obstructed: true}))
	state, _ = b.StateAt(blockedAt)
	require.Equal(t, FieldObstructed, state)
	require.False(t, b.pushPiece(blockedAt, Piece{Owner: Red, Type: Ant}),
		"obstructed fields never hold pieces")

	require.False(t, b.SetField(Field{
		Coord:      hex.FromXY(0, 1),
		Obstructed: true,
		Pieces:     []Piece{{Owner: Red, Type: Ant}},
	}), "obstructed and occupied at once is invalid")
}

func TestSwarmConnected(t *testing.T) {
	b := NewBoard(3)
	require.True(t, b.SwarmConnected(), "empty swarm is trivially connected")

	b.pushPiece(hex.FromXY(0, 0), Piece{Owner: Red, Type: QueenBee})
	require.True(t, b.SwarmConnected())

	b.pushPiece(hex.FromXY(1, -1), Piece{Owner: Blue, Type: QueenBee})
	require.True(t, b.SwarmConnected())

	b.pushPiece(hex.FromXY(3, -3), Piece{Owner: Red, Type: Ant})
	require.False(t, b.SwarmConnected(), "distant piece splits the swarm")

	b.pushPiece(hex.FromXY(2, -2), Piece{Owner: Blue, Type: Ant})
	require.True(t, b.SwarmConnected(), "gap bridged")
}

func TestFieldsNextToSwarm(t *testing.T) {
	b := NewBoard(3)
	require.Empty(t, b.FieldsNextToSwarm())

	origin := hex.FromXY(0, 0)
	b.pushPiece(origin, Piece{Owner: Red, Type: QueenBee})

	next := b.FieldsNextToSwarm()
	require.Len(t, next, 6)
	for _, c := range next {
		require.Equal(t, 1, hex.Distance(origin, c))
	}

	// An obstructed neighbour is not a placement candidate.
	b.SetField(Field{Coord: hex.FromXY(1, -1), Obstructed: true})
	require.Len(t, b.FieldsNextToSwarm(), 5)
}

func TestWithPieceLiftedRestores(t *testing.T) {
	b := NewBoard(2)
	origin := hex.FromXY(0, 0)
	b.pushPiece(origin, Piece{Owner: Red, Type: QueenBee})
	b.pushPiece(origin, Piece{Owner: Red, Type: Beetle})

	b.withPieceLifted(origin, func(lifted Piece) {
		require.Equal(t, Beetle, lifted.Type)
		f, _ := b.FieldAt(origin)
		require.Len(t, f.Pieces, 1)
	})

	f, _ := b.FieldAt(origin)
	require.Len(t, f.Pieces, 2)
	top, _ := f.TopPiece()
	require.Equal(t, Beetle, top.Type)
}

func TestBoardCopyIsIndependent(t *testing.T) {
	b := NewBoard(2)
	origin := hex.FromXY(0, 0)
	b.pushPiece(origin, Piece{Owner: Red, Type: QueenBee})

	cp := b.Copy()
	cp.pushPiece(origin, Piece{Owner: Blue, Type: Beetle})
	cp.pushPiece(hex.FromXY(1, -1), Piece{Owner: Blue, Type: Ant})

	f, _ := b.FieldAt(origin)
	require.Len(t, f.Pieces, 1, "copy mutation must not leak back")
	require.Len(t, b.SwarmFields(), 1)
	require.Len(t, cp.SwarmFields(), 2)
}
