package hex

import "fmt"

// Coord is a cube coordinate on a hexagonal grid. The three axes are
// redundant: X+Y+Z = 0 always holds for coordinates built through this
// package.
type Coord struct {
	X, Y, Z int
}

// Direction is one of the six hex directions, at 60 degree increments.
type Direction int

const (
	Right Direction = iota
	UpRight
	UpLeft
	Left
	DownLeft
	DownRight
)

// Directions lists all six directions in circular order.
var Directions = []Direction{Right, UpRight, UpLeft, Left, DownLeft, DownRight}

// unit holds the per-axis offsets of one step in each direction. Each step
// changes exactly two axes by opposite amounts, so the axis sum stays zero.
var unit = [6]Coord{
	Right:     {X: 1, Y: -1, Z: 0},
	UpRight:   {X: 1, Y: 0, Z: -1},
	UpLeft:    {X: 0, Y: 1, Z: -1},
	Left:      {X: -1, Y: 1, Z: 0},
	DownLeft:  {X: -1, Y: 0, Z: 1},
	DownRight: {X: 0, Y: -1, Z: 1},
}

func (d Direction) String() string {
	switch d {
	case Right:
		return "RIGHT"
	case UpRight:
		return "UP_RIGHT"
	case UpLeft:
		return "UP_LEFT"
	case Left:
		return "LEFT"
	case DownLeft:
		return "DOWN_LEFT"
	case DownRight:
		return "DOWN_RIGHT"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// FromXY builds a coordinate from the x and y axes, deriving z.
func FromXY(x, y int) Coord {
	return Coord{X: x, Y: y, Z: -x - y}
}

// FromXZ builds a coordinate from the x and z axes, deriving y.
func FromXZ(x, z int) Coord {
	return Coord{X: x, Y: -x - z, Z: z}
}

// FromYZ builds a coordinate from the y and z axes, deriving x.
func FromYZ(y, z int) Coord {
	return Coord{X: -y - z, Y: y, Z: z}
}

// New validates an externally sourced coordinate triple. The engine itself
// only constructs well-formed coordinates; anything parsed from the outside
// must pass through here.
func New(x, y, z int) (Coord, error) {
	if x+y+z != 0 {
		return Coord{}, fmt.Errorf("malformed coordinate (%d,%d,%d): axes must sum to zero", x, y, z)
	}
	return Coord{X: x, Y: y, Z: z}, nil
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}

// Translate returns the coordinate n steps away in direction d.
func (c Coord) Translate(d Direction, n int) Coord {
	u := unit[d]
	return Coord{X: c.X + n*u.X, Y: c.Y + n*u.Y, Z: c.Z + n*u.Z}
}

// Neighbour returns the adjacent coordinate in direction d.
func (c Coord) Neighbour(d Direction) Coord {
	return c.Translate(d, 1)
}

// Neighbours returns the six adjacent coordinates in Directions order.
func (c Coord) Neighbours() []Coord {
	out := make([]Coord, 6)
	for i, d := range Directions {
		out[i] = c.Neighbour(d)
	}
	return out
}

// Distance returns the hex distance between a and b: the maximum absolute
// axis delta (equivalently half the sum of all three).
func Distance(a, b Coord) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	dz := abs(a.Z - b.Z)
	return max(dx, max(dy, dz))
}

// SameLine reports whether a and b lie on a common straight hex line, which
// is the case exactly when they agree on at least one axis.
func SameLine(a, b Coord) bool {
	return a.X == b.X || a.Y == b.Y || a.Z == b.Z
}

// LineDirection returns the direction leading from a towards b along their
// shared axis. ok is false when a == b or the coordinates share no axis.
func LineDirection(a, b Coord) (Direction, bool) {
	if a == b || !SameLine(a, b) {
		return 0, false
	}
	dx := sign(b.X - a.X)
	dy := sign(b.Y - a.Y)
	dz := sign(b.Z - a.Z)
	for _, d := range Directions {
		u := unit[d]
		if u.X == dx && u.Y == dy && u.Z == dz {
			return d, true
		}
	}
	return 0, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
