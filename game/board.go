package game

import (
	"strings"

	"hive/hex"
)

// DefaultBoardSize is the diameter of the standard board (11 fields across,
// radius 5, 91 fields in total).
const DefaultBoardSize = 11

// Board is a fixed-radius hexagonal grid of fields. Fields live in a dense
// slice addressed through a bijective coordinate-to-offset mapping: row x
// holds the 2R+1-|x| coordinates whose y lies inside the hexagonal bound.
type Board struct {
	radius    int
	fields    []Field
	rowOffset []int
}

// NewBoard creates an empty board of the given radius.
func NewBoard(radius int) *Board {
	diameter := 2*radius + 1
	rowOffset := make([]int, diameter)
	total := 0
	for x := -radius; x <= radius; x++ {
		rowOffset[x+radius] = total
		total += diameter - abs(x)
	}

	b := &Board{
		radius:    radius,
		fields:    make([]Field, total),
		rowOffset: rowOffset,
	}
	for x := -radius; x <= radius; x++ {
		for y := yMin(x, radius); y <= yMax(x, radius); y++ {
			c := hex.FromXY(x, y)
			b.fields[b.index(c)] = Field{Coord: c}
		}
	}
	return b
}

func yMin(x, radius int) int {
	if -x-radius > -radius {
		return -x - radius
	}
	return -radius
}

func yMax(x, radius int) int {
	if -x+radius < radius {
		return -x + radius
	}
	return radius
}

// Radius returns the board radius R.
func (b *Board) Radius() int {
	return b.radius
}

// FieldCount returns the number of fields on the board (3R²+3R+1).
func (b *Board) FieldCount() int {
	return len(b.fields)
}

// IsOnBoard reports whether c falls inside the hexagonal bound. The y range
// depends on x; a plain |y| <= R square bound would admit corner coordinates
// that do not exist.
func (b *Board) IsOnBoard(c hex.Coord) bool {
	if abs(c.X) > b.radius {
		return false
	}
	return c.Y >= yMin(c.X, b.radius) && c.Y <= yMax(c.X, b.radius)
}

// index maps an on-board coordinate to its dense offset. Callers must have
// checked IsOnBoard.
func (b *Board) index(c hex.Coord) int {
	return b.rowOffset[c.X+b.radius] + c.Y - yMin(c.X, b.radius)
}

// fieldAt returns the addressable field at c, or nil off the board.
func (b *Board) fieldAt(c hex.Coord) *Field {
	if !b.IsOnBoard(c) {
		return nil
	}
	return &b.fields[b.index(c)]
}

// FieldAt returns a copy of the field at c. ok is false off the board;
// generation code probes neighbours unconditionally and relies on this
// failing closed.
func (b *Board) FieldAt(c hex.Coord) (Field, bool) {
	f := b.fieldAt(c)
	if f == nil {
		return Field{}, false
	}
	return f.Copy(), true
}

// StateAt returns the derived state of the field at c, failing closed off
// the board.
func (b *Board) StateAt(c hex.Coord) (FieldState, bool) {
	f := b.fieldAt(c)
	if f == nil {
		return FieldEmpty, false
	}
	return f.State(), true
}

// SetField overwrites the field at f.Coord with an externally provided one,
// used when mirroring an authoritative remote game. Returns false off the
// board or when the field is both obstructed and occupied.
func (b *Board) SetField(f Field) bool {
	target := b.fieldAt(f.Coord)
	if target == nil {
		return false
	}
	if f.Obstructed && len(f.Pieces) > 0 {
		return false
	}
	cp := f.Copy()
	cp.Coord = target.Coord
	*target = cp
	return true
}

// Fields returns copies of all fields on the board.
func (b *Board) Fields() []Field {
	out := make([]Field, len(b.fields))
	for i, f := range b.fields {
		out[i] = f.Copy()
	}
	return out
}

// EmptyFields returns the coordinates of all passable, unoccupied fields.
func (b *Board) EmptyFields() []hex.Coord {
	var out []hex.Coord
	for i := range b.fields {
		if b.fields[i].Empty() {
			out = append(out, b.fields[i].Coord)
		}
	}
	return out
}

// neighbourCoords returns the on-board neighbours of c.
func (b *Board) neighbourCoords(c hex.Coord) []hex.Coord {
	out := make([]hex.Coord, 0, 6)
	for _, n := range c.Neighbours() {
		if b.IsOnBoard(n) {
			out = append(out, n)
		}
	}
	return out
}

// NeighbourFields returns copies of the on-board neighbour fields of c.
func (b *Board) NeighbourFields(c hex.Coord) []Field {
	coords := b.neighbourCoords(c)
	out := make([]Field, len(coords))
	for i, n := range coords {
		out[i] = b.fields[b.index(n)].Copy()
	}
	return out
}

// EmptyNeighbours returns the on-board neighbours of c that are passable
// and unoccupied.
func (b *Board) EmptyNeighbours(c hex.Coord) []hex.Coord {
	var out []hex.Coord
	for _, n := range b.neighbourCoords(c) {
		if b.fields[b.index(n)].Empty() {
			out = append(out, n)
		}
	}
	return out
}

// SwarmFields returns the coordinates of all occupied fields.
func (b *Board) SwarmFields() []hex.Coord {
	var out []hex.Coord
	for i := range b.fields {
		if b.fields[i].HasPieces() {
			out = append(out, b.fields[i].Coord)
		}
	}
	return out
}

// FieldsOwnedBy returns the coordinates of fields whose top piece belongs
// to p.
func (b *Board) FieldsOwnedBy(p Player) []hex.Coord {
	var out []hex.Coord
	for i := range b.fields {
		if b.fields[i].OwnedBy(p) {
			out = append(out, b.fields[i].Coord)
		}
	}
	return out
}

// FieldsNextToSwarm returns the empty fields adjacent to at least one
// occupied field, the placement candidates.
func (b *Board) FieldsNextToSwarm() []hex.Coord {
	seen := make(map[hex.Coord]bool)
	var out []hex.Coord
	for _, c := range b.SwarmFields() {
		for _, n := range b.EmptyNeighbours(c) {
			if seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}

// SwarmConnected reports whether all occupied fields form one connected
// component. Flood fill from any occupied field, just BFS; an empty swarm
// is trivially connected.
func (b *Board) SwarmConnected() bool {
	swarm := b.SwarmFields()
	if len(swarm) <= 1 {
		return true
	}
	visited := make(map[hex.Coord]bool, len(swarm))
	queue := []hex.Coord{swarm[0]}
	visited[swarm[0]] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range b.neighbourCoords(cur) {
			if visited[n] || !b.fields[b.index(n)].HasPieces() {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	return len(visited) == len(swarm)
}

// pushPiece puts a piece on top of the stack at c. Fails off the board and
// on obstructed fields.
func (b *Board) pushPiece(c hex.Coord, p Piece) bool {
	f := b.fieldAt(c)
	if f == nil || f.Obstructed {
		return false
	}
	f.Pieces = append(f.Pieces, p)
	return true
}

// popPiece removes and returns the top piece at c.
func (b *Board) popPiece(c hex.Coord) (Piece, bool) {
	f := b.fieldAt(c)
	if f == nil || len(f.Pieces) == 0 {
		return Piece{}, false
	}
	p := f.Pieces[len(f.Pieces)-1]
	f.Pieces = f.Pieces[:len(f.Pieces)-1]
	if len(f.Pieces) == 0 {
		f.Pieces = nil
	}
	return p, true
}

// withPieceLifted runs fn with the top piece at c temporarily off the
// board. The piece is restored on every exit path, including a panic in fn.
func (b *Board) withPieceLifted(c hex.Coord, fn func(lifted Piece)) {
	p, ok := b.popPiece(c)
	if !ok {
		return
	}
	defer b.pushPiece(c, p)
	fn(p)
}

// Copy returns a deep copy sharing no mutable state with b.
func (b *Board) Copy() *Board {
	fields := make([]Field, len(b.fields))
	for i := range b.fields {
		fields[i] = b.fields[i].Copy()
	}
	rowOffset := make([]int, len(b.rowOffset))
	copy(rowOffset, b.rowOffset)
	return &Board{radius: b.radius, fields: fields, rowOffset: rowOffset}
}

// String renders the board row by row for debug logs. One letter per field:
// R/B for the top piece's owner, X for obstructed, . for empty.
func (b *Board) String() string {
	var sb strings.Builder
	for x := b.radius; x >= -b.radius; x-- {
		sb.WriteString(strings.Repeat(" ", abs(x)))
		for y := yMin(x, b.radius); y <= yMax(x, b.radius); y++ {
			f := b.fields[b.index(hex.FromXY(x, y))]
			switch f.State() {
			case FieldObstructed:
				sb.WriteString("X ")
			case FieldRed:
				sb.WriteString("R ")
			case FieldBlue:
				sb.WriteString("B ")
			default:
				sb.WriteString(". ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
