package game

import "hive/hex"

// FieldState is the derived state of a field. Obstruction wins over
// occupancy, occupancy (the top piece's owner) over emptiness.
type FieldState int

const (
	FieldEmpty FieldState = iota
	FieldObstructed
	FieldRed
	FieldBlue
)

func (s FieldState) String() string {
	switch s {
	case FieldObstructed:
		return "OBSTRUCTED"
	case FieldRed:
		return "RED"
	case FieldBlue:
		return "BLUE"
	}
	return "EMPTY"
}

// Field is one cell of the board: a coordinate, a permanent obstruction
// flag, and a stack of pieces. The last element of Pieces is the top of the
// stack. Obstructed fields never hold pieces.
type Field struct {
	Coord      hex.Coord
	Obstructed bool
	Pieces     []Piece
}

// HasPieces reports whether at least one piece sits on the field.
func (f Field) HasPieces() bool {
	return len(f.Pieces) > 0
}

// Empty reports whether the field is passable and unoccupied.
func (f Field) Empty() bool {
	return !f.Obstructed && len(f.Pieces) == 0
}

// TopPiece returns the visible occupant of the field.
func (f Field) TopPiece() (Piece, bool) {
	if len(f.Pieces) == 0 {
		return Piece{}, false
	}
	return f.Pieces[len(f.Pieces)-1], true
}

// OwnedBy reports whether the field's top piece belongs to p.
func (f Field) OwnedBy(p Player) bool {
	top, ok := f.TopPiece()
	return ok && top.Owner == p
}

// State derives the field state: obstructed > top-piece owner > empty.
func (f Field) State() FieldState {
	if f.Obstructed {
		return FieldObstructed
	}
	if top, ok := f.TopPiece(); ok {
		if top.Owner == Red {
			return FieldRed
		}
		return FieldBlue
	}
	return FieldEmpty
}

// Copy returns a field with its own piece stack. An empty stack stays nil
// so that copies of untouched and restored fields compare equal.
func (f Field) Copy() Field {
	var pieces []Piece
	if len(f.Pieces) > 0 {
		pieces = make([]Piece, len(f.Pieces))
		copy(pieces, f.Pieces)
	}
	return Field{Coord: f.Coord, Obstructed: f.Obstructed, Pieces: pieces}
}
