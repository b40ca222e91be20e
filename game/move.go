package game

import (
	"fmt"

	"hive/hex"
)

// Move is one legal action for the side to move: placing an undeployed
// piece, relocating a placed one, or skipping when nothing else is legal.
// All variants are comparable values, so membership checks can use ==.
type Move interface {
	fmt.Stringer
	isMove()
}

// SetMove places a new piece on an empty destination field.
type SetMove struct {
	Piece       Piece
	Destination hex.Coord
}

// DragMove relocates the top piece at Start to Destination.
type DragMove struct {
	Start       hex.Coord
	Destination hex.Coord
}

// SkipMove passes the turn. It is generated only when no set or drag move
// is legal.
type SkipMove struct{}

func (SetMove) isMove()  {}
func (DragMove) isMove() {}
func (SkipMove) isMove() {}

func (m SetMove) String() string {
	return fmt.Sprintf("SET %s -> %s", m.Piece, m.Destination)
}

func (m DragMove) String() string {
	return fmt.Sprintf("DRAG %s -> %s", m.Start, m.Destination)
}

func (SkipMove) String() string {
	return "SKIP"
}
