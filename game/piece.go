package game

import "fmt"

// Player identifies one of the two sides.
type Player int

const (
	NoPlayer Player = iota
	Red
	Blue
)

func (p Player) String() string {
	switch p {
	case Red:
		return "RED"
	case Blue:
		return "BLUE"
	}
	return "NONE"
}

// Opponent returns the other side.
func (p Player) Opponent() Player {
	switch p {
	case Red:
		return Blue
	case Blue:
		return Red
	}
	return NoPlayer
}

// PieceType is one of the five insect kinds.
type PieceType int

const (
	QueenBee PieceType = iota
	Beetle
	Grasshopper
	Spider
	Ant
)

// PieceTypes lists all types in a stable order.
var PieceTypes = []PieceType{QueenBee, Beetle, Grasshopper, Spider, Ant}

// startingCounts is the per-player supply of each type, 11 pieces in total.
var startingCounts = map[PieceType]int{
	QueenBee:    1,
	Beetle:      2,
	Grasshopper: 3,
	Spider:      2,
	Ant:         3,
}

// StartingCount returns the number of pieces of type t each player owns.
func (t PieceType) StartingCount() int {
	return startingCounts[t]
}

func (t PieceType) String() string {
	switch t {
	case QueenBee:
		return "BEE"
	case Beetle:
		return "BEETLE"
	case Grasshopper:
		return "GRASSHOPPER"
	case Spider:
		return "SPIDER"
	case Ant:
		return "ANT"
	}
	return fmt.Sprintf("PieceType(%d)", int(t))
}

// Piece is a single insect tile.
type Piece struct {
	Owner Player
	Type  PieceType
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s", p.Owner, p.Type)
}
