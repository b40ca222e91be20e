package game

import (
	"encoding/binary"
	"hash/fnv"

	"hive/hex"
)

// StateHash identifies a game position, for consumers that keep transposition
// tables or per-ply update logs.
type StateHash uint64

// GameState is the dynamic state of a game: the board, the turn bookkeeping
// and both inventories. It is mutated only through PerformMove, UndoLastMove
// and SetField; hypothetical exploration goes through Copy, never through
// shared aliasing.
type GameState struct {
	Board         *Board
	Turn          int
	CurrentPlayer Player
	StartPlayer   Player
	LastMove      Move

	inventories map[Player]*Inventory
	// history holds the LastMove values that were current before each
	// performed move, so undo can restore them.
	history []Move
	strict  bool
}

// Option configures a new GameState.
type Option func(gs *GameState)

// WithRadius sets a non-standard board radius.
func WithRadius(radius int) Option {
	return func(gs *GameState) {
		if radius > 0 {
			gs.Board = NewBoard(radius)
		}
	}
}

// WithStrictMoves makes PerformMove re-check that the submitted move is in
// the current legal set instead of trusting the caller. Slower, but an
// illegal move is then reported instead of corrupting the state.
func WithStrictMoves() Option {
	return func(gs *GameState) {
		gs.strict = true
	}
}

// NewGameState returns a fresh state with an empty standard board and full
// inventories; startPlayer moves first.
func NewGameState(startPlayer Player, options ...Option) *GameState {
	gs := &GameState{
		Board:         NewBoard((DefaultBoardSize - 1) / 2),
		CurrentPlayer: startPlayer,
		StartPlayer:   startPlayer,
		inventories: map[Player]*Inventory{
			Red:  NewInventory(),
			Blue: NewInventory(),
		},
	}
	for _, option := range options {
		option(gs)
	}
	return gs
}

// Copy returns a deep snapshot sharing no mutable state with gs, so a
// lookahead consumer can explore futures without touching the original.
func (gs *GameState) Copy() *GameState {
	inventories := make(map[Player]*Inventory, len(gs.inventories))
	for p, inv := range gs.inventories {
		inventories[p] = inv.Copy()
	}
	history := make([]Move, len(gs.history))
	copy(history, gs.history)

	return &GameState{
		Board:         gs.Board.Copy(),
		Turn:          gs.Turn,
		CurrentPlayer: gs.CurrentPlayer,
		StartPlayer:   gs.StartPlayer,
		LastMove:      gs.LastMove,
		inventories:   inventories,
		history:       history,
		strict:        gs.strict,
	}
}

// Round returns the zero-based round number, two turns per round.
func (gs *GameState) Round() int {
	return gs.Turn / 2
}

// Inventory returns the inventory of p.
func (gs *GameState) Inventory(p Player) *Inventory {
	return gs.inventories[p]
}

// StateAt returns the derived field state at c, failing closed off the
// board.
func (gs *GameState) StateAt(c hex.Coord) (FieldState, bool) {
	return gs.Board.StateAt(c)
}

// FieldsOwnedBy returns the coordinates of the fields p currently controls.
func (gs *GameState) FieldsOwnedBy(p Player) []hex.Coord {
	return gs.Board.FieldsOwnedBy(p)
}

// PerformMove applies a move for the current player and advances the turn.
// The move is assumed to come from the last PossibleMoves result; without
// strict mode no re-validation happens. Returns false when the move could
// not be applied, leaving the state untouched.
func (gs *GameState) PerformMove(move Move) bool {
	if gs.strict && !gs.moveLegal(move) {
		return false
	}
	switch m := move.(type) {
	case SetMove:
		if m.Piece.Owner != gs.CurrentPlayer {
			return false
		}
		if !gs.inventories[gs.CurrentPlayer].Deploy(m.Piece.Type) {
			return false
		}
		if !gs.Board.pushPiece(m.Destination, m.Piece) {
			gs.inventories[gs.CurrentPlayer].Recall(m.Piece.Type)
			return false
		}
	case DragMove:
		piece, ok := gs.Board.popPiece(m.Start)
		if !ok {
			return false
		}
		if !gs.Board.pushPiece(m.Destination, piece) {
			gs.Board.pushPiece(m.Start, piece)
			return false
		}
	case SkipMove:
	default:
		return false
	}

	gs.history = append(gs.history, gs.LastMove)
	gs.LastMove = move
	gs.Turn++
	gs.CurrentPlayer = gs.CurrentPlayer.Opponent()
	return true
}

// moveLegal checks membership in the freshly generated legal-move set.
func (gs *GameState) moveLegal(move Move) bool {
	for _, legal := range gs.PossibleMoves() {
		if legal == move {
			return true
		}
	}
	return false
}

// UndoLastMove exactly reverses the last performed move: board occupancy,
// inventories, turn counter and current player. A no-op when no move has
// been performed.
func (gs *GameState) UndoLastMove() {
	if len(gs.history) == 0 {
		return
	}
	mover := gs.CurrentPlayer.Opponent()
	switch m := gs.LastMove.(type) {
	case SetMove:
		gs.Board.popPiece(m.Destination)
		gs.inventories[mover].Recall(m.Piece.Type)
	case DragMove:
		if piece, ok := gs.Board.popPiece(m.Destination); ok {
			gs.Board.pushPiece(m.Start, piece)
		}
	}
	gs.LastMove = gs.history[len(gs.history)-1]
	gs.history = gs.history[:len(gs.history)-1]
	gs.Turn--
	gs.CurrentPlayer = mover
}

// SetField mirrors an authoritative external field onto the board, used
// while constructing a state from a remote game. Inventories are not
// touched; call SyncInventories once mirroring is complete.
func (gs *GameState) SetField(f Field) bool {
	return gs.Board.SetField(f)
}

// SyncInventories recomputes both inventories from the board: deployed
// counts follow the pieces actually placed, the remainder of each starting
// count stays in hand.
func (gs *GameState) SyncInventories() {
	for _, p := range []Player{Red, Blue} {
		inv := NewInventory()
		for _, c := range gs.Board.SwarmFields() {
			f, _ := gs.Board.FieldAt(c)
			for _, piece := range f.Pieces {
				if piece.Owner == p {
					inv.Deploy(piece.Type)
				}
			}
		}
		gs.inventories[p] = inv
	}
}

// IsQueenBlocked reports whether p's queen bee is on the board with no
// empty on-board neighbour left: every adjacent field is occupied or
// obstructed. False while the queen is still in hand.
func (gs *GameState) IsQueenBlocked(p Player) bool {
	queen, ok := gs.queenField(p)
	if !ok {
		return false
	}
	return len(gs.Board.EmptyNeighbours(queen)) == 0
}

// queenField locates the field holding p's queen, anywhere in its stack (a
// beetle may sit on top of it).
func (gs *GameState) queenField(p Player) (hex.Coord, bool) {
	for _, c := range gs.Board.SwarmFields() {
		f, _ := gs.Board.FieldAt(c)
		for _, piece := range f.Pieces {
			if piece.Owner == p && piece.Type == QueenBee {
				return c, true
			}
		}
	}
	return hex.Coord{}, false
}

// Hash returns an FNV-64a digest of the position: board occupancy, turn and
// current player.
func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.Turn))
	binary.Write(hasher, binary.LittleEndian, int64(gs.CurrentPlayer))

	for _, f := range gs.Board.Fields() {
		if !f.HasPieces() && !f.Obstructed {
			continue
		}
		binary.Write(hasher, binary.LittleEndian, int64(f.Coord.X))
		binary.Write(hasher, binary.LittleEndian, int64(f.Coord.Y))
		if f.Obstructed {
			binary.Write(hasher, binary.LittleEndian, int64(-1))
			continue
		}
		for _, piece := range f.Pieces {
			binary.Write(hasher, binary.LittleEndian, int64(piece.Owner))
			binary.Write(hasher, binary.LittleEndian, int64(piece.Type))
		}
	}
	return StateHash(hasher.Sum64())
}
