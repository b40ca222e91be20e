package game

import "hive/hex"

// QueenDeadlineRound is the zero-based round (two turns per round) by which
// a player must have deployed the queen bee. From this round on, a player
// whose queen is still in hand may only generate queen set moves.
const QueenDeadlineRound = 3

// spiderHops is the exact number of slides a spider makes.
const spiderHops = 3

// PossibleMoves returns every legal move for the current player. The result
// is never empty: when no set or drag move exists it contains exactly one
// SkipMove.
func (gs *GameState) PossibleMoves() []Move {
	moves := gs.setMoves()
	moves = append(moves, gs.dragMoves()...)
	if len(moves) == 0 {
		moves = append(moves, SkipMove{})
	}
	return moves
}

// setMoves generates all placements: every eligible undeployed type on
// every legal destination.
func (gs *GameState) setMoves() []Move {
	destinations := gs.setDestinations()
	if len(destinations) == 0 {
		return nil
	}
	types := gs.eligibleSetTypes()
	moves := make([]Move, 0, len(destinations)*len(types))
	for _, t := range types {
		piece := Piece{Owner: gs.CurrentPlayer, Type: t}
		for _, dest := range destinations {
			moves = append(moves, SetMove{Piece: piece, Destination: dest})
		}
	}
	return moves
}

// setDestinations returns the legal placement fields for the current turn.
func (gs *GameState) setDestinations() []hex.Coord {
	switch gs.Turn {
	case 0:
		// First piece of the game goes anywhere.
		return gs.Board.EmptyFields()
	case 1:
		// Second piece must touch the first one.
		return gs.Board.FieldsNextToSwarm()
	default:
		return gs.placementsNextToOwn()
	}
}

// placementsNextToOwn returns the empty fields adjacent to a field owned by
// the current player but to none owned by the opponent. A newly placed
// piece may never touch an enemy piece.
func (gs *GameState) placementsNextToOwn() []hex.Coord {
	opponent := gs.CurrentPlayer.Opponent()
	seen := make(map[hex.Coord]bool)
	var out []hex.Coord
	for _, own := range gs.Board.FieldsOwnedBy(gs.CurrentPlayer) {
		for _, n := range gs.Board.EmptyNeighbours(own) {
			if seen[n] {
				continue
			}
			seen[n] = true
			touchesEnemy := false
			for _, nn := range gs.Board.NeighbourFields(n) {
				if nn.OwnedBy(opponent) {
					touchesEnemy = true
					break
				}
			}
			if !touchesEnemy {
				out = append(out, n)
			}
		}
	}
	return out
}

// eligibleSetTypes returns the piece types the current player may place.
// Once the queen deadline round is reached with the queen still in hand,
// only the queen remains eligible.
func (gs *GameState) eligibleSetTypes() []PieceType {
	inv := gs.inventories[gs.CurrentPlayer]
	if gs.Round() >= QueenDeadlineRound && inv.Undeployed(QueenBee) > 0 {
		return []PieceType{QueenBee}
	}
	return inv.UndeployedTypes()
}

// dragMoves generates all relocations for the current player. Drags are
// available only once the player's queen is deployed, and a piece may only
// leave its field if the remaining swarm stays connected (one-hive rule).
func (gs *GameState) dragMoves() []Move {
	if !gs.inventories[gs.CurrentPlayer].QueenDeployed() {
		return nil
	}
	var moves []Move
	for _, start := range gs.Board.FieldsOwnedBy(gs.CurrentPlayer) {
		gs.Board.withPieceLifted(start, func(lifted Piece) {
			if !gs.Board.SwarmConnected() {
				return
			}
			for _, dest := range gs.dragDestinations(lifted.Type, start) {
				moves = append(moves, DragMove{Start: start, Destination: dest})
			}
		})
	}
	return moves
}

// dragDestinations computes the destinations for a lifted piece of type t
// standing at start. The piece itself is already off the board.
func (gs *GameState) dragDestinations(t PieceType, start hex.Coord) []hex.Coord {
	switch t {
	case QueenBee:
		return gs.Board.slideDestinations(start)
	case Beetle:
		return gs.Board.beetleDestinations(start)
	case Grasshopper:
		return gs.Board.grasshopperDestinations(start)
	case Spider:
		return gs.Board.spiderDestinations(start)
	case Ant:
		return gs.Board.antDestinations(start)
	}
	return nil
}

// slideDestinations returns the empty neighbours reachable by a single
// passage-valid slide, the queen bee's move.
func (b *Board) slideDestinations(start hex.Coord) []hex.Coord {
	var out []hex.Coord
	for _, n := range start.Neighbours() {
		if b.canSlide(start, n) {
			out = append(out, n)
		}
	}
	return out
}

// beetleDestinations returns all neighbours a beetle can reach: occupied
// fields are climbed regardless of gaps, empty fields require a valid
// passage.
func (b *Board) beetleDestinations(start hex.Coord) []hex.Coord {
	var out []hex.Coord
	for _, n := range start.Neighbours() {
		f := b.fieldAt(n)
		if f == nil {
			continue
		}
		if f.HasPieces() || b.canSlide(start, n) {
			out = append(out, n)
		}
	}
	return out
}

// grasshopperDestinations returns the straight-line jumps: for each
// direction with an adjacent occupied field, over all contiguous occupied
// fields onto the first empty one beyond.
func (b *Board) grasshopperDestinations(start hex.Coord) []hex.Coord {
	var out []hex.Coord
	for _, d := range hex.Directions {
		cur := start.Neighbour(d)
		f := b.fieldAt(cur)
		if f == nil || !f.HasPieces() {
			continue
		}
		for f != nil && f.HasPieces() {
			cur = cur.Neighbour(d)
			f = b.fieldAt(cur)
		}
		// The line ends on the first non-occupied field: off the board or
		// obstructed means no landing in this direction.
		if f != nil && f.Empty() {
			out = append(out, cur)
		}
	}
	return out
}

// spiderDestinations returns the distinct endpoints of exactly three
// passage-valid slides, never stepping onto the start field or straight
// back onto the previous one.
func (b *Board) spiderDestinations(start hex.Coord) []hex.Coord {
	seen := make(map[hex.Coord]bool)
	var out []hex.Coord
	var walk func(cur, prev hex.Coord, hops int)
	walk = func(cur, prev hex.Coord, hops int) {
		if hops == spiderHops {
			if !seen[cur] {
				seen[cur] = true
				out = append(out, cur)
			}
			return
		}
		for _, n := range cur.Neighbours() {
			if n == start || n == prev {
				continue
			}
			if b.canSlide(cur, n) {
				walk(n, cur, hops+1)
			}
		}
	}
	walk(start, start, 0)
	return out
}

// antDestinations flood fills the empty fields reachable from start through
// passage-valid slides. Every reached field except the start itself is a
// destination.
func (b *Board) antDestinations(start hex.Coord) []hex.Coord {
	visited := map[hex.Coord]bool{start: true}
	queue := []hex.Coord{start}
	var out []hex.Coord
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range cur.Neighbours() {
			if visited[n] || !b.canSlide(cur, n) {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
			out = append(out, n)
		}
	}
	return out
}

// canSlide reports whether a piece may slide from src onto the adjacent
// empty field dst. Of the fields flanking the passage (adjacent to both src
// and dst), exactly one must be blocked: a fully blocked gap cannot be
// squeezed through, and a fully open one offers no hive to slide along.
// Flanks off the board do not count.
func (b *Board) canSlide(src, dst hex.Coord) bool {
	f := b.fieldAt(dst)
	if f == nil || !f.Empty() {
		return false
	}
	blocked := 0
	for _, n := range src.Neighbours() {
		if hex.Distance(n, dst) != 1 {
			continue
		}
		flank := b.fieldAt(n)
		if flank == nil {
			continue
		}
		if flank.Obstructed || flank.HasPieces() {
			blocked++
		}
	}
	return blocked == 1
}
