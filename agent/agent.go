package agent

import "hive/game"

// Agent picks one move for the side to move. Implementations must return a
// move drawn from state.PossibleMoves() and must not mutate the state they
// are handed.
type Agent interface {
	FindMove(state *game.GameState) game.Move
}
