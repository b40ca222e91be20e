package agent

import (
	"golang.org/x/exp/rand"

	"hive/game"
)

// Random picks uniformly among the legal moves. Mostly a baseline opponent
// and a driver for self-play runs.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random agent with its own seeded rng, so games are
// reproducible per seed.
func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (a *Random) FindMove(state *game.GameState) game.Move {
	moves := state.PossibleMoves()
	return moves[a.rng.Intn(len(moves))]
}
