package engine

import (
	"golang.org/x/exp/rand"

	"github.com/rs/zerolog/log"

	"hive/agent"
	"hive/game"
	"hive/hex"
)

// DefaultRoundLimit is the number of rounds after which an undecided game is
// called a draw.
const DefaultRoundLimit = 30

// DefaultObstructedFields is how many impassable fields are placed before
// play, as in the physical game setup this engine mirrors.
const DefaultObstructedFields = 3

// Result is the adjudicated outcome of a finished game. The rules core only
// answers blocked-queen queries; win/loss/draw is decided here, outside it.
type Result struct {
	Winner game.Player // NoPlayer on a draw
	Reason string
	Turns  int
}

// Update records one completed ply, mirroring what a spectating consumer
// would receive.
type Update struct {
	Move game.Move
	Hash game.StateHash
}

// Engine drives two agents against a single GameState until a queen is
// surrounded or the round limit runs out.
type Engine struct {
	State   *game.GameState
	Agents  map[game.Player]agent.Agent
	Updates []Update

	roundLimit int
	obstructed int
	rng        *rand.Rand
}

// Option configures an Engine.
type Option func(e *Engine)

// WithRoundLimit overrides the draw deadline.
func WithRoundLimit(rounds int) Option {
	return func(e *Engine) {
		if rounds > 0 {
			e.roundLimit = rounds
		}
	}
}

// WithObstructedFields sets how many impassable fields to scatter before
// play.
func WithObstructedFields(count int) Option {
	return func(e *Engine) {
		if count >= 0 {
			e.obstructed = count
		}
	}
}

// WithSeed seeds the obstructed-field placement.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithStrictMoves rebuilds the state in strict mode, so an agent returning
// an illegal move is caught instead of corrupting the game.
func WithStrictMoves() Option {
	return func(e *Engine) {
		e.State = game.NewGameState(e.State.StartPlayer, game.WithStrictMoves())
	}
}

// New sets up a local game between two agents, red moving first.
func New(red, blue agent.Agent, options ...Option) *Engine {
	e := &Engine{
		State: game.NewGameState(game.Red),
		Agents: map[game.Player]agent.Agent{
			game.Red:  red,
			game.Blue: blue,
		},
		roundLimit: DefaultRoundLimit,
		obstructed: DefaultObstructedFields,
		rng:        rand.New(rand.NewSource(1)),
	}
	for _, option := range options {
		option(e)
	}
	e.placeObstructedFields()
	return e
}

// placeObstructedFields scatters the configured number of impassable fields
// on distinct empty coordinates before the first move.
func (e *Engine) placeObstructedFields() {
	empty := e.State.Board.EmptyFields()
	e.rng.Shuffle(len(empty), func(i, j int) {
		empty[i], empty[j] = empty[j], empty[i]
	})
	n := e.obstructed
	if n > len(empty) {
		n = len(empty)
	}
	for _, c := range empty[:n] {
		e.State.SetField(game.Field{Coord: c, Obstructed: true})
	}
}

// Run plays the game to its end and returns the adjudicated result.
func (e *Engine) Run() Result {
	log.Info().Stringer("start_player", e.State.CurrentPlayer).
		Int("round_limit", e.roundLimit).
		Msg("game started")

	for e.State.Round() < e.roundLimit {
		player := e.State.CurrentPlayer
		move := e.Agents[player].FindMove(e.State)

		if !e.State.PerformMove(move) {
			// Only reachable in strict mode or with a broken agent; forfeit.
			log.Error().Stringer("player", player).Stringer("move", move).
				Msg("illegal move submitted")
			return Result{
				Winner: player.Opponent(),
				Reason: "illegal move",
				Turns:  e.State.Turn,
			}
		}

		e.Updates = append(e.Updates, Update{Move: move, Hash: e.State.Hash()})
		log.Debug().Int("turn", e.State.Turn-1).
			Stringer("player", player).
			Stringer("move", move).
			Msg("move performed")

		if result, over := e.adjudicate(); over {
			log.Info().Stringer("winner", result.Winner).
				Str("reason", result.Reason).
				Int("turns", result.Turns).
				Msg("game over")
			log.Debug().Msg("\n" + e.State.Board.String())
			return result
		}
	}

	result := Result{Winner: game.NoPlayer, Reason: "round limit reached", Turns: e.State.Turn}
	log.Info().Str("reason", result.Reason).Int("turns", result.Turns).Msg("game over")
	return result
}

// adjudicate checks both queens after a completed move.
func (e *Engine) adjudicate() (Result, bool) {
	redBlocked := e.State.IsQueenBlocked(game.Red)
	blueBlocked := e.State.IsQueenBlocked(game.Blue)
	switch {
	case redBlocked && blueBlocked:
		return Result{Winner: game.NoPlayer, Reason: "both queens surrounded", Turns: e.State.Turn}, true
	case redBlocked:
		return Result{Winner: game.Blue, Reason: "red queen surrounded", Turns: e.State.Turn}, true
	case blueBlocked:
		return Result{Winner: game.Red, Reason: "blue queen surrounded", Turns: e.State.Turn}, true
	}
	return Result{}, false
}

// Obstructed returns the obstructed coordinates currently on the board.
func (e *Engine) Obstructed() []hex.Coord {
	var out []hex.Coord
	for _, f := range e.State.Board.Fields() {
		if f.Obstructed {
			out = append(out, f.Coord)
		}
	}
	return out
}
