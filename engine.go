package pentamind

import (
	"github.com/pkg/errors"

	"github.com/pentamind/game"
	"github.com/pentamind/mcts"
)

// Engine plays one side (or several colors) of a game, running a fresh
// search from its current board for every move request.
type Engine struct {
	conf    Config
	variant game.Variant
	board   *game.Board
	tree    *mcts.Tree
	shared  *mcts.SharedConst
}

// NewEngine creates an engine from a validated configuration.
func NewEngine(conf Config) (*Engine, error) {
	if err := conf.Validate(); err != nil {
		return nil, errors.WithMessage(err, "engine config")
	}
	v, err := game.ParseVariant(conf.Variant)
	if err != nil {
		return nil, err
	}
	return &Engine{
		conf:    conf,
		variant: v,
		board:   game.NewBoard(v),
	}, nil
}

// Board returns the engine's game board.
func (e *Engine) Board() *game.Board { return e.board }

// BestMove searches the current position for the side to move. Returns
// game.MovePass when there is no legal move.
func (e *Engine) BestMove() game.Move {
	root := game.NewBoard(e.variant)
	if err := root.CopyFrom(e.board); err != nil {
		panic(err)
	}
	shared := mcts.NewSharedConst(root, root.GetToPlay())
	shared.AvoidSymmetricDraw = e.conf.AvoidSymmetricDraw
	e.shared = shared
	e.tree = mcts.New(shared, e.conf.mctsConfig())
	return e.tree.Search()
}

// Play applies a move (or pass) for the side to move.
func (e *Engine) Play(mv game.Move) { e.board.Play(mv) }

// Info summarizes the last search, if any.
func (e *Engine) Info() string {
	if e.tree == nil {
		return "no search has been run"
	}
	return e.tree.Info()
}

// DotGraph renders the last search tree, if any.
func (e *Engine) DotGraph(maxChildren int) (string, error) {
	if e.tree == nil {
		return "", errors.New("no search has been run")
	}
	return e.tree.DotGraph(maxChildren)
}

// Reset clears the board for a new game.
func (e *Engine) Reset() {
	e.board = game.NewBoard(e.variant)
}
