package pentamind

import (
	"bytes"
	"log"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/pentamind/game"
)

// Arena pits two engine configurations against each other over a series of
// games on a two-player variant. Player A owns the even colors, player B
// the odd ones.
type Arena struct {
	confA, confB Config
	variant      game.Variant

	// results
	WinsA, WinsB, Draws int

	buf    bytes.Buffer
	logger *log.Logger
}

// NewArena makes an arena given two configurations sharing a two-player
// variant.
func NewArena(confA, confB Config) (*Arena, error) {
	if confA.Variant != confB.Variant {
		return nil, errors.Errorf("variant mismatch: %q vs %q",
			confA.Variant, confB.Variant)
	}
	v, err := game.ParseVariant(confA.Variant)
	if err != nil {
		return nil, err
	}
	if v.NuPlayers() != 2 {
		return nil, errors.Errorf("arena needs a two-player variant, got %q",
			confA.Variant)
	}
	a := &Arena{confA: confA, confB: confB, variant: v}
	a.logger = log.New(&a.buf, "", log.Ltime)
	return a, nil
}

// Play plays n games and tallies the results. Errors from individual games
// are pooled; the remaining games still run.
func (a *Arena) Play(n int) error {
	var errs error
	for i := 0; i < n; i++ {
		if err := a.playGame(i); err != nil {
			errs = multierror.Append(errs, errors.WithMessagef(err, "game %d", i))
		}
	}
	return errs
}

func (a *Arena) playGame(n int) error {
	confA, confB := a.confA, a.confB
	confA.Seed += int64(n) * 104729
	confB.Seed += int64(n) * 104729
	engA, err := NewEngine(confA)
	if err != nil {
		return err
	}
	engB, err := NewEngine(confB)
	if err != nil {
		return err
	}
	bd := engA.Board()

	passes := 0
	for passes < bd.GetNuColors() {
		eng := engA
		if int(bd.GetToPlay())%2 == 1 {
			eng = engB
		}
		mv := eng.BestMove()
		a.logger.Printf("game %d move %d: color %d plays %d",
			n, bd.GetNuMoves(), bd.GetToPlay(), mv)
		if mv.IsPass() {
			passes++
		} else {
			passes = 0
		}
		engA.Play(mv)
		if err := engB.Board().CopyFrom(engA.Board()); err != nil {
			return err
		}
	}

	score := bd.GetScore(0)
	switch {
	case score > 0:
		a.WinsA++
	case score < 0:
		a.WinsB++
	default:
		a.Draws++
	}
	a.logger.Printf("game %d over: score %d", n, score)
	return nil
}

// Log returns the accumulated game log.
func (a *Arena) Log() string { return a.buf.String() }
