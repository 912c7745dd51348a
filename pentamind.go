// Package pentamind is a Monte-Carlo Tree Search engine for the board game
// Blokus and its variants. The heavy lifting happens in the mcts package;
// this package wires configuration, engines and self-play arenas together.
package pentamind

import (
	"runtime"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/pentamind/game"
	"github.com/pentamind/mcts"
)

// Config configures an engine.
type Config struct {
	// Variant is the game variant name (classic, classic_2, classic_3,
	// duo, junior, trigon, trigon_2, trigon_3).
	Variant string

	// Simulations is the per-move iteration budget.
	Simulations int

	// Workers is the number of parallel simulation workers.
	Workers int

	// Exploration is the tree selection exploration constant.
	Exploration float64

	// AvoidSymmetricDraw suppresses the symmetry heuristic when the engine
	// itself would be the copying side.
	AvoidSymmetricDraw bool

	Seed           int64
	LogSearch      bool
	LogSimulations bool
}

// DefaultConfig returns a playable engine configuration for the variant.
func DefaultConfig(variant string) Config {
	return Config{
		Variant:            variant,
		Simulations:        10000,
		Workers:            runtime.NumCPU(),
		Exploration:        0.7,
		AvoidSymmetricDraw: true,
		Seed:               1,
	}
}

// Validate checks the configuration and reports every problem found.
func (c Config) Validate() error {
	var errs error
	if _, err := game.ParseVariant(c.Variant); err != nil {
		errs = multierror.Append(errs, err)
	}
	if c.Simulations <= 0 {
		errs = multierror.Append(errs, errors.New("Simulations must be positive"))
	}
	if c.Workers <= 0 {
		errs = multierror.Append(errs, errors.New("Workers must be positive"))
	}
	if c.Exploration <= 0 {
		errs = multierror.Append(errs, errors.New("Exploration must be positive"))
	}
	return errs
}

func (c Config) mctsConfig() mcts.Config {
	mc := mcts.DefaultConfig()
	mc.Simulations = int32(c.Simulations)
	mc.Workers = c.Workers
	mc.Exploration = mcts.Float(c.Exploration)
	mc.Seed = c.Seed
	mc.LogSearch = c.LogSearch
	mc.LogSimulations = c.LogSimulations
	return mc
}
