package mcts

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pentamind/game"
)

// sliceExpander collects generated children, optionally refusing after a
// capacity limit.
type sliceExpander struct {
	moves  []game.Move
	values []Float
	counts []Float
	limit  int
}

func (e *sliceExpander) AddChild(mv game.Move, value, count Float) bool {
	if e.limit > 0 && len(e.moves) >= e.limit {
		return false
	}
	e.moves = append(e.moves, mv)
	e.values = append(e.values, value)
	e.counts = append(e.counts, count)
	return true
}

func sortedMoves(moves []game.Move) []game.Move {
	out := append([]game.Move(nil), moves...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// checkMoveListInvariants asserts the move list of c holds no duplicates,
// only legal moves and a non-decreasing positive cumulative gamma.
func checkMoveListInvariants(t *testing.T, s *State, c game.Color) {
	t.Helper()
	ml := &s.moveLists[c]
	seen := make(map[game.Move]bool, ml.len())
	prev := 0.0
	for i, mv := range ml.moves {
		require.False(t, seen[mv], "duplicate move %d", mv)
		seen[mv] = true
		for _, p := range s.bd.GetMoveInfo(mv).Points {
			require.False(t, s.bd.IsForbidden(p, c),
				"illegal move %d in list of color %d", mv, c)
		}
		require.GreaterOrEqual(t, ml.cumGamma[i], prev)
		prev = ml.cumGamma[i]
	}
	if ml.len() > 0 {
		require.Greater(t, ml.cumGamma[ml.len()-1], 0.0)
	}
}

// Scenario: a deterministic full playout on the empty Duo board ends after
// both colors pass and evaluates to complementary results.
func TestDuoPlayoutToTermination(t *testing.T) {
	shared := NewSharedConst(game.NewBoard(game.VariantDuo), 0)
	shared.DetectSymmetry = false
	s := NewState(shared, 42)
	s.StartSearch()
	s.checkTerminateEarly = false
	s.StartSimulation(0)

	var pm PlayerMove
	plies := 0
	for s.GenPlayoutMove(&pm) {
		require.Equal(t, s.bd.GetToPlay(), pm.Color)
		checkMoveListInvariants(t, s, pm.Color)
		s.PlayPlayout(pm)
		plies++
		require.Less(t, plies, 200, "playout does not terminate")
	}

	assert.Equal(t, 2, s.nuPasses)
	assert.Greater(t, plies, 4)

	var result [MaxResultColors]Float
	s.EvaluatePlayout(&result)
	assert.InDelta(t, 1.0, float64(result[0]+result[1]), 1e-6)
}

// The first-piece move list is anchored at exactly one starting point.
func TestFirstMovesUseSingleStartingPoint(t *testing.T) {
	shared := NewSharedConst(game.NewBoard(game.VariantDuo), 0)
	s := NewState(shared, 1)
	s.StartSearch()
	s.StartSimulation(0)

	s.initMoves(0)
	ml := &s.moveLists[0]
	require.NotZero(t, ml.len())
	start := s.bd.GetGeometry().At(4, 4)
	for _, mv := range ml.moves {
		assert.True(t, containsPoint(s.bd.GetMoveInfo(mv).Points, start))
	}
}

// Restarting a simulation without plays reproduces the identical move list
// and cumulative gammas.
func TestStartSimulationIdempotent(t *testing.T) {
	shared := NewSharedConst(game.NewBoard(game.VariantDuo), 0)
	s := NewState(shared, 1)
	s.StartSearch()

	s.StartSimulation(0)
	s.initMoves(0)
	moves := append([]game.Move(nil), s.moveLists[0].moves...)
	gamma := append([]float64(nil), s.moveLists[0].cumGamma...)

	s.StartSimulation(1)
	s.initMoves(0)
	assert.Equal(t, moves, s.moveLists[0].moves)
	assert.Equal(t, gamma, s.moveLists[0].cumGamma)
}

// Scenario: when the considered-piece mask filters out every piece, the
// move list falls back to the full piece set instead of passing.
func TestInitMovesFallbackToAllPieces(t *testing.T) {
	shared := NewSharedConst(game.NewBoard(game.VariantDuo), 0)
	for i := range shared.isPieceConsidered {
		shared.isPieceConsidered[i] = 0
	}
	s := NewState(shared, 1)
	s.StartSearch()
	s.StartSimulation(0)

	s.initMoves(0)
	assert.True(t, s.forceConsiderAll[0])
	assert.NotZero(t, s.moveLists[0].len())
}

// Scenario: after a number of incremental plies, a from-scratch move list
// at the same position contains the same move set with the same total
// weight.
func TestIncrementalEqualsFullRebuild(t *testing.T) {
	shared := NewSharedConst(game.NewBoard(game.VariantDuo), 0)
	shared.DetectSymmetry = false
	s := NewState(shared, 7)
	s.StartSearch()
	s.StartSimulation(0)

	var pm PlayerMove
	for ply := 0; ply < 12; ply++ {
		if !s.GenPlayoutMove(&pm) {
			break
		}
		s.PlayPlayout(pm)
	}
	// the next GenPlayoutMove refreshes the mover's list incrementally
	if !s.GenPlayoutMove(&pm) {
		t.Skip("playout ended before the comparison ply")
	}
	c := pm.Color
	incremental := sortedMoves(s.moveLists[c].moves)
	total := s.moveLists[c].total

	// a fresh state over a copy of the same position rebuilds from scratch
	rootCopy := game.NewBoard(game.VariantDuo)
	require.NoError(t, rootCopy.CopyFrom(s.bd))
	shared2 := NewSharedConst(rootCopy, c)
	shared2.DetectSymmetry = false
	s2 := NewState(shared2, 7)
	s2.StartSearch()
	s2.StartSimulation(0)
	s2.initMoves(c)
	scratch := sortedMoves(s2.moveLists[c].moves)

	assert.Equal(t, scratch, incremental)
	assert.InDelta(t, s2.moveLists[c].total, total, 1e-6*(1+total))
}

func TestGenChildrenEmitsPriors(t *testing.T) {
	shared := NewSharedConst(game.NewBoard(game.VariantDuo), 0)
	s := NewState(shared, 1)
	s.StartSearch()
	s.StartSimulation(0)

	var e sliceExpander
	require.True(t, s.GenChildren(&e, 0.5))
	require.NotEmpty(t, e.moves)
	for i := range e.moves {
		assert.Greater(t, e.values[i], Float(0))
		assert.GreaterOrEqual(t, e.counts[i], Float(1))
	}
}

func TestGenChildrenCapacityExhausted(t *testing.T) {
	shared := NewSharedConst(game.NewBoard(game.VariantDuo), 0)
	s := NewState(shared, 1)
	s.StartSearch()
	s.StartSimulation(0)

	e := sliceExpander{limit: 3}
	assert.False(t, s.GenChildren(&e, 0.5))
}

func TestPlayExpandedChildPass(t *testing.T) {
	shared := NewSharedConst(game.NewBoard(game.VariantDuo), 0)
	s := NewState(shared, 1)
	s.StartSearch()
	s.StartSimulation(0)

	s.PlayExpandedChild(game.MovePass)
	assert.Equal(t, 1, s.nuPasses)
	assert.Equal(t, game.Color(1), s.bd.GetToPlay())
	s.PlayExpandedChild(game.MovePass)
	assert.Equal(t, 2, s.nuPasses)

	var pm PlayerMove
	assert.False(t, s.GenPlayoutMove(&pm))
}
