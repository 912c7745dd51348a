package mcts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pentamind/game"
)

// findMove looks up the move of piece covering exactly the given cells.
func findMove(t *testing.T, bd *game.Board, piece int16, cells ...game.Point) game.Move {
	t.Helper()
	for _, mv := range bd.GetMoves(piece, cells[0], 0) {
		info := bd.GetMoveInfo(mv)
		if len(info.Points) != len(cells) {
			continue
		}
		ok := true
		for _, c := range cells {
			if !containsPoint(info.Points, c) {
				ok = false
				break
			}
		}
		if ok {
			return mv
		}
	}
	t.Fatalf("no move of piece %d covering %v", piece, cells)
	return game.MoveNull
}

func newDuoState(t *testing.T) *State {
	t.Helper()
	shared := NewSharedConst(game.NewBoard(game.VariantDuo), 0)
	s := NewState(shared, 1)
	s.StartSearch()
	s.StartSimulation(0)
	return s
}

func TestSymmetryPreservedByCopying(t *testing.T) {
	s := newDuoState(t)
	bd := s.bd
	geo := bd.GetGeometry()

	// the leader's move keeps symmetry while its mirror cells are empty
	s.play(findMove(t, bd, 0, geo.At(4, 4)))
	require.False(t, s.symmetry.broken)

	// the copier mirrors it exactly
	s.play(findMove(t, bd, 0, geo.At(9, 9)))
	require.False(t, s.symmetry.broken)

	s.play(findMove(t, bd, 1, geo.At(5, 5), geo.At(6, 5)))
	require.False(t, s.symmetry.broken)

	// the copier deviates from the mirror image
	s.play(findMove(t, bd, 1, geo.At(8, 8), geo.At(8, 7)))
	assert.True(t, s.symmetry.broken)
}

// A first move overlapping its own mirror image can never be copied.
func TestSymmetryBrokenBySelfOverlap(t *testing.T) {
	s := newDuoState(t)
	bd := s.bd
	geo := bd.GetGeometry()

	// O4 on the center: (6,6) mirrors onto (7,7) inside the move
	mv := findMove(t, bd, 7, geo.At(6, 6), geo.At(7, 6), geo.At(6, 7), geo.At(7, 7))
	s.play(mv)
	assert.True(t, s.symmetry.broken)
}

func TestPassBreaksSymmetry(t *testing.T) {
	s := newDuoState(t)
	require.False(t, s.symmetry.broken)
	s.PlayExpandedChild(game.MovePass)
	assert.True(t, s.symmetry.broken)
}

func TestSymmetryBrokenFlagIsMonotonic(t *testing.T) {
	s := newDuoState(t)
	bd := s.bd
	geo := bd.GetGeometry()

	s.play(findMove(t, bd, 0, geo.At(4, 4)))
	s.play(findMove(t, bd, 1, geo.At(9, 9), geo.At(10, 9))) // not a copy
	require.True(t, s.symmetry.broken)

	// further symmetric-looking play cannot repair it
	s.play(findMove(t, bd, 1, geo.At(5, 5), geo.At(6, 5)))
	assert.True(t, s.symmetry.broken)

	// but a new simulation starts clean
	s.StartSimulation(1)
	assert.False(t, s.symmetry.broken)
}

func TestSymmetricDrawEvaluation(t *testing.T) {
	s := newDuoState(t)
	bd := s.bd
	geo := bd.GetGeometry()

	// three mirrored pairs keep the position symmetric past the piece
	// threshold
	s.play(findMove(t, bd, 0, geo.At(4, 4)))
	s.play(findMove(t, bd, 0, geo.At(9, 9)))
	s.play(findMove(t, bd, 1, geo.At(5, 5), geo.At(6, 5)))
	s.play(findMove(t, bd, 1, geo.At(8, 8), geo.At(7, 8)))
	s.play(findMove(t, bd, 2, geo.At(7, 6), geo.At(8, 6), geo.At(9, 6)))
	s.play(findMove(t, bd, 2, geo.At(6, 7), geo.At(5, 7), geo.At(4, 7)))
	require.False(t, s.symmetry.broken)
	require.GreaterOrEqual(t, bd.GetNuOnboardPieces(), 3)

	var result [MaxResultColors]Float
	s.EvaluatePlayout(&result)
	assert.Equal(t, Float(0.5), result[0])
	assert.Equal(t, Float(0.5), result[1])
}
