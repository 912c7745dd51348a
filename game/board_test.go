package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// findMove looks up the move of piece covering exactly the given cells.
func findMove(t *testing.T, bd *Board, piece int16, cells ...Point) Move {
	t.Helper()
	for _, mv := range bd.GetMoves(piece, cells[0], 0) {
		info := bd.GetMoveInfo(mv)
		if len(info.Points) != len(cells) {
			continue
		}
		ok := true
		for _, c := range cells {
			found := false
			for _, p := range info.Points {
				if p == c {
					found = true
					break
				}
			}
			if !found {
				ok = false
				break
			}
		}
		if ok {
			return mv
		}
	}
	t.Fatalf("no move of piece %d covering %v", piece, cells)
	return MoveNull
}

func TestNewBoardDuo(t *testing.T) {
	bd := NewBoard(VariantDuo)
	require.Equal(t, 2, bd.GetNuColors())
	require.Equal(t, 196, bd.GetGeometry().NumPoints)
	assert.Equal(t, Color(0), bd.GetToPlay())
	assert.Len(t, bd.GetPiecesLeft(0), 21)
	assert.True(t, bd.IsFirstPiece(0))
	assert.Len(t, bd.GetStartingPoints(0), 2)
}

func TestPlayUpdatesBoard(t *testing.T) {
	bd := NewBoard(VariantDuo)
	geo := bd.GetGeometry()
	start := geo.At(4, 4)

	mv := findMove(t, bd, 0, start) // monomino on the starting point
	bd.Play(mv)

	assert.Equal(t, PointState(0), bd.GetPointState(start))
	assert.Equal(t, Color(1), bd.GetToPlay())
	assert.False(t, bd.IsFirstPiece(0))
	assert.Equal(t, 1, bd.GetPoints(0))
	assert.Len(t, bd.GetPiecesLeft(0), 20)
	assert.Equal(t, 1, bd.GetNuOnboardPieces())

	// occupied cell is forbidden for everyone, its edge neighbors only for
	// the mover
	assert.True(t, bd.IsForbidden(start, 0))
	assert.True(t, bd.IsForbidden(start, 1))
	adj := geo.Adj(start)
	for _, p := range adj {
		assert.True(t, bd.IsForbidden(p, 0))
		assert.False(t, bd.IsForbidden(p, 1))
	}
	// diagonal neighbors become attach points
	assert.Len(t, bd.GetAttachPoints(0), 4)
	for _, p := range geo.Diag(start) {
		assert.True(t, bd.IsAttachPoint(p, 0))
	}
}

func TestPassAdvancesToPlay(t *testing.T) {
	bd := NewBoard(VariantDuo)
	bd.Play(MovePass)
	assert.Equal(t, Color(1), bd.GetToPlay())
	assert.Equal(t, 1, bd.GetNuMoves())
	assert.Equal(t, 0, bd.GetNuOnboardPieces())
}

func TestSnapshotRoundTrip(t *testing.T) {
	bd := NewBoard(VariantDuo)
	geo := bd.GetGeometry()
	bd.TakeSnapshot()

	mv0 := findMove(t, bd, 0, geo.At(4, 4))
	bd.Play(mv0)
	mv1 := findMove(t, bd, 0, geo.At(9, 9))
	bd.Play(mv1)
	require.Equal(t, 2, bd.GetNuMoves())

	bd.RestoreSnapshot()

	assert.Equal(t, 0, bd.GetNuMoves())
	assert.Equal(t, Color(0), bd.GetToPlay())
	assert.True(t, bd.IsFirstPiece(0))
	assert.Len(t, bd.GetPiecesLeft(0), 21)
	assert.Empty(t, bd.GetAttachPoints(0))
	for p := Point(0); int(p) < geo.NumPoints; p++ {
		assert.True(t, bd.GetPointState(p).IsEmpty())
		assert.False(t, bd.IsForbidden(p, 0))
		assert.False(t, bd.IsForbidden(p, 1))
	}
}

func TestTwoPlayerScore(t *testing.T) {
	bd := NewBoard(VariantDuo)
	geo := bd.GetGeometry()
	bd.Play(findMove(t, bd, 1, geo.At(4, 4), geo.At(5, 4))) // domino for 0
	bd.Play(findMove(t, bd, 0, geo.At(9, 9)))               // monomino for 1

	assert.Equal(t, 2, bd.GetPoints(0))
	assert.Equal(t, 1, bd.GetPoints(1))
	assert.Equal(t, 1, bd.GetScore(0))
	assert.Equal(t, -1, bd.GetScore(1))
}

func TestCopyFromRejectsVariantMismatch(t *testing.T) {
	a := NewBoard(VariantDuo)
	b := NewBoard(VariantClassic)
	require.Error(t, b.CopyFrom(a))
}
