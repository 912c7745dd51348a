package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassicPieceSet(t *testing.T) {
	pieces := buildPieces(PieceSetClassic)
	require.Len(t, pieces, 21)

	total := 0
	byName := make(map[string]*Piece)
	for i := range pieces {
		total += pieces[i].Size
		byName[pieces[i].Name] = &pieces[i]
		assert.Equal(t, 1, pieces[i].Instances)
	}
	assert.Equal(t, 89, total)

	orientations := []struct {
		name string
		want int
	}{
		{"1", 1},
		{"O4", 1},
		{"X", 1},
		{"I5", 2},
		{"T4", 4},
		{"F", 8},
	}
	for _, tc := range orientations {
		p := byName[tc.name]
		require.NotNil(t, p, tc.name)
		assert.Equal(t, tc.want, len(p.Orientations), tc.name)
	}
}

func TestJuniorPieceSet(t *testing.T) {
	pieces := buildPieces(PieceSetJunior)
	require.Len(t, pieces, 12)
	for i := range pieces {
		assert.Equal(t, 2, pieces[i].Instances)
	}
}

func TestTrigonPieceSet(t *testing.T) {
	pieces := buildPieces(PieceSetTrigon)
	require.Len(t, pieces, 22)
	for i := range pieces {
		p := &pieces[i]
		require.NotEmpty(t, p.Orientations, p.Name)
		for _, o := range p.Orientations {
			require.Len(t, o.Cells, p.Size, p.Name)
			// normalized: min y is 0, min x is 0 or 1
			minX, minY := int(o.Cells[0].X), int(o.Cells[0].Y)
			for _, c := range o.Cells {
				if int(c.X) < minX {
					minX = int(c.X)
				}
				if int(c.Y) < minY {
					minY = int(c.Y)
				}
			}
			assert.Equal(t, 0, minY, p.Name)
			assert.LessOrEqual(t, minX, 1, p.Name)
		}
	}

	// a single triangle has an up and a down image
	assert.Len(t, pieces[0].Orientations, 2)
}
