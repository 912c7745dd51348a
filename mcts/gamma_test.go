package mcts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pentamind/game"
)

func TestGammaPieceWeights(t *testing.T) {
	bc := game.GetBoardConst(game.VariantDuo)
	var g gammaTable
	g.Init(bc, game.VariantDuo)

	// bigger pieces always weigh more under the size factor
	mono, pento := -1, -1
	for i := range bc.Pieces {
		if bc.Pieces[i].Name == "1" {
			mono = i
		}
		if bc.Pieces[i].Name == "I5" {
			pento = i
		}
	}
	require.NotEqual(t, -1, mono)
	require.NotEqual(t, -1, pento)
	assert.Greater(t, g.piece[pento], g.piece[mono])
}

// Two moves of the same piece differing only in the adjacent-attach flag
// differ in gamma by exactly the adj-attach multiplier.
func TestGammaAdjAttachRatio(t *testing.T) {
	bc := game.GetBoardConst(game.VariantDuo)
	var g gammaTable
	g.Init(bc, game.VariantDuo)

	var plain, adj FeatureCompute
	plain.value = 0
	adj.value = 1 << featAdjShift

	ga := g.Of(0, &adj)
	gb := g.Of(0, &plain)
	assert.InEpsilon(t, gammaAdjAttach, ga/gb, 1e-9)
}

func TestGammaNuAttachTable(t *testing.T) {
	bc := game.GetBoardConst(game.VariantDuo)
	var g gammaTable
	g.Init(bc, game.VariantDuo)
	assert.Equal(t, 1.0, g.nuAttach[0])
	assert.InEpsilon(t, 1e10, g.nuAttach[1], 1e-9)
	assert.InEpsilon(t, 1e20, g.nuAttach[2], 1e-9)
}
