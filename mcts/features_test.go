package mcts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pentamind/game"
)

func TestPlayoutFeaturesForbidden(t *testing.T) {
	bd := game.NewBoard(game.VariantDuo)
	geo := bd.GetGeometry()
	var f PlayoutFeatures
	f.InitSnapshot(bd, 0)

	p := geo.At(5, 5)
	q := geo.At(6, 5)
	var fc FeatureCompute
	fc.Start(&f, p)
	require.False(t, fc.IsForbidden())
	require.True(t, fc.Add(&f, q))

	f.SetForbidden(q)
	fc.Start(&f, p)
	assert.False(t, fc.IsForbidden())
	assert.False(t, fc.Add(&f, q))
}

func TestPlayoutFeaturesLocal(t *testing.T) {
	bd := game.NewBoard(game.VariantDuo)
	geo := bd.GetGeometry()
	var f PlayoutFeatures
	f.InitSnapshot(bd, 0)

	anchor := geo.At(7, 7)
	f.SetLocal(geo, []game.Point{anchor})

	var fc FeatureCompute
	fc.Start(&f, anchor)
	assert.True(t, fc.HasLocal())
	assert.Equal(t, 1, fc.GetNuAttach())

	adj := geo.Adj(anchor)[0]
	fc.Start(&f, adj)
	assert.True(t, fc.HasLocal())
	assert.Equal(t, 0, fc.GetNuAttach())
	assert.True(t, fc.HasAdjAttach())

	far := geo.At(0, 0)
	fc.Start(&f, far)
	assert.False(t, fc.HasLocal())

	f.ClearLocal()
	fc.Start(&f, anchor)
	assert.False(t, fc.HasLocal())
}

func TestPlayoutFeaturesSnapshotRestore(t *testing.T) {
	bd := game.NewBoard(game.VariantDuo)
	geo := bd.GetGeometry()
	var f PlayoutFeatures
	f.InitSnapshot(bd, 0)
	snap := f.Snapshot(nil)

	f.SetForbidden(geo.At(3, 3))
	f.SetLocal(geo, []game.Point{geo.At(8, 8)})
	f.CopyFrom(snap)

	var fc FeatureCompute
	fc.Start(&f, geo.At(3, 3))
	assert.False(t, fc.IsForbidden())
	fc.Start(&f, geo.At(8, 8))
	assert.False(t, fc.HasLocal())
}
