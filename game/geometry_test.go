package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectGeometry(t *testing.T) {
	g := newRectGeometry(14, 14)
	require.Equal(t, 196, g.NumPoints)

	corner := g.At(0, 0)
	require.False(t, corner.IsNull())
	assert.Len(t, g.Adj(corner), 2)
	assert.Len(t, g.Diag(corner), 1)

	center := g.At(6, 6)
	assert.Len(t, g.Adj(center), 4)
	assert.Len(t, g.Diag(center), 4)

	assert.True(t, g.At(14, 0).IsNull())
	assert.True(t, g.At(-1, 3).IsNull())
}

func TestGeometryMirrorInvolution(t *testing.T) {
	for _, g := range []*Geometry{
		newRectGeometry(14, 14),
		newRectGeometry(20, 20),
		newTrigonGeometry(35, 18),
	} {
		for p := Point(0); int(p) < g.NumPoints; p++ {
			m := g.Mirror(p)
			require.False(t, m.IsNull())
			require.Equal(t, p, g.Mirror(m))
		}
	}
}

func TestTrigonGeometry(t *testing.T) {
	g := newTrigonGeometry(35, 18)
	require.True(t, g.IsTrigon())

	// hexagonal outline: top row is indented, middle rows are full
	assert.True(t, g.At(0, 0).IsNull())
	assert.False(t, g.At(8, 0).IsNull())
	assert.False(t, g.At(0, 8).IsNull())

	for p := Point(0); int(p) < g.NumPoints; p++ {
		assert.LessOrEqual(t, len(g.Adj(p)), 3)
		assert.LessOrEqual(t, len(g.Diag(p)), 9)
		// edge neighbors of an up triangle are down triangles and vice versa
		up := trigonUpward(g.X(p), g.Y(p))
		for _, q := range g.Adj(p) {
			assert.NotEqual(t, up, trigonUpward(g.X(q), g.Y(q)))
		}
	}
}
