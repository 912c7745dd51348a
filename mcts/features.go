package mcts

import "github.com/pentamind/game"

// Feature cell packing. Each cell of a PlayoutFeatures grid carries the
// forbidden flag for its color plus two small counters feeding the playout
// gamma: the number of recent-opponent attach points at the cell and the
// number of such attach points the cell is adjacent to. Counter sums over
// the cells of one move stay far below the field widths, so a move's
// feature vector is one integer addition per cell.
const (
	featLocalMask     uint32 = 0x3FF
	featAdjShift             = 10
	featAdjMask       uint32 = 0x3FF << featAdjShift
	featForbidden     uint32 = 1 << 31
	featGammaMaxLocal        = 15
)

// PlayoutFeatures is the per-color grid of packed point features.
type PlayoutFeatures struct {
	cells []uint32

	// localPoints are the points whose local fields are currently set,
	// kept so ClearLocal runs in O(set points).
	localPoints []game.Point
}

// InitSnapshot recomputes all cells from the board's forbidden grid. Local
// fields are left clear.
func (f *PlayoutFeatures) InitSnapshot(bd *game.Board, c game.Color) {
	n := bd.GetGeometry().NumPoints
	if cap(f.cells) < n {
		f.cells = make([]uint32, n)
		f.localPoints = make([]game.Point, 0, n)
	}
	f.cells = f.cells[:n]
	f.localPoints = f.localPoints[:0]
	forbidden := bd.ForbiddenGrid(c)
	for p := range f.cells {
		f.cells[p] = 0
		if forbidden[p] {
			f.cells[p] = featForbidden
		}
	}
}

// CopyFrom restores the grid from a snapshot taken with Snapshot.
func (f *PlayoutFeatures) CopyFrom(snapshot []uint32) {
	f.cells = f.cells[:len(snapshot)]
	copy(f.cells, snapshot)
	f.localPoints = f.localPoints[:0]
}

// Snapshot appends the current cells to dst and returns it.
func (f *PlayoutFeatures) Snapshot(dst []uint32) []uint32 {
	return append(dst[:0], f.cells...)
}

// SetForbidden marks p forbidden.
func (f *PlayoutFeatures) SetForbidden(p game.Point) {
	f.cells[p] |= featForbidden
}

// ClearLocal zeroes the local fields set by the last SetLocal.
func (f *PlayoutFeatures) ClearLocal() {
	for _, p := range f.localPoints {
		f.cells[p] &= featForbidden
	}
	f.localPoints = f.localPoints[:0]
}

// SetLocal writes the locality counters for the given attach points of
// recent opponent moves: the point itself counts as a local attach, its
// edge neighbors as adjacent to one.
func (f *PlayoutFeatures) SetLocal(geo *game.Geometry, attachPoints []game.Point) {
	for _, p := range attachPoints {
		f.touch(p)
		f.cells[p]++
		for _, q := range geo.Adj(p) {
			f.touch(q)
			f.cells[q] += 1 << featAdjShift
		}
	}
}

func (f *PlayoutFeatures) touch(p game.Point) {
	if f.cells[p]&^featForbidden == 0 {
		f.localPoints = append(f.localPoints, p)
	}
}

// FeatureCompute accumulates the packed features of one move, cell by cell.
// The zero value is ready after Start.
type FeatureCompute struct {
	value uint32
}

// Start loads the first cell.
func (fc *FeatureCompute) Start(f *PlayoutFeatures, p game.Point) {
	fc.value = f.cells[p]
}

// IsForbidden reports whether the cell loaded by Start is forbidden. Cells
// accumulated later report their forbidden status through Add.
func (fc *FeatureCompute) IsForbidden() bool {
	return fc.value&featForbidden != 0
}

// Add accumulates another cell and reports false if that cell is forbidden.
func (fc *FeatureCompute) Add(f *PlayoutFeatures, p game.Point) bool {
	v := f.cells[p]
	fc.value += v &^ featForbidden
	return v&featForbidden == 0
}

// HasLocal reports whether the move covers or touches any recent-opponent
// attach point.
func (fc *FeatureCompute) HasLocal() bool {
	return fc.value&(featLocalMask|featAdjMask) != 0
}

// GetNuAttach returns the number of recent-opponent attach points covered,
// capped at the gamma table size.
func (fc *FeatureCompute) GetNuAttach() int {
	n := int(fc.value & featLocalMask)
	if n > featGammaMaxLocal {
		n = featGammaMaxLocal
	}
	return n
}

// HasAdjAttach reports whether the move covers a cell adjacent to a
// recent-opponent attach point.
func (fc *FeatureCompute) HasAdjAttach() bool {
	return fc.value&featAdjMask != 0
}
