package mcts

import "github.com/pentamind/game"

// SymmetryTracker watches whether the second player can still mirror the
// first player's position. On the symmetric two-player boards (Duo, Junior,
// Trigon-2) a copying second player forces a draw; playouts evaluate such
// positions as 0.5 to push the first player into breaking the symmetry.
//
// Colors 0 and 2 are the leader side, colors 1 and 3 the copier side; the
// mirror image of color c is c^1.
type SymmetryTracker struct {
	check       bool
	broken      bool
	minNuPieces int
	geo         *game.Geometry
}

// StartSearch decides whether symmetry detection is active for this search
// and captures the reflection map. Detection is off when the engine itself
// would be the copier under AvoidSymmetricDraw, and when the root position
// is already asymmetric.
func (st *SymmetryTracker) StartSearch(shared *SharedConst, bd *game.Board) {
	v := bd.GetVariant()
	st.geo = bd.GetGeometry()
	st.minNuPieces = 3
	if v == game.VariantTrigon2 {
		st.minNuPieces = 5
	}
	st.check = (v == game.VariantDuo || v == game.VariantJunior ||
		v == game.VariantTrigon2) && shared.DetectSymmetry
	if st.check && shared.AvoidSymmetricDraw && int(shared.ToPlay)%2 == 1 {
		st.check = false
	}
	if st.check && st.isRootBroken(bd) {
		st.check = false
	}
	st.broken = false
}

// StartSimulation clears the per-simulation broken flag.
func (st *SymmetryTracker) StartSimulation() { st.broken = false }

// Broken reports whether symmetry is broken (or never tracked).
func (st *SymmetryTracker) Broken() bool { return !st.check || st.broken }

// SetBroken marks symmetry broken until the next StartSimulation. Passes
// always break symmetry for our purposes.
func (st *SymmetryTracker) SetBroken() { st.broken = true }

// CheckDraw reports whether the current position counts as a symmetric
// draw: tracking active, symmetry intact and enough pieces on the board
// that the copier had a real chance to deviate.
func (st *SymmetryTracker) CheckDraw(bd *game.Board) bool {
	return st.check && !st.broken &&
		bd.GetNuOnboardPieces() >= st.minNuPieces
}

// Update inspects the reflection of the move just played by mover. A
// leader-side move keeps symmetry only if all its mirror cells are still
// empty (the copier can answer); a copier-side move only if all its mirror
// cells hold the leader's mirrored color (the copy succeeded).
func (st *SymmetryTracker) Update(bd *game.Board, mv game.Move, mover game.Color) {
	if !st.check || st.broken {
		return
	}
	points := bd.GetMoveInfo(mv).Points
	if int(mover)%2 == 0 {
		for _, p := range points {
			if !bd.GetPointState(st.geo.Mirror(p)).IsEmpty() {
				st.broken = true
				return
			}
		}
	} else {
		want := game.PointState(int(mover) ^ 1)
		for _, p := range points {
			if bd.GetPointState(st.geo.Mirror(p)) != want {
				st.broken = true
				return
			}
		}
	}
}

// isRootBroken scans the root position. With a leader-side color to move
// the position must be exactly symmetric. With a copier-side color to move
// the leader's uncopied last move is tolerated; a history that does not
// end in a leader move (non-alternating colors) is treated as broken
// rather than repaired.
func (st *SymmetryTracker) isRootBroken(bd *game.Board) bool {
	toPlay := bd.GetToPlay()
	var lastPoints []game.Point
	var lastColor game.Color
	if int(toPlay)%2 == 1 {
		nuMoves := bd.GetNuMoves()
		if nuMoves == 0 {
			return true
		}
		last := bd.GetMove(nuMoves - 1)
		if int(last.Color)%2 != 0 {
			return true
		}
		lastColor = last.Color
		if !last.Move.IsPass() {
			lastPoints = bd.GetMoveInfo(last.Move).Points
		}
	}
	for p := game.Point(0); int(p) < st.geo.NumPoints; p++ {
		mp := st.geo.Mirror(p)
		s1 := bd.GetPointState(p)
		s2 := bd.GetPointState(mp)
		if s1 == symmetricState(s2) {
			continue
		}
		if lastPoints != nil {
			lc := game.PointState(lastColor)
			if (containsPoint(lastPoints, p) && s1 == lc && s2.IsEmpty()) ||
				(containsPoint(lastPoints, mp) && s1.IsEmpty() && s2 == lc) {
				continue
			}
		}
		return true
	}
	return false
}

func symmetricState(s game.PointState) game.PointState {
	if s.IsEmpty() {
		return s
	}
	return game.PointState(int(s) ^ 1)
}

func containsPoint(l []game.Point, p game.Point) bool {
	for _, q := range l {
		if q == p {
			return true
		}
	}
	return false
}
