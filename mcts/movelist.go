package mcts

import (
	"github.com/chewxy/math32"
	"github.com/pentamind/game"
)

// moveList is the legal-move list of one color with its parallel cumulative
// gamma sequence. cumGamma[i] is the sum of weights of moves[0..i]; the
// last entry is the total weight and the inverse-CDF sampling target.
type moveList struct {
	moves    []game.Move
	cumGamma []float64
	total    float64
}

func (ml *moveList) clear() {
	ml.moves = ml.moves[:0]
	ml.cumGamma = ml.cumGamma[:0]
	ml.total = 0
}

func (ml *moveList) push(mv game.Move, gamma float64) {
	ml.total += gamma
	ml.moves = append(ml.moves, mv)
	ml.cumGamma = append(ml.cumGamma, ml.total)
}

func (ml *moveList) len() int { return len(ml.moves) }

// initMoves populates the move list of c from scratch: one fixed starting
// point for the first piece, otherwise every usable attach point. If the
// considered-piece mask filters out everything, it retries once with the
// full piece set so a color with legal moves is never retired early.
func (s *State) initMoves(c game.Color) {
	bd := s.bd
	s.refreshLocal(c)
	ml := &s.moveLists[c]
	ml.clear()
	mask := s.consideredMask(c)
	for {
		if bd.IsFirstPiece(c) {
			s.addStartingMoves(c, mask)
		} else {
			added := s.movesAddedAt[c]
			for _, p := range bd.GetAttachPoints(c) {
				if added[p] || bd.IsForbidden(p, c) {
					continue
				}
				added[p] = true
				s.addedAnchors[c] = append(s.addedAnchors[c], p)
				s.addMovesAt(c, p, mask)
			}
		}
		if ml.len() > 0 || s.forceConsiderAll[c] {
			break
		}
		s.forceConsiderAll[c] = true
		mask = s.shared.allPieces
		for _, p := range s.addedAnchors[c] {
			s.movesAddedAt[c][p] = false
		}
		s.addedAnchors[c] = s.addedAnchors[c][:0]
	}
	s.lastMask[c] = mask
	s.marker.ClearList(ml.moves)
	s.isInitialized[c] = true
	s.newMoves[c] = s.newMoves[c][:0]
}

// updateMoves refreshes the move list of c after c has played: filter the
// existing list, extend it from the new pieces' attach points, and widen it
// when the considered-piece mask has grown.
func (s *State) updateMoves(c game.Color) {
	bd := s.bd
	s.refreshLocal(c)
	ml := &s.moveLists[c]
	f := &s.features[c]

	// With one instance per piece and a single new move, the played piece
	// id alone identifies the moves that died with it.
	lastPiece := int16(-1)
	if s.singleInstance && len(s.newMoves[c]) == 1 {
		lastPiece = bd.GetMoveInfo(s.newMoves[c][0]).Piece
	}

	kept := 0
	ml.total = 0
	for _, mv := range ml.moves {
		info := bd.GetMoveInfo(mv)
		if info.Piece == lastPiece || !bd.IsPieceLeft(c, info.Piece) {
			continue
		}
		var fc FeatureCompute
		fc.Start(f, info.Points[0])
		legal := !fc.IsForbidden()
		for i := 1; legal && i < len(info.Points); i++ {
			legal = fc.Add(f, info.Points[i])
		}
		if !legal {
			continue
		}
		s.marker.Set(mv)
		ml.total += s.gamma.Of(info.Piece, &fc)
		ml.moves[kept] = mv
		ml.cumGamma[kept] = ml.total
		kept++
	}
	ml.moves = ml.moves[:kept]
	ml.cumGamma = ml.cumGamma[:kept]

	for _, played := range s.newMoves[c] {
		for _, p := range bd.GetMoveInfoExt(played).AttachPoints {
			if bd.IsForbidden(p, c) || s.movesAddedAt[c][p] {
				continue
			}
			s.movesAddedAt[c][p] = true
			s.addedAnchors[c] = append(s.addedAnchors[c], p)
			s.addMovesAt(c, p, s.lastMask[c])
		}
	}

	newMask := s.consideredMask(c)
	if diff := newMask &^ s.lastMask[c]; diff != 0 {
		for _, p := range bd.GetAttachPoints(c) {
			if !bd.IsForbidden(p, c) {
				s.addMovesAt(c, p, diff)
			}
		}
		s.lastMask[c] = newMask
	}

	s.marker.ClearList(ml.moves)
	s.newMoves[c] = s.newMoves[c][:0]
}

// addMovesAt enumerates all considered placements anchored at p.
func (s *State) addMovesAt(c game.Color, p game.Point, mask PieceMask) {
	bd := s.bd
	adjStatus := bd.GetAdjStatus(p, c)
	for _, piece := range bd.GetPiecesLeft(c) {
		if !mask.Contains(piece) {
			continue
		}
		for _, mv := range bd.GetMoves(piece, p, adjStatus) {
			s.addCandidate(c, mv)
		}
	}
}

// addCandidate checks mv for duplicates and legality and pushes it with its
// gamma. This is the inner loop of move generation.
func (s *State) addCandidate(c game.Color, mv game.Move) {
	if s.marker.Test(mv) {
		return
	}
	info := s.bd.GetMoveInfo(mv)
	f := &s.features[c]
	var fc FeatureCompute
	fc.Start(f, info.Points[0])
	if fc.IsForbidden() {
		return
	}
	for _, p := range info.Points[1:] {
		if !fc.Add(f, p) {
			return
		}
	}
	s.marker.Set(mv)
	s.moveLists[c].push(mv, s.gamma.Of(info.Piece, &fc))
}

// addStartingMoves enumerates the first-piece placements of c, anchored at
// a single starting point. Using only one starting point is required for
// correctness of updateMoves, which assumes a listed move stays legal
// unless the forbidden status of one of its cells changes; a move kept on
// an alternative starting point would dodge that check.
func (s *State) addStartingMoves(c game.Color, mask PieceMask) {
	p := s.findBestStartingPoint(c)
	if p.IsNull() {
		return
	}
	for _, piece := range s.bd.GetPiecesLeft(c) {
		if !mask.Contains(piece) {
			continue
		}
		for _, mv := range s.bd.GetMoves(piece, p, 0) {
			s.addCandidate(c, mv)
		}
	}
}

// findBestStartingPoint picks the starting point maximizing the weighted
// distance to occupied starting points; occupation by the own player
// weighs double. Ties resolve to the first point in the color's
// starting-point list.
func (s *State) findBestStartingPoint(c game.Color) game.Point {
	bd := s.bd
	geo := bd.GetGeometry()
	ratio := geo.YScale()
	best := game.NullPoint
	maxDistance := float32(-1)
	for _, p := range bd.GetStartingPoints(c) {
		if bd.IsForbidden(p, c) {
			continue
		}
		var d float32
		for cc := game.Color(0); int(cc) < bd.GetNuColors(); cc++ {
			for _, pp := range bd.GetStartingPoints(cc) {
				st := bd.GetPointState(pp)
				if st.IsEmpty() {
					continue
				}
				dx := float32(geo.X(pp) - geo.X(p))
				dy := ratio * float32(geo.Y(pp)-geo.Y(p))
				weight := float32(1)
				if st.ToColor() == c || st.ToColor() == bd.GetSecondColor(c) {
					weight = 2
				}
				d += weight * math32.Sqrt(dx*dx+dy*dy)
			}
		}
		if d > maxDistance {
			best = p
			maxDistance = d
		}
	}
	return best
}

func (s *State) refreshLocal(c game.Color) {
	s.local.Gather(s.bd, c)
	f := &s.features[c]
	f.ClearLocal()
	f.SetLocal(s.bd.GetGeometry(), s.local.Points())
}

func (s *State) consideredMask(c game.Color) PieceMask {
	if s.forceConsiderAll[c] {
		return s.shared.allPieces
	}
	k := s.bd.GetNuOnboardPieces()
	if k >= s.shared.minMoveAllConsidered {
		return s.shared.allPieces
	}
	return s.shared.isPieceConsidered[k]
}
