package mcts

import (
	"github.com/chewxy/math32"
	"github.com/pentamind/game"
)

// NodeExpander receives the children generated for a tree node. AddChild
// reports false when the tree is out of capacity; the caller abandons the
// expansion.
type NodeExpander interface {
	AddChild(mv game.Move, value, count Float) bool
}

// PriorKnowledge initializes freshly expanded children with heuristic
// value/count pairs so the first tree visits already prefer large,
// well-placed, locally answering moves.
type PriorKnowledge struct {
	distToCenter []float32
	oppAttach    []int8
	local        LocalityTracker
	isLocal      []bool
	features     []moveFeatures

	symmetricCells []game.Point

	maxHeuristic Float
	minDist      float32
	hasConnect   bool
}

type moveFeatures struct {
	heuristic Float
	dist      float32
	isLocal   bool
	connect   bool
}

// StartSearch precomputes the distance-to-center grid. Distances are
// multiplied by 4 and rounded so points differing by up to a quarter cell
// count as equally central; trigon boards scale the y axis.
func (pk *PriorKnowledge) StartSearch(bd *game.Board) {
	geo := bd.GetGeometry()
	n := geo.NumPoints
	pk.distToCenter = make([]float32, n)
	pk.oppAttach = make([]int8, n)
	pk.isLocal = make([]bool, n)
	pk.local.Init(n)
	centerX := 0.5*float32(geo.Width) - 0.5
	centerY := 0.5*float32(geo.Height) - 0.5
	ratio := geo.YScale()
	for p := 0; p < n; p++ {
		dx := float32(geo.X(game.Point(p))) - centerX
		dy := ratio * (float32(geo.Y(game.Point(p))) - centerY)
		pk.distToCenter[p] = math32.Round(4 * math32.Sqrt(dx*dx+dy*dy))
	}
}

// GenChildren computes the per-move features and emits one initialized
// child per acceptable move. Returns false if the expander ran out of
// capacity; the children emitted so far are then discarded by the caller.
func (pk *PriorKnowledge) GenChildren(bd *game.Board, moves []game.Move,
	isSymmetryBroken bool, expander NodeExpander, initVal Float) bool {
	toPlay := bd.GetToPlay()
	checkDist := pk.checkDistToCenter(bd)
	pk.computeFeatures(bd, moves, checkDist)

	// symmetry roles: the copier is rewarded for the exact mirror of the
	// leader's last move, the leader for any move the copier cannot mirror
	v := bd.GetVariant()
	symmetryActive := !isSymmetryBroken &&
		(v == game.VariantDuo || v == game.VariantJunior || v == game.VariantTrigon2)
	var symmetricPiece int16 = -1
	hasBreaker := false
	if symmetryActive {
		if int(toPlay)%2 == 1 {
			symmetricPiece = pk.initSymmetricResponse(bd)
		} else if bd.GetNuMoves() > 0 {
			for _, mv := range moves {
				if pk.breaksSymmetry(bd, mv) {
					hasBreaker = true
					break
				}
			}
		}
	}

	minSize := pk.minPieceSize(bd)
	emitted := 0
	for i, mv := range moves {
		info := bd.GetMoveInfo(mv)
		if bd.GetBoardConst().Pieces[info.Piece].Size < minSize {
			continue
		}
		f := &pk.features[i]
		value, count := pk.moveValue(bd, mv, f, checkDist, symmetryActive,
			symmetricPiece, hasBreaker)
		if !expander.AddChild(mv, value, count) {
			return false
		}
		emitted++
	}
	if emitted == 0 {
		// the piece-size gate can empty a fallback list of small pieces
		for _, mv := range moves {
			if !expander.AddChild(mv, initVal, 1) {
				return false
			}
		}
	}
	return true
}

func (pk *PriorKnowledge) moveValue(bd *game.Board, mv game.Move,
	f *moveFeatures, checkDist, symmetryActive bool,
	symmetricPiece int16, hasBreaker bool) (Float, Float) {
	// heuristic relative to the best move, scaled into (0, 1]
	heuristic := math32.Exp(Float(-0.3) * (pk.maxHeuristic - f.heuristic))
	value := Float(0.1) + Float(0.9)*heuristic
	count := Float(1)
	if checkDist {
		if f.dist == pk.minDist {
			value += 0.2
		} else {
			value *= 0.5
		}
	}
	if pk.hasConnect && !f.connect {
		value *= 0.5
	}
	if symmetryActive {
		toPlay := bd.GetToPlay()
		if int(toPlay)%2 == 1 {
			if pk.isSymmetricResponse(bd, mv, symmetricPiece) {
				value += 5 * 1.0
			} else {
				value += 5 * 0.1
			}
			count += 5
		} else if hasBreaker {
			if pk.breaksSymmetry(bd, mv) {
				value += 5 * 1.0
			} else {
				value += 5 * 0.1
			}
			count += 5
		}
	}
	value /= count
	return value, count
}

func (pk *PriorKnowledge) computeFeatures(bd *game.Board, moves []game.Move, checkDist bool) {
	toPlay := bd.GetToPlay()
	second := bd.GetSecondColor(toPlay)
	nuColors := bd.GetNuColors()

	// value of occupying an opponent attach point
	for p := range pk.oppAttach {
		pk.oppAttach[p] = 0
		for cc := game.Color(0); int(cc) < nuColors; cc++ {
			if cc == toPlay || cc == second {
				continue
			}
			if bd.IsAttachPoint(game.Point(p), cc) &&
				!bd.IsForbidden(game.Point(p), cc) {
				pk.oppAttach[p] = 1
				break
			}
		}
	}
	pk.initLocal(bd, toPlay)

	if cap(pk.features) < len(moves) {
		pk.features = make([]moveFeatures, len(moves))
	}
	pk.features = pk.features[:len(moves)]
	pk.maxHeuristic = math32.Inf(-1)
	pk.minDist = math32.MaxFloat32
	pk.hasConnect = false
	for i, mv := range moves {
		info := bd.GetMoveInfo(mv)
		ext := bd.GetMoveInfoExt(mv)
		f := &pk.features[i]
		f.heuristic = Float(len(info.Points))
		f.isLocal = false
		f.connect = false
		f.dist = math32.MaxFloat32
		for _, p := range info.Points {
			f.heuristic += 5 * Float(pk.oppAttach[p])
			if pk.isLocal[p] {
				f.isLocal = true
			}
			if checkDist && pk.distToCenter[p] < f.dist {
				f.dist = pk.distToCenter[p]
			}
		}
		for _, p := range ext.AttachPoints {
			if bd.IsForbidden(p, toPlay) &&
				bd.GetPointState(p) != game.PointState(toPlay) {
				f.heuristic -= 5
			} else {
				f.heuristic++
			}
		}
		for _, p := range ext.AdjPoints {
			if !bd.IsForbidden(p, toPlay) {
				// each adjacent point becomes forbidden to us
				f.heuristic -= 0.2
			} else if second != toPlay &&
				bd.GetPointState(p) == game.PointState(second) {
				f.connect = true
			}
		}
		if f.connect {
			pk.hasConnect = true
		}
		if f.heuristic > pk.maxHeuristic {
			pk.maxHeuristic = f.heuristic
		}
		if checkDist && f.dist < pk.minDist {
			pk.minDist = f.dist
		}
	}
}

// initLocal marks the attach points of recent opponent moves.
func (pk *PriorKnowledge) initLocal(bd *game.Board, toPlay game.Color) {
	for i := range pk.isLocal {
		pk.isLocal[i] = false
	}
	pk.local.Gather(bd, toPlay)
	for _, p := range pk.local.Points() {
		pk.isLocal[p] = true
	}
}

// checkDistToCenter gates the early-game centering bias: only Classic and
// Trigon boards, only in the opening.
func (pk *PriorKnowledge) checkDistToCenter(bd *game.Board) bool {
	switch bd.GetBoardType() {
	case game.BoardClassic:
		return bd.GetNuMoves() < 13
	case game.BoardTrigon, game.BoardTrigon3:
		return bd.GetNuMoves() < 5
	}
	return false
}

// minPieceSize prunes small pieces from expansion in the opening, on the
// same schedule as the playout piece consideration.
func (pk *PriorKnowledge) minPieceSize(bd *game.Board) int {
	sizeAt, _ := minPieceSizeSchedule(bd.GetVariant())
	return sizeAt(bd.GetNuOnboardPieces())
}

// initSymmetricResponse records the reflection of the leader's last move.
// Returns the piece of that move, or -1 when there is no mirrorable move.
func (pk *PriorKnowledge) initSymmetricResponse(bd *game.Board) int16 {
	pk.symmetricCells = pk.symmetricCells[:0]
	nuMoves := bd.GetNuMoves()
	if nuMoves == 0 {
		return -1
	}
	last := bd.GetMove(nuMoves - 1)
	if last.Move.IsPass() || int(last.Color)%2 != 0 {
		return -1
	}
	geo := bd.GetGeometry()
	for _, p := range bd.GetMoveInfo(last.Move).Points {
		pk.symmetricCells = append(pk.symmetricCells, geo.Mirror(p))
	}
	return bd.GetMoveInfo(last.Move).Piece
}

// isSymmetricResponse reports whether mv is exactly the mirror of the
// leader's last move.
func (pk *PriorKnowledge) isSymmetricResponse(bd *game.Board, mv game.Move, piece int16) bool {
	if piece < 0 {
		return false
	}
	info := bd.GetMoveInfo(mv)
	if info.Piece != piece || len(info.Points) != len(pk.symmetricCells) {
		return false
	}
	for _, p := range info.Points {
		if !containsPoint(pk.symmetricCells, p) {
			return false
		}
	}
	return true
}

// breaksSymmetry reports whether the copier cannot mirror mv: some mirror
// cell is occupied or overlaps the move itself.
func (pk *PriorKnowledge) breaksSymmetry(bd *game.Board, mv game.Move) bool {
	geo := bd.GetGeometry()
	points := bd.GetMoveInfo(mv).Points
	for _, p := range points {
		mp := geo.Mirror(p)
		if !bd.GetPointState(mp).IsEmpty() || containsPoint(points, mp) {
			return true
		}
	}
	return false
}
