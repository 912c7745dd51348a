package game

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

// Board is the mutable game state: point states, per-color forbidden grids,
// attach points, remaining pieces, move history. A Board is not safe for
// concurrent use; simulation workers each own a private copy.
type Board struct {
	bc       *BoardConst
	variant  Variant
	nuColors int

	state    []PointState
	toPlay   Color
	history  []ColorMove
	onboard  int // non-pass moves played
	points   []int
	bonus    []int
	first    []bool
	leftCnt  [][]int8  // [color][piece] instances left
	leftList [][]int16 // [color] distinct piece ids still available

	forbidden    [][]bool
	attachList   [][]Point
	attachMarker [][]bool

	snap *boardSnapshot
}

// NewBoard creates an empty board for the variant.
func NewBoard(v Variant) *Board {
	bc := GetBoardConst(v)
	n := bc.Geo.NumPoints
	nc := v.NuColors()
	bd := &Board{
		bc:       bc,
		variant:  v,
		nuColors: nc,
		state:    make([]PointState, n),
		points:   make([]int, nc),
		bonus:    make([]int, nc),
		first:    make([]bool, nc),
	}
	for i := range bd.state {
		bd.state[i] = Empty
	}
	for c := 0; c < nc; c++ {
		bd.first[c] = true
		cnt := make([]int8, len(bc.Pieces))
		var list []int16
		for i := range bc.Pieces {
			cnt[i] = int8(bc.Pieces[i].Instances)
			list = append(list, int16(i))
		}
		bd.leftCnt = append(bd.leftCnt, cnt)
		bd.leftList = append(bd.leftList, list)
		bd.forbidden = append(bd.forbidden, make([]bool, n))
		bd.attachList = append(bd.attachList, make([]Point, 0, n/4))
		bd.attachMarker = append(bd.attachMarker, make([]bool, n))
	}
	return bd
}

// GetVariant returns the game variant.
func (bd *Board) GetVariant() Variant { return bd.variant }

// GetBoardType returns the board type.
func (bd *Board) GetBoardType() BoardType { return bd.variant.GetBoardType() }

// GetBoardConst returns the shared immutable board constants.
func (bd *Board) GetBoardConst() *BoardConst { return bd.bc }

// GetGeometry returns the board geometry.
func (bd *Board) GetGeometry() *Geometry { return bd.bc.Geo }

// GetNuColors returns the number of colors.
func (bd *Board) GetNuColors() int { return bd.nuColors }

// GetNuPlayers returns the number of players.
func (bd *Board) GetNuPlayers() int { return bd.variant.NuPlayers() }

// GetToPlay returns the color to move.
func (bd *Board) GetToPlay() Color { return bd.toPlay }

// SetToPlay sets the color to move.
func (bd *Board) SetToPlay(c Color) { bd.toPlay = c }

// GetSecondColor returns the partner color of c.
func (bd *Board) GetSecondColor(c Color) Color { return bd.variant.SecondColor(c) }

// GetNuMoves returns the number of moves played, including passes.
func (bd *Board) GetNuMoves() int { return len(bd.history) }

// GetMove returns the i-th move of the history.
func (bd *Board) GetMove(i int) ColorMove { return bd.history[i] }

// GetNuOnboardPieces returns the number of pieces on the board.
func (bd *Board) GetNuOnboardPieces() int { return bd.onboard }

// GetPointState returns the content of p.
func (bd *Board) GetPointState(p Point) PointState { return bd.state[p] }

// IsForbidden reports whether c may not occupy p.
func (bd *Board) IsForbidden(p Point, c Color) bool { return bd.forbidden[c][p] }

// ForbiddenGrid returns the forbidden grid of c, indexed by point.
func (bd *Board) ForbiddenGrid(c Color) []bool { return bd.forbidden[c] }

// GetAttachPoints returns the attach points of c. The list may contain
// points that have since become forbidden; callers filter.
func (bd *Board) GetAttachPoints(c Color) []Point { return bd.attachList[c] }

// IsAttachPoint reports whether p is an attach point of c.
func (bd *Board) IsAttachPoint(p Point, c Color) bool { return bd.attachMarker[c][p] }

// GetAdjStatus returns the adjacency-status bucket of anchor p for color c.
func (bd *Board) GetAdjStatus(p Point, c Color) int {
	adj := bd.bc.Geo.Adj(p)
	n := len(adj)
	if n > adjStatusBits {
		n = adjStatusBits
	}
	status := 0
	for i := 0; i < n; i++ {
		if bd.forbidden[c][adj[i]] {
			status |= 1 << i
		}
	}
	return status
}

// GetPiecesLeft returns the distinct piece ids c can still play.
func (bd *Board) GetPiecesLeft(c Color) []int16 { return bd.leftList[c] }

// IsPieceLeft reports whether c has an instance of piece left.
func (bd *Board) IsPieceLeft(c Color, piece int16) bool {
	return bd.leftCnt[c][piece] > 0
}

// IsFirstPiece reports whether c has not placed a piece yet.
func (bd *Board) IsFirstPiece(c Color) bool { return bd.first[c] }

// GetStartingPoints returns the starting points of c.
func (bd *Board) GetStartingPoints(c Color) []Point {
	return bd.bc.GetStartingPoints(c)
}

// GetMoveInfo returns the cells and piece of mv.
func (bd *Board) GetMoveInfo(mv Move) *MoveInfo { return bd.bc.GetMoveInfo(mv) }

// GetMoveInfoExt returns attach and adjacent points of mv.
func (bd *Board) GetMoveInfoExt(mv Move) *MoveInfoExt { return bd.bc.GetMoveInfoExt(mv) }

// GetMoves returns the placements of piece covering p in bucket adjStatus.
func (bd *Board) GetMoves(piece int16, p Point, adjStatus int) []Move {
	return bd.bc.MovesAt(int(piece), p, adjStatus)
}

// Play plays mv (or a pass) for the color to move and advances to-play.
func (bd *Board) Play(mv Move) {
	c := bd.toPlay
	bd.history = append(bd.history, ColorMove{Color: c, Move: mv})
	if !mv.IsPass() {
		bd.place(c, mv)
	}
	bd.toPlay = Color((int(c) + 1) % bd.nuColors)
}

func (bd *Board) place(c Color, mv Move) {
	info := bd.bc.GetMoveInfo(mv)
	ext := bd.bc.GetMoveInfoExt(mv)
	for _, p := range info.Points {
		bd.state[p] = PointState(c)
		for cc := 0; cc < bd.nuColors; cc++ {
			bd.forbidden[cc][p] = true
		}
	}
	for _, p := range ext.AdjPoints {
		bd.forbidden[c][p] = true
	}
	marker := bd.attachMarker[c]
	for _, p := range ext.AttachPoints {
		if !marker[p] {
			marker[p] = true
			bd.attachList[c] = append(bd.attachList[c], p)
		}
	}
	bd.points[c] += len(info.Points)
	bd.first[c] = false
	bd.onboard++
	bd.leftCnt[c][info.Piece]--
	if bd.leftCnt[c][info.Piece] == 0 {
		list := bd.leftList[c]
		for i, id := range list {
			if id == info.Piece {
				list[i] = list[len(list)-1]
				bd.leftList[c] = list[:len(list)-1]
				break
			}
		}
	}
	if len(bd.leftList[c]) == 0 {
		bd.bonus[c] = 15
		if bd.bc.Pieces[info.Piece].IsMonomino() {
			bd.bonus[c] = 20
		}
	}
}

// GetPoints returns the number of cells c has on the board.
func (bd *Board) GetPoints(c Color) int { return bd.points[c] }

// GetScore returns the score of c: the point difference in two-player
// variants (with partner pooling), points plus bonus otherwise.
func (bd *Board) GetScore(c Color) int {
	if bd.GetNuPlayers() != 2 {
		return bd.points[c] + bd.bonus[c]
	}
	mine, theirs := 0, 0
	second := bd.GetSecondColor(c)
	for cc := Color(0); int(cc) < bd.nuColors; cc++ {
		v := bd.points[cc] + bd.bonus[cc]
		if cc == c || cc == second {
			mine += v
		} else {
			theirs += v
		}
	}
	return mine - theirs
}

type boardSnapshot struct {
	state    []PointState
	toPlay   Color
	nuMoves  int
	history  []ColorMove
	onboard  int
	points   []int
	bonus    []int
	first    []bool
	leftCnt  [][]int8
	leftLen  []int
	leftList [][]int16

	forbidden    [][]bool
	attachLen    []int
	attachList   [][]Point
	attachMarker [][]bool
}

// TakeSnapshot records the current position for a later RestoreSnapshot.
func (bd *Board) TakeSnapshot() {
	if bd.snap == nil {
		bd.snap = bd.newSnapshot()
	}
	s := bd.snap
	copy(s.state, bd.state)
	s.toPlay = bd.toPlay
	s.nuMoves = len(bd.history)
	s.history = append(s.history[:0], bd.history...)
	s.onboard = bd.onboard
	copy(s.points, bd.points)
	copy(s.bonus, bd.bonus)
	copy(s.first, bd.first)
	for c := 0; c < bd.nuColors; c++ {
		copy(s.leftCnt[c], bd.leftCnt[c])
		s.leftLen[c] = len(bd.leftList[c])
		copy(s.leftList[c][:s.leftLen[c]], bd.leftList[c])
		copy(s.forbidden[c], bd.forbidden[c])
		s.attachLen[c] = len(bd.attachList[c])
		s.attachList[c] = append(s.attachList[c][:0], bd.attachList[c]...)
		copy(s.attachMarker[c], bd.attachMarker[c])
	}
}

// RestoreSnapshot restores the position recorded by the last TakeSnapshot.
func (bd *Board) RestoreSnapshot() {
	s := bd.snap
	if s == nil {
		panic("RestoreSnapshot without TakeSnapshot")
	}
	copy(bd.state, s.state)
	bd.toPlay = s.toPlay
	bd.history = append(bd.history[:0], s.history...)
	bd.onboard = s.onboard
	copy(bd.points, s.points)
	copy(bd.bonus, s.bonus)
	copy(bd.first, s.first)
	for c := 0; c < bd.nuColors; c++ {
		copy(bd.leftCnt[c], s.leftCnt[c])
		bd.leftList[c] = bd.leftList[c][:s.leftLen[c]]
		copy(bd.leftList[c], s.leftList[c][:s.leftLen[c]])
		copy(bd.forbidden[c], s.forbidden[c])
		bd.attachList[c] = append(bd.attachList[c][:0], s.attachList[c][:s.attachLen[c]]...)
		copy(bd.attachMarker[c], s.attachMarker[c])
	}
}

func (bd *Board) newSnapshot() *boardSnapshot {
	n := bd.bc.Geo.NumPoints
	s := &boardSnapshot{
		state:  make([]PointState, n),
		points: make([]int, bd.nuColors),
		bonus:  make([]int, bd.nuColors),
		first:  make([]bool, bd.nuColors),
	}
	for c := 0; c < bd.nuColors; c++ {
		s.leftCnt = append(s.leftCnt, make([]int8, len(bd.bc.Pieces)))
		s.leftList = append(s.leftList, make([]int16, len(bd.bc.Pieces)))
		s.leftLen = append(s.leftLen, 0)
		s.forbidden = append(s.forbidden, make([]bool, n))
		s.attachList = append(s.attachList, make([]Point, 0, n/4))
		s.attachLen = append(s.attachLen, 0)
		s.attachMarker = append(s.attachMarker, make([]bool, n))
	}
	return s
}

// CopyFrom makes bd a copy of other. Both must share the variant.
func (bd *Board) CopyFrom(other *Board) error {
	if bd.variant != other.variant {
		return errors.Errorf("cannot copy %v board from %v board",
			bd.variant, other.variant)
	}
	copy(bd.state, other.state)
	bd.toPlay = other.toPlay
	bd.history = append(bd.history[:0], other.history...)
	bd.onboard = other.onboard
	copy(bd.points, other.points)
	copy(bd.bonus, other.bonus)
	copy(bd.first, other.first)
	for c := 0; c < bd.nuColors; c++ {
		copy(bd.leftCnt[c], other.leftCnt[c])
		bd.leftList[c] = append(bd.leftList[c][:0], other.leftList[c]...)
		copy(bd.forbidden[c], other.forbidden[c])
		bd.attachList[c] = append(bd.attachList[c][:0], other.attachList[c]...)
		copy(bd.attachMarker[c], other.attachMarker[c])
	}
	return nil
}

// String renders the board as an ASCII grid.
func (bd *Board) String() string {
	geo := bd.bc.Geo
	var buf bytes.Buffer
	for y := 0; y < geo.Height; y++ {
		for x := 0; x < geo.Width; x++ {
			p := geo.At(x, y)
			switch {
			case p.IsNull():
				buf.WriteByte(' ')
			case bd.state[p].IsEmpty():
				buf.WriteByte('.')
			default:
				buf.WriteByte('0' + byte(bd.state[p]))
			}
		}
		buf.WriteByte('\n')
	}
	fmt.Fprintf(&buf, "to play: %d, moves: %d\n", bd.toPlay, len(bd.history))
	return buf.String()
}
