package game

// Move is a stable index into the variant's dense move table. A move is one
// placement of one piece (piece, cells); two moves placing different pieces
// on the same cells are distinct.
type Move int32

// Move sentinels.
const (
	MoveNull Move = -1
	MovePass Move = -2
)

// IsNull reports whether mv is the null sentinel.
func (mv Move) IsNull() bool { return mv == MoveNull }

// IsPass reports whether mv is a pass.
func (mv Move) IsPass() bool { return mv == MovePass }

// ColorMove is a move together with the color that played it.
type ColorMove struct {
	Color Color
	Move  Move
}

// MoveInfo is the hot-path metadata of a move: the piece it places and the
// cells it covers.
type MoveInfo struct {
	Piece  int16
	Points []Point
}

// MoveInfoExt is the cold-path metadata of a move: the attach points the
// placement creates for its color and the orthogonally adjacent points it
// makes forbidden for it.
type MoveInfoExt struct {
	AttachPoints []Point
	AdjPoints    []Point
}
