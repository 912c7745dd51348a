package game

// Color is a player color, a small integer in [0, nuColors).
type Color int8

// Point is a dense index of an on-board cell. NullPoint is a sentinel
// outside the board.
type Point int16

// NullPoint is the out-of-board sentinel.
const NullPoint Point = -1

// IsNull reports whether p is the null sentinel.
func (p Point) IsNull() bool { return p < 0 }

// PointState is the content of a board cell: a Color, or Empty.
type PointState int8

// Empty is the state of an unoccupied cell.
const Empty PointState = -1

// IsEmpty reports whether the state is unoccupied.
func (s PointState) IsEmpty() bool { return s < 0 }

// ToColor converts an occupied point state to the occupying color.
func (s PointState) ToColor() Color { return Color(s) }
