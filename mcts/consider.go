package mcts

import "github.com/pentamind/game"

// PieceMask is a bitset over the piece ids of a variant's piece set.
type PieceMask uint32

// Contains reports whether piece is in the mask.
func (m PieceMask) Contains(piece int16) bool { return m&(1<<uint(piece)) != 0 }

func allPiecesMask(n int) PieceMask { return PieceMask(1)<<uint(n) - 1 }

// minPieceSizeSchedule returns the smallest piece size worth considering
// when k pieces are on the board, and the horizon after which every piece
// is considered. Early moves should place big pieces; enumerating the small
// ones only wastes playout time.
func minPieceSizeSchedule(v game.Variant) (sizeAt func(k int) int, horizon int) {
	switch v.GetBoardType() {
	case game.BoardDuo:
		return func(k int) int {
			switch {
			case k < 4:
				return 5
			case k < 6:
				return 4
			}
			return 1
		}, 6
	case game.BoardClassic:
		return func(k int) int {
			switch {
			case k < 12:
				return 5
			case k < 20:
				return 4
			}
			return 1
		}, 20
	default: // trigon boards
		return func(k int) int {
			switch {
			case k < 16:
				return 6
			case k < 20:
				return 5
			case k < 28:
				return 4
			}
			return 1
		}, 28
	}
}

// buildConsideredMasks precomputes is_piece_considered for every on-board
// piece count below the all-considered horizon.
func buildConsideredMasks(bc *game.BoardConst, v game.Variant) ([]PieceMask, int) {
	sizeAt, horizon := minPieceSizeSchedule(v)
	masks := make([]PieceMask, horizon)
	for k := 0; k < horizon; k++ {
		min := sizeAt(k)
		var m PieceMask
		for i := range bc.Pieces {
			if bc.Pieces[i].Size >= min {
				m |= 1 << uint(i)
			}
		}
		masks[k] = m
	}
	return masks, horizon
}
