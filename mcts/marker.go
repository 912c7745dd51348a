package mcts

import "github.com/pentamind/game"

// MoveMarker is a bitset over the move-index space, used to deduplicate
// candidate moves during list generation. It is cleared through the list of
// set moves, not by wiping the whole array.
type MoveMarker struct {
	bits []uint64
}

// Init sizes the marker for a move range of n.
func (m *MoveMarker) Init(n int) {
	m.bits = make([]uint64, (n+63)/64)
}

// Set marks mv.
func (m *MoveMarker) Set(mv game.Move) {
	m.bits[uint32(mv)>>6] |= 1 << (uint32(mv) & 63)
}

// Test reports whether mv is marked.
func (m *MoveMarker) Test(mv game.Move) bool {
	return m.bits[uint32(mv)>>6]&(1<<(uint32(mv)&63)) != 0
}

// ClearList unmarks every move in moves.
func (m *MoveMarker) ClearList(moves []game.Move) {
	for _, mv := range moves {
		m.bits[uint32(mv)>>6] &^= 1 << (uint32(mv) & 63)
	}
}
