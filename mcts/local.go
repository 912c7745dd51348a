package mcts

import "github.com/pentamind/game"

// LocalityTracker collects the attach points of the last few opponent
// moves. Moves covering or touching these points respond directly to the
// opponent and get a large playout gamma.
type LocalityTracker struct {
	points []game.Point
	marked []bool
}

// localMoveHorizon is how many history entries back count as recent. With
// alternating colors this is the last two opponent moves in two-player
// variants.
const localMoveHorizon = 3

// Init sizes the tracker for a board.
func (lt *LocalityTracker) Init(n int) {
	lt.marked = make([]bool, n)
	lt.points = make([]game.Point, 0, n/4)
}

// Gather collects the attach points of recent moves by opponents of
// toPlay, skipping points the mover can no longer use.
func (lt *LocalityTracker) Gather(bd *game.Board, toPlay game.Color) {
	for _, p := range lt.points {
		lt.marked[p] = false
	}
	lt.points = lt.points[:0]
	second := bd.GetSecondColor(toPlay)
	n := bd.GetNuMoves()
	for i := 0; i < localMoveHorizon && n > 0; i++ {
		n--
		cm := bd.GetMove(n)
		if cm.Color == toPlay || cm.Color == second || cm.Move.IsPass() {
			continue
		}
		for _, p := range bd.GetMoveInfoExt(cm.Move).AttachPoints {
			if !bd.IsForbidden(p, cm.Color) && !lt.marked[p] {
				lt.marked[p] = true
				lt.points = append(lt.points, p)
			}
		}
	}
}

// Points returns the gathered local points.
func (lt *LocalityTracker) Points() []game.Point { return lt.points }
