package mcts

import (
	"sync"
	"sync/atomic"

	"github.com/pentamind/game"
)

/*
Here lies the search loop. tree.go and node.go handle the data structure
stuff; the per-simulation game logic lives in State.

One simulation: restore the snapshot, descend the tree replaying the
selected moves on the worker's private board, expand the leaf with
prior-initialized children, finish the game with a gamma-biased playout
and backpropagate the evaluation along the path.
*/

// searchState is the per-worker loop state.
type searchState struct {
	tree  uintptr
	state *State
	path  []naughty
}

// Search runs the configured number of simulations from the shared root
// position and returns the most visited root move. Returns game.MovePass
// when the side to move has no legal move.
func (t *Tree) Search() game.Move {
	t.prepareRoot()
	root := t.nodeFromNaughty(t.root)
	if !root.HasChildren() {
		return game.MovePass
	}

	var iter int32
	var wg sync.WaitGroup
	for i := 0; i < t.Workers; i++ {
		ss := &searchState{
			tree:  ptrFromTree(t),
			state: t.states[i],
			path:  make([]naughty, 0, 128),
		}
		wg.Add(1)
		go func(ss *searchState) {
			defer wg.Done()
			for {
				n := atomic.AddInt32(&iter, 1)
				if n > t.Simulations {
					return
				}
				ss.simulate(int(n))
			}
		}(ss)
	}
	wg.Wait()

	best := t.bestRootMove()
	t.log("playouts %d, nodes %d, best %v",
		atomic.LoadInt32(&t.playouts), t.NumNodes(), best)
	return best
}

// prepareRoot clears the arena, initializes every worker State for the
// search, creates the root node and expands it with prior knowledge plus
// Dirichlet exploration noise.
func (t *Tree) prepareRoot() {
	t.Reset()
	for _, s := range t.states {
		s.StartSearch()
	}
	t.root = t.newNode(PlayerMove{Color: t.shared.ToPlay, Move: game.MoveNull}, 0, 0)
	s := t.states[0]
	s.StartSimulation(0)
	t.expandNode(s, t.root)
	t.addDirichletNoise()
}

// expandNode generates children for id at the state's current position.
// Returns false when the expansion was abandoned for capacity.
func (t *Tree) expandNode(s *State, id naughty) bool {
	n := t.nodeFromNaughty(id)
	if n.HasChildren() {
		return true
	}
	if !n.beginExpand() {
		// another worker is expanding this node right now
		return true
	}
	defer n.endExpand()
	if n.HasChildren() {
		return true
	}
	e := &nodeExpander{t: t, parent: id, mover: s.Board().GetToPlay()}
	if !s.GenChildren(e, n.Value()) {
		t.rollbackChildren(id)
		return false
	}
	if e.added > 0 {
		n.SetHasChildren(true)
	}
	return true
}

// simulate runs one MCTS iteration:
//
//	SELECT and REPLAY, EXPAND, PLAYOUT, BACKPROPAGATE.
func (ss *searchState) simulate(n int) {
	t := treeFromUintptr(ss.tree)
	s := ss.state
	s.StartSimulation(n)

	node := t.root
	ss.path = append(ss.path[:0], node)
	for {
		nd := t.nodeFromNaughty(node)
		if !nd.HasChildren() {
			break
		}
		kid := nd.Select(t.Exploration)
		s.PlayExpandedChild(t.nodeFromNaughty(kid).Move())
		ss.path = append(ss.path, kid)
		node = kid
	}

	leaf := t.nodeFromNaughty(node)
	if leaf.Visits() > 0 {
		t.expandNode(s, node)
	}

	var pm PlayerMove
	for s.GenPlayoutMove(&pm) {
		s.PlayPlayout(pm)
	}
	var result [MaxResultColors]Float
	s.EvaluatePlayout(&result)
	atomic.AddInt32(&t.playouts, 1)

	for _, id := range ss.path {
		nd := t.nodeFromNaughty(id)
		nd.Update(result[nd.ResultColor()])
	}
}

// bestRootMove returns the root child with the most visits, breaking ties
// by value.
func (t *Tree) bestRootMove() game.Move {
	children := t.Children(t.root)
	best := game.MovePass
	var bestVisits uint32
	bestValue := Float(-1)
	for _, kid := range children {
		n := t.nodeFromNaughty(kid)
		if !n.IsActive() {
			continue
		}
		v := n.Visits()
		if v > bestVisits || (v == bestVisits && n.Value() > bestValue) {
			bestVisits = v
			bestValue = n.Value()
			best = n.Move()
		}
	}
	return best
}
