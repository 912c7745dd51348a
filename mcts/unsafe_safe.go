// +build !unsafe

package mcts

// nodeFromNaughty gets the node given the index.
func (t *Tree) nodeFromNaughty(ptr naughty) *Node {
	t.RLock()
	defer t.RUnlock()
	nodes := t.nodes
	return &nodes[int(ptr)]
}

// Children returns a list of children.
func (t *Tree) Children(of naughty) []naughty {
	t.RLock()
	defer t.RUnlock()
	return t.children[of]
}
