package mcts

// byVisits sorts node indices by visit count, most visited first. Nodes
// are resolved through the owning tree.
type byVisits struct {
	l []naughty
	t *Tree
}

func (l byVisits) Len() int      { return len(l.l) }
func (l byVisits) Swap(i, j int) { l.l[i], l.l[j] = l.l[j], l.l[i] }
func (l byVisits) Less(i, j int) bool {
	li := l.t.nodeFromNaughty(l.l[i])
	lj := l.t.nodeFromNaughty(l.l[j])
	return li.Visits() > lj.Visits()
}
